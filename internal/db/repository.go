package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetByMerchantID returns the stored profile, or (nil, nil) when the
// merchant is unknown.
func (r *ProfileRepository) GetByMerchantID(ctx context.Context, merchantID string) (*MerchantProfileEntity, error) {
	query := `SELECT id, merchant_id, beneficiary_name, business_name, address, postal_code, city, iban, created_at, updated_at
	          FROM merchant_profile WHERE merchant_id = $1`
	row := r.pool.QueryRow(ctx, query, merchantID)

	var entity MerchantProfileEntity
	err := row.Scan(&entity.ID, &entity.MerchantID, &entity.BeneficiaryName, &entity.BusinessName,
		&entity.Address, &entity.PostalCode, &entity.City, &entity.IBAN, &entity.CreatedAt, &entity.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "select merchant profile")
	}
	return &entity, nil
}

// Upsert creates or refreshes a merchant profile keyed by merchant_id.
func (r *ProfileRepository) Upsert(ctx context.Context, entity *MerchantProfileEntity) error {
	query := `INSERT INTO merchant_profile (id, merchant_id, beneficiary_name, business_name, address, postal_code, city, iban)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (merchant_id) DO UPDATE SET
	              beneficiary_name = EXCLUDED.beneficiary_name,
	              business_name = EXCLUDED.business_name,
	              address = EXCLUDED.address,
	              postal_code = EXCLUDED.postal_code,
	              city = EXCLUDED.city,
	              iban = EXCLUDED.iban,
	              updated_at = now()`
	_, err := r.pool.Exec(ctx, query, entity.ID, entity.MerchantID, entity.BeneficiaryName,
		entity.BusinessName, entity.Address, entity.PostalCode, entity.City, entity.IBAN)
	return errors.Wrap(err, "upsert merchant profile")
}

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func (r *TransactionRepository) Create(ctx context.Context, entity *PaymentTransactionEntity) error {
	query := `INSERT INTO payment_transaction (id, merchant_id, amount, currency, description, payload_prefix, format, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query, entity.ID, entity.MerchantID, entity.Amount, entity.Currency,
		entity.Description, entity.PayloadPrefix, entity.Format, entity.CreatedAt)
	return errors.Wrap(err, "insert payment transaction")
}

func (r *TransactionRepository) SelectByMerchantID(ctx context.Context, merchantID string, limit int) ([]*PaymentTransactionEntity, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, merchant_id, amount, currency, description, payload_prefix, format, created_at
	          FROM payment_transaction WHERE merchant_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, merchantID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "select payment transactions")
	}
	defer rows.Close()

	var entities []*PaymentTransactionEntity
	for rows.Next() {
		var entity PaymentTransactionEntity
		if err := rows.Scan(&entity.ID, &entity.MerchantID, &entity.Amount, &entity.Currency,
			&entity.Description, &entity.PayloadPrefix, &entity.Format, &entity.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan payment transaction")
		}
		entities = append(entities, &entity)
	}

	return entities, rows.Err()
}
