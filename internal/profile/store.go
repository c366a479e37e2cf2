// Package profile provides the merchant profile lookups backing the payee
// resolver: a local database store and a hosted profile service client.
package profile

import (
	"context"

	"swaypp-service/internal/db"
	"swaypp-service/internal/payee"
)

// Store adapts the merchant profile repository to payee.Lookup.
type Store struct {
	repo *db.ProfileRepository
}

func NewStore(repo *db.ProfileRepository) *Store {
	return &Store{repo: repo}
}

func (s *Store) GetProfile(ctx context.Context, merchantID string) (*payee.Partial, error) {
	entity, err := s.repo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}

	return &payee.Partial{
		BeneficiaryName: entity.BeneficiaryName,
		BusinessName:    entity.BusinessName,
		Address:         entity.Address,
		PostalCode:      entity.PostalCode,
		City:            entity.City,
		IBAN:            entity.IBAN,
	}, nil
}
