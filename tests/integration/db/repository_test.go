package db

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"swaypp-service/internal/db"
	"swaypp-service/tests/testhelpers"
)

type RepositoryTestSuite struct {
	suite.Suite
	pgContainer *testhelpers.PostgresContainer
	pool        *pgxpool.Pool
	profiles    *db.ProfileRepository
	txs         *db.TransactionRepository
	ctx         context.Context
}

func (s *RepositoryTestSuite) SetupSuite() {
	time.Local = time.UTC

	s.ctx = context.Background()
	pgContainer, err := testhelpers.CreatePostgresContainer(s.ctx)
	if err != nil {
		log.Fatal(err)
	}
	s.pgContainer = pgContainer

	db.RunMigrations(pgContainer.ConnectionString, "../../../migrations")

	pool, err := db.GetPool(pgContainer.ConnectionString)
	if err != nil {
		log.Fatal(err)
	}

	s.pool = pool
	s.profiles = db.NewProfileRepository(pool)
	s.txs = db.NewTransactionRepository(pool)
}

func (s *RepositoryTestSuite) TearDownSuite() {
	s.pool.Close()

	if err := s.pgContainer.Terminate(s.ctx); err != nil {
		log.Fatalf("error terminating postgres container: %s", err)
	}
}

func (s *RepositoryTestSuite) SetupTest() {
	for _, table := range []string{"merchant_profile", "payment_transaction"} {
		_, err := s.pool.Exec(s.ctx, "DELETE FROM "+table)
		if err != nil {
			log.Fatalf("error truncating %s table: %s", table, err)
		}
	}
}

func (s *RepositoryTestSuite) TestGetByMerchantID_Miss() {
	t := s.T()

	entity, err := s.profiles.GetByMerchantID(s.ctx, "unknown")

	assert.NoError(t, err, "a miss is not an error")
	assert.Nil(t, entity)
}

func (s *RepositoryTestSuite) TestUpsertAndGet() {
	t := s.T()

	entity := &db.MerchantProfileEntity{
		ID:              uuid.New(),
		MerchantID:      "m1",
		BeneficiaryName: "Maria Petronio",
		BusinessName:    "NexaHolding",
		Address:         "Ch des Fleurs de lys 5b",
		PostalCode:      "1350",
		City:            "Orbe",
		IBAN:            "CH1500243243FS1502472",
	}

	err := s.profiles.Upsert(s.ctx, entity)
	assert.NoError(t, err)

	stored, err := s.profiles.GetByMerchantID(s.ctx, "m1")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, "Maria Petronio", stored.BeneficiaryName)
	assert.Equal(t, "CH1500243243FS1502472", stored.IBAN)

	entity.City = "Lausanne"
	err = s.profiles.Upsert(s.ctx, entity)
	assert.NoError(t, err)

	updated, err := s.profiles.GetByMerchantID(s.ctx, "m1")
	assert.NoError(t, err)
	assert.Equal(t, "Lausanne", updated.City)
}

func (s *RepositoryTestSuite) TestCreateAndSelectTransactions() {
	t := s.T()

	first := &db.PaymentTransactionEntity{
		ID:            uuid.New(),
		MerchantID:    "m1",
		Amount:        "28.50",
		Currency:      "CHF",
		Description:   "Menu du jour",
		PayloadPrefix: "SPC\n0200\n1",
		Format:        "spc",
		CreatedAt:     time.Now().Add(-time.Minute),
	}
	second := &db.PaymentTransactionEntity{
		ID:         uuid.New(),
		MerchantID: "m1",
		Amount:     "5.00",
		Currency:   "CHF",
		Format:     "simple",
		CreatedAt:  time.Now(),
	}

	assert.NoError(t, s.txs.Create(s.ctx, first))
	assert.NoError(t, s.txs.Create(s.ctx, second))

	entities, err := s.txs.SelectByMerchantID(s.ctx, "m1", 10)
	assert.NoError(t, err)
	assert.Len(t, entities, 2)
	assert.Equal(t, second.ID, entities[0].ID, "newest first")
	assert.Equal(t, "28.50", entities[1].Amount)

	none, err := s.txs.SelectByMerchantID(s.ctx, "other", 10)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
