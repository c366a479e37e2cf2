package db

import (
	"time"

	"github.com/google/uuid"
)

type MerchantProfileEntity struct {
	ID              uuid.UUID
	MerchantID      string
	BeneficiaryName string
	BusinessName    string
	Address         string
	PostalCode      string
	City            string
	IBAN            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PaymentTransactionEntity struct {
	ID            uuid.UUID
	MerchantID    string
	Amount        string
	Currency      string
	Description   string
	PayloadPrefix string
	Format        string
	CreatedAt     time.Time
}
