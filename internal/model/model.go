package model

import (
	"github.com/shopspring/decimal"

	"swaypp-service/internal/payee"
)

// DefaultMessage is the unstructured message placed in payloads when the
// request carries none.
const DefaultMessage = "Paiement Swaypp"

// PaymentRequest is the transient instruction to produce a payment payload.
// A nil Amount means the payer fills the amount in at scan time.
type PaymentRequest struct {
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Currency   string           `json:"currency,omitempty"`
	Message    string           `json:"message,omitempty"`
	MerchantID string           `json:"merchantId,omitempty"`
}

// MessageOrDefault returns the request message, falling back to
// DefaultMessage when absent.
func (r PaymentRequest) MessageOrDefault() string {
	if r.Message == "" {
		return DefaultMessage
	}
	return r.Message
}

// QRResult is the outcome of a payload generation. Payload is always set
// once a result exists; Image may be empty when rendering failed.
type QRResult struct {
	Format  string        `json:"format"`
	Payload string        `json:"payload"`
	Image   string        `json:"image,omitempty"`
	Payee   payee.Profile `json:"payee"`
}
