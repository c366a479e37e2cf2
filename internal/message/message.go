package message

import (
	"time"

	"github.com/google/uuid"
)

// PayloadPrefixLimit bounds the payload excerpt carried in transaction
// events so log rows stay small.
const PayloadPrefixLimit = 500

// TransactionEvent records that a payment payload was generated for a
// merchant. PayloadPrefix is the payload text truncated to PayloadPrefixLimit.
type TransactionEvent struct {
	ID            uuid.UUID `json:"id"`
	MerchantID    string    `json:"merchantId"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	Description   string    `json:"description"`
	PayloadPrefix string    `json:"payloadPrefix"`
	Format        string    `json:"format"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TruncatePayload caps a payload excerpt at PayloadPrefixLimit characters.
func TruncatePayload(payload string) string {
	runes := []rune(payload)
	if len(runes) <= PayloadPrefixLimit {
		return payload
	}
	return string(runes[:PayloadPrefixLimit])
}
