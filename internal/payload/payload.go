// Package payload builds the simple JSON payment payload used when full SPC
// compliance is not required.
package payload

import (
	"errors"

	"swaypp-service/internal/iban"
	"swaypp-service/internal/model"
	"swaypp-service/internal/money"
	"swaypp-service/internal/payee"
)

// ErrNoIBAN is returned when no IBAN is resolvable and synthesizing one is
// not allowed.
var ErrNoIBAN = errors.New("no resolvable iban for payment payload")

// defaultRecipient is a defensive second fallback; the resolver normally
// guarantees a non-empty beneficiary name.
const defaultRecipient = "Swaypp Merchant"

// SimplePayment is the flat payload understood by most Swiss banking apps.
// Amount is a fixed two-decimal string, or empty for payer-chosen amounts.
type SimplePayment struct {
	IBAN      string `json:"iban"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

// Build assembles the simple payload for the resolved payee and request.
// When the payee carries no IBAN, a sandbox IBAN is synthesized only if
// allowSyntheticIBAN is set; synthesized IBANs must never back a real charge.
func Build(p payee.Profile, req model.PaymentRequest, allowSyntheticIBAN bool) (SimplePayment, error) {
	account := iban.Normalize(p.IBAN)
	if account == "" {
		if !allowSyntheticIBAN {
			return SimplePayment{}, ErrNoIBAN
		}
		account = iban.Synthesize()
	}

	recipient := p.BeneficiaryName
	if recipient == "" {
		recipient = defaultRecipient
	}

	return SimplePayment{
		IBAN:      account,
		Amount:    money.FormatAmount(req.Amount),
		Currency:  money.NormalizeCurrency(req.Currency),
		Recipient: recipient,
		Message:   req.MessageOrDefault(),
	}, nil
}
