// Package spc serializes the Swiss Payments Code text payload.
//
// The payload is a fixed sequence of 32 newline-joined fields; banking-app
// scanners parse it positionally, so field count, order and empty-field
// placement are the wire contract and must not change.
package spc

import (
	"strings"

	"swaypp-service/internal/iban"
	"swaypp-service/internal/model"
	"swaypp-service/internal/money"
	"swaypp-service/internal/payee"
)

const (
	identifier        = "SPC"  // Swiss Payments Code
	version           = "0200" // version 2.0
	codingUTF8        = "1"
	addressStructured = "S"
	referenceTypeNone = "NON" // no structured reference without a bank agreement
	trailer           = "EPD"
)

// FieldCount is the number of fields in every serialized payload.
const FieldCount = 32

// Serialize builds the SPC payload for the resolved payee and request.
// It does not validate the IBAN; the profile resolver owns canonical form.
func Serialize(p payee.Profile, req model.PaymentRequest) string {
	fields := []string{
		identifier,
		version,
		codingUTF8,
		iban.Normalize(p.IBAN),
		addressStructured,
		p.BeneficiaryName,
		p.Address,
		"", // address line 2, unused in structured mode
		p.PostalCode,
		p.City,
		p.Country,
		"", "", "", "", "", "", "", // ultimate creditor, reserved
		money.FormatAmount(req.Amount),
		money.NormalizeCurrency(req.Currency),
		"", "", "", "", "", "", "", // ultimate debtor, reserved
		referenceTypeNone,
		"", // reference must stay empty with reference type NON
		req.MessageOrDefault(),
		trailer,
		"", // additional info
	}

	return strings.Join(fields, "\n")
}
