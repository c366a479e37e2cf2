// Package payee resolves the beneficiary of a payment from the merchant
// profile store, degrading to a configured default identity so that payload
// generation never blocks on missing profile data.
package payee

import (
	"context"
	"log/slog"
	"time"

	"swaypp-service/internal/iban"
)

const defaultCountry = "CH"

const defaultLookupTimeout = 2 * time.Second

// Profile is the resolved beneficiary for a payment. BeneficiaryName and
// IBAN are never empty after resolution; IBAN is in canonical form.
type Profile struct {
	BeneficiaryName string `json:"beneficiaryName"`
	Address         string `json:"address"`
	PostalCode      string `json:"postalCode"`
	City            string `json:"city"`
	Country         string `json:"country"`
	IBAN            string `json:"iban"`
}

// Partial is what a profile store may return for a merchant. Any field can
// be empty; a nil Partial means the merchant is unknown.
type Partial struct {
	BeneficiaryName string
	BusinessName    string
	Address         string
	PostalCode      string
	City            string
	IBAN            string
}

// Lookup fetches a merchant's stored profile. A miss is (nil, nil), never an
// error; errors are tolerated and treated as misses by the resolver.
type Lookup interface {
	GetProfile(ctx context.Context, merchantID string) (*Partial, error)
}

type Resolver struct {
	lookup   Lookup
	fallback Profile
	timeout  time.Duration
	logger   *slog.Logger
}

func NewResolver(lookup Lookup, fallback Profile, timeout time.Duration, logger *slog.Logger) *Resolver {
	if fallback.Country == "" {
		fallback.Country = defaultCountry
	}
	fallback.IBAN = iban.Normalize(fallback.IBAN)

	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}

	return &Resolver{
		lookup:   lookup,
		fallback: fallback,
		timeout:  timeout,
		logger:   logger,
	}
}

// Resolve produces the payee for the given merchant. It never fails: a
// missing merchant id, an unknown merchant, a nameless profile or a lookup
// failure all degrade to the configured fallback profile, and each of
// address, postal code, city and IBAN is defaulted independently when the
// stored profile leaves it empty.
func (r *Resolver) Resolve(ctx context.Context, merchantID string) Profile {
	if merchantID == "" || r.lookup == nil {
		return r.fallback
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	partial, err := r.lookup.GetProfile(ctx, merchantID)
	if err != nil {
		r.logger.WarnContext(ctx, "Profile lookup failed, using default payee", "merchantId", merchantID, "error", err)
		return r.fallback
	}
	if partial == nil {
		r.logger.WarnContext(ctx, "No profile found, using default payee", "merchantId", merchantID)
		return r.fallback
	}

	name := partial.BeneficiaryName
	if name == "" {
		name = partial.BusinessName
	}
	if name == "" {
		r.logger.WarnContext(ctx, "Profile has no usable name, using default payee", "merchantId", merchantID)
		return r.fallback
	}

	resolved := Profile{
		BeneficiaryName: name,
		Address:         orDefault(partial.Address, r.fallback.Address),
		PostalCode:      orDefault(partial.PostalCode, r.fallback.PostalCode),
		City:            orDefault(partial.City, r.fallback.City),
		Country:         r.fallback.Country,
		IBAN:            orDefault(iban.Normalize(partial.IBAN), r.fallback.IBAN),
	}

	return resolved
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
