package payee

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testFallback = Profile{
	BeneficiaryName: "Maria Petronio",
	Address:         "Ch des Fleurs de lys 5b",
	PostalCode:      "1350",
	City:            "Orbe",
	Country:         "CH",
	IBAN:            "CH1500243243FS1502472",
}

type lookupStub struct {
	partial *Partial
	err     error
	calls   int
}

func (s *lookupStub) GetProfile(_ context.Context, _ string) (*Partial, error) {
	s.calls++
	return s.partial, s.err
}

func newTestResolver(lookup Lookup) *Resolver {
	return NewResolver(lookup, testFallback, time.Second, slog.Default())
}

func TestResolve_FullProfile(t *testing.T) {
	stub := &lookupStub{partial: &Partial{
		BeneficiaryName: "Jean Dupont",
		Address:         "Rue du Marche 12",
		PostalCode:      "1204",
		City:            "Geneve",
		IBAN:            "ch93 0076 2011 6238 5295 7",
	}}

	resolved := newTestResolver(stub).Resolve(context.Background(), "m1")

	assert.Equal(t, "Jean Dupont", resolved.BeneficiaryName)
	assert.Equal(t, "Rue du Marche 12", resolved.Address)
	assert.Equal(t, "1204", resolved.PostalCode)
	assert.Equal(t, "Geneve", resolved.City)
	assert.Equal(t, "CH", resolved.Country)
	assert.Equal(t, "CH9300762011623852957", resolved.IBAN, "iban is canonicalized")
}

func TestResolve_BusinessNameFallback(t *testing.T) {
	stub := &lookupStub{partial: &Partial{BusinessName: "NexaHolding", IBAN: "CH9300762011623852957"}}

	resolved := newTestResolver(stub).Resolve(context.Background(), "m1")

	assert.Equal(t, "NexaHolding", resolved.BeneficiaryName)
}

func TestResolve_FieldsDefaultedIndependently(t *testing.T) {
	stub := &lookupStub{partial: &Partial{
		BeneficiaryName: "Jean Dupont",
		City:            "Lausanne",
	}}

	resolved := newTestResolver(stub).Resolve(context.Background(), "m1")

	assert.Equal(t, "Jean Dupont", resolved.BeneficiaryName)
	assert.Equal(t, "Lausanne", resolved.City)
	assert.Equal(t, testFallback.Address, resolved.Address)
	assert.Equal(t, testFallback.PostalCode, resolved.PostalCode)
	assert.Equal(t, testFallback.IBAN, resolved.IBAN)
}

func TestResolve_UnknownMerchant(t *testing.T) {
	stub := &lookupStub{partial: nil}

	resolved := newTestResolver(stub).Resolve(context.Background(), "nobody")

	assert.Equal(t, testFallback, resolved)
	assert.NotEmpty(t, resolved.BeneficiaryName)
	assert.NotEmpty(t, resolved.IBAN)
}

func TestResolve_LookupErrorDegradesToFallback(t *testing.T) {
	stub := &lookupStub{err: errors.New("store unavailable")}

	resolved := newTestResolver(stub).Resolve(context.Background(), "m1")

	assert.Equal(t, testFallback, resolved)
}

func TestResolve_NamelessProfileTreatedAsMiss(t *testing.T) {
	stub := &lookupStub{partial: &Partial{Address: "Somewhere 1", IBAN: "CH9300762011623852957"}}

	resolved := newTestResolver(stub).Resolve(context.Background(), "m1")

	assert.Equal(t, testFallback, resolved)
}

func TestResolve_EmptyMerchantIDSkipsLookup(t *testing.T) {
	stub := &lookupStub{partial: &Partial{BeneficiaryName: "Jean Dupont"}}

	resolved := newTestResolver(stub).Resolve(context.Background(), "")

	assert.Equal(t, testFallback, resolved)
	assert.Zero(t, stub.calls)
}

func TestResolve_Idempotent(t *testing.T) {
	stub := &lookupStub{partial: &Partial{
		BeneficiaryName: "Jean Dupont",
		PostalCode:      "1204",
	}}
	resolver := newTestResolver(stub)

	first := resolver.Resolve(context.Background(), "m1")
	second := resolver.Resolve(context.Background(), "m1")

	assert.Equal(t, first, second)
}

func TestNewResolver_DefaultsCountryAndCanonicalizesFallback(t *testing.T) {
	resolver := NewResolver(nil, Profile{
		BeneficiaryName: "Maria Petronio",
		IBAN:            "ch15 0024 3243 fs15 0247 2",
	}, 0, slog.Default())

	resolved := resolver.Resolve(context.Background(), "m1")

	assert.Equal(t, "CH", resolved.Country)
	assert.Equal(t, "CH1500243243FS1502472", resolved.IBAN)
}
