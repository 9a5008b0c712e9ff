package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"tradelens/internal/domain"
)

// ContactQuery is what a provider needs to find people at a company.
type ContactQuery struct {
	CompanyName string
	PostalCode  string
	Domain      string
	Limit       int
}

// ProviderResult is one provider response. Cost is the total charged for the
// call.
type ProviderResult struct {
	Contacts []domain.EnrichedContact
	Cost     decimal.Decimal
	Source   string
}

// ContactProvider is an external enrichment source (Apollo.io and similar).
type ContactProvider interface {
	Name() string
	FindContacts(ctx context.Context, q ContactQuery) (ProviderResult, error)
}
