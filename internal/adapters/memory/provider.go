package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"tradelens/internal/domain"
	"tradelens/internal/ports"
)

// Provider is a canned ContactProvider. With no contacts configured it stands
// in for a real provider when none is configured.
type Provider struct {
	mu       sync.Mutex
	contacts []domain.EnrichedContact
	cost     decimal.Decimal
	err      error
	calls    int
	queries  []ports.ContactQuery
}

func NewProvider(contacts ...domain.EnrichedContact) *Provider {
	return &Provider{contacts: contacts, cost: decimal.Zero}
}

// WithCost sets the cost reported per call.
func (p *Provider) WithCost(cost decimal.Decimal) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cost = cost
	return p
}

// WithContacts replaces the contacts returned by later calls.
func (p *Provider) WithContacts(contacts ...domain.EnrichedContact) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contacts = contacts
	return p
}

// WithError makes subsequent calls fail with err; nil restores success.
func (p *Provider) WithError(err error) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
	return p
}

func (p *Provider) Name() string { return "static" }

func (p *Provider) FindContacts(_ context.Context, q ports.ContactQuery) (ports.ProviderResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.queries = append(p.queries, q)
	if p.err != nil {
		return ports.ProviderResult{}, p.err
	}
	out := append([]domain.EnrichedContact(nil), p.contacts...)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return ports.ProviderResult{Contacts: out, Cost: p.cost, Source: p.Name()}, nil
}

// Calls reports how many times FindContacts ran.
func (p *Provider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// LastQuery returns the most recent query.
func (p *Provider) LastQuery() ports.ContactQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queries) == 0 {
		return ports.ContactQuery{}
	}
	return p.queries[len(p.queries)-1]
}
