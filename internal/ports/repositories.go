package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"tradelens/internal/domain"
	"tradelens/internal/domain/intelligence"
	"tradelens/internal/domain/matching"
)

// IngestRepository persists shipments and keeps match flags current on the
// owning company and on every company whose shipments pair with the new one.
// Each Ingest call is one atomic unit of work.
type IngestRepository interface {
	IngestOcean(ctx context.Context, s domain.OceanShipment, scorer BestMatchFunc) (domain.OceanShipment, domain.CompanyProfile, error)
	IngestAir(ctx context.Context, s domain.AirShipment, scorer BestMatchFunc) (domain.AirShipment, domain.CompanyProfile, error)
}

// BestMatchFunc scores a freshly ingested record against opposite-modality
// candidates. The repository supplies the candidates.
type BestMatchFunc func(probe matching.Record, candidates []matching.Record) (matching.Result, bool)

// ByCompany scores probe against each candidate on its own and keeps the best
// score per candidate CompanyID. Candidates owned by skip are left out.
func (f BestMatchFunc) ByCompany(probe matching.Record, candidates []matching.Record, skip string) map[string]int {
	out := map[string]int{}
	for _, c := range candidates {
		if c.CompanyID == "" || c.CompanyID == skip {
			continue
		}
		r, ok := f(probe, []matching.Record{c})
		if !ok {
			continue
		}
		if prev, seen := out[c.CompanyID]; !seen || r.Score > prev {
			out[c.CompanyID] = r.Score
		}
	}
	return out
}

// ShipmentFilter narrows a shipment search. Empty fields are ignored.
type ShipmentFilter struct {
	Company            string
	OriginCountry      string
	DestinationCountry string
	Commodity          string
	HSCode             string
	Mode               domain.Mode
	Limit              int
	Offset             int
}

// ShipmentItem is a search hit from either stream.
type ShipmentItem struct {
	ID                 string
	Mode               domain.Mode
	CompanyID          string
	CompanyName        string
	HSCode             string
	Commodity          string
	OriginCountry      string
	DestinationCountry string
	DestinationCity    *string
	DestinationZip     *string
	Value              decimal.Decimal
	WeightKg           decimal.Decimal
	Carrier            *string
	ShipmentDate       time.Time
}

// SearchRepository reads both shipment streams.
type SearchRepository interface {
	SearchShipments(ctx context.Context, f ShipmentFilter) (items []ShipmentItem, total int, err error)
}

// MatchFilter narrows cross-modal candidate listings.
type MatchFilter struct {
	CompanyID string
	MinTier   matching.Tier
	Limit     int
}

// MatchCandidate pairs one ocean and one air shipment.
type MatchCandidate struct {
	OceanShipmentID string
	AirShipmentID   string
	OceanCompanyID  string
	AirCompanyID    string
	OceanCompany    string
	AirCompany      string
	HSCode          string
	Score           int
	Tier            matching.Tier
}

// IntelligenceRepository exposes the per-company rollup.
type IntelligenceRepository interface {
	CompanyIntelligence(ctx context.Context, companyID string) (intelligence.CompanyIntelligence, error)
	ListCompanyIntelligence(ctx context.Context, limit, offset int) ([]intelligence.CompanyIntelligence, error)
	ListMatches(ctx context.Context, f MatchFilter) ([]MatchCandidate, error)
}

// EnrichmentCache stores provider results keyed by company and locator.
type EnrichmentCache interface {
	// Lookup returns found=false on a miss. Every hit bumps the access counter.
	Lookup(ctx context.Context, key domain.CacheKey) (entry domain.CacheEntry, found bool, err error)
	// Store writes contacts back with a fresh timestamp and attaches them to
	// the company profile named by the key.
	Store(ctx context.Context, entry domain.CacheEntry) error
}

// RefreshQueue tracks async re-enrichment of stale cache entries.
type RefreshQueue interface {
	// EnqueueRefresh is a no-op when a job for job.Key is already pending.
	EnqueueRefresh(ctx context.Context, job domain.RefreshJob) error
	ClaimNext(ctx context.Context) (job domain.RefreshJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
}

// CRMRepository upserts CRM pipeline entries by normalized company name.
type CRMRepository interface {
	AddCompany(ctx context.Context, name, normalized string, metadata json.RawMessage) (c domain.CRMCompany, created bool, err error)
}

// Pinger reports store liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}
