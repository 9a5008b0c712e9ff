// Package memory is an in-process implementation of every repository port.
// It backs local runs without Postgres and the service and HTTP tests.
package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tradelens/internal/domain"
	"tradelens/internal/domain/intelligence"
	"tradelens/internal/domain/matching"
	"tradelens/internal/ports"
)

var (
	_ ports.IngestRepository       = (*Store)(nil)
	_ ports.SearchRepository       = (*Store)(nil)
	_ ports.IntelligenceRepository = (*Store)(nil)
	_ ports.EnrichmentCache        = (*Store)(nil)
	_ ports.RefreshQueue           = (*Store)(nil)
	_ ports.CRMRepository          = (*Store)(nil)
	_ ports.Pinger                 = (*Store)(nil)
	_ ports.ContactProvider        = (*Provider)(nil)
)

type jobRow struct {
	job    domain.RefreshJob
	status string // queued|running|completed|failed
	reason string
}

// Store is safe for concurrent use.
type Store struct {
	mu sync.Mutex

	companies map[string]*domain.CompanyProfile // by id
	byKey     map[string]string                 // company key -> id
	ocean     []domain.OceanShipment
	air       []domain.AirShipment
	contacts  []domain.EnrichedContact
	cache     map[domain.CacheKey]*domain.CacheEntry
	jobs      []*jobRow
	crm       map[string]*domain.CRMCompany // by company key

	now     func() time.Time
	pingErr error
}

func New() *Store {
	return &Store{
		companies: map[string]*domain.CompanyProfile{},
		byKey:     map[string]string{},
		cache:     map[domain.CacheKey]*domain.CacheEntry{},
		crm:       map[string]*domain.CRMCompany{},
		now:       time.Now,
	}
}

// WithClock replaces the time source.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// WithPingError makes Ping fail with err.
func (s *Store) WithPingError(err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pingErr = err
	return s
}

func (s *Store) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pingErr
}

// companyFor returns the profile keyed by raw's CompanyKey, creating it on
// first sighting. Callers hold s.mu.
func (s *Store) companyFor(raw string) *domain.CompanyProfile {
	key := matching.CompanyKey(raw)
	if id, ok := s.byKey[key]; ok {
		return s.companies[id]
	}
	now := s.now().UTC()
	c := &domain.CompanyProfile{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(raw),
		NormalizedName: matching.NormalizeCompanyName(raw),
		TradeVolume:    decimal.Zero,
		Status:         domain.CompanyStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.companies[c.ID] = c
	s.byKey[key] = c.ID
	return c
}

func (s *Store) IngestOcean(_ context.Context, in domain.OceanShipment, best ports.BestMatchFunc) (domain.OceanShipment, domain.CompanyProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.companyFor(in.CompanyName)
	in.ID = uuid.NewString()
	in.CompanyID = c.ID
	in.CreatedAt = s.now().UTC()

	probe := oceanRecord(in)
	var cands []matching.Record
	for _, a := range s.air {
		r := airRecord(a, s.companies[a.CompanyID])
		if matching.Pairable(probe, r) {
			cands = append(cands, r)
		}
	}
	res, _ := best(probe, cands)

	s.ocean = append(s.ocean, in)
	c.ObserveShipment(domain.ModeOcean, res.Score, in.Value)
	c.UpdatedAt = s.now().UTC()
	s.raisePartners(domain.ModeOcean, best.ByCompany(probe, cands, c.ID))
	return in, *c, nil
}

func (s *Store) IngestAir(_ context.Context, in domain.AirShipment, best ports.BestMatchFunc) (domain.AirShipment, domain.CompanyProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.companyFor(in.CompanyName)
	in.ID = uuid.NewString()
	in.CompanyID = c.ID
	in.CreatedAt = s.now().UTC()

	probe := airRecord(in, c)
	var cands []matching.Record
	for _, o := range s.ocean {
		r := oceanRecord(o)
		r.CompanyName = s.companies[o.CompanyID].Name
		if matching.Pairable(probe, r) {
			cands = append(cands, r)
		}
	}
	res, _ := best(probe, cands)

	s.air = append(s.air, in)
	c.ObserveShipment(domain.ModeAir, res.Score, in.Value)
	c.UpdatedAt = s.now().UTC()
	s.raisePartners(domain.ModeAir, best.ByCompany(probe, cands, c.ID))
	return in, *c, nil
}

// raisePartners folds a new shipment of mode into the profiles whose
// opposite-stream shipments it paired with. Callers hold s.mu.
func (s *Store) raisePartners(mode domain.Mode, scores map[string]int) {
	for id, score := range scores {
		p, ok := s.companies[id]
		if !ok {
			continue
		}
		p.ObserveCrossMatch(mode, score)
		p.UpdatedAt = s.now().UTC()
	}
}

func oceanRecord(o domain.OceanShipment) matching.Record {
	return matching.Record{CompanyID: o.CompanyID, CompanyName: o.CompanyName, HSCode: o.HSCode, PostalCode: deref(o.DestinationZip), Locality: deref(o.DestinationCity)}
}

func airRecord(a domain.AirShipment, c *domain.CompanyProfile) matching.Record {
	name := a.CompanyName
	if c != nil {
		name = c.Name
	}
	return matching.Record{CompanyID: a.CompanyID, CompanyName: name, HSCode: a.HSCode, PostalCode: deref(a.ArrivalZip), Locality: deref(a.ArrivalCity)}
}

func (s *Store) SearchShipments(_ context.Context, f ports.ShipmentFilter) ([]ports.ShipmentItem, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []ports.ShipmentItem
	if f.Mode == domain.ModeOcean || f.Mode == domain.ModeAll || f.Mode == "" {
		for _, o := range s.ocean {
			it := ports.ShipmentItem{
				ID: o.ID, Mode: domain.ModeOcean, CompanyID: o.CompanyID, CompanyName: s.companies[o.CompanyID].Name,
				HSCode: o.HSCode, Commodity: o.Commodity, OriginCountry: o.OriginCountry, DestinationCountry: o.DestinationCountry,
				DestinationCity: o.DestinationCity, DestinationZip: o.DestinationZip, Value: o.Value, WeightKg: o.WeightKg,
				Carrier: o.Carrier, ShipmentDate: o.ShipmentDate,
			}
			if s.matches(f, it) {
				items = append(items, it)
			}
		}
	}
	if f.Mode == domain.ModeAir || f.Mode == domain.ModeAll || f.Mode == "" {
		for _, a := range s.air {
			it := ports.ShipmentItem{
				ID: a.ID, Mode: domain.ModeAir, CompanyID: a.CompanyID, CompanyName: s.companies[a.CompanyID].Name,
				HSCode: a.HSCode, Commodity: a.Commodity, OriginCountry: a.OriginCountry, DestinationCountry: a.DestinationCountry,
				DestinationCity: a.ArrivalCity, DestinationZip: a.ArrivalZip, Value: a.Value, WeightKg: a.WeightKg,
				Carrier: a.Carrier, ShipmentDate: a.ShipmentDate,
			}
			if s.matches(f, it) {
				items = append(items, it)
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].ShipmentDate.Equal(items[j].ShipmentDate) {
			return items[i].ShipmentDate.After(items[j].ShipmentDate)
		}
		return items[i].ID < items[j].ID
	})
	total := len(items)
	return page(items, f.Limit, f.Offset), total, nil
}

func (s *Store) matches(f ports.ShipmentFilter, it ports.ShipmentItem) bool {
	if f.Company != "" {
		c := s.companies[it.CompanyID]
		q := strings.ToUpper(f.Company)
		nq := matching.NormalizeCompanyName(f.Company)
		if !strings.Contains(strings.ToUpper(c.Name), q) && (nq == "" || !strings.Contains(c.NormalizedName, nq)) {
			return false
		}
	}
	if f.OriginCountry != "" && !strings.EqualFold(f.OriginCountry, it.OriginCountry) {
		return false
	}
	if f.DestinationCountry != "" && !strings.EqualFold(f.DestinationCountry, it.DestinationCountry) {
		return false
	}
	if f.Commodity != "" && !strings.Contains(strings.ToUpper(it.Commodity), strings.ToUpper(f.Commodity)) {
		return false
	}
	if f.HSCode != "" && !strings.HasPrefix(it.HSCode, f.HSCode) {
		return false
	}
	return true
}

// activeCompanies returns active profiles ordered by name then id. Callers
// hold s.mu.
func (s *Store) activeCompanies() []domain.CompanyProfile {
	out := make([]domain.CompanyProfile, 0, len(s.companies))
	for _, c := range s.companies {
		if c.Status == domain.CompanyStatusActive {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Store) CompanyIntelligence(_ context.Context, companyID string) (intelligence.CompanyIntelligence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[companyID]
	if !ok || c.Status != domain.CompanyStatusActive {
		return intelligence.CompanyIntelligence{}, domain.ErrNotFound
	}
	rows := intelligence.Rollup([]domain.CompanyProfile{*c}, s.ocean, s.air, s.contacts)
	return rows[0], nil
}

func (s *Store) ListCompanyIntelligence(_ context.Context, limit, offset int) ([]intelligence.CompanyIntelligence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := intelligence.Rollup(s.activeCompanies(), s.ocean, s.air, s.contacts)
	return page(rows, limit, offset), nil
}

func (s *Store) ListMatches(_ context.Context, f ports.MatchFilter) ([]ports.MatchCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ports.MatchCandidate
	var raw []int
	for _, o := range s.ocean {
		for _, a := range s.air {
			if f.CompanyID != "" && o.CompanyID != f.CompanyID && a.CompanyID != f.CompanyID {
				continue
			}
			or := oceanRecord(o)
			or.CompanyName = s.companies[o.CompanyID].Name
			ar := airRecord(a, s.companies[a.CompanyID])
			if !matching.Pairable(or, ar) {
				continue
			}
			res := matching.Score(or, ar)
			if f.MinTier != "" && !res.Tier.AtLeast(f.MinTier) {
				continue
			}
			out = append(out, ports.MatchCandidate{
				OceanShipmentID: o.ID, AirShipmentID: a.ID,
				OceanCompanyID: o.CompanyID, AirCompanyID: a.CompanyID,
				OceanCompany: or.CompanyName, AirCompany: ar.CompanyName,
				HSCode: o.HSCode, Score: res.Score, Tier: res.Tier,
			})
			raw = append(raw, res.RawScore)
		}
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := out[idx[i]], out[idx[j]]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return raw[idx[i]] > raw[idx[j]]
	})
	sorted := make([]ports.MatchCandidate, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}
	return page(sorted, f.Limit, 0), nil
}

func (s *Store) Lookup(_ context.Context, key domain.CacheKey) (domain.CacheEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.cache[key]
	if !ok {
		return domain.CacheEntry{}, false, nil
	}
	now := s.now().UTC()
	stored.AccessCount++
	stored.LastAccessedAt = &now
	e := *stored
	e.Contacts = append([]domain.EnrichedContact(nil), e.Contacts...)
	return e, true, nil
}

func (s *Store) Store(_ context.Context, entry domain.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := entry.CompanyName
	if name == "" {
		name = entry.Key.CompanyName
	}
	c := s.companyFor(name)
	contacts := make([]domain.EnrichedContact, len(entry.Contacts))
	for i, ct := range entry.Contacts {
		if ct.ID == "" {
			ct.ID = uuid.NewString()
		}
		ct.CompanyID = c.ID
		ct.Locator = entry.Key.Locator
		if ct.CreatedAt.IsZero() {
			ct.CreatedAt = entry.CachedAt
		}
		contacts[i] = ct
	}

	// Replace what this entry previously attached to the company.
	kept := s.contacts[:0]
	for _, ct := range s.contacts {
		if ct.CompanyID == c.ID && ct.Locator == entry.Key.Locator {
			continue
		}
		kept = append(kept, ct)
	}
	s.contacts = append(kept, contacts...)

	if prev, ok := s.cache[entry.Key]; ok {
		entry.AccessCount = prev.AccessCount
		entry.LastAccessedAt = prev.LastAccessedAt
	}
	entry.Contacts = contacts
	s.cache[entry.Key] = &entry
	return nil
}

func (s *Store) EnqueueRefresh(_ context.Context, job domain.RefreshJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.job.Key == job.Key && (j.status == "queued" || j.status == "running") {
			return nil
		}
	}
	job.ID = uuid.NewString()
	s.jobs = append(s.jobs, &jobRow{job: job, status: "queued"})
	return nil
}

func (s *Store) ClaimNext(context.Context) (domain.RefreshJob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.status == "queued" {
			j.status = "running"
			return j.job, true, nil
		}
	}
	return domain.RefreshJob{}, false, nil
}

func (s *Store) MarkCompleted(_ context.Context, jobID string) error {
	return s.finish(jobID, "completed", "")
}

func (s *Store) MarkFailed(_ context.Context, jobID string, reason string) error {
	return s.finish(jobID, "failed", reason)
}

func (s *Store) finish(jobID, status, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.job.ID == jobID {
			j.status, j.reason = status, reason
			return nil
		}
	}
	return domain.ErrNotFound
}

// PendingRefreshes counts queued or running refresh jobs.
func (s *Store) PendingRefreshes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, j := range s.jobs {
		if j.status == "queued" || j.status == "running" {
			n++
		}
	}
	return n
}

func (s *Store) AddCompany(_ context.Context, name, normalized string, metadata json.RawMessage) (domain.CRMCompany, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := matching.CompanyKey(name)
	if c, ok := s.crm[key]; ok {
		return *c, false, nil
	}
	now := s.now().UTC()
	if len(metadata) == 0 {
		metadata = json.RawMessage(`{}`)
	}
	c := &domain.CRMCompany{
		ID:             uuid.NewString(),
		CompanyName:    strings.TrimSpace(name),
		NormalizedName: normalized,
		Metadata:       append(json.RawMessage(nil), metadata...),
		Status:         "new",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.crm[key] = c
	return *c, true, nil
}

func page[T any](rows []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
