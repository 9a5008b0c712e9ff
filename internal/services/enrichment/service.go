package enrichment

import (
	"context"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"tradelens/internal/domain"
	"tradelens/internal/domain/matching"
	"tradelens/internal/metrics"
	"tradelens/internal/ports"
)

// Result sources besides the provider's own name.
const (
	SourceCache      = "cache"
	SourceCacheStale = "cache_stale"
	SourceFailed     = "failed"
)

const (
	DefaultTTL   = 30 * 24 * time.Hour
	defaultLimit = 10
	maxLimit     = 100
)

type Request struct {
	CompanyName string
	PostalCode  string
	Domain      string
	Limit       int
}

type Result struct {
	Success  bool
	Source   string
	Contacts []domain.EnrichedContact
	CachedAt *time.Time
	Error    string
}

type Service struct {
	cache    ports.EnrichmentCache
	queue    ports.RefreshQueue
	provider ports.ContactProvider
	metrics  *metrics.Metrics
	log      *zap.Logger
	ttl      time.Duration
	now      func() time.Time
}

type Option func(*Service)

// WithTTL sets the freshness window of cache entries.
func WithTTL(ttl time.Duration) Option { return func(s *Service) { s.ttl = ttl } }

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithRefreshQueue hands stale entries to background workers. Without a queue
// stale entries are refreshed inline.
func WithRefreshQueue(q ports.RefreshQueue) Option { return func(s *Service) { s.queue = q } }

func New(cache ports.EnrichmentCache, provider ports.ContactProvider, m *metrics.Metrics, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		cache:    cache,
		provider: provider,
		metrics:  m,
		log:      log.Named("enrichment"),
		ttl:      DefaultTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key validates a request and derives its cache key. The postal code wins
// over the domain when both are present.
func Key(req Request) (domain.CacheKey, error) {
	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		return domain.CacheKey{}, domain.Invalid("companyName", "is required")
	}
	key := domain.CacheKey{CompanyName: matching.CompanyKey(name)}
	if zip := strings.ToUpper(strings.TrimSpace(req.PostalCode)); zip != "" {
		key.Locator = zip
		return key, nil
	}
	if strings.TrimSpace(req.Domain) == "" {
		return domain.CacheKey{}, domain.Invalid("postalCode", "postal code or domain is required")
	}
	host, err := RegistrableDomain(req.Domain)
	if err != nil {
		return domain.CacheKey{}, domain.Invalid("domain", err.Error())
	}
	key.Locator = host
	return key, nil
}

// RegistrableDomain reduces a domain or URL to its eTLD+1, e.g.
// "https://shop.acme.co.uk/about" becomes "acme.co.uk".
func RegistrableDomain(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	host := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))
	if host == "" {
		return "", domain.Invalid("domain", "has no host")
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		registrable = host
	}
	return registrable, nil
}

// Enrich returns contacts for a company, preferring the cache. With a refresh
// queue a stale entry is served immediately and refreshed in the background;
// without one it is refreshed inline and served only if the provider fails.
// Provider failures are reported in the result, not as errors; the only error
// is a validation error.
func (s *Service) Enrich(ctx context.Context, req Request) (Result, error) {
	key, err := Key(req)
	if err != nil {
		return Result{}, err
	}

	entry, found, err := s.cache.Lookup(ctx, key)
	if err != nil {
		s.log.Warn("cache lookup failed, treating as miss", zap.String("company", key.CompanyName), zap.Error(err))
		found = false
	}
	if found {
		cachedAt := entry.CachedAt
		if entry.Fresh(s.now(), s.ttl) {
			s.metrics.CacheLookup(metrics.CacheFresh)
			return Result{Success: true, Source: SourceCache, Contacts: entry.Contacts, CachedAt: &cachedAt}, nil
		}
		s.metrics.CacheLookup(metrics.CacheStale)
		stale := Result{Success: true, Source: SourceCacheStale, Contacts: entry.Contacts, CachedAt: &cachedAt}
		if s.queue != nil {
			s.requestRefresh(ctx, domain.RefreshJob{Key: key, CompanyName: entry.CompanyName})
			return stale, nil
		}
		fresh, err := s.fetch(ctx, key, refreshName(entry.CompanyName, key), req.Limit)
		if err != nil {
			return stale, nil
		}
		return Result{Success: true, Source: fresh.Source, Contacts: fresh.Contacts, CachedAt: &fresh.CachedAt}, nil
	}
	s.metrics.CacheLookup(metrics.CacheMiss)

	stored, err := s.fetch(ctx, key, strings.TrimSpace(req.CompanyName), req.Limit)
	if err != nil {
		return Result{Success: false, Source: SourceFailed, Contacts: []domain.EnrichedContact{}, Error: err.Error()}, nil
	}
	return Result{Success: true, Source: stored.Source, Contacts: stored.Contacts, CachedAt: &stored.CachedAt}, nil
}

// Refresh re-fetches a cache entry from the provider regardless of its age.
func (s *Service) Refresh(ctx context.Context, job domain.RefreshJob) error {
	_, err := s.fetch(ctx, job.Key, refreshName(job.CompanyName, job.Key), 0)
	return err
}

// refreshName prefers the caller's spelling stored with the entry. Old jobs
// without one fall back to the normalized key.
func refreshName(stored string, key domain.CacheKey) string {
	if name := strings.TrimSpace(stored); name != "" {
		return name
	}
	return strings.TrimPrefix(key.CompanyName, "~")
}

func (s *Service) requestRefresh(ctx context.Context, job domain.RefreshJob) {
	if err := s.queue.EnqueueRefresh(ctx, job); err != nil {
		s.log.Warn("refresh enqueue failed", zap.String("company", job.Key.CompanyName), zap.Error(err))
		return
	}
	s.metrics.RefreshEnqueued()
}

func (s *Service) fetch(ctx context.Context, key domain.CacheKey, companyName string, limit int) (domain.CacheEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	q := ports.ContactQuery{CompanyName: companyName, Limit: limit}
	if strings.Contains(key.Locator, ".") {
		q.Domain = key.Locator
	} else {
		q.PostalCode = key.Locator
	}

	start := time.Now()
	res, err := s.provider.FindContacts(ctx, q)
	s.metrics.ProviderCall(s.provider.Name(), err, time.Since(start))
	if err != nil {
		s.log.Warn("enrichment provider failed",
			zap.String("provider", s.provider.Name()),
			zap.String("company", companyName),
			zap.Error(err))
		return domain.CacheEntry{}, err
	}

	source := res.Source
	if source == "" {
		source = s.provider.Name()
	}
	for i := range res.Contacts {
		if res.Contacts[i].Source == "" {
			res.Contacts[i].Source = source
		}
	}
	entry := domain.CacheEntry{
		Key:         key,
		CompanyName: companyName,
		Contacts:    res.Contacts,
		Source:      source,
		Cost:        res.Cost,
		CachedAt:    s.now().UTC(),
	}
	if err := s.cache.Store(ctx, entry); err != nil {
		// The caller still gets the contacts; the next lookup will miss.
		s.log.Error("cache write failed", zap.String("company", companyName), zap.Error(err))
	}
	if entry.Contacts == nil {
		entry.Contacts = []domain.EnrichedContact{}
	}
	return entry, nil
}
