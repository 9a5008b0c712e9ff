package postgres

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelens/internal/domain"
	"tradelens/internal/domain/matching"
	"tradelens/internal/ports"
)

// newTestDB migrates a scratch database named by TRADELENS_TEST_DATABASE_URL
// up from empty. Tests are skipped when it is unset.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TRADELENS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TRADELENS_TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	m, err := NewMigrator(url)
	require.NoError(t, err)
	defer m.Close()
	for {
		_, err := m.Down(ctx)
		if err != nil {
			break
		}
	}
	_, err = m.Up(ctx)
	require.NoError(t, err)

	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func strp(s string) *string { return &s }

func TestIngestAndMatch(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	ocean, company, err := db.IngestOcean(ctx, domain.OceanShipment{
		CompanyName: "TechGlobal Solutions Inc", HSCode: "847160", Commodity: "Computer parts",
		OriginCountry: "CN", DestinationCountry: "US", DestinationZip: strp("90045"), DestinationCity: strp("Los Angeles"),
		Value: decimal.NewFromInt(1000), WeightKg: decimal.NewFromInt(5), ShipmentDate: date, TradeMonth: "2024-03",
	}, matching.Best)
	require.NoError(t, err)
	assert.NotEmpty(t, ocean.ID)
	assert.True(t, company.OceanMatch)
	assert.Equal(t, 10, company.OceanMatchScore)
	assert.Equal(t, 0, company.AirMatchScore)

	_, other, err := db.IngestAir(ctx, domain.AirShipment{
		CompanyName: "Pacific Imports", HSCode: "847160", OriginCountry: "CN", DestinationCountry: "US",
		ArrivalZip: strp("90045"), ArrivalCity: strp("los angeles"),
		Value: decimal.NewFromInt(50), WeightKg: decimal.NewFromInt(1), ShipmentDate: date.AddDate(0, 0, 2), TradeMonth: "2024-03",
	}, matching.Best)
	require.NoError(t, err)
	assert.True(t, other.AirMatch)
	assert.True(t, other.OceanMatch)
	assert.Equal(t, 10, other.OceanMatchScore)

	matches, err := db.ListMatches(ctx, ports.MatchFilter{CompanyID: company.ID, MinTier: matching.TierHigh, Limit: 10})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, matching.TierExact, matches[0].Tier)
	assert.Equal(t, 10, matches[0].Score)

	row, err := db.CompanyIntelligence(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.Ocean.Shipments)
	assert.True(t, row.AirMatch)
	assert.Equal(t, 10, row.AirMatchScore)
	assert.Equal(t, "1000", row.TotalValue.String())

	items, total, err := db.SearchShipments(ctx, ports.ShipmentFilter{HSCode: "8471", Mode: domain.ModeAll, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 1)
	assert.Equal(t, domain.ModeAir, items[0].Mode)
}

func TestIngestOrderDoesNotChangeScores(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	ingestPair := func(suffix string, oceanFirst bool) (acmeID, betaID string) {
		ocean := domain.OceanShipment{
			CompanyName: "Acme " + suffix, HSCode: "8471600000", OriginCountry: "CN", DestinationCountry: "US",
			DestinationZip: strp("90045"), Value: decimal.NewFromInt(10), WeightKg: decimal.NewFromInt(1),
			ShipmentDate: date, TradeMonth: "2024-03",
		}
		air := domain.AirShipment{
			CompanyName: "Beta " + suffix, HSCode: "8471600000", OriginCountry: "CN", DestinationCountry: "US",
			ArrivalZip: strp("10001"), Value: decimal.NewFromInt(10), WeightKg: decimal.NewFromInt(1),
			ShipmentDate: date, TradeMonth: "2024-03",
		}
		if oceanFirst {
			_, a, err := db.IngestOcean(ctx, ocean, matching.Best)
			require.NoError(t, err)
			_, b, err := db.IngestAir(ctx, air, matching.Best)
			require.NoError(t, err)
			return a.ID, b.ID
		}
		_, b, err := db.IngestAir(ctx, air, matching.Best)
		require.NoError(t, err)
		_, a, err := db.IngestOcean(ctx, ocean, matching.Best)
		require.NoError(t, err)
		return a.ID, b.ID
	}

	for _, tc := range []struct {
		suffix     string
		oceanFirst bool
	}{{"One", true}, {"Two", false}} {
		acmeID, betaID := ingestPair(tc.suffix, tc.oceanFirst)
		acme, err := db.CompanyIntelligence(ctx, acmeID)
		require.NoError(t, err)
		beta, err := db.CompanyIntelligence(ctx, betaID)
		require.NoError(t, err)

		assert.True(t, acme.AirMatch, tc.suffix)
		assert.GreaterOrEqual(t, acme.AirMatchScore, 8, tc.suffix)
		assert.True(t, beta.OceanMatch, tc.suffix)
		assert.GreaterOrEqual(t, beta.OceanMatchScore, 8, tc.suffix)
	}
}

func TestCacheAndRefreshQueue(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	key := domain.CacheKey{CompanyName: "ACME", Locator: "acme.com"}

	_, found, err := db.Lookup(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	err = db.Store(ctx, domain.CacheEntry{
		Key: key, CompanyName: "Acme Inc", Source: "static", Cost: decimal.RequireFromString("0.2"),
		CachedAt: time.Now().UTC().Truncate(time.Microsecond),
		Contacts: []domain.EnrichedContact{{FullName: "Dana Reyes", Email: strp("dana@acme.com"), Confidence: 95, Source: "static"}},
	})
	require.NoError(t, err)

	entry, found, err := db.Lookup(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, entry.AccessCount)
	require.Len(t, entry.Contacts, 1)
	assert.Equal(t, "dana@acme.com", *entry.Contacts[0].Email)
	assert.Equal(t, "0.2", entry.Cost.String())

	require.NoError(t, db.EnqueueRefresh(ctx, domain.RefreshJob{Key: key, CompanyName: "Acme Inc"}))
	require.NoError(t, db.EnqueueRefresh(ctx, domain.RefreshJob{Key: key, CompanyName: "Acme Inc"}))
	job, found, err := db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, key, job.Key)
	assert.Equal(t, "Acme Inc", job.CompanyName)
	_, found, err = db.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	// A job whose worker vanished is claimable once its lease runs out.
	_, err = db.Pool.Exec(ctx, `UPDATE enrichment_refresh_jobs SET started_at = now() - interval '1 hour' WHERE id = $1`, job.ID)
	require.NoError(t, err)
	reclaimed, found, err := db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, job.ID, reclaimed.ID)
	require.NoError(t, db.MarkCompleted(ctx, job.ID))

	// Entries under another locator keep their own contacts on the profile.
	err = db.Store(ctx, domain.CacheEntry{
		Key: domain.CacheKey{CompanyName: "ACME", Locator: "90045"}, CompanyName: "Acme Inc", Source: "static",
		CachedAt: time.Now().UTC(),
		Contacts: []domain.EnrichedContact{{FullName: "Sam Ko", LinkedInURL: strp("https://linkedin.com/in/samko"), Source: "static"}},
	})
	require.NoError(t, err)
	rows, err := db.ListCompanyIntelligence(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Contacts.Total)
	assert.Equal(t, 1, rows[0].Contacts.WithEmail)

	c, created, err := db.AddCompany(ctx, "Acme Inc", "ACME", json.RawMessage(`{"owner":"sales"}`))
	require.NoError(t, err)
	assert.True(t, created)
	again, created, err := db.AddCompany(ctx, "ACME LLC", "ACME", nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, c.ID, again.ID)
}
