package enrichment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"

	"tradelens/internal/adapters/memory"
	"tradelens/internal/domain"
	"tradelens/internal/metrics"
	"tradelens/internal/services/enrichment"
)

func strp(s string) *string { return &s }

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestEnrich(t *testing.T) {
	Convey("Given an enrichment service over the memory store", t, func() {
		ctx := context.Background()
		clk := &clock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
		store := memory.New().WithClock(clk.now)
		provider := memory.NewProvider(
			domain.EnrichedContact{FullName: "Dana Reyes", Email: strp("dana@techglobal.com"), Confidence: 95},
			domain.EnrichedContact{FullName: "Sam Ko", LinkedInURL: strp("https://linkedin.com/in/samko"), Confidence: 40},
		).WithCost(decimal.RequireFromString("0.10"))
		svc := enrichment.New(store, provider, metrics.New(), zap.NewNop(),
			enrichment.WithClock(clk.now), enrichment.WithRefreshQueue(store))
		req := enrichment.Request{CompanyName: "TechGlobal Solutions Inc", PostalCode: "90045"}

		Convey("A first lookup misses and calls the provider", func() {
			res, err := svc.Enrich(ctx, req)
			So(err, ShouldBeNil)
			So(res.Success, ShouldBeTrue)
			So(res.Source, ShouldEqual, "static")
			So(res.Contacts, ShouldHaveLength, 2)
			So(provider.Calls(), ShouldEqual, 1)
			So(provider.LastQuery().PostalCode, ShouldEqual, "90045")

			Convey("A second lookup within 30 days is served from cache", func() {
				clk.t = clk.t.Add(29 * 24 * time.Hour)
				res, err := svc.Enrich(ctx, enrichment.Request{CompanyName: "techglobal solutions", PostalCode: "90045"})
				So(err, ShouldBeNil)
				So(res.Source, ShouldEqual, enrichment.SourceCache)
				So(res.Contacts, ShouldHaveLength, 2)
				So(provider.Calls(), ShouldEqual, 1)

				entry, found, err := store.Lookup(ctx, domain.CacheKey{CompanyName: "TECHGLOBAL SOLUTIONS", Locator: "90045"})
				So(err, ShouldBeNil)
				So(found, ShouldBeTrue)
				So(entry.AccessCount, ShouldEqual, 2)
				So(entry.Cost.String(), ShouldEqual, "0.1")
			})

			Convey("An entry older than 30 days is served stale and queued for refresh", func() {
				clk.t = clk.t.Add(30*24*time.Hour + time.Second)
				res, err := svc.Enrich(ctx, req)
				So(err, ShouldBeNil)
				So(res.Success, ShouldBeTrue)
				So(res.Source, ShouldEqual, enrichment.SourceCacheStale)
				So(res.Contacts, ShouldHaveLength, 2)
				So(provider.Calls(), ShouldEqual, 1)
				So(store.PendingRefreshes(), ShouldEqual, 1)

				Convey("Repeated stale hits do not queue duplicate refreshes", func() {
					_, _ = svc.Enrich(ctx, req)
					So(store.PendingRefreshes(), ShouldEqual, 1)
				})

				Convey("Refreshing rewrites the entry with a fresh timestamp", func() {
					So(svc.Refresh(ctx, domain.RefreshJob{
						Key:         domain.CacheKey{CompanyName: "TECHGLOBAL SOLUTIONS", Locator: "90045"},
						CompanyName: "TechGlobal Solutions Inc",
					}), ShouldBeNil)
					So(provider.Calls(), ShouldEqual, 2)
					So(provider.LastQuery().CompanyName, ShouldEqual, "TechGlobal Solutions Inc")
					res, _ := svc.Enrich(ctx, req)
					So(res.Source, ShouldEqual, enrichment.SourceCache)
					So(*res.CachedAt, ShouldEqual, clk.t)
				})
			})

			Convey("Enriched contacts are attached to the company profile", func() {
				rows, err := store.ListCompanyIntelligence(ctx, 10, 0)
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Contacts.Total, ShouldEqual, 2)
				So(rows[0].Contacts.WithEmail, ShouldEqual, 1)
				So(rows[0].Contacts.WithLinkedIn, ShouldEqual, 1)
			})
		})

		Convey("Contacts found under different locators both stay on the profile", func() {
			_, err := svc.Enrich(ctx, req)
			So(err, ShouldBeNil)
			provider.WithContacts(domain.EnrichedContact{FullName: "Lee Park", LinkedInURL: strp("https://linkedin.com/in/lpark"), Confidence: 40})
			_, err = svc.Enrich(ctx, enrichment.Request{CompanyName: "TechGlobal Solutions Inc", Domain: "techglobal.com"})
			So(err, ShouldBeNil)

			rows, err := store.ListCompanyIntelligence(ctx, 10, 0)
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 1)
			So(rows[0].Contacts.Total, ShouldEqual, 3)
			So(rows[0].Contacts.WithEmail, ShouldEqual, 1)
			So(rows[0].Contacts.WithLinkedIn, ShouldEqual, 2)
		})

		Convey("Provider failures degrade to an unsuccessful empty result", func() {
			provider.WithError(domain.ErrProviderUnavailable)
			res, err := svc.Enrich(ctx, req)
			So(err, ShouldBeNil)
			So(res.Success, ShouldBeFalse)
			So(res.Source, ShouldEqual, enrichment.SourceFailed)
			So(res.Contacts, ShouldBeEmpty)
			So(res.Error, ShouldContainSubstring, "unavailable")
		})

		Convey("Requests without a company or locator are rejected", func() {
			_, err := svc.Enrich(ctx, enrichment.Request{PostalCode: "90045"})
			So(errors.Is(err, domain.ErrValidation), ShouldBeTrue)
			_, err = svc.Enrich(ctx, enrichment.Request{CompanyName: "Acme"})
			So(errors.Is(err, domain.ErrValidation), ShouldBeTrue)
			So(provider.Calls(), ShouldEqual, 0)
		})
	})
}

func TestEnrichWithoutRefreshQueue(t *testing.T) {
	Convey("Given an enrichment service with no refresh workers", t, func() {
		ctx := context.Background()
		clk := &clock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
		store := memory.New().WithClock(clk.now)
		provider := memory.NewProvider(domain.EnrichedContact{FullName: "Dana Reyes", Confidence: 95})
		svc := enrichment.New(store, provider, metrics.New(), zap.NewNop(), enrichment.WithClock(clk.now))
		req := enrichment.Request{CompanyName: "TechGlobal Solutions Inc", PostalCode: "90045"}

		_, err := svc.Enrich(ctx, req)
		So(err, ShouldBeNil)
		clk.t = clk.t.AddDate(1, 0, 0)

		Convey("A stale entry is refreshed inline", func() {
			res, err := svc.Enrich(ctx, req)
			So(err, ShouldBeNil)
			So(res.Source, ShouldEqual, "static")
			So(*res.CachedAt, ShouldEqual, clk.t)
			So(provider.Calls(), ShouldEqual, 2)
			So(provider.LastQuery().CompanyName, ShouldEqual, "TechGlobal Solutions Inc")
			So(store.PendingRefreshes(), ShouldEqual, 0)

			res, err = svc.Enrich(ctx, req)
			So(err, ShouldBeNil)
			So(res.Source, ShouldEqual, enrichment.SourceCache)
			So(provider.Calls(), ShouldEqual, 2)
		})

		Convey("The stale contacts are served when the provider fails", func() {
			provider.WithError(domain.ErrProviderUnavailable)
			res, err := svc.Enrich(ctx, req)
			So(err, ShouldBeNil)
			So(res.Success, ShouldBeTrue)
			So(res.Source, ShouldEqual, enrichment.SourceCacheStale)
			So(res.Contacts, ShouldHaveLength, 1)
		})
	})
}

func TestKey(t *testing.T) {
	Convey("Cache keys use the normalized company and registrable domain", t, func() {
		k, err := enrichment.Key(enrichment.Request{CompanyName: "Acme, Inc.", Domain: "https://shop.acme.co.uk/about"})
		So(err, ShouldBeNil)
		So(k, ShouldResemble, domain.CacheKey{CompanyName: "ACME", Locator: "acme.co.uk"})

		k, err = enrichment.Key(enrichment.Request{CompanyName: "Acme", PostalCode: " 90045 ", Domain: "acme.com"})
		So(err, ShouldBeNil)
		So(k.Locator, ShouldEqual, "90045")
	})
}
