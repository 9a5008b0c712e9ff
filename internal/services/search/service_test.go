package search_test

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
	"tradelens/internal/services/ingest"
	"tradelens/internal/services/search"
)

func seed(ctx context.Context, store *memory.Store) {
	svc := ingest.New(store, metrics.New(), zap.NewNop())
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	_, _, err := svc.IngestOcean(ctx, domain.OceanShipment{
		CompanyName: "TechGlobal Solutions Inc", HSCode: "847160", Commodity: "Computer parts",
		OriginCountry: "CN", DestinationCountry: "US", Value: decimal.NewFromInt(1000), WeightKg: decimal.NewFromInt(10),
		ShipmentDate: day(1),
	})
	So(err, ShouldBeNil)
	_, _, err = svc.IngestAir(ctx, domain.AirShipment{
		CompanyName: "TechGlobal Solutions", HSCode: "847130", Commodity: "Laptops",
		OriginCountry: "TW", DestinationCountry: "US", Value: decimal.NewFromInt(500), WeightKg: decimal.NewFromInt(2),
		ShipmentDate: day(3),
	})
	So(err, ShouldBeNil)
	_, _, err = svc.IngestAir(ctx, domain.AirShipment{
		CompanyName: "Nordic Coffee AB", HSCode: "090111", Commodity: "Green coffee",
		OriginCountry: "BR", DestinationCountry: "SE", Value: decimal.NewFromInt(200), WeightKg: decimal.NewFromInt(90),
		ShipmentDate: day(2),
	})
	So(err, ShouldBeNil)
}

func TestSearch(t *testing.T) {
	Convey("Given shipments in both streams", t, func() {
		ctx := context.Background()
		store := memory.New()
		seed(ctx, store)
		svc := search.New(store)

		Convey("A company search spans both modes, newest first", func() {
			res, err := svc.Search(ctx, search.Filters{Company: "techglobal"})
			So(err, ShouldBeNil)
			So(res.Total, ShouldEqual, 2)
			So(res.Items[0].Mode, ShouldEqual, domain.ModeAir)
			So(res.Items[1].Mode, ShouldEqual, domain.ModeOcean)
		})

		Convey("Mode restricts the stream", func() {
			res, err := svc.Search(ctx, search.Filters{Company: "techglobal", Mode: "OCEAN"})
			So(err, ShouldBeNil)
			So(res.Total, ShouldEqual, 1)
			So(res.Items[0].Mode, ShouldEqual, domain.ModeOcean)
		})

		Convey("HS code filters by prefix", func() {
			res, err := svc.Search(ctx, search.Filters{HSCode: "8471"})
			So(err, ShouldBeNil)
			So(res.Total, ShouldEqual, 2)

			res, err = svc.Search(ctx, search.Filters{HSCode: "0901.11"})
			So(err, ShouldBeNil)
			So(res.Total, ShouldEqual, 1)
			So(res.Items[0].CompanyName, ShouldEqual, "Nordic Coffee AB")
		})

		Convey("Countries match case-insensitively", func() {
			res, err := svc.Search(ctx, search.Filters{DestinationCountry: "us", OriginCountry: "tw"})
			So(err, ShouldBeNil)
			So(res.Total, ShouldEqual, 1)
			So(res.Items[0].Commodity, ShouldEqual, "Laptops")
		})

		Convey("Total counts every match while items honor the page", func() {
			res, err := svc.Search(ctx, search.Filters{DestinationCountry: "US", Limit: 1, Offset: 1})
			So(err, ShouldBeNil)
			So(res.Total, ShouldEqual, 2)
			So(res.Items, ShouldHaveLength, 1)
			So(res.Items[0].Mode, ShouldEqual, domain.ModeOcean)
		})

		Convey("No hits is an empty list, not nil", func() {
			res, err := svc.Search(ctx, search.Filters{Commodity: "bananas"})
			So(err, ShouldBeNil)
			So(res.Total, ShouldEqual, 0)
			So(res.Items, ShouldNotBeNil)
			So(res.Items, ShouldBeEmpty)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Search filters are validated", t, func() {
		bad := []search.Filters{
			{},
			{Mode: "air"},
			{Company: "acme", Mode: "rail"},
			{Company: "acme", Limit: 201},
			{Company: "acme", Limit: -1},
			{Company: "acme", Offset: -1},
			{HSCode: "84ab"},
		}
		for _, f := range bad {
			_, err := search.Validate(f)
			So(errors.Is(err, domain.ErrValidation), ShouldBeTrue)
		}

		f, err := search.Validate(search.Filters{Company: " acme ", OriginCountry: "cn"})
		So(err, ShouldBeNil)
		So(f.Mode, ShouldEqual, domain.ModeAll)
		So(f.Limit, ShouldEqual, search.DefaultLimit)
		So(f.Company, ShouldEqual, "acme")
		So(f.OriginCountry, ShouldEqual, "CN")
	})
}
