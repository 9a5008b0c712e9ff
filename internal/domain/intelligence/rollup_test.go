package intelligence_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"tradelens/internal/domain"
	"tradelens/internal/domain/intelligence"
)

func strp(s string) *string { return &s }

func TestRollup(t *testing.T) {
	Convey("Given two companies where only one has activity", t, func() {
		companies := []domain.CompanyProfile{
			{ID: "c1", Name: "TechGlobal Solutions Inc", NormalizedName: "TECHGLOBAL SOLUTIONS", AirMatch: true, AirMatchScore: 10},
			{ID: "c2", Name: "Quiet Imports LLC", NormalizedName: "QUIET IMPORTS"},
		}
		jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		mar := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		ocean := []domain.OceanShipment{
			{CompanyID: "c1", HSCode: "8471600000", Value: decimal.NewFromInt(1000), ShipmentDate: jan},
			{CompanyID: "c1", HSCode: "8471600000", Value: decimal.NewFromInt(500), ShipmentDate: jan.AddDate(0, 0, 3)},
			{CompanyID: "ghost", HSCode: "0101", Value: decimal.NewFromInt(9)},
		}
		air := []domain.AirShipment{
			{CompanyID: "c1", HSCode: "8471300000", Value: decimal.RequireFromString("250.50"), ShipmentDate: mar},
		}
		contacts := []domain.EnrichedContact{
			{CompanyID: "c1", Email: strp("a@techglobal.com")},
			{CompanyID: "c1", LinkedInURL: strp("https://linkedin.com/in/b")},
			{CompanyID: "c1", Email: strp(" "), LinkedInURL: strp("https://linkedin.com/in/c")},
		}

		rows := intelligence.Rollup(companies, ocean, air, contacts)

		Convey("Every company yields exactly one row in input order", func() {
			So(rows, ShouldHaveLength, 2)
			So(rows[0].CompanyID, ShouldEqual, "c1")
			So(rows[1].CompanyID, ShouldEqual, "c2")
		})

		Convey("Counts and values are split per modality", func() {
			r := rows[0]
			So(r.Ocean.Shipments, ShouldEqual, 2)
			So(r.Ocean.TotalValue.String(), ShouldEqual, "1500")
			So(r.Ocean.DistinctHS, ShouldEqual, 1)
			So(r.Air.Shipments, ShouldEqual, 1)
			So(r.TotalShipments, ShouldEqual, 3)
			So(r.TotalValue.String(), ShouldEqual, "1750.5")
			So(*r.Ocean.LastActivity, ShouldEqual, jan.AddDate(0, 0, 3))
			So(*r.LastActivity, ShouldEqual, mar)
			So(r.AirMatchScore, ShouldEqual, 10)
		})

		Convey("Contacts are partitioned by email and LinkedIn presence", func() {
			So(rows[0].Contacts, ShouldResemble, intelligence.ContactStats{Total: 3, WithEmail: 1, WithLinkedIn: 2})
		})

		Convey("The idle company keeps zero counts and nil timestamps", func() {
			r := rows[1]
			So(r.TotalShipments, ShouldEqual, 0)
			So(r.TotalValue.IsZero(), ShouldBeTrue)
			So(r.Ocean.LastActivity, ShouldBeNil)
			So(r.Air.LastActivity, ShouldBeNil)
			So(r.LastActivity, ShouldBeNil)
		})
	})

	Convey("Later picks the later timestamp and tolerates nil", t, func() {
		a := time.Unix(100, 0)
		b := time.Unix(200, 0)
		So(intelligence.Later(nil, nil), ShouldBeNil)
		So(intelligence.Later(&a, nil), ShouldEqual, &a)
		So(*intelligence.Later(&a, &b), ShouldEqual, b)
		So(*intelligence.Later(&b, &a), ShouldEqual, b)
	})
}
