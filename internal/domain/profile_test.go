package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"tradelens/internal/domain"
)

func TestObserveShipment(t *testing.T) {
	Convey("Given a fresh company profile", t, func() {
		c := domain.CompanyProfile{TradeVolume: decimal.Zero}

		Convey("An ocean sighting pins the ocean score and raises air evidence", func() {
			c.ObserveShipment(domain.ModeOcean, 6, decimal.NewFromInt(100))
			So(c.OceanMatch, ShouldBeTrue)
			So(c.OceanMatchScore, ShouldEqual, 10)
			So(c.AirMatchScore, ShouldEqual, 6)
			So(c.AirMatch, ShouldBeFalse)
			So(c.TradeVolume.String(), ShouldEqual, "100")

			Convey("Weaker later evidence never lowers a score", func() {
				c.ObserveShipment(domain.ModeOcean, 2, decimal.NewFromInt(50))
				So(c.AirMatchScore, ShouldEqual, 6)
				So(c.TradeVolume.String(), ShouldEqual, "150")
			})

			Convey("Code-level evidence raises the air flag", func() {
				c.ObserveShipment(domain.ModeOcean, 10, decimal.Zero)
				So(c.AirMatchScore, ShouldEqual, 10)
				So(c.AirMatch, ShouldBeTrue)
			})
		})

		Convey("Out of range scores are clamped", func() {
			c.ObserveShipment(domain.ModeAir, 30, decimal.Zero)
			So(c.OceanMatchScore, ShouldEqual, 10)
			c.ObserveShipment(domain.ModeAir, -4, decimal.Zero)
			So(c.OceanMatchScore, ShouldEqual, 10)
		})

		Convey("A later pairing raises the partner modality without touching volume", func() {
			c.ObserveShipment(domain.ModeAir, 0, decimal.NewFromInt(10))
			c.ObserveCrossMatch(domain.ModeOcean, 8)
			So(c.OceanMatchScore, ShouldEqual, 8)
			So(c.OceanMatch, ShouldBeTrue)
			So(c.AirMatchScore, ShouldEqual, 10)
			So(c.TradeVolume.String(), ShouldEqual, "10")

			c.ObserveCrossMatch(domain.ModeOcean, 4)
			So(c.OceanMatchScore, ShouldEqual, 8)
		})
	})
}
