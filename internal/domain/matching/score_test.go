package matching_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"tradelens/internal/domain/matching"
)

func TestScore(t *testing.T) {
	Convey("Given an ocean and an air shipment from TechGlobal", t, func() {
		ocean := matching.Record{CompanyName: "TechGlobal Solutions Inc", HSCode: "8471600000", PostalCode: "90045", Locality: "Los Angeles"}
		air := ocean

		Convey("Identical records score 10 and are exact", func() {
			r := matching.Score(ocean, air)
			So(r.Score, ShouldEqual, 10)
			So(r.Tier, ShouldEqual, matching.TierExact)
			So(r.RawScore, ShouldEqual, 10+8+6+4)
		})

		Convey("A different zip stays capped at 10 and drops to high", func() {
			air.PostalCode = "33126"
			r := matching.Score(ocean, air)
			So(r.Score, ShouldEqual, 10)
			So(r.RawScore, ShouldEqual, 10+8+4)
			So(r.Tier, ShouldEqual, matching.TierHigh)
		})

		Convey("Code-only agreement is medium", func() {
			air = matching.Record{CompanyName: "Other Importer", HSCode: "8471600000", PostalCode: "10001", Locality: "New York"}
			r := matching.Score(ocean, air)
			So(r.Score, ShouldEqual, 8)
			So(r.Tier, ShouldEqual, matching.TierMedium)
		})

		Convey("A shared 4-digit heading adds 2 without counting as a code match", func() {
			air = matching.Record{CompanyName: "Other Importer", HSCode: "8471300000", PostalCode: "90045"}
			r := matching.Score(ocean, air)
			So(r.Signals.HSCode, ShouldBeFalse)
			So(r.Signals.HSPrefix, ShouldBeTrue)
			So(r.Score, ShouldEqual, 6+2)
			So(r.Tier, ShouldEqual, matching.TierLow)
		})

		Convey("Locality compares case-insensitively and ignores empty values", func() {
			a := matching.Record{CompanyName: "A", HSCode: "1", Locality: "MIAMI"}
			b := matching.Record{CompanyName: "B", HSCode: "2", Locality: "miami"}
			So(matching.Score(a, b).Score, ShouldEqual, 4)

			a.Locality, b.Locality = "", ""
			So(matching.Score(a, b).Score, ShouldEqual, 0)
			So(matching.Pairable(a, b), ShouldBeFalse)
		})
	})
}

func TestScoreProperties(t *testing.T) {
	Convey("Given a grid of records", t, func() {
		names := []string{"Acme LLC", "acme", "Globex", "", "LLC"}
		codes := []string{"8471600000", "8471300000", "9018", ""}
		zips := []string{"90045", "33126", ""}
		cities := []string{"Miami", "MIAMI", "Austin", ""}

		var recs []matching.Record
		for _, n := range names {
			for _, c := range codes {
				for _, z := range zips {
					for _, l := range cities {
						recs = append(recs, matching.Record{CompanyName: n, HSCode: c, PostalCode: z, Locality: l})
					}
				}
			}
		}

		Convey("Scores are bounded and tiers are consistent", func() {
			for _, a := range recs {
				for _, b := range recs[:40] {
					r := matching.Score(a, b)
					So(r.Score, ShouldBeBetweenOrEqual, 0, 10)
					if r.Tier == matching.TierExact {
						So(r.Score, ShouldBeGreaterThanOrEqualTo, 10)
					}
					if r.Tier == matching.TierLow {
						So(r.Signals.HSCode, ShouldBeFalse)
					}
					if r.Signals.HSCode {
						So(r.Tier.AtLeast(matching.TierMedium), ShouldBeTrue)
					}
				}
			}
		})

		Convey("Making postal codes agree never lowers the score", func() {
			for _, a := range recs {
				b := a
				b.PostalCode = "00000"
				if a.PostalCode == "" {
					continue
				}
				before := matching.Score(a, b)
				b.PostalCode = a.PostalCode
				after := matching.Score(a, b)
				So(after.Score, ShouldBeGreaterThanOrEqualTo, before.Score)
				So(after.RawScore, ShouldBeGreaterThan, before.RawScore)
			}
		})
	})
}

func TestBestAndTiers(t *testing.T) {
	Convey("Best picks the strongest pairable candidate", t, func() {
		probe := matching.Record{CompanyName: "Acme", HSCode: "8471600000", PostalCode: "90045", Locality: "Los Angeles"}
		cands := []matching.Record{
			{CompanyName: "Zeta", HSCode: "0101", Locality: "Boston"},
			{CompanyName: "Beta", HSCode: "8471600000"},
			{CompanyName: "Acme Inc", HSCode: "8471600000", PostalCode: "90045"},
		}
		best, ok := matching.Best(probe, cands)
		So(ok, ShouldBeTrue)
		So(best.Tier, ShouldEqual, matching.TierExact)

		_, ok = matching.Best(probe, cands[:1])
		So(ok, ShouldBeFalse)
	})

	Convey("Location-only pairs are pairable but stay low", t, func() {
		a := matching.Record{CompanyName: "Acme", HSCode: "8471600000", PostalCode: "90045"}
		b := matching.Record{CompanyName: "Globex", HSCode: "9018", PostalCode: "90045"}
		r := matching.Score(a, b)
		So(matching.Pairable(a, b), ShouldBeTrue)
		So(r.Tier, ShouldEqual, matching.TierLow)
		So(r.Signals, ShouldResemble, matching.Signals{Postal: true})
		So(r.Score, ShouldEqual, 6)
	})

	Convey("Tiers order and parse", t, func() {
		So(matching.TierExact.AtLeast(matching.TierHigh), ShouldBeTrue)
		So(matching.TierLow.AtLeast(matching.TierMedium), ShouldBeFalse)
		tier, err := matching.ParseTier(" HIGH ")
		So(err, ShouldBeNil)
		So(tier, ShouldEqual, matching.TierHigh)
		_, err = matching.ParseTier("certain")
		So(err, ShouldNotBeNil)
	})
}
