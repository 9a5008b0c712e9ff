package matching_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"tradelens/internal/domain/matching"
)

func TestNormalizeCompanyName(t *testing.T) {
	Convey("Given raw company names from different sources", t, func() {
		Convey("Legal suffixes are stripped as whole words", func() {
			So(matching.NormalizeCompanyName("Acme Trading LLC"), ShouldEqual, matching.NormalizeCompanyName("Acme Trading"))
			So(matching.NormalizeCompanyName("Acme Trading LLC"), ShouldEqual, "ACME TRADING")
			So(matching.NormalizeCompanyName("Globex Corporation"), ShouldEqual, "GLOBEX")
			So(matching.NormalizeCompanyName("Initech Co. Ltd."), ShouldEqual, "INITECH")
		})

		Convey("Suffix letters inside words are kept", func() {
			So(matching.NormalizeCompanyName("Incline Costco"), ShouldEqual, "INCLINE COSTCO")
		})

		Convey("Punctuation collapses to single spaces", func() {
			So(matching.NormalizeCompanyName("  Smith & Sons,  Inc. "), ShouldEqual, "SMITH SONS")
			So(matching.NormalizeCompanyName("A.B.C Logistics"), ShouldEqual, "A B C LOGISTICS")
		})

		Convey("Empty and suffix-only inputs normalize to empty keys", func() {
			So(matching.NormalizeCompanyName(""), ShouldEqual, "")
			So(matching.NormalizeCompanyName("LLC"), ShouldEqual, "")
			So(matching.NormalizeCompanyName("inc."), ShouldEqual, "")
			So(matching.Matchable(""), ShouldBeFalse)
		})

		Convey("Empty keys never match each other", func() {
			So(matching.SameCompany("LLC", "Inc"), ShouldBeFalse)
			So(matching.SameCompany("", ""), ShouldBeFalse)
			So(matching.SameCompany("TechGlobal Solutions Inc", "techglobal solutions"), ShouldBeTrue)
		})

		Convey("Normalization is idempotent", func() {
			inputs := []string{
				"", "LLC", "Acme Trading LLC", "  Smith & Sons,  Inc. ",
				"Müller GmbH & Co. KG", "co co company", "東京 Trading Co., Ltd.", "a\tb\nc",
			}
			for _, in := range inputs {
				once := matching.NormalizeCompanyName(in)
				So(matching.NormalizeCompanyName(once), ShouldEqual, once)
			}
		})
	})
}

func TestCompanyKey(t *testing.T) {
	Convey("Company keys follow the normalized name", t, func() {
		So(matching.CompanyKey("Acme Trading, LLC"), ShouldEqual, "ACME TRADING")
		So(matching.CompanyKey(" llc "), ShouldEqual, "~LLC")
		So(matching.CompanyKey("Inc"), ShouldNotEqual, matching.CompanyKey("LLC"))
		So(matching.CompanyKey("~Acme Inc"), ShouldEqual, "ACME")
		So(matching.CompanyKey(" ~ Acme"), ShouldEqual, matching.CompanyKey("Acme Inc"))
		So(matching.CompanyKey("~~llc"), ShouldEqual, "~LLC")
		for _, raw := range []string{"Acme Trading, LLC", "llc", "~LLC", "~Acme", " ~ ", ""} {
			once := matching.CompanyKey(raw)
			So(matching.CompanyKey(once), ShouldEqual, once)
		}
	})
}
