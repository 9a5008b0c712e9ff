package crm_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"

	"tradelens/internal/adapters/memory"
	"tradelens/internal/domain"
	"tradelens/internal/services/crm"
)

func TestAddCompany(t *testing.T) {
	Convey("Given a CRM service", t, func() {
		ctx := context.Background()
		svc := crm.New(memory.New(), zap.NewNop())

		Convey("The first add creates the company", func() {
			res, err := svc.AddCompany(ctx, "  Acme Corp ", json.RawMessage(`{"owner":"sales"}`))
			So(err, ShouldBeNil)
			So(res.AlreadyExists, ShouldBeFalse)
			So(res.Company.ID, ShouldNotBeEmpty)
			So(res.Company.CompanyName, ShouldEqual, "Acme Corp")
			So(res.Company.NormalizedName, ShouldEqual, "ACME")
			So(string(res.Company.Metadata), ShouldEqual, `{"owner":"sales"}`)

			Convey("Adding a spelling variant reports the existing row", func() {
				again, err := svc.AddCompany(ctx, "ACME, Inc.", nil)
				So(err, ShouldBeNil)
				So(again.AlreadyExists, ShouldBeTrue)
				So(again.Company.ID, ShouldEqual, res.Company.ID)
				So(string(again.Company.Metadata), ShouldEqual, `{"owner":"sales"}`)
			})
		})

		Convey("Missing metadata defaults to an empty object", func() {
			res, err := svc.AddCompany(ctx, "Globex", nil)
			So(err, ShouldBeNil)
			So(string(res.Company.Metadata), ShouldEqual, `{}`)
		})

		Convey("Blank names and malformed metadata are rejected", func() {
			_, err := svc.AddCompany(ctx, " ", nil)
			So(errors.Is(err, domain.ErrValidation), ShouldBeTrue)
			_, err = svc.AddCompany(ctx, "Acme", json.RawMessage(`{"owner":`))
			So(errors.Is(err, domain.ErrValidation), ShouldBeTrue)
		})
	})
}
