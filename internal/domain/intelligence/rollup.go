// Package intelligence computes per-company trade rollups across both
// shipment streams and the enriched contacts attached to each company.
package intelligence

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tradelens/internal/domain"
)

// ModalStats summarizes one shipment stream for a company.
type ModalStats struct {
	Shipments    int
	TotalValue   decimal.Decimal
	DistinctHS   int
	LastActivity *time.Time
}

type ContactStats struct {
	Total        int
	WithEmail    int
	WithLinkedIn int
}

// CompanyIntelligence is one rollup row.
type CompanyIntelligence struct {
	CompanyID       string
	CompanyName     string
	NormalizedName  string
	AirMatch        bool
	AirMatchScore   int
	OceanMatch      bool
	OceanMatchScore int
	Ocean           ModalStats
	Air             ModalStats
	TotalShipments  int
	TotalValue      decimal.Decimal
	LastActivity    *time.Time
	Contacts        ContactStats
}

type accum struct {
	row     CompanyIntelligence
	oceanHS map[string]struct{}
	airHS   map[string]struct{}
}

// Rollup returns exactly one row per company, in input order. Shipments and
// contacts referencing unknown companies are ignored.
func Rollup(companies []domain.CompanyProfile, ocean []domain.OceanShipment, air []domain.AirShipment, contacts []domain.EnrichedContact) []CompanyIntelligence {
	byID := make(map[string]*accum, len(companies))
	order := make([]*accum, 0, len(companies))
	for _, c := range companies {
		if _, dup := byID[c.ID]; dup {
			continue
		}
		a := &accum{
			row: CompanyIntelligence{
				CompanyID:       c.ID,
				CompanyName:     c.Name,
				NormalizedName:  c.NormalizedName,
				AirMatch:        c.AirMatch,
				AirMatchScore:   c.AirMatchScore,
				OceanMatch:      c.OceanMatch,
				OceanMatchScore: c.OceanMatchScore,
				Ocean:           ModalStats{TotalValue: decimal.Zero},
				Air:             ModalStats{TotalValue: decimal.Zero},
				TotalValue:      decimal.Zero,
			},
			oceanHS: map[string]struct{}{},
			airHS:   map[string]struct{}{},
		}
		byID[c.ID] = a
		order = append(order, a)
	}

	for _, s := range ocean {
		a, ok := byID[s.CompanyID]
		if !ok {
			continue
		}
		observe(&a.row.Ocean, a.oceanHS, s.HSCode, s.Value, s.ShipmentDate)
	}
	for _, s := range air {
		a, ok := byID[s.CompanyID]
		if !ok {
			continue
		}
		observe(&a.row.Air, a.airHS, s.HSCode, s.Value, s.ShipmentDate)
	}
	for _, ct := range contacts {
		a, ok := byID[ct.CompanyID]
		if !ok {
			continue
		}
		a.row.Contacts.Total++
		if present(ct.Email) {
			a.row.Contacts.WithEmail++
		}
		if present(ct.LinkedInURL) {
			a.row.Contacts.WithLinkedIn++
		}
	}

	out := make([]CompanyIntelligence, 0, len(order))
	for _, a := range order {
		r := a.row
		r.Ocean.DistinctHS = len(a.oceanHS)
		r.Air.DistinctHS = len(a.airHS)
		r.TotalShipments = r.Ocean.Shipments + r.Air.Shipments
		r.TotalValue = r.Ocean.TotalValue.Add(r.Air.TotalValue)
		r.LastActivity = Later(r.Ocean.LastActivity, r.Air.LastActivity)
		out = append(out, r)
	}
	return out
}

func observe(m *ModalStats, seen map[string]struct{}, hs string, value decimal.Decimal, at time.Time) {
	m.Shipments++
	m.TotalValue = m.TotalValue.Add(value)
	if hs = strings.TrimSpace(hs); hs != "" {
		seen[hs] = struct{}{}
	}
	if at.IsZero() {
		return
	}
	if m.LastActivity == nil || at.After(*m.LastActivity) {
		t := at
		m.LastActivity = &t
	}
}

// Later returns the later of two optional timestamps.
func Later(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.After(*a):
		return b
	}
	return a
}

func present(s *string) bool { return s != nil && strings.TrimSpace(*s) != "" }
