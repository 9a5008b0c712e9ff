package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"tradelens/internal/domain"
	"tradelens/internal/domain/intelligence"
	"tradelens/internal/domain/matching"
	"tradelens/internal/ports"
)

const intelligenceColumns = `company_id, company_name, normalized_name, air_match, air_match_score, ocean_match,
	ocean_match_score, ocean_shipments, ocean_value, ocean_distinct_hs, ocean_last_activity, air_shipments,
	air_value, air_distinct_hs, air_last_activity, total_shipments, total_value, last_activity, contacts,
	contacts_with_email, contacts_with_linkedin`

func scanIntelligence(row pgx.Row) (intelligence.CompanyIntelligence, error) {
	var r intelligence.CompanyIntelligence
	err := row.Scan(&r.CompanyID, &r.CompanyName, &r.NormalizedName, &r.AirMatch, &r.AirMatchScore, &r.OceanMatch,
		&r.OceanMatchScore, &r.Ocean.Shipments, &r.Ocean.TotalValue, &r.Ocean.DistinctHS, &r.Ocean.LastActivity,
		&r.Air.Shipments, &r.Air.TotalValue, &r.Air.DistinctHS, &r.Air.LastActivity, &r.TotalShipments,
		&r.TotalValue, &r.LastActivity, &r.Contacts.Total, &r.Contacts.WithEmail, &r.Contacts.WithLinkedIn)
	return r, err
}

func (db *DB) CompanyIntelligence(ctx context.Context, companyID string) (intelligence.CompanyIntelligence, error) {
	r, err := scanIntelligence(db.Pool.QueryRow(ctx,
		`SELECT `+intelligenceColumns+` FROM company_intelligence WHERE company_id = $1`, companyID))
	if noRows(err) {
		return intelligence.CompanyIntelligence{}, domain.ErrNotFound
	}
	return r, err
}

func (db *DB) ListCompanyIntelligence(ctx context.Context, limit, offset int) ([]intelligence.CompanyIntelligence, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+intelligenceColumns+` FROM company_intelligence
		ORDER BY company_name, company_id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (intelligence.CompanyIntelligence, error) {
		return scanIntelligence(row)
	})
}

// ListMatches reads cross_modal_matches, strongest first.
func (db *DB) ListMatches(ctx context.Context, f ports.MatchFilter) ([]ports.MatchCandidate, error) {
	var tiers []string
	for _, t := range []matching.Tier{matching.TierLow, matching.TierMedium, matching.TierHigh, matching.TierExact} {
		if f.MinTier == "" || t.AtLeast(f.MinTier) {
			tiers = append(tiers, string(t))
		}
	}
	var companyID *string
	if f.CompanyID != "" {
		companyID = &f.CompanyID
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT ocean_shipment_id, air_shipment_id, ocean_company_id, air_company_id, ocean_company, air_company,
		       hs_code, match_score, match_tier
		FROM cross_modal_matches
		WHERE ($1::uuid IS NULL OR ocean_company_id = $1::uuid OR air_company_id = $1::uuid)
		  AND match_tier = ANY($2)
		ORDER BY match_score DESC, raw_score DESC, ocean_shipment_id, air_shipment_id
		LIMIT $3`, companyID, tiers, f.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ports.MatchCandidate, error) {
		var m ports.MatchCandidate
		var tier string
		err := row.Scan(&m.OceanShipmentID, &m.AirShipmentID, &m.OceanCompanyID, &m.AirCompanyID, &m.OceanCompany,
			&m.AirCompany, &m.HSCode, &m.Score, &tier)
		m.Tier = matching.Tier(tier)
		return m, err
	})
}
