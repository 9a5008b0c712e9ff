package postgres

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"tradelens/internal/domain"
	"tradelens/internal/domain/matching"
	"tradelens/internal/ports"
)

const companyColumns = `id, name, normalized_name, industry, hq_city, hq_country, employee_estimate,
	revenue_estimate, air_match, air_match_score, ocean_match, ocean_match_score,
	total_trade_volume, risk_score, compliance_flags, status, created_at, updated_at`

func scanCompany(row pgx.Row) (domain.CompanyProfile, error) {
	var c domain.CompanyProfile
	err := row.Scan(&c.ID, &c.Name, &c.NormalizedName, &c.Industry, &c.HQCity, &c.HQCountry, &c.EmployeeEstimate,
		&c.RevenueEstimate, &c.AirMatch, &c.AirMatchScore, &c.OceanMatch, &c.OceanMatchScore,
		&c.TradeVolume, &c.RiskScore, &c.ComplianceFlags, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// lockCompany returns the profile keyed by raw's CompanyKey, creating it on
// first sighting. The row stays locked until tx ends.
func lockCompany(ctx context.Context, tx pgx.Tx, raw string) (domain.CompanyProfile, error) {
	raw = strings.TrimSpace(raw)
	return scanCompany(tx.QueryRow(ctx, `
		INSERT INTO company_profiles (company_key, name, normalized_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_key) DO UPDATE SET company_key = EXCLUDED.company_key
		RETURNING `+companyColumns,
		matching.CompanyKey(raw), raw, matching.NormalizeCompanyName(raw)))
}

func saveScores(ctx context.Context, tx pgx.Tx, c domain.CompanyProfile) (domain.CompanyProfile, error) {
	return scanCompany(tx.QueryRow(ctx, `
		UPDATE company_profiles
		SET air_match = $2, air_match_score = $3, ocean_match = $4, ocean_match_score = $5,
		    total_trade_volume = $6
		WHERE id = $1
		RETURNING `+companyColumns,
		c.ID, c.AirMatch, c.AirMatchScore, c.OceanMatch, c.OceanMatchScore, c.TradeVolume))
}

// raisePartners applies a new shipment of mode to the profiles owning the
// opposite-stream shipments it paired with. Rows are locked in id order.
func raisePartners(ctx context.Context, tx pgx.Tx, mode domain.Mode, scores map[string]int) error {
	if len(scores) == 0 {
		return nil
	}
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	vals := make([]int, len(ids))
	for i, id := range ids {
		vals[i] = min(max(scores[id], 0), domain.MaxMatchScore)
	}

	if _, err := tx.Exec(ctx, `
		SELECT id FROM company_profiles
		WHERE id = ANY($1::text[]::uuid[])
		ORDER BY id
		FOR UPDATE`, ids); err != nil {
		return err
	}
	flag, score := "ocean_match", "ocean_match_score"
	if mode == domain.ModeAir {
		flag, score = "air_match", "air_match_score"
	}
	_, err := tx.Exec(ctx, `
		UPDATE company_profiles p
		SET `+score+` = GREATEST(p.`+score+`, v.score),
		    `+flag+` = p.`+flag+` OR GREATEST(p.`+score+`, v.score) >= $3
		FROM unnest($1::text[], $2::int[]) AS v(id, score)
		WHERE p.id = v.id::uuid`,
		ids, vals, domain.CrossModalFlagScore)
	return err
}

// candidates loads records from table that satisfy the pairing predicate
// against probe. zipCol and cityCol name the table's destination columns.
func candidates(ctx context.Context, tx pgx.Tx, table, zipCol, cityCol string, probe matching.Record) ([]matching.Record, error) {
	rows, err := tx.Query(ctx, `
		SELECT c.id, c.name, s.hs_code, COALESCE(s.`+zipCol+`, ''), COALESCE(s.`+cityCol+`, '')
		FROM `+table+` s
		JOIN company_profiles c ON c.id = s.company_id
		WHERE btrim(s.hs_code) = $1
		   OR ($2 <> '' AND btrim(s.`+zipCol+`) = $2)
		   OR ($3 <> '' AND lower(btrim(s.`+cityCol+`)) = lower($3))`,
		strings.TrimSpace(probe.HSCode), strings.TrimSpace(probe.PostalCode), strings.TrimSpace(probe.Locality))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (matching.Record, error) {
		var r matching.Record
		err := row.Scan(&r.CompanyID, &r.CompanyName, &r.HSCode, &r.PostalCode, &r.Locality)
		return r, err
	})
}

func (db *DB) IngestOcean(ctx context.Context, in domain.OceanShipment, best ports.BestMatchFunc) (domain.OceanShipment, domain.CompanyProfile, error) {
	var company domain.CompanyProfile
	err := db.ingestTx(ctx, func(tx pgx.Tx) error {
		c, err := lockCompany(ctx, tx, in.CompanyName)
		if err != nil {
			return err
		}
		in.CompanyID = c.ID
		if err := tx.QueryRow(ctx, `
			INSERT INTO ocean_shipments (company_id, company_name, hs_code, commodity, origin_country, origin_city,
				origin_port, destination_country, destination_city, destination_zip, destination_port, value,
				weight_kg, container_count, container_type, carrier, vessel_name, bill_of_lading, shipment_date,
				trade_month)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
			RETURNING id, created_at`,
			in.CompanyID, in.CompanyName, in.HSCode, in.Commodity, in.OriginCountry, in.OriginCity,
			in.OriginPort, in.DestinationCountry, in.DestinationCity, in.DestinationZip, in.DestinationPort, in.Value,
			in.WeightKg, in.ContainerCount, in.ContainerType, in.Carrier, in.VesselName, in.BillOfLading, in.ShipmentDate,
			in.TradeMonth,
		).Scan(&in.ID, &in.CreatedAt); err != nil {
			return err
		}

		probe := matching.Record{CompanyName: in.CompanyName, HSCode: in.HSCode, PostalCode: deref(in.DestinationZip), Locality: deref(in.DestinationCity)}
		cands, err := candidates(ctx, tx, "airfreight_shipments", "arrival_zip", "arrival_city", probe)
		if err != nil {
			return err
		}
		res, _ := best(probe, cands)
		c.ObserveShipment(domain.ModeOcean, res.Score, in.Value)
		if company, err = saveScores(ctx, tx, c); err != nil {
			return err
		}
		return raisePartners(ctx, tx, domain.ModeOcean, best.ByCompany(probe, cands, c.ID))
	})
	if err != nil {
		return domain.OceanShipment{}, domain.CompanyProfile{}, err
	}
	return in, company, nil
}

func (db *DB) IngestAir(ctx context.Context, in domain.AirShipment, best ports.BestMatchFunc) (domain.AirShipment, domain.CompanyProfile, error) {
	var company domain.CompanyProfile
	err := db.ingestTx(ctx, func(tx pgx.Tx) error {
		c, err := lockCompany(ctx, tx, in.CompanyName)
		if err != nil {
			return err
		}
		in.CompanyID = c.ID
		if err := tx.QueryRow(ctx, `
			INSERT INTO airfreight_shipments (company_id, company_name, hs_code, commodity, origin_country,
				destination_country, arrival_city, arrival_zip, arrival_airport, value, weight_kg, carrier,
				air_waybill, shipment_date, trade_month)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING id, created_at`,
			in.CompanyID, in.CompanyName, in.HSCode, in.Commodity, in.OriginCountry,
			in.DestinationCountry, in.ArrivalCity, in.ArrivalZip, in.ArrivalAirport, in.Value, in.WeightKg, in.Carrier,
			in.AirWaybill, in.ShipmentDate, in.TradeMonth,
		).Scan(&in.ID, &in.CreatedAt); err != nil {
			return err
		}

		probe := matching.Record{CompanyName: c.Name, HSCode: in.HSCode, PostalCode: deref(in.ArrivalZip), Locality: deref(in.ArrivalCity)}
		cands, err := candidates(ctx, tx, "ocean_shipments", "destination_zip", "destination_city", probe)
		if err != nil {
			return err
		}
		res, _ := best(probe, cands)
		c.ObserveShipment(domain.ModeAir, res.Score, in.Value)
		if company, err = saveScores(ctx, tx, c); err != nil {
			return err
		}
		return raisePartners(ctx, tx, domain.ModeAir, best.ByCompany(probe, cands, c.ID))
	})
	if err != nil {
		return domain.AirShipment{}, domain.CompanyProfile{}, err
	}
	return in, company, nil
}

// AddCompany inserts a CRM entry unless one with the same company key exists.
func (db *DB) AddCompany(ctx context.Context, name, normalized string, metadata json.RawMessage) (domain.CRMCompany, bool, error) {
	if len(metadata) == 0 {
		metadata = json.RawMessage(`{}`)
	}
	const cols = `id, company_name, normalized_name, metadata, status, created_at, updated_at`
	scan := func(row pgx.Row) (domain.CRMCompany, error) {
		var c domain.CRMCompany
		var meta []byte
		err := row.Scan(&c.ID, &c.CompanyName, &c.NormalizedName, &meta, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		c.Metadata = meta
		return c, err
	}

	key := matching.CompanyKey(name)
	c, err := scan(db.Pool.QueryRow(ctx, `
		INSERT INTO crm_companies (company_key, company_name, normalized_name, metadata)
		VALUES ($1, $2, $3, $4::jsonb)
		ON CONFLICT (company_key) DO NOTHING
		RETURNING `+cols,
		key, strings.TrimSpace(name), normalized, string(metadata)))
	if err == nil {
		return c, true, nil
	}
	if !noRows(err) {
		return domain.CRMCompany{}, false, err
	}
	c, err = scan(db.Pool.QueryRow(ctx, `SELECT `+cols+` FROM crm_companies WHERE company_key = $1`, key))
	if err != nil {
		return domain.CRMCompany{}, false, err
	}
	return c, false, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
