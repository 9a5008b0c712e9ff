package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"tradelens/internal/domain"
	"tradelens/internal/domain/matching"
	"tradelens/internal/ports"
)

const (
	oceanHits = `SELECT 'ocean' AS mode, s.id, s.company_id, c.name AS company_name, c.normalized_name, s.hs_code,
		s.commodity, s.origin_country, s.destination_country, s.destination_city AS dest_city,
		s.destination_zip AS dest_zip, s.value, s.weight_kg, s.carrier, s.shipment_date
	FROM ocean_shipments s JOIN company_profiles c ON c.id = s.company_id`
	airHits = `SELECT 'air' AS mode, s.id, s.company_id, c.name AS company_name, c.normalized_name, s.hs_code,
		s.commodity, s.origin_country, s.destination_country, s.arrival_city AS dest_city,
		s.arrival_zip AS dest_zip, s.value, s.weight_kg, s.carrier, s.shipment_date
	FROM airfreight_shipments s JOIN company_profiles c ON c.id = s.company_id`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchShipments runs the filter over one or both streams. The total counts
// every hit regardless of the page.
func (db *DB) SearchShipments(ctx context.Context, f ports.ShipmentFilter) ([]ports.ShipmentItem, int, error) {
	var sources []string
	if f.Mode != domain.ModeAir {
		sources = append(sources, oceanHits)
	}
	if f.Mode != domain.ModeOcean {
		sources = append(sources, airHits)
	}

	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Company != "" {
		cond := "company_name ILIKE '%' || " + arg(likeEscaper.Replace(f.Company)) + " || '%'"
		if n := matching.NormalizeCompanyName(f.Company); n != "" {
			cond += " OR normalized_name LIKE '%' || " + arg(likeEscaper.Replace(n)) + " || '%'"
		}
		conds = append(conds, "("+cond+")")
	}
	if f.OriginCountry != "" {
		conds = append(conds, "upper(origin_country) = "+arg(strings.ToUpper(f.OriginCountry)))
	}
	if f.DestinationCountry != "" {
		conds = append(conds, "upper(destination_country) = "+arg(strings.ToUpper(f.DestinationCountry)))
	}
	if f.Commodity != "" {
		conds = append(conds, "commodity ILIKE '%' || "+arg(likeEscaper.Replace(f.Commodity))+" || '%'")
	}
	if f.HSCode != "" {
		conds = append(conds, "hs_code LIKE "+arg(likeEscaper.Replace(f.HSCode))+" || '%'")
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	hits := "WITH hits AS (" + strings.Join(sources, " UNION ALL ") + ") "

	var total int
	if err := db.Pool.QueryRow(ctx, hits+"SELECT count(*) FROM hits"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := hits + `SELECT mode, id, company_id, company_name, hs_code, commodity, origin_country, destination_country,
		dest_city, dest_zip, value, weight_kg, carrier, shipment_date
	FROM hits` + where + ` ORDER BY shipment_date DESC, id LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset)
	rows, err := db.Pool.Query(ctx, page, args...)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ports.ShipmentItem, error) {
		var it ports.ShipmentItem
		var mode string
		err := row.Scan(&mode, &it.ID, &it.CompanyID, &it.CompanyName, &it.HSCode, &it.Commodity, &it.OriginCountry,
			&it.DestinationCountry, &it.DestinationCity, &it.DestinationZip, &it.Value, &it.WeightKg, &it.Carrier,
			&it.ShipmentDate)
		it.Mode = domain.Mode(mode)
		return it, err
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
