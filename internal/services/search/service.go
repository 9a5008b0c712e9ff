package search

import (
	"context"
	"strings"

	"tradelens/internal/domain"
	"tradelens/internal/ports"
	"tradelens/internal/services/ingest"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type Filters struct {
	Company            string
	OriginCountry      string
	DestinationCountry string
	Commodity          string
	HSCode             string
	Mode               string
	Limit              int
	Offset             int
}

type Result struct {
	Total int
	Items []ports.ShipmentItem
}

type Service struct {
	repo ports.SearchRepository
}

func New(repo ports.SearchRepository) *Service { return &Service{repo: repo} }

// Search queries both shipment streams. At least one predicate besides mode
// is required.
func (s *Service) Search(ctx context.Context, f Filters) (Result, error) {
	filter, err := Validate(f)
	if err != nil {
		return Result{}, err
	}
	items, total, err := s.repo.SearchShipments(ctx, filter)
	if err != nil {
		return Result{}, err
	}
	if items == nil {
		items = []ports.ShipmentItem{}
	}
	return Result{Total: total, Items: items}, nil
}

// Validate trims and checks filters, returning the repository filter.
func Validate(f Filters) (ports.ShipmentFilter, error) {
	out := ports.ShipmentFilter{
		Company:            strings.TrimSpace(f.Company),
		OriginCountry:      strings.ToUpper(strings.TrimSpace(f.OriginCountry)),
		DestinationCountry: strings.ToUpper(strings.TrimSpace(f.DestinationCountry)),
		Commodity:          strings.TrimSpace(f.Commodity),
		HSCode:             ingest.NormalizeHSCode(f.HSCode),
		Mode:               domain.Mode(strings.ToLower(strings.TrimSpace(f.Mode))),
		Limit:              f.Limit,
		Offset:             f.Offset,
	}
	if out.Mode == "" {
		out.Mode = domain.ModeAll
	}
	if !out.Mode.Valid() {
		return ports.ShipmentFilter{}, domain.Invalid("mode", "must be one of air, ocean, all")
	}
	if out.Company == "" && out.OriginCountry == "" && out.DestinationCountry == "" && out.Commodity == "" && out.HSCode == "" {
		return ports.ShipmentFilter{}, domain.Invalid("", "at least one of company, originCountry, destinationCountry, commodity, hsCode is required")
	}
	for _, r := range out.HSCode {
		if r < '0' || r > '9' {
			return ports.ShipmentFilter{}, domain.Invalid("hsCode", "must contain digits only")
		}
	}
	if out.Limit == 0 {
		out.Limit = DefaultLimit
	}
	if out.Limit < 1 || out.Limit > MaxLimit {
		return ports.ShipmentFilter{}, domain.Invalid("limit", "must be between 1 and 200")
	}
	if out.Offset < 0 {
		return ports.ShipmentFilter{}, domain.Invalid("offset", "must not be negative")
	}
	return out, nil
}
