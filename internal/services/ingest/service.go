package ingest

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"tradelens/internal/domain"
	"tradelens/internal/domain/matching"
	"tradelens/internal/metrics"
	"tradelens/internal/ports"
)

var (
	hsCodePattern     = regexp.MustCompile(`^[0-9]{4,10}$`)
	tradeMonthPattern = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)
)

type Service struct {
	repo    ports.IngestRepository
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

func New(repo ports.IngestRepository, m *metrics.Metrics, log *zap.Logger) *Service {
	return &Service{repo: repo, metrics: m, log: log.Named("ingest"), now: time.Now}
}

// IngestOcean validates and stores an ocean shipment, creating the company
// profile on first sighting and raising its ocean match score.
func (s *Service) IngestOcean(ctx context.Context, in domain.OceanShipment) (domain.OceanShipment, domain.CompanyProfile, error) {
	code, month, date, err := s.validate(in.CompanyName, in.HSCode, in.TradeMonth, in.ShipmentDate, in.Value.IsNegative(), in.WeightKg.IsNegative())
	if err != nil {
		return domain.OceanShipment{}, domain.CompanyProfile{}, err
	}
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.HSCode, in.TradeMonth, in.ShipmentDate = code, month, date
	in.OriginCountry = upperCountry(in.OriginCountry)
	in.DestinationCountry = upperCountry(in.DestinationCountry)
	if in.ContainerCount < 0 {
		return domain.OceanShipment{}, domain.CompanyProfile{}, domain.Invalid("containerCount", "must not be negative")
	}

	stored, company, err := s.repo.IngestOcean(ctx, in, matching.Best)
	if err != nil {
		return domain.OceanShipment{}, domain.CompanyProfile{}, err
	}
	s.metrics.ShipmentIngested(string(domain.ModeOcean))
	s.log.Debug("ocean shipment ingested",
		zap.String("shipment_id", stored.ID),
		zap.String("company_id", company.ID),
		zap.Int("ocean_match_score", company.OceanMatchScore))
	return stored, company, nil
}

// IngestAir is the air waybill counterpart of IngestOcean.
func (s *Service) IngestAir(ctx context.Context, in domain.AirShipment) (domain.AirShipment, domain.CompanyProfile, error) {
	code, month, date, err := s.validate(in.CompanyName, in.HSCode, in.TradeMonth, in.ShipmentDate, in.Value.IsNegative(), in.WeightKg.IsNegative())
	if err != nil {
		return domain.AirShipment{}, domain.CompanyProfile{}, err
	}
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.HSCode, in.TradeMonth, in.ShipmentDate = code, month, date
	in.OriginCountry = upperCountry(in.OriginCountry)
	in.DestinationCountry = upperCountry(in.DestinationCountry)

	stored, company, err := s.repo.IngestAir(ctx, in, matching.Best)
	if err != nil {
		return domain.AirShipment{}, domain.CompanyProfile{}, err
	}
	s.metrics.ShipmentIngested(string(domain.ModeAir))
	s.log.Debug("air shipment ingested",
		zap.String("shipment_id", stored.ID),
		zap.String("company_id", company.ID),
		zap.Int("air_match_score", company.AirMatchScore))
	return stored, company, nil
}

func (s *Service) validate(company, hs, month string, date time.Time, negValue, negWeight bool) (string, string, time.Time, error) {
	if strings.TrimSpace(company) == "" {
		return "", "", time.Time{}, domain.Invalid("companyName", "is required")
	}
	code := NormalizeHSCode(hs)
	if code == "" {
		return "", "", time.Time{}, domain.Invalid("hsCode", "is required")
	}
	if !hsCodePattern.MatchString(code) {
		return "", "", time.Time{}, domain.Invalid("hsCode", "must be 4 to 10 digits")
	}
	if negValue {
		return "", "", time.Time{}, domain.Invalid("value", "must not be negative")
	}
	if negWeight {
		return "", "", time.Time{}, domain.Invalid("weightKg", "must not be negative")
	}
	if date.IsZero() {
		date = s.now()
	}
	date = date.UTC()
	month = strings.TrimSpace(month)
	if month == "" {
		month = date.Format("2006-01")
	} else if !tradeMonthPattern.MatchString(month) {
		return "", "", time.Time{}, domain.Invalid("tradeMonth", "must be YYYY-MM")
	}
	return code, month, date, nil
}

// NormalizeHSCode strips the dots and spaces customs documents use to group
// HS code digits, e.g. "8471.60.0000" becomes "8471600000".
func NormalizeHSCode(hs string) string {
	return strings.NewReplacer(".", "", " ", "").Replace(strings.TrimSpace(hs))
}

func upperCountry(c string) string { return strings.ToUpper(strings.TrimSpace(c)) }
