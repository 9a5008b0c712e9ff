package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Core domain models used internally. HTTP shapes sit in internal/api; keep
// these decoupled where helpful.

// Mode identifies one of the two shipment streams.
type Mode string

const (
	ModeOcean Mode = "ocean"
	ModeAir   Mode = "air"
	ModeAll   Mode = "all"
)

// Valid reports whether m is a known search mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeOcean, ModeAir, ModeAll:
		return true
	}
	return false
}

// Opposite returns the other shipment stream. ModeAll has none.
func (m Mode) Opposite() Mode {
	switch m {
	case ModeOcean:
		return ModeAir
	case ModeAir:
		return ModeOcean
	}
	return ""
}

const (
	CompanyStatusActive   = "active"
	CompanyStatusArchived = "archived"
)

// MaxMatchScore caps both per-modality confidence scores.
const MaxMatchScore = 10

type CompanyProfile struct {
	ID               string
	Name             string
	NormalizedName   string
	Industry         *string
	HQCity           *string
	HQCountry        *string
	EmployeeEstimate *int
	RevenueEstimate  *decimal.Decimal
	AirMatch         bool
	AirMatchScore    int
	OceanMatch       bool
	OceanMatchScore  int
	TradeVolume      decimal.Decimal
	RiskScore        *int
	ComplianceFlags  []string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OceanShipment struct {
	ID                 string
	CompanyID          string
	CompanyName        string
	HSCode             string
	Commodity          string
	OriginCountry      string
	OriginCity         *string
	OriginPort         *string
	DestinationCountry string
	DestinationCity    *string
	DestinationZip     *string
	DestinationPort    *string
	Value              decimal.Decimal
	WeightKg           decimal.Decimal
	ContainerCount     int
	ContainerType      *string
	Carrier            *string
	VesselName         *string
	BillOfLading       *string
	ShipmentDate       time.Time
	TradeMonth         string
	CreatedAt          time.Time
}

type AirShipment struct {
	ID                 string
	CompanyID          string
	CompanyName        string
	HSCode             string
	Commodity          string
	OriginCountry      string
	DestinationCountry string
	ArrivalCity        *string
	ArrivalZip         *string
	ArrivalAirport     *string
	Value              decimal.Decimal
	WeightKg           decimal.Decimal
	Carrier            *string
	AirWaybill         *string
	ShipmentDate       time.Time
	TradeMonth         string
	CreatedAt          time.Time
}

// EnrichedContact is a person attached to a company by an enrichment source.
type EnrichedContact struct {
	ID            string
	CompanyID     string
	FullName      string
	Title         *string
	Email         *string
	Phone         *string
	LinkedInURL   *string
	Confidence    int // 0-100
	Source        string
	Locator       string // cache entry locator the contact was found under
	CostPerRecord decimal.Decimal
	CreatedAt     time.Time
}

// CacheKey identifies an enrichment cache entry. Locator is a postal code or
// a registrable domain.
type CacheKey struct {
	CompanyName string
	Locator     string
}

type CacheEntry struct {
	Key            CacheKey
	CompanyName    string // as the caller spelled it
	Contacts       []EnrichedContact
	Source         string
	Cost           decimal.Decimal
	CachedAt       time.Time
	AccessCount    int
	LastAccessedAt *time.Time
}

// Fresh reports whether the entry is still valid at now for the given ttl.
func (e CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Before(e.CachedAt.Add(ttl))
}

type CRMCompany struct {
	ID             string
	CompanyName    string
	NormalizedName string
	Metadata       json.RawMessage
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshJob is a queued re-enrichment of a stale cache entry.
type RefreshJob struct {
	ID          string
	Key         CacheKey
	CompanyName string // as the caller spelled it
}
