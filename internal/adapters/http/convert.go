package httpadapter

import (
	"strings"
	"time"

	api "tradelens/internal/api"
	"tradelens/internal/domain"
	"tradelens/internal/domain/intelligence"
	"tradelens/internal/ports"
)

func oceanFromRequest(b api.OceanShipmentRequest) domain.OceanShipment {
	return domain.OceanShipment{
		CompanyName:        b.CompanyName,
		HSCode:             b.HsCode,
		Commodity:          strings.TrimSpace(b.Commodity),
		OriginCountry:      b.OriginCountry,
		OriginCity:         b.OriginCity,
		OriginPort:         b.OriginPort,
		DestinationCountry: b.DestinationCountry,
		DestinationCity:    b.DestinationCity,
		DestinationZip:     b.DestinationZip,
		DestinationPort:    b.DestinationPort,
		Value:              b.Value,
		WeightKg:           b.WeightKg,
		ContainerCount:     b.ContainerCount,
		ContainerType:      b.ContainerType,
		Carrier:            b.Carrier,
		VesselName:         b.VesselName,
		BillOfLading:       b.BillOfLading,
		ShipmentDate:       derefTime(b.ShipmentDate),
		TradeMonth:         deref(b.TradeMonth),
	}
}

func airFromRequest(b api.AirShipmentRequest) domain.AirShipment {
	return domain.AirShipment{
		CompanyName:        b.CompanyName,
		HSCode:             b.HsCode,
		Commodity:          strings.TrimSpace(b.Commodity),
		OriginCountry:      b.OriginCountry,
		DestinationCountry: b.DestinationCountry,
		ArrivalCity:        b.ArrivalCity,
		ArrivalZip:         b.ArrivalZip,
		ArrivalAirport:     b.ArrivalAirport,
		Value:              b.Value,
		WeightKg:           b.WeightKg,
		Carrier:            b.Carrier,
		AirWaybill:         b.AirWaybill,
		ShipmentDate:       derefTime(b.ShipmentDate),
		TradeMonth:         deref(b.TradeMonth),
	}
}

func toShipmentItem(it ports.ShipmentItem) api.ShipmentItem {
	return api.ShipmentItem{
		Id:                 it.ID,
		Mode:               string(it.Mode),
		CompanyId:          it.CompanyID,
		CompanyName:        it.CompanyName,
		HsCode:             it.HSCode,
		Commodity:          it.Commodity,
		OriginCountry:      it.OriginCountry,
		DestinationCountry: it.DestinationCountry,
		DestinationCity:    it.DestinationCity,
		DestinationZip:     it.DestinationZip,
		Value:              it.Value,
		WeightKg:           it.WeightKg,
		Carrier:            it.Carrier,
		ShipmentDate:       it.ShipmentDate,
	}
}

func toCompanyProfile(c domain.CompanyProfile) api.CompanyProfile {
	return api.CompanyProfile{
		Id:               c.ID,
		Name:             c.Name,
		NormalizedName:   c.NormalizedName,
		AirMatch:         c.AirMatch,
		AirMatchScore:    c.AirMatchScore,
		OceanMatch:       c.OceanMatch,
		OceanMatchScore:  c.OceanMatchScore,
		TotalTradeVolume: c.TradeVolume,
		Status:           c.Status,
	}
}

func toModalStats(m intelligence.ModalStats) api.ModalStats {
	return api.ModalStats{Shipments: m.Shipments, TotalValue: m.TotalValue, DistinctHsCodes: m.DistinctHS, LastActivity: m.LastActivity}
}

func toIntelligence(r intelligence.CompanyIntelligence) api.CompanyIntelligence {
	return api.CompanyIntelligence{
		CompanyId:       r.CompanyID,
		CompanyName:     r.CompanyName,
		NormalizedName:  r.NormalizedName,
		AirMatch:        r.AirMatch,
		AirMatchScore:   r.AirMatchScore,
		OceanMatch:      r.OceanMatch,
		OceanMatchScore: r.OceanMatchScore,
		Ocean:           toModalStats(r.Ocean),
		Air:             toModalStats(r.Air),
		TotalShipments:  r.TotalShipments,
		TotalValue:      r.TotalValue,
		LastActivity:    r.LastActivity,
		Contacts: api.ContactStats{
			Total:        r.Contacts.Total,
			WithEmail:    r.Contacts.WithEmail,
			WithLinkedIn: r.Contacts.WithLinkedIn,
		},
	}
}

func toContact(c domain.EnrichedContact) api.Contact {
	return api.Contact{
		Id:          c.ID,
		FullName:    c.FullName,
		Title:       c.Title,
		Email:       c.Email,
		Phone:       c.Phone,
		LinkedinUrl: c.LinkedInURL,
		Confidence:  c.Confidence,
		Source:      c.Source,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
