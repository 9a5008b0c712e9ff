package domain

import "github.com/shopspring/decimal"

// CrossModalFlagScore is the cross-modal score at which the opposite modality
// flag is raised: an HS-code-level match or better.
const CrossModalFlagScore = 8

// ObserveShipment folds a newly ingested shipment into the profile. A sighting
// in mode pins that modality at the maximum score; crossScore is the best
// match of the shipment against the other stream and only ever raises the
// opposite modality's score.
func (c *CompanyProfile) ObserveShipment(mode Mode, crossScore int, value decimal.Decimal) {
	switch mode {
	case ModeOcean:
		c.OceanMatch = true
		c.OceanMatchScore = MaxMatchScore
	case ModeAir:
		c.AirMatch = true
		c.AirMatchScore = MaxMatchScore
	}
	c.ObserveCrossMatch(mode.Opposite(), crossScore)
	c.TradeVolume = c.TradeVolume.Add(value)
}

// ObserveCrossMatch records that one of the company's shipments paired with a
// shipment of mode from the other stream. The score of mode only ever rises.
func (c *CompanyProfile) ObserveCrossMatch(mode Mode, score int) {
	score = min(max(score, 0), MaxMatchScore)
	switch mode {
	case ModeOcean:
		c.OceanMatchScore = max(c.OceanMatchScore, score)
		c.OceanMatch = c.OceanMatch || c.OceanMatchScore >= CrossModalFlagScore
	case ModeAir:
		c.AirMatchScore = max(c.AirMatchScore, score)
		c.AirMatch = c.AirMatch || c.AirMatchScore >= CrossModalFlagScore
	}
}
