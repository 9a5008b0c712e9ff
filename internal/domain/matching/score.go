package matching

import (
	"fmt"
	"strings"
)

// Signal weights. The final score is capped at MaxScore; RawScore keeps the
// uncapped sum for finer ranking.
const (
	WeightName       = 10
	WeightHSCode     = 8
	WeightPostalCode = 6
	WeightLocality   = 4
	WeightHSPrefix   = 2

	MaxScore = 10

	hsPrefixLen = 4
)

// Tier labels which join predicates fired for a pairing.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
	TierExact  Tier = "exact"
)

func (t Tier) rank() int {
	switch t {
	case TierExact:
		return 3
	case TierHigh:
		return 2
	case TierMedium:
		return 1
	}
	return 0
}

// AtLeast reports whether t is ranked at or above min.
func (t Tier) AtLeast(min Tier) bool { return t.rank() >= min.rank() }

// ParseTier accepts exact, high, medium or low (case-insensitive).
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TierLow, TierMedium, TierHigh, TierExact:
		return t, nil
	}
	return "", fmt.Errorf("unknown match tier %q", s)
}

// Record is the shipment-like view the scorer needs from either stream.
// CompanyID identifies the owning profile and is never compared.
type Record struct {
	CompanyID   string
	CompanyName string
	HSCode      string
	PostalCode  string
	Locality    string
}

// Signals records which comparisons held for a pair.
type Signals struct {
	Name     bool `json:"name"`
	HSCode   bool `json:"hsCode"`
	Postal   bool `json:"postal"`
	Locality bool `json:"locality"`
	HSPrefix bool `json:"hsPrefix"`
}

type Result struct {
	Score    int
	RawScore int
	Tier     Tier
	Signals  Signals
}

// Compare evaluates every signal between a and b.
func Compare(a, b Record) Signals {
	codeA, codeB := strings.TrimSpace(a.HSCode), strings.TrimSpace(b.HSCode)
	s := Signals{
		Name:     SameCompany(a.CompanyName, b.CompanyName),
		HSCode:   codeA != "" && codeA == codeB,
		Postal:   equalNonEmpty(a.PostalCode, b.PostalCode, false),
		Locality: equalNonEmpty(a.Locality, b.Locality, true),
	}
	if !s.HSCode && len(codeA) >= hsPrefixLen && len(codeB) >= hsPrefixLen {
		s.HSPrefix = codeA[:hsPrefixLen] == codeB[:hsPrefixLen]
	}
	return s
}

// Pairable is the join predicate of a cross-modal candidate: a pair exists
// only when the HS codes, postal codes or localities agree.
func Pairable(a, b Record) bool {
	s := Compare(a, b)
	return s.HSCode || s.Postal || s.Locality
}

// Score sums the signal weights of a pair, capped at MaxScore.
func Score(a, b Record) Result {
	s := Compare(a, b)
	raw := 0
	if s.Name {
		raw += WeightName
	}
	if s.HSCode {
		raw += WeightHSCode
	}
	if s.Postal {
		raw += WeightPostalCode
	}
	if s.Locality {
		raw += WeightLocality
	}
	if s.HSPrefix {
		raw += WeightHSPrefix
	}
	return Result{Score: min(raw, MaxScore), RawScore: raw, Tier: tierOf(s), Signals: s}
}

// tierOf looks at the raw comparisons, not the capped score.
func tierOf(s Signals) Tier {
	switch {
	case s.HSCode && s.Postal:
		return TierExact
	case s.HSCode && s.Locality:
		return TierHigh
	case s.HSCode:
		return TierMedium
	}
	return TierLow
}

// Best returns the highest-scoring result of probe against candidates that
// satisfy the pairing predicate. ok is false when none do.
func Best(probe Record, candidates []Record) (best Result, ok bool) {
	for _, c := range candidates {
		if !Pairable(probe, c) {
			continue
		}
		r := Score(probe, c)
		if !ok || r.RawScore > best.RawScore {
			best, ok = r, true
		}
	}
	return best, ok
}

func equalNonEmpty(a, b string, foldCase bool) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	if foldCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}
