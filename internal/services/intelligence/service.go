package intelligence

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tradelens/internal/domain"
	intel "tradelens/internal/domain/intelligence"
	"tradelens/internal/domain/matching"
	"tradelens/internal/ports"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

type Service struct {
	repo ports.IntelligenceRepository
}

func New(repo ports.IntelligenceRepository) *Service { return &Service{repo: repo} }

func validUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Invalid("id", "must be a UUID")
	}
	return nil
}

func (s *Service) Company(ctx context.Context, id string) (intel.CompanyIntelligence, error) {
	id = strings.TrimSpace(id)
	if err := validUUID(id); err != nil {
		return intel.CompanyIntelligence{}, err
	}
	return s.repo.CompanyIntelligence(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]intel.CompanyIntelligence, error) {
	limit, err := clampLimit(limit)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, domain.Invalid("offset", "must not be negative")
	}
	rows, err := s.repo.ListCompanyIntelligence(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []intel.CompanyIntelligence{}
	}
	return rows, nil
}

// Matches lists cross-modal candidates, strongest first.
func (s *Service) Matches(ctx context.Context, companyID, minTier string, limit int) ([]ports.MatchCandidate, error) {
	f := ports.MatchFilter{CompanyID: strings.TrimSpace(companyID)}
	if f.CompanyID != "" {
		if err := validUUID(f.CompanyID); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(minTier) != "" {
		t, err := matching.ParseTier(minTier)
		if err != nil {
			return nil, domain.Invalid("minTier", err.Error())
		}
		f.MinTier = t
	}
	var err error
	if f.Limit, err = clampLimit(limit); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListMatches(ctx, f)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []ports.MatchCandidate{}
	}
	return rows, nil
}

// Score compares two ad-hoc records without touching the store.
func (s *Service) Score(a, b matching.Record) (matching.Result, bool) {
	return matching.Score(a, b), matching.Pairable(a, b)
}

func clampLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultLimit, nil
	}
	if limit < 1 || limit > MaxLimit {
		return 0, domain.Invalid("limit", "must be between 1 and 500")
	}
	return limit, nil
}
