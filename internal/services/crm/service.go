package crm

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"tradelens/internal/domain"
	"tradelens/internal/domain/matching"
	"tradelens/internal/ports"
)

type Result struct {
	Company       domain.CRMCompany
	AlreadyExists bool
}

type Service struct {
	repo ports.CRMRepository
	log  *zap.Logger
}

func New(repo ports.CRMRepository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log.Named("crm")}
}

// AddCompany upserts a CRM entry keyed by the normalized company name. A
// repeat call for the same company reports AlreadyExists and leaves the
// stored row untouched.
func (s *Service) AddCompany(ctx context.Context, name string, metadata json.RawMessage) (Result, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, domain.Invalid("companyName", "is required")
	}
	if len(metadata) > 0 && !json.Valid(metadata) {
		return Result{}, domain.Invalid("metadata", "must be valid JSON")
	}
	c, created, err := s.repo.AddCompany(ctx, name, matching.NormalizeCompanyName(name), metadata)
	if err != nil {
		return Result{}, err
	}
	if created {
		s.log.Info("company added to crm", zap.String("company", c.CompanyName), zap.String("id", c.ID))
	}
	return Result{Company: c, AlreadyExists: !created}, nil
}
