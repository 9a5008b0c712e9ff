// Package apollo is the Apollo.io people-search enrichment provider.
package apollo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"

	"tradelens/internal/domain"
	"tradelens/internal/ports"
)

const (
	ProviderName = "apollo"
	searchPath   = "/api/v1/mixed_people/search"
)

type Config struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration // per attempt
	MaxAttempts   int
	RetryBase     time.Duration
	CostPerRecord decimal.Decimal
	PerPage       int
}

type Client struct {
	http *resty.Client
	cfg  Config
}

func New(cfg Config) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = 250 * time.Millisecond
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = 10
	}
	hc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Cache-Control", "no-cache").
		SetHeader("X-Api-Key", cfg.APIKey)
	return &Client{http: hc, cfg: cfg}
}

func (c *Client) Name() string { return ProviderName }

type searchRequest struct {
	OrganizationName    string   `json:"q_organization_name,omitempty"`
	OrganizationDomains []string `json:"q_organization_domains_list,omitempty"`
	PostalCodes         []string `json:"organization_locations,omitempty"`
	Page                int      `json:"page"`
	PerPage             int      `json:"per_page"`
}

type searchResponse struct {
	People []person `json:"people"`
	// CreditsCost is present on plans that bill per request.
	CreditsCost *float64 `json:"credits_cost,omitempty"`
}

type person struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	EmailStatus  string `json:"email_status"`
	LinkedInURL  string `json:"linkedin_url"`
	PhoneNumbers []struct {
		SanitizedNumber string `json:"sanitized_number"`
	} `json:"phone_numbers"`
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("apollo: unexpected status %d: %s", e.code, e.body)
}

// FindContacts searches people at the company. Network errors, 429 and 5xx
// responses are retried with exponential backoff up to MaxAttempts.
func (c *Client) FindContacts(ctx context.Context, q ports.ContactQuery) (ports.ProviderResult, error) {
	perPage := c.cfg.PerPage
	if q.Limit > 0 {
		perPage = q.Limit
	}
	body := searchRequest{OrganizationName: q.CompanyName, Page: 1, PerPage: perPage}
	if q.Domain != "" {
		body.OrganizationDomains = []string{q.Domain}
	}
	if q.PostalCode != "" {
		body.PostalCodes = []string{q.PostalCode}
	}

	backoff := retry.WithMaxRetries(uint64(c.cfg.MaxAttempts-1), retry.NewExponential(c.cfg.RetryBase))
	var out searchResponse
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		out = searchResponse{}
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(body).
			SetResult(&out).
			Post(searchPath)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return retry.RetryableError(err)
		}
		if resp.IsError() {
			serr := &statusError{code: resp.StatusCode(), body: truncate(resp.String(), 200)}
			if resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= 500 {
				return retry.RetryableError(serr)
			}
			return serr
		}
		return nil
	})
	if err != nil {
		return ports.ProviderResult{}, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	contacts := make([]domain.EnrichedContact, 0, len(out.People))
	for _, p := range out.People {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		contacts = append(contacts, toContact(p, c.cfg.CostPerRecord))
	}

	cost := c.cfg.CostPerRecord.Mul(decimal.NewFromInt(int64(len(contacts))))
	if out.CreditsCost != nil {
		cost = decimal.NewFromFloat(*out.CreditsCost)
	}
	return ports.ProviderResult{Contacts: contacts, Cost: cost, Source: ProviderName}, nil
}

func toContact(p person, cost decimal.Decimal) domain.EnrichedContact {
	ct := domain.EnrichedContact{
		FullName:      strings.TrimSpace(p.Name),
		Title:         optional(p.Title),
		Email:         optional(p.Email),
		LinkedInURL:   optional(p.LinkedInURL),
		Confidence:    confidence(p),
		Source:        ProviderName,
		CostPerRecord: cost,
	}
	for _, ph := range p.PhoneNumbers {
		if ph.SanitizedNumber != "" {
			ct.Phone = optional(ph.SanitizedNumber)
			break
		}
	}
	return ct
}

// confidence maps Apollo's email status onto 0-100.
func confidence(p person) int {
	switch {
	case p.Email == "":
		if p.LinkedInURL != "" {
			return 40
		}
		return 20
	case p.EmailStatus == "verified":
		return 95
	case p.EmailStatus == "likely_to_engage", p.EmailStatus == "guessed":
		return 70
	}
	return 50
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// IsStatus reports whether err carries the given HTTP status from Apollo.
func IsStatus(err error, code int) bool {
	var serr *statusError
	return errors.As(err, &serr) && serr.code == code
}
