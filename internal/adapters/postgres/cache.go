package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"tradelens/internal/domain"
)

// cachedContact is the jsonb shape of one contact in contact_enrichment_cache.
type cachedContact struct {
	ID            string          `json:"id"`
	FullName      string          `json:"fullName"`
	Title         *string         `json:"title,omitempty"`
	Email         *string         `json:"email,omitempty"`
	Phone         *string         `json:"phone,omitempty"`
	LinkedInURL   *string         `json:"linkedinUrl,omitempty"`
	Confidence    int             `json:"confidence"`
	Source        string          `json:"source"`
	CostPerRecord decimal.Decimal `json:"costPerRecord"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Lookup reads an entry and bumps its access counter in the same statement.
func (db *DB) Lookup(ctx context.Context, key domain.CacheKey) (domain.CacheEntry, bool, error) {
	e := domain.CacheEntry{Key: key}
	var raw []byte
	err := db.Pool.QueryRow(ctx, `
		UPDATE contact_enrichment_cache
		SET access_count = access_count + 1, last_accessed_at = now()
		WHERE company_key = $1 AND locator = $2
		RETURNING company_name, contacts, source, cost, cached_at, access_count, last_accessed_at`,
		key.CompanyName, key.Locator,
	).Scan(&e.CompanyName, &raw, &e.Source, &e.Cost, &e.CachedAt, &e.AccessCount, &e.LastAccessedAt)
	if noRows(err) {
		return domain.CacheEntry{}, false, nil
	}
	if err != nil {
		return domain.CacheEntry{}, false, err
	}
	var stored []cachedContact
	if err := json.Unmarshal(raw, &stored); err != nil {
		return domain.CacheEntry{}, false, err
	}
	e.Contacts = make([]domain.EnrichedContact, len(stored))
	for i, c := range stored {
		e.Contacts[i] = domain.EnrichedContact{
			ID: c.ID, FullName: c.FullName, Title: c.Title, Email: c.Email, Phone: c.Phone,
			LinkedInURL: c.LinkedInURL, Confidence: c.Confidence, Source: c.Source, Locator: key.Locator,
			CostPerRecord: c.CostPerRecord, CreatedAt: c.CreatedAt,
		}
	}
	return e, true, nil
}

// Store replaces the contacts previously attached to the company under the
// same locator and upserts the cache row, keeping its access counter.
func (db *DB) Store(ctx context.Context, entry domain.CacheEntry) error {
	name := entry.CompanyName
	if name == "" {
		name = entry.Key.CompanyName
	}
	return db.inTx(ctx, func(tx pgx.Tx) error {
		c, err := lockCompany(ctx, tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM crm_contacts WHERE company_id = $1 AND locator = $2`, c.ID, entry.Key.Locator); err != nil {
			return err
		}

		stored := make([]cachedContact, 0, len(entry.Contacts))
		for _, ct := range entry.Contacts {
			createdAt := ct.CreatedAt
			if createdAt.IsZero() {
				createdAt = entry.CachedAt
			}
			cc := cachedContact{
				FullName: ct.FullName, Title: ct.Title, Email: ct.Email, Phone: ct.Phone, LinkedInURL: ct.LinkedInURL,
				Confidence: ct.Confidence, Source: ct.Source, CostPerRecord: ct.CostPerRecord, CreatedAt: createdAt,
			}
			if err := tx.QueryRow(ctx, `
				INSERT INTO crm_contacts (company_id, full_name, title, email, phone, linkedin_url, confidence,
					source, locator, cost_per_record, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
				RETURNING id`,
				c.ID, cc.FullName, cc.Title, cc.Email, cc.Phone, cc.LinkedInURL, cc.Confidence,
				cc.Source, entry.Key.Locator, cc.CostPerRecord, cc.CreatedAt,
			).Scan(&cc.ID); err != nil {
				return err
			}
			stored = append(stored, cc)
		}
		raw, err := json.Marshal(stored)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO contact_enrichment_cache (company_key, locator, company_name, contacts, source, cost, cached_at)
			VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7)
			ON CONFLICT (company_key, locator) DO UPDATE
			SET company_name = EXCLUDED.company_name,
			    contacts = EXCLUDED.contacts,
			    source = EXCLUDED.source,
			    cost = EXCLUDED.cost,
			    cached_at = EXCLUDED.cached_at`,
			entry.Key.CompanyName, entry.Key.Locator, name, string(raw), entry.Source, entry.Cost, entry.CachedAt)
		return err
	})
}
