package apollo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelens/internal/domain"
	"tradelens/internal/ports"
)

func newTestClient(url string, attempts int) *Client {
	return New(Config{
		BaseURL:       url,
		APIKey:        "test-key",
		Timeout:       2 * time.Second,
		MaxAttempts:   attempts,
		RetryBase:     time.Millisecond,
		CostPerRecord: decimal.RequireFromString("0.05"),
	})
}

func TestFindContacts(t *testing.T) {
	var got searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"people":[
			{"id":"1","name":"Dana Reyes","title":"Logistics Manager","email":"dana@techglobal.com","email_status":"verified","linkedin_url":"https://linkedin.com/in/dana","phone_numbers":[{"sanitized_number":"+13105550100"}]},
			{"id":"2","name":"Sam Ko","linkedin_url":"https://linkedin.com/in/samko"},
			{"id":"3","name":"  "}
		]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 1)
	res, err := c.FindContacts(context.Background(), ports.ContactQuery{CompanyName: "TechGlobal Solutions Inc", Domain: "techglobal.com", Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, "TechGlobal Solutions Inc", got.OrganizationName)
	assert.Equal(t, []string{"techglobal.com"}, got.OrganizationDomains)
	assert.Equal(t, 5, got.PerPage)

	require.Len(t, res.Contacts, 2)
	assert.Equal(t, ProviderName, res.Source)
	assert.Equal(t, "0.1", res.Cost.String())

	dana := res.Contacts[0]
	assert.Equal(t, "Dana Reyes", dana.FullName)
	assert.Equal(t, 95, dana.Confidence)
	require.NotNil(t, dana.Phone)
	assert.Equal(t, "+13105550100", *dana.Phone)

	sam := res.Contacts[1]
	assert.Nil(t, sam.Email)
	assert.Equal(t, 40, sam.Confidence)
}

func TestFindContactsRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"people":[],"credits_cost":0.25}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL, 3).FindContacts(context.Background(), ports.ContactQuery{CompanyName: "Acme", PostalCode: "90045"})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Empty(t, res.Contacts)
	assert.Equal(t, "0.25", res.Cost.String())
}

func TestFindContactsGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 2).FindContacts(context.Background(), ports.ContactQuery{CompanyName: "Acme"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProviderUnavailable))
	assert.True(t, IsStatus(err, http.StatusServiceUnavailable))
	assert.Equal(t, int32(2), calls.Load())
}

func TestFindContactsDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 3).FindContacts(context.Background(), ports.ContactQuery{CompanyName: "Acme"})
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, int32(1), calls.Load())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	// "é" is two bytes; a cut through it drops the whole rune.
	assert.Equal(t, "caf", truncate("café au lait", 4))
	assert.Equal(t, "café", truncate("café au lait", 5))
	assert.True(t, utf8.ValidString(truncate("日本語のエラー", 7)))
}
