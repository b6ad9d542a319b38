// Package supabase implements the record store contracts against a
// Supabase-hosted PostgREST API: three collections (events, day1, day2)
// exposed as REST resources under /rest/v1.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"eventboard/internal/domain"
)

// Client talks to a Supabase project's REST API. It is constructed once by
// the application entry point and injected wherever a store is needed; there
// is no lazily initialized package-level instance.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// New returns a Client for the given project URL and anon/service key.
// httpClient may be nil, in which case http.DefaultClient is used.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  httpClient,
	}
}

func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	q := url.Values{"select": {"*"}, "order": {"id.asc"}}
	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "events", q, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListEventsByCategory(ctx context.Context, category string) ([]domain.Event, error) {
	q := url.Values{"select": {"*"}, "order": {"id.asc"}, "category": {"eq." + category}}
	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "events", q, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	q := url.Values{"select": {"*"}, "id": {fmt.Sprintf("eq.%d", id)}}
	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "events", q, nil, &events); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return &events[0], nil
}

func (c *Client) InsertEvent(ctx context.Context, form domain.EventForm) (*domain.Event, error) {
	var events []domain.Event
	if err := c.do(ctx, http.MethodPost, "events", nil, form, &events); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("supabase insert returned no representation")
	}
	return &events[0], nil
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, form domain.EventForm) (*domain.Event, error) {
	q := url.Values{"id": {fmt.Sprintf("eq.%d", id)}}
	var events []domain.Event
	if err := c.do(ctx, http.MethodPatch, "events", q, form, &events); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return &events[0], nil
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	q := url.Values{"id": {fmt.Sprintf("eq.%d", id)}}
	var deleted []json.RawMessage
	if err := c.do(ctx, http.MethodDelete, "events", q, nil, &deleted); err != nil {
		return err
	}
	if len(deleted) == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *Client) ListDays(ctx context.Context, slot domain.Slot) ([]domain.DayRecord, error) {
	q := url.Values{"select": {"*"}, "order": {"id.asc"}}
	var days []domain.DayRecord
	if err := c.do(ctx, http.MethodGet, string(slot), q, nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// dayPayload carries the owning event reference alongside the form fields on insert.
type dayPayload struct {
	EventID int64 `json:"event_id"`
	domain.DayForm
}

func (c *Client) InsertDay(ctx context.Context, slot domain.Slot, eventID int64, form domain.DayForm) (*domain.DayRecord, error) {
	var days []domain.DayRecord
	payload := dayPayload{EventID: eventID, DayForm: form}
	if err := c.do(ctx, http.MethodPost, string(slot), nil, payload, &days); err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("supabase insert returned no representation")
	}
	return &days[0], nil
}

func (c *Client) UpdateDay(ctx context.Context, slot domain.Slot, id int64, form domain.DayForm) (*domain.DayRecord, error) {
	q := url.Values{"id": {fmt.Sprintf("eq.%d", id)}}
	var days []domain.DayRecord
	if err := c.do(ctx, http.MethodPatch, string(slot), q, form, &days); err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, domain.ErrNotFound
	}
	return &days[0], nil
}

func (c *Client) DeleteDay(ctx context.Context, slot domain.Slot, id int64) error {
	q := url.Values{"id": {fmt.Sprintf("eq.%d", id)}}
	var deleted []json.RawMessage
	if err := c.do(ctx, http.MethodDelete, string(slot), q, nil, &deleted); err != nil {
		return err
	}
	if len(deleted) == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// do performs one PostgREST request and decodes the JSON response into out.
// Mutations ask for the affected rows back (Prefer: return=representation) so
// callers can distinguish a no-op from a hit.
func (c *Client) do(ctx context.Context, method, table string, query url.Values, body, out any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("supabase %s %s returned status %d: %s", method, table, resp.StatusCode, bytes.TrimSpace(detail))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode supabase response: %w", err)
	}
	return nil
}
