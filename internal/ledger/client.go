// Package ledger pushes order records to the shop's remote order sheet.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// ErrInvalidURL is returned for an endpoint that is not an http(s) URL.
var ErrInvalidURL = errors.New("ledger url must start with http")

// DateLayout is the day format the sheet expects.
const DateLayout = "02/01/2006"

// Entry is one order row as the remote sheet stores it.
type Entry struct {
	Date             time.Time
	Ref              string
	Client           string
	Product          string
	Quantity         int
	Price            string
	Details          string
	Salesperson      string
	ProductionStatus string
	AccountingStatus string
}

// fields returns the form fields in sheet column order.
func (e Entry) fields() [][2]string {
	return [][2]string{
		{"Date", e.Date.Format(DateLayout)},
		{"Ref", e.Ref},
		{"Client", e.Client},
		{"Produit", e.Product},
		{"Quantité", strconv.Itoa(e.Quantity)},
		{"Prix HT", e.Price},
		{"Détails", e.Details},
		{"Commercial", e.Salesperson},
		{"Statut_Prod", e.ProductionStatus},
		{"Statut_Compta", e.AccountingStatus},
	}
}

// Client posts entries to the ledger endpoint, retrying transient failures
// with exponential backoff.
type Client struct {
	url             string
	httpClient      *http.Client
	initialInterval time.Duration
	maxElapsedTime  time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRetry bounds the retry schedule.
func WithRetry(initialInterval, maxElapsedTime time.Duration) ClientOption {
	return func(c *Client) {
		if initialInterval > 0 {
			c.initialInterval = initialInterval
		}
		if maxElapsedTime > 0 {
			c.maxElapsedTime = maxElapsedTime
		}
	}
}

// NewClient creates a ledger client for url.
func NewClient(url string, opts ...ClientOption) (*Client, error) {
	if !strings.HasPrefix(url, "http") {
		return nil, ErrInvalidURL
	}

	c := &Client{
		url:             url,
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		initialInterval: 500 * time.Millisecond,
		maxElapsedTime:  time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Push sends entry, retrying until the endpoint accepts it, a client error
// makes retrying pointless, or the retry budget runs out.
func (c *Client) Push(ctx context.Context, entry Entry) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval
	policy.MaxElapsedTime = c.maxElapsedTime

	err := backoff.RetryNotify(
		func() error {
			return c.post(ctx, entry)
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.Warn().
				Err(err).
				Str("ref", entry.Ref).
				Dur("next_attempt_in", next).
				Msg("Ledger sync failed, retrying")
		},
	)
	if err != nil {
		return fmt.Errorf("ledger sync %s: %w", entry.Ref, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, entry Entry) error {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	for _, f := range entry.fields() {
		if err := form.WriteField(f[0], f[1]); err != nil {
			return backoff.Permanent(err)
		}
	}
	if err := form.Close(); err != nil {
		return backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("ledger responded %d", resp.StatusCode)
	default:
		return backoff.Permanent(fmt.Errorf("ledger rejected entry: %d", resp.StatusCode))
	}
}

// Pull fetches every row of the sheet. Rows are objects keyed by the sheet
// headers; cells may be strings or numbers. Rows without a ref are skipped.
func (c *Client) Pull(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ledger pull: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ledger pull responded %d", resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("ledger pull: decode rows: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entry := entryFromRow(row)
		if entry.Ref == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func entryFromRow(row map[string]any) Entry {
	cell := func(key string) string {
		switch v := row[key].(type) {
		case string:
			return strings.TrimSpace(v)
		case json.Number:
			return v.String()
		case bool:
			return strconv.FormatBool(v)
		default:
			return ""
		}
	}

	entry := Entry{
		Ref:              cell("Ref"),
		Client:           cell("Client"),
		Product:          cell("Produit"),
		Price:            cell("Prix HT"),
		Details:          cell("Détails"),
		Salesperson:      cell("Commercial"),
		ProductionStatus: cell("Statut_Prod"),
		AccountingStatus: cell("Statut_Compta"),
	}
	if qty, err := strconv.ParseFloat(cell("Quantité"), 64); err == nil {
		entry.Quantity = int(qty)
	}
	entry.Date = parseDate(cell("Date"))
	return entry
}

// parseDate reads a sheet date, either in the sheet's day format or as the
// timestamp a spreadsheet export writes. Unreadable dates are zero.
func parseDate(s string) time.Time {
	for _, layout := range []string{DateLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
