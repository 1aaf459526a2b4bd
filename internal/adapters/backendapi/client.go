// Package backendapi is the fetch adapter for the spendcheck HTTP API. Every
// call carries an explicit domain.Session; there is no ambient login state.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/spendcheck/internal/apperrors"
	"github.com/SscSPs/spendcheck/internal/core/domain"
	portsrepo "github.com/SscSPs/spendcheck/internal/core/ports/repositories"
	"github.com/SscSPs/spendcheck/internal/dto"
	"golang.org/x/oauth2"
)

const defaultTimeout = 15 * time.Second

// Client talks to the backend on behalf of a session.
type Client struct {
	baseURL string
	base    http.RoundTripper
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.base = rt }
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    http.DefaultTransport,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portsrepo.SpendSource = (*Client)(nil)

// FetchTransactions lists the session user's transactions matching filter.
func (c *Client) FetchTransactions(ctx context.Context, session domain.Session, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var wire []wireTransaction
	if err := c.get(ctx, session, "transactions", filterQuery(filter), false, &wire); err != nil {
		return nil, err
	}
	return toDomainTransactions(session.UserID, wire)
}

// FetchBudget retrieves one month's budget. A missing budget is apperrors.ErrNotFound.
func (c *Client) FetchBudget(ctx context.Context, session domain.Session, month domain.MonthKey) (*domain.BudgetRecord, error) {
	var res dto.GetBudgetResponse
	if err := c.get(ctx, session, "budgets/"+url.PathEscape(month.String()), nil, true, &res); err != nil {
		return nil, err
	}
	if !res.Success || res.Budget == nil {
		return nil, apperrors.ErrNotFound
	}
	return &domain.BudgetRecord{UserID: session.UserID, Month: res.Budget.Month, Limits: res.Budget.Budgets}, nil
}

// FetchBudgets retrieves all of the session user's budgets, ascending by month.
func (c *Client) FetchBudgets(ctx context.Context, session domain.Session) ([]domain.BudgetRecord, error) {
	var res dto.ListBudgetsResponse
	if err := c.get(ctx, session, "budgets", nil, false, &res); err != nil {
		return nil, err
	}
	out := make([]domain.BudgetRecord, 0, len(res.Budgets))
	for key, b := range res.Budgets {
		month := b.Month
		if month == "" {
			month = domain.MonthKey(key)
		}
		out = append(out, domain.BudgetRecord{UserID: session.UserID, Month: month, Limits: b.Budgets})
	}
	sortByMonth(out)
	return out, nil
}

// SaveBudget upserts the budget for req.Month.
func (c *Client) SaveBudget(ctx context.Context, session domain.Session, req dto.SaveBudgetRequest) (*domain.BudgetRecord, error) {
	var res dto.SaveBudgetResponse
	if err := c.do(ctx, session, http.MethodPost, "budgets", nil, req, false, &res); err != nil {
		return nil, err
	}
	return &domain.BudgetRecord{UserID: session.UserID, Month: res.Budget.Month, Limits: res.Budget.Budgets}, nil
}

// MonthlyAnalysis retrieves the server-side analysis of a transaction window.
func (c *Client) MonthlyAnalysis(ctx context.Context, session domain.Session, filter domain.TransactionFilter) (*dto.MonthlyAnalysisResponse, error) {
	var res dto.MonthlyAnalysisResponse
	if err := c.get(ctx, session, "transactions/monthly-analysis", filterQuery(filter), false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BudgetSummary retrieves the server-side budget vs actual summary of month.
func (c *Client) BudgetSummary(ctx context.Context, session domain.Session, month domain.MonthKey) (*dto.BudgetSummaryResponse, error) {
	var res dto.BudgetSummaryResponse
	if err := c.get(ctx, session, "get_budget_summary/"+url.PathEscape(month.String()), nil, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, session domain.Session, path string, query url.Values, notFoundOK bool, out any) error {
	return c.do(ctx, session, http.MethodGet, path, query, nil, notFoundOK, out)
}

// do performs one request against /api/users/{userId}/{path}. With notFoundOK
// a 404 is reported as apperrors.ErrNotFound instead of a transport failure.
func (c *Client) do(ctx context.Context, session domain.Session, method, path string, query url.Values, body any, notFoundOK bool, out any) error {
	if !session.Valid() {
		return apperrors.ErrAuthRequired
	}
	op := method + " " + path

	endpoint := fmt.Sprintf("%s/api/users/%s/%s", c.baseURL, url.PathEscape(session.UserID), path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient(session).Do(req)
	if err != nil {
		return apperrors.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound && notFoundOK:
		return apperrors.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.NewTransportError(op, apperrors.ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		return apperrors.NewTransportError(op, apperrors.ErrForbidden)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.NewTransportError(op, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewTransportError(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// httpClient attaches the session token as a bearer credential.
func (c *Client) httpClient(session domain.Session) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: session.Token, TokenType: "Bearer"})
	return &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: c.base},
		Timeout:   c.timeout,
	}
}

func filterQuery(filter domain.TransactionFilter) url.Values {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.StartDate != nil {
		q.Set("startDate", filter.StartDate.UTC().Format(time.RFC3339Nano))
	}
	if filter.EndDate != nil {
		q.Set("endDate", filter.EndDate.UTC().Format(time.RFC3339Nano))
	}
	return q
}
