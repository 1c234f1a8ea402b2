package api

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/haleyga/gdax-cryptoexchange-api/pkg/agent"
)

// ReportParams describes a report to generate
type ReportParams struct {
	// Type is "fills" or "account"
	Type      string
	StartDate time.Time
	EndDate   time.Time

	// ProductID scopes a fills report; AccountID scopes an account report
	ProductID string
	AccountID string

	// Format is "pdf" or "csv" (server default: pdf)
	Format string

	// Email, when set, receives the report once ready
	Email string
}

// Report is the status of a generated report
type Report struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	FileURL     string    `json:"file_url"`
	Params      struct {
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
	} `json:"params"`
}

// TrailingVolume is the 30-day trailing volume for one product
type TrailingVolume struct {
	ProductID      string          `json:"product_id"`
	ExchangeVolume decimal.Decimal `json:"exchange_volume"`
	Volume         decimal.Decimal `json:"volume"`
	RecordedAt     time.Time       `json:"recorded_at"`
}

// CreateReport queues generation of a fills or account report. Reports are
// generated asynchronously; poll GetReportStatus until the file is ready.
func (c *Client) CreateReport(ctx context.Context, params ReportParams) (*Report, error) {
	body := agent.NewParams().
		Set("type", params.Type).
		Set("start_date", params.StartDate.UTC().Format(time.RFC3339)).
		Set("end_date", params.EndDate.UTC().Format(time.RFC3339))

	if params.ProductID != "" {
		body.Set("product_id", params.ProductID)
	}
	if params.AccountID != "" {
		body.Set("account_id", params.AccountID)
	}
	if params.Format != "" {
		body.Set("format", params.Format)
	}
	if params.Email != "" {
		body.Set("email", params.Email)
	}

	resp, err := c.agent.PostPrivate(ctx, "reports", body)
	if err != nil {
		return nil, err
	}

	var report Report
	if err := resp.Decode(&report); err != nil {
		return nil, err
	}

	return &report, nil
}

// GetReportStatus polls a queued report
func (c *Client) GetReportStatus(ctx context.Context, reportID string) (*Report, error) {
	resp, err := c.agent.GetPrivate(ctx, fmt.Sprintf("reports/%s", reportID), nil)
	if err != nil {
		return nil, err
	}

	var report Report
	if err := resp.Decode(&report); err != nil {
		return nil, err
	}

	return &report, nil
}

// GetTrailingVolume retrieves the profile's 30-day trailing volume per product
func (c *Client) GetTrailingVolume(ctx context.Context) ([]TrailingVolume, error) {
	resp, err := c.agent.GetPrivate(ctx, "users/self/trailing-volume", nil)
	if err != nil {
		return nil, err
	}

	var volumes []TrailingVolume
	if err := resp.Decode(&volumes); err != nil {
		return nil, err
	}

	return volumes, nil
}
