package api

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/haleyga/gdax-cryptoexchange-api/pkg/agent"
)

// Funding is one margin funding record
type Funding struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	ProfileID     string          `json:"profile_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	Currency      string          `json:"currency"`
	RepaidAmount  decimal.Decimal `json:"repaid_amount"`
	DefaultAmount decimal.Decimal `json:"default_amount"`
	RepaidDefault bool            `json:"repaid_default"`
}

// MarginTransferParams describes a transfer between a standard profile and a
// margin profile.
type MarginTransferParams struct {
	MarginProfileID string
	// Type is "deposit" or "withdraw", relative to the margin profile
	Type     string
	Currency string
	Amount   decimal.Decimal
}

// MarginTransfer is the exchange's record of an executed margin transfer
type MarginTransfer struct {
	CreatedAt       time.Time       `json:"created_at"`
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	ProfileID       string          `json:"profile_id"`
	MarginProfileID string          `json:"margin_profile_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	AccountID       string          `json:"account_id"`
	MarginAccountID string          `json:"margin_account_id"`
	Status          string          `json:"status"`
	Nonce           int64           `json:"nonce"`
}

// Position is an overview of the authenticated profile, including any open
// margin position.
type Position struct {
	Status  string `json:"status"`
	Funding struct {
		MaxFundingValue   decimal.Decimal `json:"max_funding_value"`
		FundingValue      decimal.Decimal `json:"funding_value"`
		OldestOutstanding struct {
			ID        string          `json:"id"`
			OrderID   string          `json:"order_id"`
			CreatedAt time.Time       `json:"created_at"`
			Currency  string          `json:"currency"`
			AccountID string          `json:"account_id"`
			Amount    decimal.Decimal `json:"amount"`
		} `json:"oldest_outstanding"`
	} `json:"funding"`
	Accounts map[string]struct {
		ID            string          `json:"id"`
		Balance       decimal.Decimal `json:"balance"`
		Hold          decimal.Decimal `json:"hold"`
		FundedAmount  decimal.Decimal `json:"funded_amount"`
		DefaultAmount decimal.Decimal `json:"default_amount"`
	} `json:"accounts"`
	MarginCall struct {
		Active bool            `json:"active"`
		Price  decimal.Decimal `json:"price"`
		Side   string          `json:"side"`
		Size   decimal.Decimal `json:"size"`
		Funds  decimal.Decimal `json:"funds"`
	} `json:"margin_call"`
	UserID    string `json:"user_id"`
	ProfileID string `json:"profile_id"`
	Position  struct {
		Type       string          `json:"type"`
		Size       decimal.Decimal `json:"size"`
		Complement decimal.Decimal `json:"complement"`
		MaxSize    decimal.Decimal `json:"max_size"`
	} `json:"position"`
	ProductID string `json:"product_id"`
}

// ListFundings lists margin funding records, optionally filtered by status
// (outstanding, settled or rejected)
func (c *Client) ListFundings(ctx context.Context, status string, pagination *Pagination) ([]Funding, error) {
	params := agent.NewParams()
	if status != "" {
		params.Set("status", status)
	}

	resp, err := c.agent.GetPrivate(ctx, "funding", pagination.apply(params))
	if err != nil {
		return nil, err
	}

	var fundings []Funding
	if err := resp.Decode(&fundings); err != nil {
		return nil, err
	}

	return fundings, nil
}

// RepayFunding repays the oldest funding records first for the given currency
func (c *Client) RepayFunding(ctx context.Context, amount decimal.Decimal, currency string) error {
	body := agent.NewParams().
		Set("amount", amount).
		Set("currency", currency)

	_, err := c.agent.PostPrivate(ctx, "funding/repay", body)
	return err
}

// MarginTransfer moves funds between a standard profile and a margin profile
func (c *Client) MarginTransfer(ctx context.Context, params MarginTransferParams) (*MarginTransfer, error) {
	body := agent.NewParams().
		Set("margin_profile_id", params.MarginProfileID).
		Set("type", params.Type).
		Set("currency", params.Currency).
		Set("amount", params.Amount)

	resp, err := c.agent.PostPrivate(ctx, "profiles/margin-transfer", body)
	if err != nil {
		return nil, err
	}

	var transfer MarginTransfer
	if err := resp.Decode(&transfer); err != nil {
		return nil, err
	}

	return &transfer, nil
}

// GetPosition retrieves an overview of the profile, including any open
// margin position
func (c *Client) GetPosition(ctx context.Context) (*Position, error) {
	resp, err := c.agent.GetPrivate(ctx, "position", nil)
	if err != nil {
		return nil, err
	}

	var position Position
	if err := resp.Decode(&position); err != nil {
		return nil, err
	}

	return &position, nil
}

// ClosePosition closes the open margin position. With repayOnly, funding is
// repaid without closing the position itself.
func (c *Client) ClosePosition(ctx context.Context, repayOnly bool) error {
	body := agent.NewParams().Set("repay_only", repayOnly)

	_, err := c.agent.PostPrivate(ctx, "position/close", body)
	return err
}
