package api

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Account is one trading account balance
type Account struct {
	ID            string          `json:"id"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	Available     decimal.Decimal `json:"available"`
	Hold          decimal.Decimal `json:"hold"`
	ProfileID     string          `json:"profile_id"`
	MarginEnabled bool            `json:"margin_enabled"`
}

// LedgerEntry is one line of account activity
type LedgerEntry struct {
	ID        int64           `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	Type      string          `json:"type"`
	Details   LedgerDetails   `json:"details"`
}

// LedgerDetails references the order and trade behind a ledger entry
type LedgerDetails struct {
	OrderID   string `json:"order_id"`
	TradeID   string `json:"trade_id"`
	ProductID string `json:"product_id"`
}

// Hold is funds held for an open order or pending withdrawal
type Hold struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Ref       string          `json:"ref"`
}

// ListAccounts lists the trading accounts of the authenticated profile
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	resp, err := c.agent.GetPrivate(ctx, "accounts", nil)
	if err != nil {
		return nil, err
	}

	var accounts []Account
	if err := resp.Decode(&accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

// GetAccount retrieves one trading account
func (c *Client) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	resp, err := c.agent.GetPrivate(ctx, fmt.Sprintf("accounts/%s", accountID), nil)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := resp.Decode(&account); err != nil {
		return nil, err
	}

	return &account, nil
}

// GetAccountHistory lists the ledger of an account, newest first
func (c *Client) GetAccountHistory(ctx context.Context, accountID string, pagination *Pagination) ([]LedgerEntry, error) {
	resp, err := c.agent.GetPrivate(ctx, fmt.Sprintf("accounts/%s/ledger", accountID), pagination.apply(nil))
	if err != nil {
		return nil, err
	}

	var entries []LedgerEntry
	if err := resp.Decode(&entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetAccountHolds lists the holds on an account
func (c *Client) GetAccountHolds(ctx context.Context, accountID string, pagination *Pagination) ([]Hold, error) {
	resp, err := c.agent.GetPrivate(ctx, fmt.Sprintf("accounts/%s/holds", accountID), pagination.apply(nil))
	if err != nil {
		return nil, err
	}

	var holds []Hold
	if err := resp.Decode(&holds); err != nil {
		return nil, err
	}

	return holds, nil
}
