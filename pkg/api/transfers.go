package api

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/haleyga/gdax-cryptoexchange-api/pkg/agent"
)

// Transfer is the exchange's acknowledgment of a deposit or withdrawal
type Transfer struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`

	// PayoutAt is set for withdrawals to a payment method
	PayoutAt time.Time `json:"payout_at"`
}

// PaymentMethod is one linked external payment method
type PaymentMethod struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	PrimaryBuy    bool   `json:"primary_buy"`
	PrimarySell   bool   `json:"primary_sell"`
	AllowBuy      bool   `json:"allow_buy"`
	AllowSell     bool   `json:"allow_sell"`
	AllowDeposit  bool   `json:"allow_deposit"`
	AllowWithdraw bool   `json:"allow_withdraw"`
}

// CoinbaseAccount is one linked Coinbase wallet
type CoinbaseAccount struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Type     string          `json:"type"`
	Primary  bool            `json:"primary"`
	Active   bool            `json:"active"`
}

// transfer posts one funds-movement request and decodes the acknowledgment
func (c *Client) transfer(ctx context.Context, endpoint string, body *agent.Params) (*Transfer, error) {
	resp, err := c.agent.PostPrivate(ctx, endpoint, body)
	if err != nil {
		return nil, err
	}

	var t Transfer
	if err := resp.Decode(&t); err != nil {
		return nil, err
	}

	return &t, nil
}

// DepositPaymentMethod deposits funds from a linked payment method
func (c *Client) DepositPaymentMethod(ctx context.Context, amount decimal.Decimal, currency string, paymentMethodID string) (*Transfer, error) {
	body := agent.NewParams().
		Set("amount", amount).
		Set("currency", currency).
		Set("payment_method_id", paymentMethodID)

	return c.transfer(ctx, "deposits/payment-method", body)
}

// DepositCoinbaseAccount deposits funds from a linked Coinbase wallet
func (c *Client) DepositCoinbaseAccount(ctx context.Context, amount decimal.Decimal, currency string, coinbaseAccountID string) (*Transfer, error) {
	body := agent.NewParams().
		Set("amount", amount).
		Set("currency", currency).
		Set("coinbase_account_id", coinbaseAccountID)

	return c.transfer(ctx, "deposits/coinbase-account", body)
}

// WithdrawPaymentMethod withdraws funds to a linked payment method
func (c *Client) WithdrawPaymentMethod(ctx context.Context, amount decimal.Decimal, currency string, paymentMethodID string) (*Transfer, error) {
	body := agent.NewParams().
		Set("amount", amount).
		Set("currency", currency).
		Set("payment_method_id", paymentMethodID)

	return c.transfer(ctx, "withdrawals/payment-method", body)
}

// WithdrawCoinbaseAccount withdraws funds to a linked Coinbase wallet
func (c *Client) WithdrawCoinbaseAccount(ctx context.Context, amount decimal.Decimal, currency string, coinbaseAccountID string) (*Transfer, error) {
	body := agent.NewParams().
		Set("amount", amount).
		Set("currency", currency).
		Set("coinbase_account_id", coinbaseAccountID)

	return c.transfer(ctx, "withdrawals/coinbase-account", body)
}

// WithdrawCrypto withdraws funds to an external crypto address
func (c *Client) WithdrawCrypto(ctx context.Context, amount decimal.Decimal, currency string, cryptoAddress string) (*Transfer, error) {
	body := agent.NewParams().
		Set("amount", amount).
		Set("currency", currency).
		Set("crypto_address", cryptoAddress)

	return c.transfer(ctx, "withdrawals/crypto", body)
}

// ListPaymentMethods lists the linked external payment methods
func (c *Client) ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	resp, err := c.agent.GetPrivate(ctx, "payment-methods", nil)
	if err != nil {
		return nil, err
	}

	var methods []PaymentMethod
	if err := resp.Decode(&methods); err != nil {
		return nil, err
	}

	return methods, nil
}

// ListCoinbaseAccounts lists the linked Coinbase wallets
func (c *Client) ListCoinbaseAccounts(ctx context.Context) ([]CoinbaseAccount, error) {
	resp, err := c.agent.GetPrivate(ctx, "coinbase-accounts", nil)
	if err != nil {
		return nil, err
	}

	var accounts []CoinbaseAccount
	if err := resp.Decode(&accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}
