// Copyright (C) 2026 haleyga
//
// This file is part of gdax-cryptoexchange-api.
//
// gdax-cryptoexchange-api is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gdax-cryptoexchange-api is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with gdax-cryptoexchange-api.  If not, see <https://www.gnu.org/licenses/>.

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/haleyga/gdax-cryptoexchange-api/pkg/agent"
)

// Order is one order as reported by the exchange
type Order struct {
	ID            string          `json:"id"`
	ClientOID     string          `json:"client_oid"`
	Price         decimal.Decimal `json:"price"`
	Size          decimal.Decimal `json:"size"`
	ProductID     string          `json:"product_id"`
	Side          string          `json:"side"`
	STP           string          `json:"stp"`
	Type          string          `json:"type"`
	TimeInForce   string          `json:"time_in_force"`
	PostOnly      bool            `json:"post_only"`
	CreatedAt     time.Time       `json:"created_at"`
	FillFees      decimal.Decimal `json:"fill_fees"`
	FilledSize    decimal.Decimal `json:"filled_size"`
	ExecutedValue decimal.Decimal `json:"executed_value"`
	Status        string          `json:"status"`
	Settled       bool            `json:"settled"`
}

// Fill is one execution against an order
type Fill struct {
	TradeID   int64           `json:"trade_id"`
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Size      decimal.Decimal `json:"size"`
	OrderID   string          `json:"order_id"`
	CreatedAt time.Time       `json:"created_at"`
	Liquidity string          `json:"liquidity"`
	Fee       decimal.Decimal `json:"fee"`
	Settled   bool            `json:"settled"`
	Side      string          `json:"side"`
}

// OrderParams describes an order to place. Zero-valued optional fields are
// omitted from the request.
type OrderParams struct {
	// Type is "limit" or "market" (server default: limit)
	Type string

	// Side is "buy" or "sell"
	Side string

	// ProductID is the pair to trade, e.g. "BTC-USD"
	ProductID string

	// ClientOID is a client-chosen idempotency id. Generated when empty.
	ClientOID string

	// STP is the self-trade prevention flag (dc, co, cn, cb)
	STP string

	// Price and Size apply to limit orders
	Price decimal.Decimal
	Size  decimal.Decimal

	// TimeInForce is GTC, GTT, IOC or FOK; CancelAfter pairs with GTT
	TimeInForce string
	CancelAfter string
	PostOnly    bool

	// Funds is the quote amount for market orders placed by value
	Funds decimal.Decimal
}

// body serializes the order in the field order the exchange documents
func (p *OrderParams) body() *agent.Params {
	body := agent.NewParams()

	if p.Type != "" {
		body.Set("type", p.Type)
	}

	body.Set("side", p.Side)
	body.Set("product_id", p.ProductID)

	if p.ClientOID != "" {
		body.Set("client_oid", p.ClientOID)
	}
	if p.STP != "" {
		body.Set("stp", p.STP)
	}
	if !p.Price.IsZero() {
		body.Set("price", p.Price)
	}
	if !p.Size.IsZero() {
		body.Set("size", p.Size)
	}
	if p.TimeInForce != "" {
		body.Set("time_in_force", p.TimeInForce)
	}
	if p.CancelAfter != "" {
		body.Set("cancel_after", p.CancelAfter)
	}
	if p.PostOnly {
		body.Set("post_only", true)
	}
	if !p.Funds.IsZero() {
		body.Set("funds", p.Funds)
	}

	return body
}

// PlaceOrder submits a new order. A client_oid is generated when the caller
// supplies none, so resubmitting after an ambiguous failure stays idempotent.
func (c *Client) PlaceOrder(ctx context.Context, params OrderParams) (*Order, error) {
	if params.ClientOID == "" {
		params.ClientOID = uuid.NewString()
	}

	resp, err := c.agent.PostPrivate(ctx, "orders", params.body())
	if err != nil {
		return nil, err
	}

	var order Order
	if err := resp.Decode(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

// CancelOrder cancels one open order
func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	_, err := c.agent.DeletePrivate(ctx, fmt.Sprintf("orders/%s", orderID), nil)
	return err
}

// CancelAllOrders cancels all open orders, optionally only for one product.
// The ids of the canceled orders are returned.
func (c *Client) CancelAllOrders(ctx context.Context, productID string) ([]string, error) {
	var params *agent.Params
	if productID != "" {
		params = agent.NewParams().Set("product_id", productID)
	}

	resp, err := c.agent.DeletePrivate(ctx, "orders", params)
	if err != nil {
		return nil, err
	}

	var canceled []string
	if err := resp.Decode(&canceled); err != nil {
		return nil, err
	}

	return canceled, nil
}

// ListOrders lists orders, filtered by status and product. Multiple statuses
// serialize as repeated status keys, the form the exchange expects.
func (c *Client) ListOrders(ctx context.Context, statuses []string, productID string, pagination *Pagination) ([]Order, error) {
	params := agent.NewParams()
	for _, status := range statuses {
		params.Add("status", status)
	}
	if productID != "" {
		params.Set("product_id", productID)
	}

	resp, err := c.agent.GetPrivate(ctx, "orders", pagination.apply(params))
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := resp.Decode(&orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrder retrieves one order by server-assigned id
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	resp, err := c.agent.GetPrivate(ctx, fmt.Sprintf("orders/%s", orderID), nil)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := resp.Decode(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListFills lists recent fills, filtered by order and product
func (c *Client) ListFills(ctx context.Context, orderID string, productID string, pagination *Pagination) ([]Fill, error) {
	params := agent.NewParams()
	if orderID != "" {
		params.Set("order_id", orderID)
	}
	if productID != "" {
		params.Set("product_id", productID)
	}

	resp, err := c.agent.GetPrivate(ctx, "fills", pagination.apply(params))
	if err != nil {
		return nil, err
	}

	var fills []Fill
	if err := resp.Decode(&fills); err != nil {
		return nil, err
	}

	return fills, nil
}
