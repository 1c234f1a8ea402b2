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
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/haleyga/gdax-cryptoexchange-api/pkg/agent"
)

// Product is a currency pair available for trading
type Product struct {
	ID             string          `json:"id"`
	BaseCurrency   string          `json:"base_currency"`
	QuoteCurrency  string          `json:"quote_currency"`
	BaseMinSize    decimal.Decimal `json:"base_min_size"`
	BaseMaxSize    decimal.Decimal `json:"base_max_size"`
	QuoteIncrement decimal.Decimal `json:"quote_increment"`
	DisplayName    string          `json:"display_name"`
	Status         string          `json:"status"`
	MarginEnabled  bool            `json:"margin_enabled"`
}

// BookEntry is one price level (levels 1 and 2) or one open order (level 3)
// of the order book. The exchange serializes entries as JSON arrays.
type BookEntry struct {
	Price decimal.Decimal
	Size  decimal.Decimal

	// NumOrders is the order count at this level (levels 1 and 2)
	NumOrders int

	// OrderID identifies the order (level 3 only)
	OrderID string
}

func (e *BookEntry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal book entry: %w", err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("book entry: expected 3 elements, got %d", len(raw))
	}

	if err := json.Unmarshal(raw[0], &e.Price); err != nil {
		return fmt.Errorf("book entry price: %w", err)
	}
	if err := json.Unmarshal(raw[1], &e.Size); err != nil {
		return fmt.Errorf("book entry size: %w", err)
	}

	// Third element is an order count on aggregated levels and an order id on
	// the full book
	if err := json.Unmarshal(raw[2], &e.NumOrders); err != nil {
		if err := json.Unmarshal(raw[2], &e.OrderID); err != nil {
			return fmt.Errorf("book entry: third element is neither count nor order id")
		}
	}

	return nil
}

// OrderBook is a snapshot of the order book for one product
type OrderBook struct {
	Sequence int64       `json:"sequence"`
	Bids     []BookEntry `json:"bids"`
	Asks     []BookEntry `json:"asks"`
}

// Ticker is snapshot information about the last trade and current best bid
// and ask
type Ticker struct {
	TradeID int64           `json:"trade_id"`
	Price   decimal.Decimal `json:"price"`
	Size    decimal.Decimal `json:"size"`
	Bid     decimal.Decimal `json:"bid"`
	Ask     decimal.Decimal `json:"ask"`
	Volume  decimal.Decimal `json:"volume"`
	Time    time.Time       `json:"time"`
}

// Trade is one completed trade on a product
type Trade struct {
	Time    time.Time       `json:"time"`
	TradeID int64           `json:"trade_id"`
	Price   decimal.Decimal `json:"price"`
	Size    decimal.Decimal `json:"size"`
	Side    string          `json:"side"`
}

// Candle is one historic rate bucket. The exchange serializes candles as
// [time, low, high, open, close, volume] arrays.
type Candle struct {
	Time   time.Time
	Low    decimal.Decimal
	High   decimal.Decimal
	Open   decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

func (c *Candle) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal candle: %w", err)
	}
	if len(raw) != 6 {
		return fmt.Errorf("candle: expected 6 elements, got %d", len(raw))
	}

	c.Time = time.Unix(int64(raw[0]), 0).UTC()
	c.Low = decimal.NewFromFloat(raw[1])
	c.High = decimal.NewFromFloat(raw[2])
	c.Open = decimal.NewFromFloat(raw[3])
	c.Close = decimal.NewFromFloat(raw[4])
	c.Volume = decimal.NewFromFloat(raw[5])

	return nil
}

// Stats24Hr is 24-hour statistics for one product
type Stats24Hr struct {
	Open        decimal.Decimal `json:"open"`
	High        decimal.Decimal `json:"high"`
	Low         decimal.Decimal `json:"low"`
	Volume      decimal.Decimal `json:"volume"`
	Last        decimal.Decimal `json:"last"`
	Volume30Day decimal.Decimal `json:"volume_30day"`
}

// Currency is one currency known to the exchange
type Currency struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	MinSize decimal.Decimal `json:"min_size"`
}

// ServerTime is the exchange's notion of now
type ServerTime struct {
	ISO   time.Time `json:"iso"`
	Epoch float64   `json:"epoch"`
}

// GetProducts lists the products available for trading
func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	resp, err := c.agent.GetPublic(ctx, "products", nil)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := resp.Decode(&products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProductOrderBook retrieves a snapshot of the order book for a product.
// Level 1 returns the best bid and ask, level 2 the top fifty aggregated
// levels, level 3 the full non-aggregated book.
func (c *Client) GetProductOrderBook(ctx context.Context, productID string, level int) (*OrderBook, error) {
	var params *agent.Params
	if level > 0 {
		params = agent.NewParams().Set("level", level)
	}

	resp, err := c.agent.GetPublic(ctx, fmt.Sprintf("products/%s/book", productID), params)
	if err != nil {
		return nil, err
	}

	var book OrderBook
	if err := resp.Decode(&book); err != nil {
		return nil, err
	}

	return &book, nil
}

// GetProductTicker retrieves snapshot information about the last trade,
// best bid and ask, and 24h volume for a product
func (c *Client) GetProductTicker(ctx context.Context, productID string) (*Ticker, error) {
	resp, err := c.agent.GetPublic(ctx, fmt.Sprintf("products/%s/ticker", productID), nil)
	if err != nil {
		return nil, err
	}

	var ticker Ticker
	if err := resp.Decode(&ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}

// GetProductTrades lists the latest trades for a product, newest first
func (c *Client) GetProductTrades(ctx context.Context, productID string, pagination *Pagination) ([]Trade, error) {
	resp, err := c.agent.GetPublic(ctx, fmt.Sprintf("products/%s/trades", productID), pagination.apply(nil))
	if err != nil {
		return nil, err
	}

	var trades []Trade
	if err := resp.Decode(&trades); err != nil {
		return nil, err
	}

	return trades, nil
}

// GetProductHistoricRates retrieves historic rate candles for a product.
// Granularity is the bucket size in seconds. The exchange caps the number of
// candles per request, so wide ranges need multiple calls.
func (c *Client) GetProductHistoricRates(ctx context.Context, productID string, start time.Time, end time.Time, granularity int) ([]Candle, error) {
	params := agent.NewParams()
	if !start.IsZero() {
		params.Set("start", start.UTC().Format(time.RFC3339))
	}
	if !end.IsZero() {
		params.Set("end", end.UTC().Format(time.RFC3339))
	}
	if granularity > 0 {
		params.Set("granularity", granularity)
	}

	resp, err := c.agent.GetPublic(ctx, fmt.Sprintf("products/%s/candles", productID), params)
	if err != nil {
		return nil, err
	}

	var candles []Candle
	if err := resp.Decode(&candles); err != nil {
		return nil, err
	}

	return candles, nil
}

// GetProduct24HrStats retrieves 24-hour statistics for a product
func (c *Client) GetProduct24HrStats(ctx context.Context, productID string) (*Stats24Hr, error) {
	resp, err := c.agent.GetPublic(ctx, fmt.Sprintf("products/%s/stats", productID), nil)
	if err != nil {
		return nil, err
	}

	var stats Stats24Hr
	if err := resp.Decode(&stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetCurrencies lists the currencies known to the exchange
func (c *Client) GetCurrencies(ctx context.Context) ([]Currency, error) {
	resp, err := c.agent.GetPublic(ctx, "currencies", nil)
	if err != nil {
		return nil, err
	}

	var currencies []Currency
	if err := resp.Decode(&currencies); err != nil {
		return nil, err
	}

	return currencies, nil
}

// GetServerTime retrieves the API server time
func (c *Client) GetServerTime(ctx context.Context) (*ServerTime, error) {
	resp, err := c.agent.GetPublic(ctx, "time", nil)
	if err != nil {
		return nil, err
	}

	var serverTime ServerTime
	if err := resp.Decode(&serverTime); err != nil {
		return nil, err
	}

	return &serverTime, nil
}
