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
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haleyga/gdax-cryptoexchange-api/pkg/agent"
	"github.com/haleyga/gdax-cryptoexchange-api/pkg/auth"
)

func testCredentials() auth.Credentials {
	return auth.Credentials{
		Key:        "k",
		Secret:     "c2VjcmV0", // base64("secret")
		Passphrase: "p",
	}
}

// capture records the last request the facade dispatched
type capture struct {
	method string
	uri    string
	body   []byte
}

// newTestClient wires a client to a stub server that replies with response
func newTestClient(t *testing.T, response string, captured *capture) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.uri = r.URL.RequestURI()
		captured.body, _ = io.ReadAll(r.Body)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	return NewWithCredentials(testCredentials(), server.URL, nil)
}

func TestClient_ListOrdersRepeatedStatusKeys(t *testing.T) {
	// Multiple statuses must serialize as status=open&status=pending, never as
	// a bracketed or JSON-encoded array

	var got capture
	c := newTestClient(t, `[]`, &got)

	_, err := c.ListOrders(context.Background(), []string{"open", "pending"}, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "/orders?status=open&status=pending", got.uri)
}

func TestClient_ListOrdersFiltersAndPagination(t *testing.T) {
	var got capture
	c := newTestClient(t, `[]`, &got)

	_, err := c.ListOrders(
		context.Background(),
		[]string{"done"},
		"BTC-USD",
		&Pagination{After: "3000", Limit: 50},
	)
	require.NoError(t, err)

	assert.Equal(t, "/orders?status=done&product_id=BTC-USD&after=3000&limit=50", got.uri)
}

func TestClient_PlaceOrder(t *testing.T) {
	var got capture
	c := newTestClient(t, `{"id":"d0c5340b","status":"pending","price":"100.00","size":"1"}`, &got)

	order, err := c.PlaceOrder(context.Background(), OrderParams{
		Side:      "buy",
		ProductID: "BTC-USD",
		ClientOID: "c3f2e0b4-0000-0000-0000-000000000000",
		Price:     decimal.RequireFromString("100.00"),
		Size:      decimal.RequireFromString("1"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/orders", got.uri)
	assert.JSONEq(t, `{
		"side": "buy",
		"product_id": "BTC-USD",
		"client_oid": "c3f2e0b4-0000-0000-0000-000000000000",
		"price": "100.00",
		"size": "1"
	}`, string(got.body))

	assert.Equal(t, "d0c5340b", order.ID)
	assert.True(t, order.Price.Equal(decimal.RequireFromString("100")))
}

func TestClient_PlaceOrderGeneratesClientOID(t *testing.T) {
	var got capture
	c := newTestClient(t, `{"id":"d0c5340b"}`, &got)

	_, err := c.PlaceOrder(context.Background(), OrderParams{
		Side:      "sell",
		ProductID: "ETH-USD",
		Size:      decimal.RequireFromString("2"),
	})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.body, &body))

	oid, ok := body["client_oid"].(string)
	require.True(t, ok, "client_oid must be generated when absent")

	_, err = uuid.Parse(oid)
	assert.NoError(t, err)
}

func TestClient_CancelAllOrders(t *testing.T) {
	var got capture
	c := newTestClient(t, `["a1","b2"]`, &got)

	canceled, err := c.CancelAllOrders(context.Background(), "BTC-USD")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "/orders?product_id=BTC-USD", got.uri)
	assert.Equal(t, []string{"a1", "b2"}, canceled)
}

func TestClient_GetProducts(t *testing.T) {
	var got capture
	c := newTestClient(t, `[{
		"id": "BTC-USD",
		"base_currency": "BTC",
		"quote_currency": "USD",
		"base_min_size": "0.01",
		"base_max_size": "10000",
		"quote_increment": "0.01",
		"display_name": "BTC/USD",
		"status": "online"
	}]`, &got)

	products, err := c.GetProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/products", got.uri)
	require.Len(t, products, 1)
	assert.Equal(t, "BTC-USD", products[0].ID)
	assert.True(t, products[0].BaseMinSize.Equal(decimal.RequireFromString("0.01")))
}

func TestClient_GetProductOrderBook(t *testing.T) {
	var got capture
	c := newTestClient(t, `{
		"sequence": 3,
		"bids": [["295.96", "4.39088265", 2]],
		"asks": [["295.97", "25.23542881", 12]]
	}`, &got)

	book, err := c.GetProductOrderBook(context.Background(), "BTC-USD", 2)
	require.NoError(t, err)

	assert.Equal(t, "/products/BTC-USD/book?level=2", got.uri)
	assert.Equal(t, int64(3), book.Sequence)
	require.Len(t, book.Bids, 1)
	assert.True(t, book.Bids[0].Price.Equal(decimal.RequireFromString("295.96")))
	assert.Equal(t, 2, book.Bids[0].NumOrders)
}

func TestBookEntry_UnmarshalLevelThree(t *testing.T) {
	// The full book carries an order id in place of the level's order count

	var entry BookEntry
	err := json.Unmarshal([]byte(`["295.96","0.05","da863862-25f4-4868-ac41-005d11ab0a5f"]`), &entry)
	require.NoError(t, err)

	assert.Equal(t, "da863862-25f4-4868-ac41-005d11ab0a5f", entry.OrderID)
	assert.Zero(t, entry.NumOrders)
}

func TestClient_GetProductHistoricRates(t *testing.T) {
	var got capture
	c := newTestClient(t, `[[1415398768, 0.32, 4.2, 0.35, 4.2, 12.3]]`, &got)

	candles, err := c.GetProductHistoricRates(context.Background(), "BTC-USD", time.Time{}, time.Time{}, 3600)
	require.NoError(t, err)

	assert.Equal(t, "/products/BTC-USD/candles?granularity=3600", got.uri)
	require.Len(t, candles, 1)
	assert.Equal(t, int64(1415398768), candles[0].Time.Unix())
	assert.True(t, candles[0].Volume.Equal(decimal.RequireFromString("12.3")))
}

func TestClient_GetAccountHistoryPagination(t *testing.T) {
	var got capture
	c := newTestClient(t, `[]`, &got)

	_, err := c.GetAccountHistory(
		context.Background(),
		"a1b2c3d4",
		&Pagination{Before: "1071064024", Limit: 25},
	)
	require.NoError(t, err)

	assert.Equal(t, "/accounts/a1b2c3d4/ledger?before=1071064024&limit=25", got.uri)
}

func TestClient_PrivateWithoutCredentials(t *testing.T) {
	c := New("https://example.invalid", nil)

	_, err := c.ListAccounts(context.Background())
	assert.ErrorIs(t, err, agent.ErrUnauthenticated)

	_, err = c.PlaceOrder(context.Background(), OrderParams{Side: "buy", ProductID: "BTC-USD"})
	assert.ErrorIs(t, err, agent.ErrUnauthenticated)

	err = c.CancelOrder(context.Background(), "d0c5340b")
	assert.ErrorIs(t, err, agent.ErrUnauthenticated)
}

func TestClient_UpgradeEnablesPrivateEndpoints(t *testing.T) {
	var got capture
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.uri = r.URL.RequestURI()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	require.False(t, c.IsUpgraded())

	_, err := c.ListAccounts(context.Background())
	require.ErrorIs(t, err, agent.ErrUnauthenticated)

	c.Upgrade(testCredentials())
	require.True(t, c.IsUpgraded())

	_, err = c.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/accounts", got.uri)
}

func TestClient_GetServerTime(t *testing.T) {
	var got capture
	c := newTestClient(t, `{"iso":"2015-01-07T23:47:25.201Z","epoch":1420674445.201}`, &got)

	serverTime, err := c.GetServerTime(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/time", got.uri)
	assert.Equal(t, 1420674445.201, serverTime.Epoch)
	assert.Equal(t, 2015, serverTime.ISO.Year())
}
