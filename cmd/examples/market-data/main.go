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

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/haleyga/gdax-cryptoexchange-api/pkg/api"
)

func main() {
	fmt.Println("gdax-cryptoexchange-api - Market Data Example")
	fmt.Println("=============================================")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Public-only client; no credentials needed for market data
	c := api.New("", nil)

	fmt.Println("\n1. Listing products...")
	products, err := c.GetProducts(ctx)
	if err != nil {
		log.Fatalf("Failed to list products: %v", err)
	}

	for _, p := range products {
		fmt.Printf("   %s (%s/%s) min=%s\n",
			aurora.Bold(p.ID), p.BaseCurrency, p.QuoteCurrency, p.BaseMinSize)
	}

	fmt.Println("\n2. Fetching the BTC-USD ticker...")
	ticker, err := c.GetProductTicker(ctx, "BTC-USD")
	if err != nil {
		log.Fatalf("Failed to fetch ticker: %v", err)
	}

	fmt.Printf("   Last trade: %s USD (bid %s / ask %s)\n",
		aurora.Bold(aurora.Green(ticker.Price)), ticker.Bid, ticker.Ask)

	fmt.Println("\n3. Fetching the aggregated order book...")
	book, err := c.GetProductOrderBook(ctx, "BTC-USD", 2)
	if err != nil {
		log.Fatalf("Failed to fetch order book: %v", err)
	}

	fmt.Printf("   Sequence %d: %d bid levels, %d ask levels\n",
		book.Sequence, len(book.Bids), len(book.Asks))

	fmt.Println("\n4. Fetching one day of hourly candles...")
	end := time.Now()
	start := end.Add(-24 * time.Hour)

	candles, err := c.GetProductHistoricRates(ctx, "BTC-USD", start, end, 3600)
	if err != nil {
		log.Fatalf("Failed to fetch candles: %v", err)
	}

	for _, candle := range candles {
		direction := aurora.Green("+")
		if candle.Close.LessThan(candle.Open) {
			direction = aurora.Red("-")
		}
		fmt.Printf("   %s %s o=%s c=%s v=%s\n",
			candle.Time.Format("2006-01-02 15:04"), direction, candle.Open, candle.Close, candle.Volume)
	}
}
