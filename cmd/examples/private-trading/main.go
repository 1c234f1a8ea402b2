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
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"

	gdax "github.com/haleyga/gdax-cryptoexchange-api"
	"github.com/haleyga/gdax-cryptoexchange-api/pkg/api"
	"github.com/haleyga/gdax-cryptoexchange-api/pkg/auth"
)

func main() {
	fmt.Println("gdax-cryptoexchange-api - Private Trading Example")
	fmt.Println("=================================================")
	fmt.Println("\nThis example runs against the sandbox. Set GDAX_KEY, GDAX_SECRET")
	fmt.Println("and GDAX_PASSPHRASE to sandbox credentials before running.")

	creds := auth.Credentials{
		Key:        os.Getenv("GDAX_KEY"),
		Secret:     os.Getenv("GDAX_SECRET"),
		Passphrase: os.Getenv("GDAX_PASSPHRASE"),
	}
	if creds.Key == "" || creds.Secret == "" || creds.Passphrase == "" {
		log.Fatal("Missing credentials in environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := api.NewWithCredentials(creds, gdax.SandboxBaseURL, nil)

	fmt.Println("\n1. Listing accounts...")
	accounts, err := c.ListAccounts(ctx)
	if err != nil {
		log.Fatalf("Failed to list accounts: %v", err)
	}

	for _, a := range accounts {
		fmt.Printf("   %s: %s available, %s on hold\n",
			aurora.Bold(a.Currency), aurora.Green(a.Available), a.Hold)
	}

	fmt.Println("\n2. Placing a limit buy far below market...")
	order, err := c.PlaceOrder(ctx, api.OrderParams{
		Side:      "buy",
		ProductID: "BTC-USD",
		Price:     decimal.RequireFromString("1.00"),
		Size:      decimal.RequireFromString("0.01"),
		PostOnly:  true,
	})
	if err != nil {
		log.Fatalf("Failed to place order: %v", err)
	}

	fmt.Printf("   Placed %s (%s)\n", aurora.Bold(order.ID), order.Status)

	fmt.Println("\n3. Listing open and pending orders...")
	orders, err := c.ListOrders(ctx, []string{"open", "pending"}, "BTC-USD", nil)
	if err != nil {
		log.Fatalf("Failed to list orders: %v", err)
	}

	for _, o := range orders {
		fmt.Printf("   %s %s %s @ %s (%s)\n", o.ID, o.Side, o.Size, o.Price, o.Status)
	}

	fmt.Println("\n4. Canceling the order...")
	if err := c.CancelOrder(ctx, order.ID); err != nil {
		log.Fatalf("Failed to cancel order: %v", err)
	}

	fmt.Printf("   Canceled %s\n", aurora.Bold(order.ID))
}
