// Package api provides the typed endpoint facade over the request agent.
//
// Each method maps one documented REST resource to exactly one agent
// primitive with a fixed path template. Responses decode into typed models;
// money fields use decimal.Decimal throughout.
//
// # Market Data (public)
//
//	c := api.New("", nil)
//	products, err := c.GetProducts(ctx)
//	book, err := c.GetProductOrderBook(ctx, "BTC-USD", 2)
//
// # Trading (private)
//
//	c := api.NewWithCredentials(auth.Credentials{
//	    Key:        os.Getenv("GDAX_KEY"),
//	    Secret:     os.Getenv("GDAX_SECRET"),
//	    Passphrase: os.Getenv("GDAX_PASSPHRASE"),
//	}, "", nil)
//
//	order, err := c.PlaceOrder(ctx, api.OrderParams{
//	    Side:      "buy",
//	    ProductID: "BTC-USD",
//	    Price:     decimal.RequireFromString("100.00"),
//	    Size:      decimal.RequireFromString("1"),
//	})
//
// Private methods on a client without credentials fail with
// agent.ErrUnauthenticated before any network call.
//
// # Pagination
//
// Listing endpoints accept an optional *Pagination whose before/after/limit
// cursors are forwarded verbatim. Cursors for adjacent pages come back in
// the CB-BEFORE and CB-AFTER response headers; following them is the
// caller's responsibility.
//
// # Filters with Repeated Keys
//
// Filters that accept multiple values, such as ListOrders statuses,
// serialize as repeated query keys (status=open&status=pending), the only
// form the exchange accepts.
package api
