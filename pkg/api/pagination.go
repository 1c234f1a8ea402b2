package api

import "github.com/haleyga/gdax-cryptoexchange-api/pkg/agent"

// Pagination carries the exchange's cursor parameters. They are forwarded
// verbatim; the library never follows cursors itself. The cursors for the
// next request are returned by the server in the CB-BEFORE and CB-AFTER
// response headers.
type Pagination struct {
	// Before requests the page before (newer than) this cursor
	Before string

	// After requests the page after (older than) this cursor
	After string

	// Limit caps the number of results per page (server default 100)
	Limit int
}

// apply folds the cursor parameters into params, allocating it if needed
func (p *Pagination) apply(params *agent.Params) *agent.Params {
	if p == nil {
		return params
	}

	if params == nil {
		params = agent.NewParams()
	}

	if p.Before != "" {
		params.Set("before", p.Before)
	}
	if p.After != "" {
		params.Set("after", p.After)
	}
	if p.Limit > 0 {
		params.Set("limit", p.Limit)
	}

	return params
}
