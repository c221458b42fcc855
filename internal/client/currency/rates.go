// Package currency holds the client's conversion-rate cache and price
// formatting. Rates come from the backend's currency endpoint and live for
// the session: a base currency is fetched at most once and never
// invalidated.
package currency

import (
	"context"
	"strings"

	"github.com/Jtanchezz/GeneralStore/internal/client/api"
)

// DefaultSymbols is the quote set requested for every base currency.
var DefaultSymbols = []string{"USD", "MXN", "EUR"}

// Cache is a per-session rate table keyed by base currency. It is used from
// the single REPL goroutine and is not safe for concurrent use.
type Cache struct {
	client  api.Client
	symbols []string
	tables  map[string]map[string]float64
}

func NewCache(client api.Client, symbols []string) *Cache {
	if len(symbols) == 0 {
		symbols = DefaultSymbols
	}
	return &Cache{
		client:  client,
		symbols: symbols,
		tables:  make(map[string]map[string]float64),
	}
}

// Warm fetches the rate table for base unless it is already cached. A fetch
// failure leaves the base uncached (the next Warm will try again); a cached
// base is never re-fetched within the session.
func (c *Cache) Warm(ctx context.Context, base string) error {
	base = strings.ToUpper(base)
	if base == "" {
		return nil
	}
	if _, ok := c.tables[base]; ok {
		return nil
	}

	quotes, err := c.client.CurrencyRates(ctx, base, c.symbols)
	if err != nil {
		return err
	}

	table := make(map[string]float64, len(quotes)+1)
	table[base] = 1
	for _, q := range quotes {
		table[strings.ToUpper(q.QuoteCurrency)] = q.Rate
	}
	c.tables[base] = table
	return nil
}

// Has reports whether the table for base is cached.
func (c *Cache) Has(base string) bool {
	_, ok := c.tables[strings.ToUpper(base)]
	return ok
}

// Convert translates amount from one currency to another. ok is false when
// the needed rate is not cached yet, which tells the view layer to display
// the base price only; it never errors and never blocks. Converting a
// currency to itself needs no table.
func (c *Cache) Convert(amount float64, from, to string) (float64, bool) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == to {
		return amount, true
	}

	table, ok := c.tables[from]
	if !ok {
		return 0, false
	}
	rate, ok := table[to]
	if !ok {
		return 0, false
	}
	return amount * rate, true
}
