// Package orderid generates the human-readable order identifiers written to
// table records and history. The canonical format is
// ORD-ddmmyy-hhmmss-mmm, with the table-scoped variant appending -Tnn
// (e.g. ORD-151224-143025-123-T04). Embedding the millisecond keeps ids
// generated within the same second distinct.
package orderid

import (
	"fmt"
	"strings"
	"time"
)

// Generator produces order ids. Now is swappable so tests can pin the clock.
type Generator struct {
	Now func() time.Time
}

func New() *Generator {
	return &Generator{Now: time.Now}
}

// Generate returns an order id for the current moment.
func (g *Generator) Generate() string {
	now := g.Now()
	return fmt.Sprintf("ORD-%02d%02d%02d-%02d%02d%02d-%03d",
		now.Day(), int(now.Month()), now.Year()%100,
		now.Hour(), now.Minute(), now.Second(),
		now.Nanosecond()/int(time.Millisecond))
}

// GenerateForTable returns a table-scoped order id.
func (g *Generator) GenerateForTable(tableNumber int) string {
	return fmt.Sprintf("%s-T%02d", g.Generate(), tableNumber)
}

// DisplayNumber strips the prefix and table suffix for compact display.
func DisplayNumber(orderID string) string {
	s := strings.TrimPrefix(orderID, "ORD-")
	if i := strings.LastIndex(s, "-T"); i >= 0 {
		s = s[:i]
	}
	return s
}
