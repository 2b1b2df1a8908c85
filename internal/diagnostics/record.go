// Package diagnostics renders the console record written for every accepted checkout.
package diagnostics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fjod/go_cart/checkout-api/internal/domain"
)

const (
	header = "--- CHECKOUT RECEIVED ---"
	footer = "-------------------------"
)

// WriteRecord writes the record for items to w in a single Write call, so records of
// concurrent checkouts never split each other's lines.
func WriteRecord(w io.Writer, items []domain.Item) error {
	pretty, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "Processing checkout for %d item(s).\n", len(items))
	buf.Write(pretty)
	buf.WriteByte('\n')
	buf.WriteString(footer)
	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
