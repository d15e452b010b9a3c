// Package transform reshapes query responses into CSV rows.
package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/uzimihsr/cwexport/internal/apperr"
	"github.com/uzimihsr/cwexport/internal/models"
)

// Row is one rendered data point.
type Row struct {
	Timestamp string
	Value     string
}

// Record renders the row as a CSV line without the trailing newline.
func (r Row) Record() string {
	return quote(r.Timestamp) + "," + quote(r.Value)
}

// HeaderRecord renders the single header line preceding all data rows.
func HeaderRecord(label string) string {
	return quote("Date") + "," + quote(label)
}

// Every field is quoted, with embedded quotes doubled. encoding/csv only
// quotes fields that need it, so rows are rendered by hand.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ToRows converts one response into CSV rows. Each result's timestamps and
// values are paired positionally and sorted by ascending timestamp; blocks
// from different results stay contiguous, in response order.
func ToRows(results []models.MetricResult) ([]Row, error) {
	var rows []Row
	for _, res := range results {
		if len(res.Timestamps) != len(res.Values) {
			return nil, apperr.New(apperr.TransformFailed,
				fmt.Sprintf("metric %q returned %d timestamps but %d values", res.Label, len(res.Timestamps), len(res.Values)))
		}
		block := make([]Row, len(res.Timestamps))
		for i, ts := range res.Timestamps {
			block[i] = Row{
				Timestamp: ts.UTC().Format(time.RFC3339),
				Value:     strconv.FormatFloat(res.Values[i], 'f', -1, 64),
			}
		}
		// Lexical order on RFC3339 UTC strings is chronological order.
		sort.Slice(block, func(i, j int) bool { return block[i].Timestamp < block[j].Timestamp })
		rows = append(rows, block...)
	}
	return rows, nil
}
