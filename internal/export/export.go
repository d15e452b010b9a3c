// Package export drives the chunked metric fetch: split the range, query
// each window in order, and stream the combined CSV to the sink.
package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/uzimihsr/cwexport/internal/apperr"
	"github.com/uzimihsr/cwexport/internal/models"
	"github.com/uzimihsr/cwexport/internal/query"
	"github.com/uzimihsr/cwexport/internal/timespan"
	"github.com/uzimihsr/cwexport/internal/transform"
)

// Querier issues one metric data query for a single window. The document
// is forwarded as-is; implementations own authentication and transport.
type Querier interface {
	Query(ctx context.Context, doc *models.QueryDocument, start, end time.Time) ([]models.MetricResult, error)
}

// Options are the inputs for one fetch. StartDate and EndDate are required
// raw strings; QueryFile empty means the built-in default document.
type Options struct {
	QueryFile   string
	StartDate   string
	EndDate     string
	Interval    string
	MetricLabel string
}

type Exporter struct {
	querier Querier
	out     io.Writer
}

func New(querier Querier, out io.Writer) *Exporter {
	return &Exporter{querier: querier, out: out}
}

// Fetch retrieves metric data for the whole range and writes the CSV to
// the sink: one header line, then each chunk's rows as the chunk
// completes. The first failing chunk aborts the rest; rows already
// written stay written.
func (e *Exporter) Fetch(ctx context.Context, opts Options) error {
	if opts.StartDate == "" {
		return apperr.New(apperr.MissingArguments, "start date is required")
	}
	if opts.EndDate == "" {
		return apperr.New(apperr.MissingArguments, "end date is required")
	}

	doc, err := e.resolveDocument(opts.QueryFile)
	if err != nil {
		return err
	}

	points, err := timespan.Split(opts.StartDate, opts.EndDate, opts.Interval)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(e.out)
	if _, err := io.WriteString(w, transform.HeaderRecord(opts.MetricLabel)+"\n"); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := 0; i+1 < len(points); i++ {
		start, end := points[i], points[i+1]
		log.WithFields(log.Fields{
			"start": start.Format(time.RFC3339),
			"end":   end.Format(time.RFC3339),
		}).Debug("querying metric data window")

		results, err := e.querier.Query(ctx, doc, start, end)
		if err != nil {
			w.Flush()
			return apperr.Wrap(apperr.ChunkQueryFailed,
				fmt.Sprintf("window %s to %s", start.Format(time.RFC3339), end.Format(time.RFC3339)), err)
		}

		rows, err := transform.ToRows(results)
		if err != nil {
			w.Flush()
			return err
		}

		for _, row := range rows {
			if _, err := io.WriteString(w, row.Record()+"\n"); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		// Flush per chunk so a concurrent reader of the sink observes rows
		// as chunks complete.
		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to flush CSV output: %w", err)
		}
	}

	log.WithField("chunks", len(points)-1).Info("metric data fetch complete")
	return nil
}

func (e *Exporter) resolveDocument(path string) (*models.QueryDocument, error) {
	if path == "" {
		return query.Default(), nil
	}
	return query.Load(path)
}
