// Package query loads metric query documents and provides the built-in
// default used when the caller supplies none.
package query

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/uzimihsr/cwexport/internal/apperr"
	"github.com/uzimihsr/cwexport/internal/models"
)

// Load reads a query document from path. The format is chosen by
// extension: .yaml/.yml parse as YAML, everything else as JSON.
func Load(path string) (*models.QueryDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.QueryDocumentNotFound, path, err)
	}

	var doc models.QueryDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse query document %s: %w", path, err)
	}
	if len(doc.Queries) == 0 {
		return nil, fmt.Errorf("query document %s defines no queries", path)
	}
	return &doc, nil
}

// Default returns the built-in document: successful connection counts
// summed across matching metrics at hourly granularity.
func Default() *models.QueryDocument {
	return &models.QueryDocument{
		Queries: []models.MetricQuery{
			{
				ID:         "successful_connections",
				Label:      "Successful connections",
				Expression: `SUM(SEARCH('{AWS/RDS,DBInstanceIdentifier} MetricName="DatabaseConnections"', 'Sum', 3600))`,
				Period:     3600,
			},
		},
	}
}
