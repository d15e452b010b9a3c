package query

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uzimihsr/cwexport/internal/apperr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "queries.json", `{
		"queries": [
			{
				"id": "conn",
				"label": "Successful connections",
				"expression": "SUM(METRICS())",
				"period": 3600
			}
		]
	}`)

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Queries, 1)
	require.Equal(t, "conn", doc.Queries[0].ID)
	require.Equal(t, "Successful connections", doc.Queries[0].Label)
	require.Equal(t, int32(3600), doc.Queries[0].Period)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "queries.yaml", `
queries:
  - id: cpu
    label: CPU average
    metricStat:
      namespace: AWS/EC2
      metricName: CPUUtilization
      dimensions:
        - name: InstanceId
          value: i-0123456789abcdef0
      stat: Average
      period: 300
`)

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Queries, 1)
	q := doc.Queries[0]
	require.Equal(t, "cpu", q.ID)
	require.NotNil(t, q.MetricStat)
	require.Equal(t, "AWS/EC2", q.MetricStat.Namespace)
	require.Equal(t, "CPUUtilization", q.MetricStat.MetricName)
	require.Equal(t, "Average", q.MetricStat.Stat)
	require.Len(t, q.MetricStat.Dimensions, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	require.Equal(t, apperr.QueryDocumentNotFound, apperr.KindOf(err))
	require.Contains(t, err.Error(), "nope.json")
}

func TestLoadMalformedDocument(t *testing.T) {
	path := writeFile(t, "broken.json", `{"queries": [`)
	_, err := Load(path)
	require.Error(t, err)
	// Malformed is not the same failure class as absent.
	require.Equal(t, apperr.Unknown, apperr.KindOf(err))
}

func TestLoadEmptyDocument(t *testing.T) {
	path := writeFile(t, "empty.json", `{"queries": []}`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no queries")
}

func TestDefault(t *testing.T) {
	doc := Default()
	require.Len(t, doc.Queries, 1)
	q := doc.Queries[0]
	require.Equal(t, "successful_connections", q.ID)
	require.Equal(t, "Successful connections", q.Label)
	require.Contains(t, q.Expression, "SEARCH")
	require.Equal(t, int32(3600), q.Period)
}
