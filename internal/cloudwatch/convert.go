package cloudwatch

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/uzimihsr/cwexport/internal/models"
)

// buildQueries converts a query document into the SDK request shape.
func buildQueries(doc *models.QueryDocument) []types.MetricDataQuery {
	queries := make([]types.MetricDataQuery, 0, len(doc.Queries))
	for _, q := range doc.Queries {
		mdq := types.MetricDataQuery{
			Id:         aws.String(q.ID),
			ReturnData: q.ReturnData,
		}
		if q.Label != "" {
			mdq.Label = aws.String(q.Label)
		}
		if q.Expression != "" {
			mdq.Expression = aws.String(q.Expression)
		}
		if q.Period > 0 {
			mdq.Period = aws.Int32(q.Period)
		}
		if q.MetricStat != nil {
			mdq.MetricStat = buildMetricStat(q.MetricStat)
		}
		queries = append(queries, mdq)
	}
	return queries
}

func buildMetricStat(ms *models.MetricStat) *types.MetricStat {
	dims := make([]types.Dimension, 0, len(ms.Dimensions))
	for _, d := range ms.Dimensions {
		dims = append(dims, types.Dimension{
			Name:  aws.String(d.Name),
			Value: aws.String(d.Value),
		})
	}
	return &types.MetricStat{
		Metric: &types.Metric{
			Namespace:  aws.String(ms.Namespace),
			MetricName: aws.String(ms.MetricName),
			Dimensions: dims,
		},
		Period: aws.Int32(ms.Period),
		Stat:   aws.String(ms.Stat),
	}
}

func resultLabel(res types.MetricDataResult) string {
	if label := aws.ToString(res.Label); label != "" {
		return label
	}
	return aws.ToString(res.Id)
}
