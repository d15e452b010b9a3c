package cloudwatch

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/uzimihsr/cwexport/internal/config"
	"github.com/uzimihsr/cwexport/internal/models"
)

type Client struct {
	api cloudwatch.GetMetricDataAPIClient
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Client{api: cloudwatch.NewFromConfig(awsCfg)}, nil
}

// Query fetches metric data for one window. CloudWatch paginates within a
// window, so pages are merged by query id before conversion: each metric
// yields exactly one MetricResult per window.
func (c *Client) Query(ctx context.Context, doc *models.QueryDocument, start, end time.Time) ([]models.MetricResult, error) {
	input := &cloudwatch.GetMetricDataInput{
		StartTime:         aws.Time(start),
		EndTime:           aws.Time(end),
		MetricDataQueries: buildQueries(doc),
		ScanBy:            types.ScanByTimestampAscending,
	}

	merged := make(map[string]*models.MetricResult)
	var order []string

	paginator := cloudwatch.NewGetMetricDataPaginator(c.api, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, res := range out.MetricDataResults {
			if res.StatusCode == types.StatusCodeInternalError {
				return nil, fmt.Errorf("metric %s: CloudWatch reported an internal error", aws.ToString(res.Id))
			}
			id := aws.ToString(res.Id)
			acc, ok := merged[id]
			if !ok {
				acc = &models.MetricResult{Label: resultLabel(res)}
				merged[id] = acc
				order = append(order, id)
			}
			acc.Timestamps = append(acc.Timestamps, res.Timestamps...)
			acc.Values = append(acc.Values, res.Values...)
		}
	}

	results := make([]models.MetricResult, 0, len(order))
	for _, id := range order {
		results = append(results, *merged[id])
	}
	return results, nil
}
