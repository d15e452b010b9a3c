package models

// QueryDocument is the metric query definition forwarded unmodified to the
// service for every chunk. The export loop never inspects it.
type QueryDocument struct {
	Queries []MetricQuery `json:"queries" yaml:"queries"`
}

// MetricQuery describes one entry of a GetMetricData request: either a
// metric-math expression or a concrete metric/stat pair.
type MetricQuery struct {
	ID         string      `json:"id" yaml:"id"`
	Label      string      `json:"label,omitempty" yaml:"label,omitempty"`
	Expression string      `json:"expression,omitempty" yaml:"expression,omitempty"`
	MetricStat *MetricStat `json:"metricStat,omitempty" yaml:"metricStat,omitempty"`
	Period     int32       `json:"period,omitempty" yaml:"period,omitempty"`
	ReturnData *bool       `json:"returnData,omitempty" yaml:"returnData,omitempty"`
}

type MetricStat struct {
	Namespace  string      `json:"namespace" yaml:"namespace"`
	MetricName string      `json:"metricName" yaml:"metricName"`
	Dimensions []Dimension `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Stat       string      `json:"stat" yaml:"stat"`
	Period     int32       `json:"period,omitempty" yaml:"period,omitempty"`
}

type Dimension struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}
