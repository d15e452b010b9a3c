package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Region      string
	Profile     string
	MetricLabel string
	Interval    string
	QueryFile   string
	ResultsFile string
}

func New() *Config {
	return &Config{
		Region:      viper.GetString("region"),
		Profile:     viper.GetString("profile"),
		MetricLabel: viper.GetString("metric_label"),
		Interval:    viper.GetString("interval"),
		QueryFile:   viper.GetString("query_file"),
		ResultsFile: viper.GetString("results_file"),
	}
}

func (c *Config) Validate() error {
	if c.MetricLabel == "" {
		return fmt.Errorf("metric label is required")
	}
	if c.Interval == "" {
		return fmt.Errorf("interval is required")
	}
	return nil
}
