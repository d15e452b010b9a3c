package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "cwexport",
	Short: "CloudWatch metric data CSV export tool",
	Long: `A command line tool that retrieves CloudWatch metric data over an
arbitrary date range and writes it as CSV. Long ranges are split into
interval-sized chunks, queried one at a time, and stitched back together
in chronological order.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("region", "", "AWS region (overrides AWS_REGION)")
	rootCmd.PersistentFlags().String("profile", "", "AWS shared config profile (overrides AWS_PROFILE)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	// Environment variables
	viper.SetEnvPrefix("CWEXPORT")
	viper.AutomaticEnv()

	// Also bind the usual AWS environment variables
	viper.BindEnv("region", "AWS_REGION")
	viper.BindEnv("profile", "AWS_PROFILE")

	// Set defaults
	viper.SetDefault("interval", "1 month")
	viper.SetDefault("metric_label", "Successful connections")

	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
}
