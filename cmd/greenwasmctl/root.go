package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logLevel string

// RootCommand is the greenwasmctl entry point. Subcommands register
// themselves onto it from their own init().
var RootCommand = &cobra.Command{
	Use:   "greenwasmctl",
	Short: "Inspect WebAssembly binary modules",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		viper.SetEnvPrefix("GREENWASMCTL")
		viper.AutomaticEnv()
		if !cmd.Flags().Changed("log-level") {
			if v := viper.GetString("log_level"); v != "" {
				logLevel = v
			}
		}
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

func init() {
	RootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level: trace, debug, info, warn, error (env GREENWASMCTL_LOG_LEVEL)")
}
