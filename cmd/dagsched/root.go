package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "dagsched",
	Short: "Discrete-event scheduler and feasibility analyzer for DAG real-time task sets",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().IntP("number_of_cores", "c", 0, "number of processor cores (required, >= 1)")
	rootCmd.PersistentFlags().StringP("output_dir_path", "o", "../outputs", "directory the run's log document is written to")
	rootCmd.PersistentFlags().Bool("watch", false, "re-run whenever the DAG input changes on disk")
	rootCmd.PersistentFlags().String("log_level", "info", "debug, info, warn, or error")

	_ = viper.BindPFlag("number_of_cores", rootCmd.PersistentFlags().Lookup("number_of_cores"))
	_ = viper.BindPFlag("output_dir_path", rootCmd.PersistentFlags().Lookup("output_dir_path"))
	_ = viper.BindPFlag("watch", rootCmd.PersistentFlags().Lookup("watch"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))

	rootCmd.AddCommand(listschedCmd, globaledfCmd, federatedCmd)
}

func initConfig() {
	viper.SetEnvPrefix("DAGSCHED")
	viper.AutomaticEnv()
}

func newLogger() (*zap.SugaredLogger, error) {
	level := viper.GetString("log_level")
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func numberOfCores() (int, error) {
	n := viper.GetInt("number_of_cores")
	if n < 1 {
		return 0, fmt.Errorf("dagsched: --number_of_cores must be >= 1")
	}
	return n, nil
}
