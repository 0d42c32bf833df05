package main

import (
	"fmt"

	"github.com/rtsched/dagsched/dagio"
	"github.com/rtsched/dagsched/dagset"
	"github.com/rtsched/dagsched/procstate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var globaledfCmd = &cobra.Command{
	Use:   "globaledf",
	Short: "Run global-EDF dispatch across every DAG in a directory",
	RunE:  runGlobalEDF,
}

func init() {
	globaledfCmd.Flags().StringP("dag_dir_path", "d", "", "directory of DAG task-set files (required)")
	_ = globaledfCmd.MarkFlagRequired("dag_dir_path")
	_ = viper.BindPFlag("dag_dir_path", globaledfCmd.Flags().Lookup("dag_dir_path"))
}

func runGlobalEDF(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cores, err := numberOfCores()
	if err != nil {
		return err
	}
	dagDirPath := viper.GetString("dag_dir_path")
	outputDirPath := viper.GetString("output_dir_path")

	runOnce := func() error {
		dagSet, warnings, err := dagio.LoadDAGSet(dagDirPath)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			logger.Warnw("ingestion warning", "kind", w.Kind, "dag_id", w.DAGID)
		}

		proc, err := procstate.New(cores)
		if err != nil {
			return err
		}
		result, err := dagset.Run(dagSet, proc, dagset.NewGlobalEDFScheduler(), dagset.NonPreemptive)
		if err != nil {
			return err
		}

		schedulable := true
		for k, dag := range dagSet {
			period, err := dag.HeadPeriod()
			if err != nil {
				return err
			}
			if result.Log.WorstResponseTime(int32(k)) > period {
				schedulable = false
			}
		}
		result.Log.SetResult(schedulable)

		fmt.Printf("hyper_period=%d schedulable=%v\n", result.HyperPeriod, schedulable)

		doc := result.Log.ToDocument(dagio.NewRunID())
		outPath, err := dagio.WriteDocument(doc, outputDirPath)
		if err != nil {
			return err
		}
		fmt.Println("log written to", outPath)
		return nil
	}

	if !viper.GetBool("watch") {
		return runOnce()
	}
	return watchAndRerun(logger, dagDirPath, runOnce)
}
