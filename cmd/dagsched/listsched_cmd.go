package main

import (
	"fmt"
	"path/filepath"

	"github.com/rtsched/dagsched/dagio"
	"github.com/rtsched/dagsched/listsched"
	"github.com/rtsched/dagsched/procstate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listschedCmd = &cobra.Command{
	Use:   "listsched",
	Short: "Run intra-DAG fixed-priority list scheduling on a single DAG file",
	RunE:  runListsched,
}

func init() {
	listschedCmd.Flags().StringP("dag_file_path", "f", "", "path to a single DAG task-set file (required)")
	_ = listschedCmd.MarkFlagRequired("dag_file_path")
	_ = viper.BindPFlag("dag_file_path", listschedCmd.Flags().Lookup("dag_file_path"))
}

func runListsched(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cores, err := numberOfCores()
	if err != nil {
		return err
	}
	dagFilePath := viper.GetString("dag_file_path")
	outputDirPath := viper.GetString("output_dir_path")

	runOnce := func() error {
		dag, warnings, err := dagio.LoadDAG(dagFilePath)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			logger.Warnw("ingestion warning", "kind", w.Kind)
		}

		proc, err := procstate.New(cores)
		if err != nil {
			return err
		}
		result, err := listsched.Schedule(dag, proc, listsched.FixedPriorityKey)
		if err != nil {
			return err
		}
		for _, w := range result.Warnings {
			logger.Warnw("scheduling warning", "kind", w.Kind, "node_id", w.NodeID)
		}

		fmt.Printf("makespan=%d execution_order=%v\n", result.Makespan, result.ExecutionOrder)

		deadline, _, err := dag.GetEndToEndDeadline()
		if err != nil {
			return err
		}
		schedulable := result.Makespan <= deadline

		doc, err := result.Log.ToDocument(dagio.NewRunID(), dag, result.ExecutionOrder, schedulable)
		if err != nil {
			return err
		}
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
	return watchAndRerun(logger, filepath.Dir(dagFilePath), runOnce)
}
