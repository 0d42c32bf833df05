package main

import (
	"fmt"

	"github.com/rtsched/dagsched/dagio"
	"github.com/rtsched/dagsched/federated"
	"github.com/rtsched/dagsched/schedlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var federatedCmd = &cobra.Command{
	Use:   "federated",
	Short: "Run the offline federated feasibility analyzer over a directory of DAGs",
	RunE:  runFederated,
}

func init() {
	federatedCmd.Flags().StringP("dag_dir_path", "d", "", "directory of DAG task-set files (required)")
	_ = federatedCmd.MarkFlagRequired("dag_dir_path")
	_ = viper.BindPFlag("dag_dir_path", federatedCmd.Flags().Lookup("dag_dir_path"))
}

func runFederated(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cores, err := numberOfCores()
	if err != nil {
		return err
	}
	// globaledf binds the same viper key in its own init; rebind it to this
	// command's flag so -d is the value read here.
	_ = viper.BindPFlag("dag_dir_path", cmd.Flags().Lookup("dag_dir_path"))
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

		result, err := federated.Analyze(dagSet, int32(cores))
		if err != nil {
			return err
		}
		if result.Schedulable != nil {
			fmt.Printf("schedulable high_dedicated_cores=%d low_dedicated_cores=%d\n",
				result.Schedulable.HighDedicatedCores, result.Schedulable.LowDedicatedCores)

			runs, err := federated.RunDedicated(dagSet)
			if err != nil {
				return err
			}
			for _, run := range runs {
				logger.Infow("dedicated run", "dag_id", run.DAGID, "cores", run.DedicatedCores,
					"makespan", run.Makespan, "execution_order", run.ExecutionOrder)
			}
		} else {
			fmt.Printf("unschedulable reason=%q insufficient_cores=%d\n",
				result.Unschedulable.Reason, result.Unschedulable.InsufficientCores)
		}

		log, err := schedlog.NewDAGSetSchedulerLog(dagSet, cores)
		if err != nil {
			return err
		}
		log.CalculateUtilization(0)
		log.SetResult(result)

		doc := log.ToDocument(dagio.NewRunID())
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
