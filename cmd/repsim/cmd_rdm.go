package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repsimlab/repsim/dataset"
	"github.com/repsimlab/repsim/plot"
	"github.com/repsimlab/repsim/rdm"
)

func newRDMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rdm",
		Short: "Compute an RDM heatmap payload from a pattern archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			archive, _ := cmd.Flags().GetString("patterns")
			out, _ := cmd.Flags().GetString("out")
			metricName, _ := cmd.Flags().GetString("metric")

			metric, err := rdm.ParseMetric(pickString(metricName, cfg.Metric))
			if err != nil {
				return err
			}

			r, err := archiveRDM(archive, metric)
			if err != nil {
				return err
			}
			doc, err := plot.FromRDM(r, fmt.Sprintf("RDM (%s)", metric))
			if err != nil {
				return err
			}
			return plot.WriteJSON(out, doc)
		},
	}

	cmd.Flags().String("patterns", "patterns.parquet", "Pattern archive (Parquet)")
	cmd.Flags().String("out", "rdm.json", "Output payload path")
	cmd.Flags().String("metric", "", "RDM metric: correlation, euclidean, cosine")
	return cmd
}

// archiveRDM loads a pattern archive and condenses it under metric.
func archiveRDM(path string, metric rdm.Metric) (*rdm.RDM, error) {
	conditions, patterns, err := dataset.LoadPatterns(path)
	if err != nil {
		return nil, err
	}
	return rdm.Compute(patterns, conditions, &rdm.Options{Metric: metric})
}
