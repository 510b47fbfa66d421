package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repsimlab/repsim/mds"
	"github.com/repsimlab/repsim/plot"
	"github.com/repsimlab/repsim/rdm"
)

func newMDSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mds",
		Short: "Embed a pattern archive's RDM into 2-D and emit a scatter payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			archive, _ := cmd.Flags().GetString("patterns")
			out, _ := cmd.Flags().GetString("out")
			metricName, _ := cmd.Flags().GetString("metric")
			classical, _ := cmd.Flags().GetBool("classical")
			seed, _ := cmd.Flags().GetInt64("seed")
			if seed == 0 {
				seed = cfg.Seed
			}

			metric, err := rdm.ParseMetric(pickString(metricName, cfg.Metric))
			if err != nil {
				return err
			}
			r, err := archiveRDM(archive, metric)
			if err != nil {
				return err
			}

			var emb *mds.Embedding
			if classical {
				emb, err = mds.Classical(r, 2)
			} else {
				emb, err = mds.SMACOF(r, &mds.Options{
					Dims: 2, MaxIter: 300, Tol: 1e-6, Init: mds.InitClassical, Seed: seed,
				})
			}
			if err != nil {
				return err
			}

			doc, err := plot.FromEmbedding(emb, r.Labels(), fmt.Sprintf("MDS (stress %.4f)", emb.Stress))
			if err != nil {
				return err
			}
			return plot.WriteJSON(out, doc)
		},
	}

	cmd.Flags().String("patterns", "patterns.parquet", "Pattern archive (Parquet)")
	cmd.Flags().String("out", "mds.json", "Output payload path")
	cmd.Flags().String("metric", "", "RDM metric: correlation, euclidean, cosine")
	cmd.Flags().Bool("classical", false, "Torgerson scaling only, skip SMACOF refinement")
	cmd.Flags().Int64("seed", 0, "Embedding seed (default REPSIM_SEED)")
	return cmd
}
