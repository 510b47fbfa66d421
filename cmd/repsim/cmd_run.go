package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/repsimlab/repsim/cluster"
	"github.com/repsimlab/repsim/compare"
	"github.com/repsimlab/repsim/dataset"
	"github.com/repsimlab/repsim/glm"
	"github.com/repsimlab/repsim/mds"
	"github.com/repsimlab/repsim/plot"
	"github.com/repsimlab/repsim/rdm"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the full pipeline from a study manifest",
		Long: `Load a study manifest, estimate per-condition response patterns with
a per-run GLM, compute the neural RDM, cluster it, embed it with MDS,
and write the pattern archive plus JSON plot payloads to the output
directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			manifestPath, _ := cmd.Flags().GetString("config")
			mask, _ := cmd.Flags().GetString("mask")
			runName, _ := cmd.Flags().GetString("run")
			outDir, _ := cmd.Flags().GetString("out")
			metricName, _ := cmd.Flags().GetString("metric")
			linkageName, _ := cmd.Flags().GetString("linkage")

			outDir = pickString(outDir, cfg.OutDir)
			metric, err := rdm.ParseMetric(pickString(metricName, cfg.Metric))
			if err != nil {
				return err
			}
			linkage, err := cluster.ParseLinkage(pickString(linkageName, cfg.Linkage))
			if err != nil {
				return err
			}
			if err = os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			return runPipeline(manifestPath, mask, runName, outDir, metric, linkage, cfg.Seed)
		},
	}

	cmd.Flags().String("config", "study.yaml", "Study manifest path")
	cmd.Flags().String("mask", "", "ROI mask name from the manifest (empty keeps all voxels)")
	cmd.Flags().String("run", "", "Restrict estimation to one named run (run-layout manifests)")
	cmd.Flags().String("out", "", "Output directory (default REPSIM_OUT_DIR or .)")
	cmd.Flags().String("metric", "", "RDM metric: correlation, euclidean, cosine")
	cmd.Flags().String("linkage", "", "Clustering linkage: single, complete, average, ward")
	return cmd
}

func runPipeline(manifestPath, mask, runName, outDir string, metric rdm.Metric, linkage cluster.Linkage, seed int64) error {
	logger := log.New(os.Stderr, "repsim: ", 0)

	// Load.
	m, err := dataset.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	if runName != "" {
		spec, err := m.Run(runName)
		if err != nil {
			return err
		}
		m.Runs = []dataset.RunSpec{*spec}
	}
	runs, err := dataset.LoadRuns(m, mask)
	if err != nil {
		return err
	}
	logger.Printf("loaded study %q: %d runs, TR %.3gs", m.Study, len(runs), m.TR)

	// Estimate.
	opts := glm.DefaultOptions()
	opts.Conditions = m.Conditions
	set, err := glm.EstimatePatterns(runs, m.TR, &opts)
	if err != nil {
		return err
	}
	if missing := set.Missing(); len(missing) > 0 {
		logger.Printf("conditions without events, excluded from RDM: %v", missing)
	}
	logger.Printf("estimated %d condition patterns over %d voxels", len(set.Conditions()), set.Voxels())

	archive := filepath.Join(outDir, "patterns.parquet")
	if err = dataset.SavePatterns(archive, set.Conditions(), set.Vectors()); err != nil {
		return err
	}

	// RDM.
	neural, err := rdm.Compute(set.Vectors(), set.Conditions(), &rdm.Options{Metric: metric})
	if err != nil {
		return err
	}
	heat, err := plot.FromRDM(neural, fmt.Sprintf("%s RDM (%s)", m.Study, metric))
	if err != nil {
		return err
	}
	if err = plot.WriteJSON(filepath.Join(outDir, "rdm.json"), heat); err != nil {
		return err
	}

	// Cluster.
	dendro, err := cluster.Agglomerate(neural, linkage)
	if err != nil {
		return err
	}
	tree, err := plot.FromDendrogram(dendro, fmt.Sprintf("%s dendrogram (%s)", m.Study, linkage))
	if err != nil {
		return err
	}
	if err = plot.WriteJSON(filepath.Join(outDir, "dendrogram.json"), tree); err != nil {
		return err
	}

	// Embed.
	emb, err := mds.SMACOF(neural, &mds.Options{
		Dims: 2, MaxIter: 300, Tol: 1e-6, Init: mds.InitClassical, Seed: seed,
	})
	if err != nil {
		return err
	}
	scatter, err := plot.FromEmbedding(emb, neural.Labels(), fmt.Sprintf("%s MDS", m.Study))
	if err != nil {
		return err
	}
	if err = plot.WriteJSON(filepath.Join(outDir, "mds.json"), scatter); err != nil {
		return err
	}

	logger.Printf("wrote %s, rdm.json, dendrogram.json, mds.json (stress %.4f) to %s",
		filepath.Base(archive), emb.Stress, outDir)
	return nil
}

// compareRDMs is shared by the compare subcommand: Spearman plus a
// seeded permutation test.
func compareRDMs(neural, model *rdm.RDM, seed int64, iters int) (compare.Result, compare.Result, error) {
	exact, err := compare.Spearman(neural.Condensed(), model.Condensed())
	if err != nil {
		return compare.Result{}, compare.Result{}, err
	}
	perm, err := compare.PermutationTest(neural, model, &compare.PermOptions{Iterations: iters, Seed: seed})
	if err != nil {
		return compare.Result{}, compare.Result{}, err
	}
	return exact, perm, nil
}
