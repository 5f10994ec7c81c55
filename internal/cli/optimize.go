package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vastuhome/layoutengine/internal/config"
	"github.com/vastuhome/layoutengine/internal/engine"
	"github.com/vastuhome/layoutengine/internal/model"
	"github.com/vastuhome/layoutengine/internal/project"
)

// newOptimizeCmd creates the optimize command, which runs one session
// from a request document and prints a placement summary.
func newOptimizeCmd() *cobra.Command {
	var (
		configPath string
		outputPath string
		presetName string
		seed       int64
		compare    bool
	)

	cmd := &cobra.Command{
		Use:   "optimize <request.json>",
		Short: "Run one optimization session from a request document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			settings := cfg.Settings()

			req, err := project.LoadRequest(args[0])
			if err != nil {
				return err
			}

			if presetName != "" {
				path, err := project.DefaultPresetsPath()
				if err != nil {
					return err
				}
				presets, err := project.LoadPresets(path)
				if err != nil {
					return err
				}
				preset, err := project.FindPreset(presets, presetName)
				if err != nil {
					return err
				}
				settings.Clearance = preset.Clearance
				settings.Weights = preset.Weights
				log.Debug("applied preset", "name", preset.Name)
			}
			if seed != 0 {
				settings.Seed = seed
			}

			if compare {
				return runCompare(cmd, settings, req)
			}

			result, err := engine.NewSession(settings).Run(req)
			if err != nil {
				return err
			}

			printResult(cmd, result)
			if outputPath != "" {
				if err := project.SaveResult(outputPath, result); err != nil {
					return err
				}
				log.Info("result written", "path", outputPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write full result JSON to this path")
	cmd.Flags().StringVar(&presetName, "preset", "", "apply a named constraint preset")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible runs (0 = time-derived)")
	cmd.Flags().BoolVar(&compare, "compare", false, "run what-if scenarios and compare outcomes")
	return cmd
}

func printResult(cmd *cobra.Command, result model.OptimizeResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "feasible: %v  fitness: %.4f  score: %.1f%%\n",
		result.Feasible, result.Fitness, result.ScorePercentage)
	fmt.Fprintf(out, "generations: %d  elapsed: %s  stop: %s\n",
		result.Diagnostics.Generations, result.Diagnostics.Elapsed, result.Diagnostics.StopReason)
	if !result.Feasible {
		r := result.Report
		fmt.Fprintf(out, "violations: overlap=%.3f boundary=%.3f clearance=%.3f walkway=%.3f\n",
			r.Overlap, r.Boundary, r.Clearance, r.Walkway)
	}
	for _, p := range result.Layout {
		fmt.Fprintf(out, "  %-16s x=%7.2f  y=%7.2f  rot=%d\n", p.ItemID, p.X, p.Y, p.Rotation)
	}
}

func runCompare(cmd *cobra.Command, settings model.Settings, req model.OptimizeRequest) error {
	out := cmd.OutOrStdout()
	scenarios := engine.BuildDefaultScenarios(settings)
	results := engine.CompareScenarios(scenarios, req)

	fmt.Fprintf(out, "%-20s %-9s %-10s %-8s %s\n", "scenario", "feasible", "fitness", "score", "elapsed")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "%-20s error: %v\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Fprintf(out, "%-20s %-9v %-10.4f %-8.1f %s\n",
			r.Scenario.Name, r.Result.Feasible, r.Result.Fitness,
			r.Result.ScorePercentage, r.Result.Diagnostics.Elapsed)
	}
	fmt.Fprintf(out, "total elapsed: %s\n", engine.TotalElapsed(results))
	return nil
}
