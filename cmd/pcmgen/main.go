// Command pcmgen writes parity-check matrices for rotated planar surface
// codes, one CSV file per code distance.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/topoqec/pcmgen/gen"
)

var (
	outputDir   string
	distances   []int
	configPath  string
	concurrency int
	verbose     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pcmgen",
	Short: "Generate surface-code parity-check matrices as CSV files",
	Long: `pcmgen constructs rotated planar surface codes for a set of code
distances and writes each stabilizer generator matrix to
<out>/distance_<d>_surface_code.csv as flat comma-separated integers.

With no flags it reproduces the reference sweep: distances
{3,5,7,9,11,13,15} written into pcm_matrices/.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := gen.DefaultConfig()
		if configPath != "" {
			var err error
			if cfg, err = gen.LoadConfig(configPath); err != nil {
				return err
			}
		}
		// Flags given explicitly override the config file.
		if cmd.Flags().Changed("distances") {
			cfg.Distances = distances
		}
		if cmd.Flags().Changed("out") {
			cfg.OutputDir = outputDir
		}
		if cmd.Flags().Changed("concurrency") {
			cfg.Concurrency = concurrency
		}

		runner, err := gen.NewRunner(append(cfg.Options(), gen.WithLogger(logger))...)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runner.Run(ctx)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", gen.DefaultOutputDir, "output directory for PCM files")
	rootCmd.Flags().IntSliceVarP(&distances, "distances", "d", gen.DefaultDistances(), "code distances to generate (odd integers)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (flags override it)")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", gen.DefaultConcurrency, "distances generated in parallel (1 = sequential)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
