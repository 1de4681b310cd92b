// Command tributary reconciles two JSON event record files into one
// chronologically sorted result file.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jhalloran/tributary/internal/config"
	"github.com/jhalloran/tributary/internal/engine"
	"github.com/jhalloran/tributary/internal/logging"
	"github.com/jhalloran/tributary/internal/output"
	outfile "github.com/jhalloran/tributary/internal/output/file"
	"github.com/jhalloran/tributary/internal/output/multi"
	"github.com/jhalloran/tributary/internal/output/stdout"
	"github.com/jhalloran/tributary/internal/pipeline"
	"github.com/jhalloran/tributary/internal/source"

	// Register source implementations.
	_ "github.com/jhalloran/tributary/internal/source/file"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tributary",
		Short: "Merge two divergent JSON event record files into one sorted timeline",
		Long: `tributary reads event records from two JSON files, infers which of the
two known shapes each record uses from its timestamp encoding, normalizes
every record onto a common schema with millisecond-epoch timestamps, and
writes a single chronologically sorted JSON array.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("first", config.DefaultFirstInput, "path of the first input file")
	flags.String("second", config.DefaultSecondInput, "path of the second input file")
	flags.StringP("output", "o", config.DefaultOutput, `path of the result file ("-" for stdout)`)
	flags.Bool("echo", false, "also print the result to stdout")
	flags.String("log-level", "info", "diagnostics level: debug, info, warn, error")
	flags.String("log-format", "console", "diagnostics format: console or json")

	return cmd
}

func run(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	ctor, err := source.Get("file")
	if err != nil {
		return err
	}
	sources := []source.Source{
		ctor(cfg.Inputs.First),
		ctor(cfg.Inputs.Second),
	}

	out := buildOutput(cfg.Output)
	defer out.Close()

	p := pipeline.New(engine.New(), log)

	log.Info().
		Str("first", cfg.Inputs.First).
		Str("second", cfg.Inputs.Second).
		Msg("starting unification")

	report, err := p.Run(cmd.Context(), sources, out)
	if err != nil {
		return err
	}

	log.Info().
		Str("run_id", report.RunID).
		Int("processed", report.Processed).
		Int("unified", report.Unified).
		Int("skipped", report.Skipped).
		Msg("unification complete")
	return nil
}

func buildOutput(cfg config.OutputConfig) output.Output {
	if cfg.Path == "-" {
		return stdout.New()
	}
	if cfg.Echo {
		return multi.New(outfile.New(cfg.Path), stdout.New())
	}
	return outfile.New(cfg.Path)
}
