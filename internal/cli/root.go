// Package cli provides the command-line interface of the morpher.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/6o6p/morphology"
	"github.com/6o6p/morphology/internal/app"
	"github.com/6o6p/morphology/internal/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// envKey stores the per-invocation environment in the command context.
type envKey struct{}

// env is what PersistentPreRunE prepares for every subcommand.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func envFrom(cmd *cobra.Command) *env {
	e, _ := cmd.Context().Value(envKey{}).(*env)
	return e
}

// loadMorpher indexes the configured dictionary.
func (e *env) loadMorpher() (*morphology.Morpher, morphology.BuildStats, error) {
	return app.LoadMorpher(e.logger, e.cfg.Dictionary)
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "morph",
		Short: "Inflect sentences with an OpenCorpora dictionary",
		Long: `morph rewrites every WORD{TAG,TAG} token of a sentence to the dictionary
form of lemma WORD that carries the requested tags, e.g.

  morph run 'мама{noun,sing,gent} мыла РАМА{noun,accs}'`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if err := applyFlags(cfg, cmd.Flags()); err != nil {
				return err
			}

			logger := app.NewLogger(cfg.Log)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, envKey{}, &env{cfg: cfg, logger: logger}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().String("dict", "", "path to the dictionary (plain text or .bz2)")
	rootCmd.PersistentFlags().String("policy", "", "attribute matching policy (subset|exact)")
	rootCmd.PersistentFlags().String("ungrouped", "", "forms before the first group marker (fail|singleton)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("policy", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"subset", "exact"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newREPLCommand())
	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newFormsCommand())
	rootCmd.AddCommand(newStatsCommand())

	return rootCmd
}

// applyFlags lets explicitly set flags override the loaded configuration.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet) error {
	overrides := []struct {
		name string
		dst  *string
	}{
		{"dict", &cfg.Dictionary.Path},
		{"policy", &cfg.Dictionary.MatchPolicy},
		{"ungrouped", &cfg.Dictionary.Ungrouped},
		{"log-level", &cfg.Log.Level},
	}
	for _, o := range overrides {
		if !flags.Changed(o.name) {
			continue
		}
		v, err := flags.GetString(o.name)
		if err != nil {
			return err
		}
		*o.dst = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	return nil
}
