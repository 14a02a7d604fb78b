package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "run SENTENCE...",
		Short: "Morph one sentence and print the result",
		Long: `Morph the sentence formed by the arguments joined with spaces.

Malformed tokens such as "мама{noun" are copied literally unless --strict
is given, in which case they are reported as an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			m, _, err := e.loadMorpher()
			if err != nil {
				return err
			}

			sentence := strings.Join(args, " ")
			start := time.Now()
			var result string
			if strict {
				if result, err = m.MorphStrict(sentence); err != nil {
					return err
				}
			} else {
				result = m.Morph(sentence)
			}
			e.logger.Info("morphed", slog.Duration("took", time.Since(start)))

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on malformed tokens")
	return cmd
}
