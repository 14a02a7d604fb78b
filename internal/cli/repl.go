package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/6o6p/morphology"
)

// lineReader is the part of *readline.Instance the console loop needs.
type lineReader interface {
	Readline() (string, error)
}

func newREPLCommand() *cobra.Command {
	var noDemo bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Morph sentences typed at an interactive prompt",
		Long: `Start an interactive console. Each line is morphed and printed together
with the time it took. An empty line, Ctrl-D or .quit ends the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := envFrom(cmd)
			m, _, err := e.loadMorpher()
			if err != nil {
				return err
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          e.cfg.REPL.Prompt,
				HistoryFile:     e.cfg.REPL.HistoryFile,
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
				Stdout:          cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			defer func() { _ = rl.Close() }()

			out := rl.Stdout()
			if e.cfg.REPL.Demo && !noDemo {
				for _, s := range demoSentences {
					printTimed(out, m, s)
				}
			}
			return runREPL(rl, out, m)
		},
	}
	cmd.Flags().BoolVar(&noDemo, "no-demo", false, "skip the demo sentences")
	return cmd
}

// runREPL morphs lines from r until an empty line, EOF or ".quit".
// Ctrl-C discards the current line and keeps the session open.
func runREPL(r lineReader, w io.Writer, m *morphology.Morpher) error {
	for {
		line, err := r.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" || line == ".quit" {
			return nil
		}
		printTimed(w, m, line)
	}
}
