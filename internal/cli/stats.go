package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dictionary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := envFrom(cmd)
			m, stats, err := e.loadMorpher()
			if err != nil {
				return err
			}

			t := newTable(cmd)
			t.SetTitle(e.cfg.Dictionary.Path)
			t.AppendRows([]table.Row{
				{"Policy", m.Index().Policy().String()},
				{"Lines", stats.Lines},
				{"Markers", stats.Markers},
				{"Blank", stats.Blank},
				{"Forms", stats.Forms},
				{"Lemmas", stats.Lemmas},
			})
			t.Render()
			return nil
		},
	}
}
