package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/6o6p/morphology"
)

func newFormsCommand() *cobra.Command {
	var pos string

	cmd := &cobra.Command{
		Use:   "forms WORD",
		Short: "List every dictionary form of a lemma",
		Long: `Print the paradigm of lemma WORD in dictionary order. If WORD is not a
lemma but an inflected form, the lemmas it belongs to are listed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := envFrom(cmd).loadMorpher()
			if err != nil {
				return err
			}

			p := m.Paradigm(args[0])
			if p == nil {
				return printLemmas(cmd, m, args[0])
			}

			forms := p.Forms
			if pos != "" {
				forms = p.ByPOS(morphology.PartOfSpeech(morphology.Normalize(pos)))
			}

			t := newTable(cmd)
			t.SetTitle(p.Lemma)
			t.AppendHeader(table.Row{"#", "Form", "POS", "Attributes"})
			for i, f := range forms {
				t.AppendRow(table.Row{i + 1, f.Surface, f.POS().Name(), f.Attributes.String()})
			}
			t.AppendFooter(table.Row{"", strconv.Itoa(len(forms)) + " forms", "", ""})
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&pos, "pos", "", "only forms with this part of speech (e.g. NOUN)")
	return cmd
}

func printLemmas(cmd *cobra.Command, m *morphology.Morpher, word string) error {
	entries := m.Lemmatize(word)
	if len(entries) == 0 {
		return fmt.Errorf("%q is not in the dictionary", morphology.Normalize(word))
	}

	t := newTable(cmd)
	t.SetTitle(morphology.Normalize(word) + " is a form of")
	t.AppendHeader(table.Row{"Lemma", "Forms"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Key, len(e.Forms)})
	}
	t.Render()
	return nil
}

func newTable(cmd *cobra.Command) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	return t
}
