package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/6o6p/morphology"
)

// demoSentences exercise the full OpenCorpora dictionary: a short
// sentence and a long one mixing known lemmas, fallbacks and odd tags.
var demoSentences = []string{
	"мама{noun,anim,femn,sing,gent} мыла РАМА{noun,inan,femn,sing,accs}",
	"ОДНАЖДЫ{ADVB} В{NOUN,anim,ms-f,Sgtm,Fixd,Abbr,Init,nomn} СТУДЁНЫЙ{ADJF,Qual,femn,sing,accs} " +
		"ЗИМНИЙ{ADJF,femn,accs} ПОРА{sing,accs} Я{NOUN,anim,ms-f,Sgtm,Fixd,Abbr,Patr,Init,sing,nomn} " +
		"ИЗА{NOUN,anim,plur,gent} ЛЕСА{NOUN,inan,femn,sing,accs} ВЫШЕЛ{VERB,perf,intr,sing,indc} " +
		"ЕСТЬ{VERB,impf,intr,masc,sing,past,indc} СИЛЬНЫЙ{Qual,masc,nomn} МОРОЗ{anim,femn,Sgtm,Surn,sing,nomn} " +
		"ГЛЯЖУ{VERB,impf,tran,sing,pres,indc} ПОДНИМАЮСЬ{VERB,impf,intr,3per,pres,indc} МЕДЛЕН{Qual,neut} " +
		"В{NOUN,ms-f,Fixd,Abbr,Patr,Init,sing,nomn} ГОРА{NOUN,inan,femn,sing,accs} ЛОШАДКА{NOUN,anim,femn,sing} " +
		"ВЕЗУЩИЙ{impf,pres,actv,femn,sing,nomn} ХВОРОСТ{NOUN,gen2} ВОЗ{NOUN,femn,Fixd,Abbr,Orgn,sing,nomn}",
}

// printTimed morphs sentence and prints it the way the console does.
func printTimed(w io.Writer, m *morphology.Morpher, sentence string) {
	start := time.Now()
	result := m.Morph(sentence)
	_, _ = fmt.Fprintf(w, "[took %s]   %s\n", time.Since(start), result)
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Morph the built-in demo sentences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _, err := envFrom(cmd).loadMorpher()
			if err != nil {
				return err
			}
			for _, s := range demoSentences {
				printTimed(cmd.OutOrStdout(), m, s)
			}
			return nil
		},
	}
}
