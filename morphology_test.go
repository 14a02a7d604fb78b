package morphology

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDict = "testdata/dict.txt"

func newTestMorpher(t *testing.T, opts ...BuildOption) *Morpher {
	t.Helper()
	x, _, err := LoadFile(testDict, opts...)
	require.NoError(t, err)
	return New(x)
}

func buildLines(t *testing.T, lines []string, opts ...BuildOption) *LemmaIndex {
	t.Helper()
	x, _, err := Build(slices.Values(lines), opts...)
	require.NoError(t, err)
	return x
}

func TestMorph_EndToEnd(t *testing.T) {
	m := New(buildLines(t, []string{
		"1",
		"МАМА\tNOUN,anim,femn,sing,nomn",
		"МАМЫ\tNOUN,anim,femn,sing,gent",
	}))

	assert.Equal(t, "МАМЫ", m.Morph("мама{noun,sing,gent}"))
	assert.Equal(t, "РАМА", m.Morph("РАМА{noun,accs}"))
}

func TestMorph_OriginalDemoSentence(t *testing.T) {
	m := newTestMorpher(t)

	got := m.Morph("мама{noun,anim,femn,sing,gent} мыла РАМА{noun,inan,femn,sing,accs}")
	assert.Equal(t, "МАМЫ МЫЛА РАМА", got)
}

func TestMorph_Tokens(t *testing.T) {
	m := newTestMorpher(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare word is normalized", "мыла", "МЫЛА"},
		{"bare unknown word", "кот", "КОТ"},
		{"unknown lemma with specifier", "кот{noun,sing,gent}", "КОТ"},
		{"subset picks gent", "мама{sing,gent}", "МАМЫ"},
		{"specifier order is irrelevant", "мама{gent,sing,noun}", "МАМЫ"},
		{"dative", "мама{noun,datv}", "МАМЕ"},
		{"no qualifying form falls back to lemma", "рама{noun,accs}", "РАМА"},
		{"contradicting tag falls back", "мама{noun,masc}", "МАМА"},
		{"plural form", "мама{plur,nomn}", "МАМЫ"},
		{"verb form", "мыть{VERB,masc,past}", "МЫЛ"},
		{"yo is kept", "студёный{femn,accs}", "СТУДЁНУЮ"},
		{"empty specifier is a bare token", "мама{}", "МАМА"},
		{"whitespace is collapsed", "  мама   мыла\tраму ", "МАМА МЫЛА РАМУ"},
		{"empty sentence", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Morph(tt.in))
		})
	}
}

// A request that under-specifies the form returns the first form in file
// order, not the most specific one.
func TestMorph_FirstMatchInFileOrder(t *testing.T) {
	m := New(buildLines(t, []string{
		"1",
		"ОКНО\tNOUN,inan,neut sing,nomn",
		"ОКНА\tNOUN,inan,neut sing,gent",
		"ОКНУ\tNOUN,inan,neut sing,datv",
	}))

	assert.Equal(t, "ОКНО", m.Morph("окно{sing}"))
	assert.Equal(t, "ОКНА", m.Morph("окно{sing,gent}"))
}

func TestMorph_IdempotentForBareTokens(t *testing.T) {
	dicts := map[string]*Morpher{
		"empty":   New(buildLines(t, nil)),
		"fixture": newTestMorpher(t),
		"exact":   newTestMorpher(t, WithMatchPolicy(MatchExact)),
	}
	for name, m := range dicts {
		t.Run(name, func(t *testing.T) {
			for _, w := range []string{"мама", "МАМЫ", "Рама", "кот", "42"} {
				assert.Equal(t, Normalize(w), m.Morph(w))
			}
		})
	}
}

func TestMorph_MalformedTokensAreKeptLiterally(t *testing.T) {
	m := newTestMorpher(t)

	got := m.Morph("мама{noun,gent мыла {sing} рама}")
	assert.Equal(t, "МАМА{NOUN,GENT МЫЛА {SING} РАМА}", got)
}

func TestMorphStrict(t *testing.T) {
	m := newTestMorpher(t)

	got, err := m.MorphStrict("мама{noun,sing,gent} мыла")
	require.NoError(t, err)
	assert.Equal(t, "МАМЫ МЫЛА", got)

	_, err = m.MorphStrict("мама мыла{verb раму")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedToken)

	var te *TokenError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 1, te.Index)
	assert.Equal(t, "мыла{verb", te.Token)
}

func TestMorph_ExactPolicy(t *testing.T) {
	m := newTestMorpher(t, WithMatchPolicy(MatchExact))

	assert.Equal(t, "МАМЫ", m.Morph("мама{NOUN,anim,femn,sing,gent}"))
	assert.Equal(t, "МАМЫ", m.Morph("мама{gent,sing,femn,anim,NOUN}"))
	// Under-specified requests never match exactly.
	assert.Equal(t, "МАМА", m.Morph("мама{sing,gent}"))
}

func TestMorph_ExactPolicyKeepsFirstDuplicate(t *testing.T) {
	m := New(buildLines(t, []string{
		"1",
		"ЛИСТ\tNOUN,inan,masc sing,nomn",
		"ЛИСТЫ\tNOUN,inan,masc plur,nomn",
		"ЛИСТЬЯ\tNOUN,inan,masc plur,nomn",
	}, WithMatchPolicy(MatchExact)))

	assert.Equal(t, "ЛИСТЫ", m.Morph("лист{NOUN,inan,masc,plur,nomn}"))
}

func TestMorph_ConcurrentReaders(t *testing.T) {
	m := newTestMorpher(t)
	const in = "мама{noun,sing,gent} мыла рама{sing,datv}"
	const want = "МАМЫ МЫЛА РАМЕ"

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := m.Morph(in); got != want {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Morph = %q, want %q", got, want)
	}
}

func TestInflect(t *testing.T) {
	m := newTestMorpher(t)

	got, ok := m.Inflect("мама", "sing", "datv")
	assert.True(t, ok)
	assert.Equal(t, "МАМЕ", got)

	got, ok = m.Inflect("рама", "accs")
	assert.False(t, ok)
	assert.Equal(t, "РАМА", got)
}

func TestParadigm(t *testing.T) {
	m := newTestMorpher(t)

	p := m.Paradigm("мама")
	require.NotNil(t, p)
	assert.Equal(t, "МАМА", p.Lemma)
	require.Len(t, p.Forms, 5)
	assert.Equal(t, "МАМА", p.Forms[0].Surface)
	assert.Equal(t, POSNoun, p.Forms[0].POS())

	verbs := m.Paradigm("мыть").ByPOS(POSVerb)
	assert.Len(t, verbs, 2)

	assert.Nil(t, m.Paradigm("кот"))
}

func TestLemmatize(t *testing.T) {
	m := newTestMorpher(t)

	entries := m.Lemmatize("мылА")
	require.Len(t, entries, 1)
	assert.Equal(t, "МЫТЬ", entries[0].Key)

	// МАМЫ appears twice under МАМА but the lemma is reported once.
	entries = m.Lemmatize("мамы")
	require.Len(t, entries, 1)
	assert.Equal(t, "МАМА", entries[0].Key)

	assert.Empty(t, m.Lemmatize("кот"))
}

func TestIndexKeys(t *testing.T) {
	m := newTestMorpher(t)

	keys := m.Index().Keys()
	assert.Equal(t, []string{"МАМА", "МЫТЬ", "РАМА", "СТУДЁНЫЙ"}, keys)
	assert.True(t, slices.IsSorted(keys))
	assert.Equal(t, 4, m.Index().Len())
	assert.Equal(t, MatchSubset, m.Index().Policy())
}

func TestLoadFile_Missing(t *testing.T) {
	_, _, err := LoadFile("testdata/does-not-exist.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open dictionary")
}
