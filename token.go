package morphology

import "strings"

// Token is one parsed sentence token.
type Token struct {
	// Base is the normalized word before the specifier.
	Base string
	// Spec is the requested tag set; meaningful only if HasSpec.
	Spec    AttributeSet
	HasSpec bool
}

// ParseToken parses "WORD" or "WORD{TAG,TAG,...}". Tag order inside the
// braces is irrelevant. An empty specifier ("WORD{}") counts as no specifier.
//
// Any other use of braces (unbalanced, repeated, leading, or followed by
// more text) yields ErrMalformedToken.
func ParseToken(raw string) (Token, error) {
	return parseToken(newNormalizer(), raw)
}

func parseToken(n *normalizer, raw string) (Token, error) {
	open := strings.Count(raw, "{")
	closing := strings.Count(raw, "}")
	if open == 0 && closing == 0 {
		return Token{Base: n.key(raw)}, nil
	}
	if open != 1 || closing != 1 {
		return Token{}, ErrMalformedToken
	}

	i := strings.IndexByte(raw, '{')
	j := strings.IndexByte(raw, '}')
	if i == 0 || j < i || j != len(raw)-1 {
		return Token{}, ErrMalformedToken
	}

	tok := Token{Base: n.key(raw[:i])}
	if spec := raw[i+1 : j]; spec != "" {
		tok.Spec = parseAttributes(n, spec)
		tok.HasSpec = true
	}
	return tok, nil
}
