package hpgl

import "iter"

// Delimiters separate HPGL command tokens.
const Delimiters = ";\r\n"

func isDelimiter(c byte) bool {
	return c == ';' || c == '\r' || c == '\n'
}

// Tokens returns a lazy sequence over the non-empty tokens of text.
// Delimiters are consumed and never yielded; runs of delimiters produce no empty
// tokens. Each range over the sequence rescans text from the start.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for i := 0; i < len(text); i++ {
			if !isDelimiter(text[i]) {
				continue
			}
			if i > start && !yield(text[start:i]) {
				return
			}
			start = i + 1
		}
		if start < len(text) {
			yield(text[start:])
		}
	}
}
