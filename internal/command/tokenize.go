package command

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote is returned for a quote that is never closed.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Tokenize splits a command line on whitespace. A single or double quote
// at the start of an argument groups words up to the matching quote, so
// playlist names may contain spaces. Quotes inside a word are literal.
func Tokenize(line string) ([]string, error) {
	tokens, _, err := TokenizeN(line, -1)
	return tokens, err
}

// TokenizeN reads at most n tokens like Tokenize and returns the untouched
// remainder of the line, without surrounding whitespace. A negative n
// reads the whole line.
func TokenizeN(line string, n int) (tokens []string, rest string, err error) {
	var (
		current strings.Builder
		quote   rune
		inToken bool
	)
	for i, r := range line {
		if !inToken && quote == 0 && !unicode.IsSpace(r) && n >= 0 && len(tokens) == n {
			return tokens, strings.TrimRightFunc(line[i:], unicode.IsSpace), nil
		}
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case (r == '"' || r == '\'') && !inToken:
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, "", ErrUnterminatedQuote
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, "", nil
}
