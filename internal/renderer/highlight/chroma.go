package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// chromaHighlighter adapts a chroma lexer to the line-local Highlighter
// contract. Each line is lexed independently, so multi-line constructs
// (block comments, raw strings) may render stale styles until their
// lines are edited; that staleness is accepted.
type chromaHighlighter struct {
	id    string
	lexer chroma.Lexer
}

// newChroma builds a highlighter from a chroma lexer name. Returns nil
// when chroma has no lexer by that name.
func newChroma(id, lexerName string) Highlighter {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		return nil
	}
	return &chromaHighlighter{id: id, lexer: chroma.Coalesce(lexer)}
}

// Tokenize implements Highlighter.
func (h *chromaHighlighter) Tokenize(line string) []Token {
	if line == "" {
		return nil
	}

	it, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return Plain{}.Tokenize(line)
	}

	var tokens []Token
	offset := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		start := offset
		offset += len(tok.Value)
		end := offset
		// Lexers may emit a synthetic trailing newline.
		if end > len(line) {
			end = len(line)
		}
		if start >= end {
			continue
		}
		tokens = append(tokens, Token{Start: start, End: end, Type: mapTokenType(tok.Type)})
	}
	return tokens
}

// Language implements Highlighter.
func (h *chromaHighlighter) Language() string { return h.id }

// mapTokenType folds chroma's fine-grained token taxonomy onto the
// editor's theme keys.
func mapTokenType(t chroma.TokenType) TokenType {
	switch {
	case t.InCategory(chroma.Comment):
		return TokenComment
	case t == chroma.KeywordType:
		return TokenTypeName
	case t.InCategory(chroma.Keyword):
		return TokenKeyword
	case t.InSubCategory(chroma.LiteralString):
		return TokenString
	case t.InSubCategory(chroma.LiteralNumber):
		return TokenNumber
	case t.InCategory(chroma.Operator):
		return TokenOperator
	case t.InCategory(chroma.Punctuation):
		return TokenPunctuation
	case t == chroma.NameFunction:
		return TokenFunction
	case t == chroma.NameClass || t == chroma.NameBuiltin || t == chroma.NameException:
		return TokenTypeName
	default:
		return TokenText
	}
}
