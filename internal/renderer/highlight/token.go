// Package highlight produces style tokens for document lines. A
// Highlighter tokenizes one line at a time with no cross-line state, so
// re-render cost after an edit is bounded by the edited region.
// Language-specific lexing is delegated to chroma; the plain fallback
// emits the whole line as a single text token.
package highlight

// TokenType is the semantic class of a token, used as a theme style key.
type TokenType uint8

const (
	TokenText TokenType = iota
	TokenComment
	TokenKeyword
	TokenString
	TokenNumber
	TokenOperator
	TokenPunctuation
	TokenFunction
	TokenTypeName
)

// String returns the theme key for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenComment:
		return "comment"
	case TokenKeyword:
		return "keyword"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	case TokenPunctuation:
		return "punctuation"
	case TokenFunction:
		return "function"
	case TokenTypeName:
		return "type"
	default:
		return "text"
	}
}

// tokenTypeFromName is the inverse of String, for theme parsing.
func tokenTypeFromName(name string) (TokenType, bool) {
	switch name {
	case "text":
		return TokenText, true
	case "comment":
		return TokenComment, true
	case "keyword":
		return TokenKeyword, true
	case "string":
		return TokenString, true
	case "number":
		return TokenNumber, true
	case "operator":
		return TokenOperator, true
	case "punctuation":
		return TokenPunctuation, true
	case "function":
		return TokenFunction, true
	case "type":
		return TokenTypeName, true
	default:
		return TokenText, false
	}
}

// Token is a styled span within one line, in byte columns.
type Token struct {
	Start int
	End   int
	Type  TokenType
}
