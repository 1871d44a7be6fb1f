package highlight

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownLanguage is returned for a language id outside the supported
// set.
var ErrUnknownLanguage = errors.New("unknown language")

// Highlighter tokenizes single lines of a given language.
type Highlighter interface {
	// Tokenize returns the styled spans of one line. Tokens cover the
	// line in order without overlap; uncovered gaps render as plain
	// text.
	Tokenize(line string) []Token

	// Language returns the id this highlighter was built for.
	Language() string
}

// PlainID is the language id of the no-highlight fallback.
const PlainID = "plain"

// supportedLanguages is the closed set of selectable language ids,
// mapped to the lexer name chroma knows them by.
var supportedLanguages = map[string]string{
	"python":     "python",
	"javascript": "javascript",
	"typescript": "typescript",
	"html":       "html",
	"css":        "css",
	"bash":       "bash",
	"c":          "c",
	"cpp":        "c++",
	"rust":       "rust",
	"java":       "java",
	"go":         "go",
	"ruby":       "ruby",
	"php":        "php",
	"csharp":     "c#",
	"swift":      "swift",
	"kotlin":     "kotlin",
	"scala":      "scala",
	"perl":       "perl",
	"lua":        "lua",
	"haskell":    "haskell",
	"elixir":     "elixir",
	"r":          "r",
	"dart":       "dart",
	"sql":        "sql",
	"fortran":    "fortran",
	"erlang":     "erlang",
}

// Supported returns the selectable language ids in sorted order,
// including the plain fallback.
func Supported() []string {
	ids := make([]string, 0, len(supportedLanguages)+1)
	for id := range supportedLanguages {
		ids = append(ids, id)
	}
	ids = append(ids, PlainID)
	sort.Strings(ids)
	return ids
}

// IsSupported reports whether id names a selectable language,
// case-insensitively.
func IsSupported(id string) bool {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == PlainID {
		return true
	}
	_, ok := supportedLanguages[id]
	return ok
}

// New returns a highlighter for the given language id. Unknown ids fail
// with ErrUnknownLanguage. Supported ids chroma cannot resolve fall back
// to the plain highlighter rather than failing.
func New(id string) (Highlighter, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" || id == PlainID {
		return Plain{}, nil
	}
	lexerName, ok := supportedLanguages[id]
	if !ok {
		return nil, ErrUnknownLanguage
	}
	if h := newChroma(id, lexerName); h != nil {
		return h, nil
	}
	return plainAs{id: id}, nil
}

// extensionLanguages maps file extensions to language ids for load-time
// detection.
var extensionLanguages = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".html": "html",
	".css":  "css",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cc":   "cpp",
	".rs":   "rust",
	".java": "java",
	".go":   "go",
	".sh":   "bash",
	".rb":   "ruby",
	".php":  "php",
	".cs":   "csharp",
	".lua":  "lua",
	".sql":  "sql",
}

// DetectLanguage guesses a language id from a file path. Unknown or
// empty extensions map to the plain fallback.
func DetectLanguage(path string) string {
	if path == "" {
		return PlainID
	}
	ext := strings.ToLower(filepath.Ext(path))
	if id, ok := extensionLanguages[ext]; ok {
		return id
	}
	return PlainID
}

// Plain is the no-highlight fallback: the whole line is one text token.
type Plain struct{}

// Tokenize implements Highlighter.
func (Plain) Tokenize(line string) []Token {
	if line == "" {
		return nil
	}
	return []Token{{Start: 0, End: len(line), Type: TokenText}}
}

// Language implements Highlighter.
func (Plain) Language() string { return PlainID }

// plainAs tokenizes as plain text while reporting the language id it
// stands in for. Used when chroma has no lexer for a supported id.
type plainAs struct{ id string }

func (p plainAs) Tokenize(line string) []Token { return Plain{}.Tokenize(line) }

func (p plainAs) Language() string { return p.id }
