// Package eol converts between on-disk line terminators and the
// canonical in-memory form. In memory every line break is a single "\n";
// on disk the document uses one of the three classic conventions.
package eol

import (
	"errors"
	"strings"
)

// ErrUnsupported is returned for a line-ending name outside the known set.
var ErrUnsupported = errors.New("unsupported line ending")

// Mode is a line terminator convention.
type Mode uint8

const (
	LF   Mode = iota // Unix: \n
	CRLF             // DOS/Windows: \r\n
	CR               // Classic Mac: \r
)

// String returns the conventional display name.
func (m Mode) String() string {
	switch m {
	case CRLF:
		return "DOS"
	case CR:
		return "MAC"
	default:
		return "UNIX"
	}
}

// Sequence returns the terminator bytes for the mode.
func (m Mode) Sequence() string {
	switch m {
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	default:
		return "\n"
	}
}

// Parse resolves a user-supplied name to a Mode. Both the convention
// names (unix/dos/mac) and the terminator names (lf/crlf/cr) are
// accepted, case-insensitively.
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unix", "lf":
		return LF, nil
	case "dos", "windows", "crlf":
		return CRLF, nil
	case "mac", "cr":
		return CR, nil
	default:
		return LF, ErrUnsupported
	}
}

// Detect returns the dominant terminator convention in raw. Each "\r\n"
// counts once as CRLF; remaining lone "\n" and "\r" count for LF and CR.
// The highest count wins, ties break toward LF, and input with no
// terminators at all defaults to LF.
func Detect(raw []byte) Mode {
	var crlf, lf, cr int
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\n':
			lf++
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				crlf++
				i++
			} else {
				cr++
			}
		}
	}

	if crlf > lf && crlf > cr {
		return CRLF
	}
	if cr > lf && cr > crlf {
		return CR
	}
	return LF
}

// Normalize decodes raw bytes to canonical text: every terminator
// becomes "\n" and invalid UTF-8 sequences are replaced rather than
// rejected, so any file can be opened.
func Normalize(raw []byte) string {
	s := strings.ToValidUTF8(string(raw), "�")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Serialize encodes canonical text using the given terminator. It is a
// pure function: the same (text, mode) always yields identical bytes.
func Serialize(text string, mode Mode) []byte {
	if mode == LF {
		return []byte(text)
	}
	return []byte(strings.ReplaceAll(text, "\n", mode.Sequence()))
}
