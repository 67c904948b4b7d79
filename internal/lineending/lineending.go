package lineending

import (
	"fmt"
	"runtime"
	"strings"
)

// LineEnding controls which newline sequence formatted files are written with.
type LineEnding string

const (
	// Auto uses the running platform's native line ending.
	Auto LineEnding = "AUTO"
	// Keep preserves the file's existing dominant line ending, falling back
	// to Auto when the file is empty or its endings are mixed with no winner.
	Keep LineEnding = "KEEP"
	LF   LineEnding = "LF"
	CRLF LineEnding = "CRLF"
	CR   LineEnding = "CR"
)

// Parse validates a user-supplied line-ending policy name.
func Parse(value string) (LineEnding, error) {
	switch LineEnding(strings.ToUpper(strings.TrimSpace(value))) {
	case Auto:
		return Auto, nil
	case Keep:
		return Keep, nil
	case LF:
		return LF, nil
	case CRLF:
		return CRLF, nil
	case CR:
		return CR, nil
	default:
		return "", fmt.Errorf("invalid line ending %q (expected AUTO, KEEP, LF, CRLF or CR)", value)
	}
}

// Chars resolves the policy against a file's current content and returns the
// newline sequence to write.
func (le LineEnding) Chars(content string) string {
	switch le {
	case LF:
		return "\n"
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	case Keep:
		if eol := dominantEnding(content); eol != "" {
			return eol
		}
		return platformEnding()
	default:
		return platformEnding()
	}
}

// Normalize rewrites every line break in text to the given sequence.
func Normalize(text, eol string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if eol == "\n" {
		return text
	}
	return strings.ReplaceAll(text, "\n", eol)
}

func platformEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// dominantEnding returns the most frequent line ending in content, or ""
// when the file has none or the top counts tie.
func dominantEnding(content string) string {
	crlf := strings.Count(content, "\r\n")
	lf := strings.Count(content, "\n") - crlf
	cr := strings.Count(content, "\r") - crlf

	switch {
	case crlf > lf && crlf > cr:
		return "\r\n"
	case lf > crlf && lf > cr:
		return "\n"
	case cr > crlf && cr > lf:
		return "\r"
	default:
		return ""
	}
}
