package catalog

import (
	"fmt"
	"os"
	"strings"
)

const headerDelimiter = "---"

// ParseHeader extracts the frontmatter fields of a document.
//
// The header starts at the first non-blank line, which must be "---", and ends
// at the next "---" line. Blank lines and a UTF-8 BOM before the opening
// delimiter are allowed; any other first line means the document has no header. Each line inside it that contains a colon is split
// on the first colon into a trimmed name and value; later names overwrite
// earlier ones. Lines without a colon are ignored. A missing closing delimiter
// is not an error: whatever was collected up to the end of input is returned.
func ParseHeader(content string) Header {
	h, _ := scanHeader(content)
	return h
}

// HasUnclosedHeader reports whether content opens a header block but never
// closes it. Such documents still parse; doctor uses this to flag them.
func HasUnclosedHeader(content string) bool {
	_, unclosed := scanHeader(content)
	return unclosed
}

func scanHeader(content string) (Header, bool) {
	h := Header{}
	s := strings.TrimPrefix(content, "\ufeff")

	opened := false
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if !opened {
			if line == "" {
				continue
			}
			if line != headerDelimiter {
				return h, false
			}
			opened = true
			continue
		}
		if line == headerDelimiter {
			return h, false
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		h[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return h, opened
}

// ReadHeader reads the document at path and parses its header.
func ReadHeader(path string) (Header, error) {
	content, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return ParseHeader(content), nil
}

// ReadDocument returns the full raw text of the document at path.
func ReadDocument(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return string(b), nil
}
