package task

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const asciiSpace = " \t\n\r\f\v"

// Encode renders tasks as a pretty-printed JSON array.
//
// Keys are written in a fixed order. Only '"' and '\' are escaped inside
// strings; control characters pass through as-is so files written by older
// versions of the tool re-encode byte for byte.
func Encode(tasks []Task) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail.
	_ = EncodeTo(&buf, tasks)
	return buf.Bytes()
}

// EncodeTo writes the encoded form of tasks to w.
func EncodeTo(w io.Writer, tasks []Task) error {
	var b strings.Builder
	b.WriteString("[\n")
	for i, t := range tasks {
		b.WriteString("  {\n")
		fmt.Fprintf(&b, "    \"id\": %d,\n", t.id)
		fmt.Fprintf(&b, "    \"description\": \"%s\",\n", escapeString(t.description))
		fmt.Fprintf(&b, "    \"status\": \"%s\",\n", escapeString(string(t.status)))
		fmt.Fprintf(&b, "    \"createdAt\": \"%s\",\n", escapeString(t.createdAt))
		fmt.Fprintf(&b, "    \"updatedAt\": \"%s\"\n", escapeString(t.updatedAt))
		b.WriteString("  }")
		if i < len(tasks)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("]\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// DecodeResult holds the tasks recovered from a file and every problem
// noticed along the way.
type DecodeResult struct {
	Tasks []Task

	// Problems are *FormatError, *SkipError, or value-level errors.
	// None of them stop decoding; they are for reporting.
	Problems []error
}

// Decode parses the tasks file format.
//
// Decoding is best effort. Structural damage stops the scan and keeps the
// tasks already read; an invalid task object is skipped and its siblings
// still decode.
func Decode(data []byte) DecodeResult {
	var result DecodeResult

	content := strings.Trim(string(data), asciiSpace)
	if content == "" || content == "[]" {
		return result
	}

	start := strings.IndexByte(content, '[')
	end := strings.LastIndexByte(content, ']')
	if start < 0 || end < 0 || start >= end {
		result.Problems = append(result.Problems, &FormatError{Reason: "missing or misplaced array brackets"})
		return result
	}

	seen := make(map[int]bool)
	pos := start + 1
	for pos < end {
		objStart := indexOutsideStrings(content, '{', pos)
		if objStart < 0 || objStart >= end {
			break
		}

		objEnd := indexOutsideStrings(content, '}', objStart+1)
		nextStart := indexOutsideStrings(content, '{', objStart+1)
		if objEnd < 0 || (nextStart >= 0 && objEnd > nextStart) {
			result.Problems = append(result.Problems, &FormatError{Reason: "mismatched or nested braces"})
			break
		}
		if objEnd >= end {
			result.Problems = append(result.Problems, &FormatError{Reason: "object brace extends beyond array"})
			break
		}

		raw, problems := extractRawTask(content[objStart+1 : objEnd])
		result.Problems = append(result.Problems, problems...)

		t, err := Build(raw)
		switch {
		case err != nil:
			result.Problems = append(result.Problems, err)
		case seen[t.id]:
			skip := &SkipError{ID: raw.ID}
			skip.add("id", "duplicates an earlier task")
			result.Problems = append(result.Problems, skip)
		default:
			seen[t.id] = true
			result.Tasks = append(result.Tasks, t)
		}

		pos = objEnd + 1
	}

	return result
}

func extractRawTask(body string) (RawTask, []error) {
	var problems []error
	field := func(key string) string {
		value, err := findValue(body, key)
		if err != nil {
			problems = append(problems, err)
		}
		return value
	}

	raw := RawTask{
		ID:          field("id"),
		Description: field("description"),
		Status:      field("status"),
		CreatedAt:   field("createdAt"),
		UpdatedAt:   field("updatedAt"),
	}
	return raw, problems
}

// findValue returns the value stored under key in a flat object body.
//
// The key is located by a literal search for `"key":`. String values are
// unescaped; other values must be integers. A missing key yields "" with no
// error; a malformed value yields "" and an error describing it.
func findValue(body, key string) (string, error) {
	pattern := `"` + key + `":`
	keyPos := strings.Index(body, pattern)
	if keyPos < 0 {
		return "", nil
	}

	i := keyPos + len(pattern)
	for i < len(body) && strings.IndexByte(asciiSpace, body[i]) >= 0 {
		i++
	}
	if i >= len(body) {
		return "", nil
	}

	if body[i] == '"' {
		escaped := false
		for j := i + 1; j < len(body); j++ {
			switch {
			case escaped:
				escaped = false
			case body[j] == '\\':
				escaped = true
			case body[j] == '"':
				return unescapeString(body[i+1 : j]), nil
			}
		}
		return "", fmt.Errorf("malformed string value for key %q", key)
	}

	rest := body[i:]
	stop := strings.IndexAny(rest, ",}")
	if stop < 0 {
		stop = len(rest)
	}
	number := strings.TrimRight(rest[:stop], asciiSpace)
	if number == "" {
		return "", nil
	}
	if !isInteger(number) {
		return "", fmt.Errorf("non-numeric value for numeric key %q: %s", key, number)
	}
	return number, nil
}

func isInteger(value string) bool {
	digits := strings.TrimPrefix(value, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// indexOutsideStrings finds the next ch at or after from that is not inside
// a quoted string. from must itself be outside any string.
func indexOutsideStrings(s string, ch byte, from int) int {
	inString := false
	escaped := false
	for i := from; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			continue
		}
		if c == ch {
			return i
		}
	}
	return -1
}

func escapeString(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unescapeString reverses escapeString. A backslash before any other
// character is kept together with that character.
func unescapeString(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	escaped := false
	for i := 0; i < len(value); i++ {
		c := value[i]
		if escaped {
			switch c {
			case '"', '\\':
				b.WriteByte(c)
			default:
				b.WriteByte('\\')
				b.WriteByte(c)
			}
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
