package store

import "strings"

const (
	fieldSeparator = ','
	quoteChar      = '"'
)

// Record is the question/answer pair extracted from one deck line.
type Record struct {
	Question string
	Answer   string
}

// ParseRecord splits one line into comma-separated fields and returns the
// first two. Double quotes group text containing commas and a doubled quote
// inside a quoted field yields a literal quote. Fields are trimmed. Lines with
// fewer than two fields produce no record. Malformed quoting never fails: an
// unterminated quote simply runs to the end of the line.
func ParseRecord(line string) (Record, bool) {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)
	closeField := func() {
		fields = append(fields, strings.TrimSpace(field.String()))
		field.Reset()
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == quoteChar:
			if inQuotes && i+1 < len(runes) && runes[i+1] == quoteChar {
				field.WriteRune(quoteChar)
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == fieldSeparator && !inQuotes:
			closeField()
		default:
			field.WriteRune(c)
		}
	}
	closeField()

	if len(fields) < 2 {
		return Record{}, false
	}
	return Record{Question: fields[0], Answer: fields[1]}, true
}
