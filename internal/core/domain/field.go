package domain

import "strings"

// Well-known field names.
const (
	FieldCategory = "category"
	FieldTitle    = "title"
	FieldWhen     = "when"
	FieldLanguage = "language"
)

// KnownFields lists the field names the normaliser understands.
var KnownFields = []string{FieldCategory, FieldTitle, FieldWhen, FieldLanguage}

// IsKnownField reports whether name is one of KnownFields.
func IsKnownField(name string) bool {
	for _, f := range KnownFields {
		if f == name {
			return true
		}
	}
	return false
}

// Field is a named value section within a document.
//
// Start is the byte offset of the marker line. End is the byte offset just
// past the value span, excluding the newline that terminates it. Replacing
// text[Start:End] rewrites the whole field and nothing else.
type Field struct {
	// Name is the text following "# " on the marker line.
	Name string

	// Value is the raw value text, possibly spanning several lines.
	Value string

	// Start is the offset of the marker line.
	Start int

	// End is the offset just past the value span.
	End int
}

// Trimmed returns the value without surrounding whitespace.
func (f Field) Trimmed() string {
	return strings.TrimSpace(f.Value)
}

// FormatField renders a field as its marker line, a single newline and the value.
func FormatField(name, value string) string {
	return "# " + name + "\n" + value
}

// ParseFields scans text for "# <name>" marker lines and slices out the value
// that follows each one. A value ends at the first blank line, the next line
// starting with '#', or end of document. Fields are returned in document order;
// a name may occur more than once.
func ParseFields(text string) []Field {
	var fields []Field

	open := -1
	valueStart := -1
	finish := func() {
		if open < 0 {
			return
		}
		if valueStart >= 0 {
			fields[open].Value = text[valueStart:fields[open].End]
		}
		open = -1
		valueStart = -1
	}

	for _, ln := range splitLines(text) {
		line := text[ln.start:ln.end]
		switch {
		case strings.HasPrefix(line, "#"):
			finish()
			if name, ok := markerName(line); ok {
				fields = append(fields, Field{Name: name, Start: ln.start, End: ln.end})
				open = len(fields) - 1
			}
		case strings.TrimSpace(line) == "":
			finish()
		default:
			if open >= 0 {
				if valueStart < 0 {
					valueStart = ln.start
				}
				fields[open].End = ln.end
			}
		}
	}
	finish()

	return fields
}

// FieldsNamed returns the fields with the given name, in document order.
func FieldsNamed(fields []Field, name string) []Field {
	var out []Field
	for _, f := range fields {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

// markerName returns the field name of a "# <name>" marker line.
func markerName(line string) (string, bool) {
	line = strings.TrimRight(line, " \t\r")
	if !strings.HasPrefix(line, "# ") {
		return "", false
	}
	name := strings.TrimSpace(line[2:])
	if name == "" {
		return "", false
	}
	return name, true
}

type lineSpan struct {
	start int
	end   int
}

// splitLines returns the spans of each line, excluding the newline.
func splitLines(text string) []lineSpan {
	var lines []lineSpan
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, lineSpan{start: start, end: i})
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, lineSpan{start: start, end: len(text)})
	}
	return lines
}
