package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FormatDAT re-emits a measurement in the instrument's semicolon-delimited
// export layout, walking the same schema table the extractor reads from.
// Numeric values are formatted so that re-parsing the output reproduces the
// records value-for-value; the ZVL's blank separator line between the
// device and trace regions is reproduced as well.
func FormatDAT(m *Measurement) string {
	schema := schemaFor(m.Family)

	rows := make([][]string, schema.minLines)
	for i := range rows {
		rows[i] = []string{schema.rowLabels[i]}
	}

	for _, f := range schema.fields {
		var value string
		switch f.typ {
		case fieldString:
			value = *f.str(m)
		case fieldFloat:
			value = strconv.FormatFloat(*f.num(m), 'G', -1, 64)
		case fieldInt:
			value = strconv.Itoa(*f.n(m))
		}
		rows[f.row] = placeToken(rows[f.row], f.col, value)
		if f.unit != nil {
			rows[f.row] = placeToken(rows[f.row], f.col+1, *f.unit(m))
		}
	}

	var b strings.Builder
	for i, tokens := range rows {
		b.WriteString(strings.Join(tokens, ";"))
		b.WriteString(";\n")
		if i == schema.blankAfter {
			b.WriteString("\n")
		}
	}

	for i := range m.Trace.Frequency {
		b.WriteString(strconv.FormatFloat(m.Trace.Frequency[i], 'G', -1, 64))
		b.WriteString(";")
		b.WriteString(strconv.FormatFloat(m.Trace.Value[i], 'G', -1, 64))
		b.WriteString(";")
		if i < len(m.Trace.SecondaryValue) {
			b.WriteString(strconv.FormatFloat(m.Trace.SecondaryValue[i], 'G', -1, 64))
			b.WriteString(";")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteDAT stores the re-serialized measurement at path.
func WriteDAT(m *Measurement, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dat file: %w", err)
	}
	if _, err := f.WriteString(FormatDAT(m)); err != nil {
		f.Close()
		return fmt.Errorf("write dat file %s: %w", path, err)
	}
	return f.Close()
}

func placeToken(tokens []string, idx int, value string) []string {
	for len(tokens) <= idx {
		tokens = append(tokens, "")
	}
	tokens[idx] = value
	return tokens
}
