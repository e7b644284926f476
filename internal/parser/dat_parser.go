// Package parser reads the semicolon-delimited ASCII export files written
// by the supported spectrum analyzers and splits them into typed settings
// records plus the numeric trace payload.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// dataRow is one classified numeric line, kept with its original file line
// number for diagnostics.
type dataRow struct {
	line   int
	values []float64
}

// ParseFile reads one export file and returns the settings records and the
// decoded trace. The result is all-or-nothing: any error leaves nothing
// partially populated.
func ParseFile(path string, family Family, opts Options) (*Measurement, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dat file: %w", err)
	}
	defer file.Close()

	header, data, err := splitLines(file, path)
	if err != nil {
		return nil, err
	}

	m := &Measurement{Path: path, Family: family}
	schema := schemaFor(family)
	if err := schema.extract(m, header, path); err != nil {
		return nil, err
	}
	if err := assembleTrace(m, data, opts.Autopeak, path); err != nil {
		return nil, err
	}

	if opts.Logger != nil {
		opts.Logger.Info("parsed measurement",
			"path", path,
			"family", family.String(),
			"model", m.Device.Model,
			"center_freq", m.Device.CenterFreq,
			"center_unit", m.Device.CenterUnit,
			"points", m.TraceSet.Points,
			"rows", len(m.Trace.Frequency))
	}
	return m, nil
}

// ParseBatch applies ParseFile across a list of files sharing one family
// and autopeak setting. Failures are collected per file and do not stop the
// batch; the returned MultiTrace holds the successes in input order.
func ParseBatch(paths []string, family Family, opts Options) (MultiTrace, []*FileError) {
	var traces MultiTrace
	var failures []*FileError
	for i, path := range paths {
		m, err := ParseFile(path, family, opts)
		if err != nil {
			failures = append(failures, &FileError{Index: i, Path: path, Err: err})
			continue
		}
		traces = append(traces, m)
	}
	return traces, failures
}

// splitLines performs the single classification pass: a trimmed, non-empty
// line whose first character is an ASCII digit is a data row, everything
// else is header. Blank lines are dropped so they cannot shift the
// fixed-offset header indices. Tokens are split on ';' and trimmed; a
// trailing empty token from a line-terminating ';' is discarded.
func splitLines(r io.Reader, path string) (header [][]string, data []dataRow, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Split(line, ";")
		if len(tokens) > 1 && tokens[len(tokens)-1] == "" {
			tokens = tokens[:len(tokens)-1]
		}
		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}

		first := tokens[0]
		if first != "" && first[0] >= '0' && first[0] <= '9' {
			values := make([]float64, len(tokens))
			for i, tok := range tokens {
				v, convErr := strconv.ParseFloat(tok, 64)
				if convErr != nil {
					return nil, nil, &MalformedDataRowError{
						Path: path, Line: lineNo, Token: tok, Err: convErr,
					}
				}
				values[i] = v
			}
			data = append(data, dataRow{line: lineNo, values: values})
		} else {
			header = append(header, tokens)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, nil, fmt.Errorf("read dat file %s: %w", path, scanErr)
	}
	return header, data, nil
}

// extract walks the schema table and fills the settings records. The header
// length is validated against the table's largest row index before any
// field is touched, so a file from the wrong family or firmware fails as a
// schema mismatch instead of yielding silently shifted values.
func (s *familySchema) extract(m *Measurement, header [][]string, path string) error {
	if len(header) < s.minLines {
		return &SchemaMismatchError{
			Path: path, Family: s.family,
			What: "header lines", Expected: s.minLines, Got: len(header),
		}
	}

	for _, f := range s.fields {
		tokens := header[f.row]
		need := f.col + 1
		if f.unit != nil {
			need = f.col + 2
		}
		if len(tokens) < need {
			return &SchemaMismatchError{
				Path: path, Family: s.family,
				What: fmt.Sprintf("header tokens in row %d", f.row),
				Expected: need, Got: len(tokens),
			}
		}

		raw := tokens[f.col]
		switch f.typ {
		case fieldString:
			*f.str(m) = raw
		case fieldFloat:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return &FieldTypeError{Path: path, Field: f.name, Token: raw, Err: err}
			}
			*f.num(m) = v
		case fieldInt:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return &FieldTypeError{Path: path, Field: f.name, Token: raw, Err: err}
			}
			*f.n(m) = v
		}
		if f.unit != nil {
			*f.unit(m) = tokens[f.col+1]
		}
	}
	return nil
}

// assembleTrace fans the data rows out into the parallel trace slices,
// preserving file order. With autopeak set every row must carry the third
// column; without it a present third column is ignored. Columns beyond the
// expected shape are never an error.
func assembleTrace(m *Measurement, data []dataRow, autopeak bool, path string) error {
	expected := 2
	if autopeak {
		expected = 3
	}

	freq := make([]float64, 0, len(data))
	val := make([]float64, 0, len(data))
	var secondary []float64
	if autopeak {
		secondary = make([]float64, 0, len(data))
	}

	for _, row := range data {
		if len(row.values) < expected {
			return &SchemaMismatchError{
				Path: path, Family: m.Family,
				What: "data columns", Line: row.line,
				Expected: expected, Got: len(row.values),
			}
		}
		freq = append(freq, row.values[0])
		val = append(val, row.values[1])
		if autopeak {
			secondary = append(secondary, row.values[2])
		}
	}

	m.Trace = Trace{Frequency: freq, Value: val, SecondaryValue: secondary}
	return nil
}
