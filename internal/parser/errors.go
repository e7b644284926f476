package parser

import "fmt"

// MalformedDataRowError reports a token in the data region that failed to
// parse as a floating-point number. The parse of the affected file is
// aborted; no partial row is emitted.
type MalformedDataRowError struct {
	Path  string
	Line  int // 1-based line number in the file
	Token string
	Err   error
}

func (e *MalformedDataRowError) Error() string {
	return fmt.Sprintf("%s: malformed data row at line %d: token %q: %v", e.Path, e.Line, e.Token, e.Err)
}

func (e *MalformedDataRowError) Unwrap() error { return e.Err }

// SchemaMismatchError reports a file whose shape does not match the
// expected family layout: a header region shorter than the schema requires,
// a header line with fewer tokens than a field needs, or a data row whose
// column count contradicts the autopeak flag. This is the primary defense
// against consuming a file from the wrong instrument family or firmware.
type SchemaMismatchError struct {
	Path     string
	Family   Family
	What     string // e.g. "header lines", "data columns"
	Line     int    // 1-based line number for data rows, 0 for header checks
	Expected int
	Got      int
}

func (e *SchemaMismatchError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s schema mismatch: line %d has %d %s, expected %d",
			e.Path, e.Family, e.Line, e.Got, e.What, e.Expected)
	}
	return fmt.Sprintf("%s: %s schema mismatch: got %d %s, expected at least %d",
		e.Path, e.Family, e.Got, e.What, e.Expected)
}

// FieldTypeError reports a named settings field whose raw token failed its
// expected-type conversion.
type FieldTypeError struct {
	Path  string
	Field string
	Token string
	Err   error
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s: field %q: cannot parse %q: %v", e.Path, e.Field, e.Token, e.Err)
}

func (e *FieldTypeError) Unwrap() error { return e.Err }

// FileError ties a batch parse failure to the file it occurred in.
type FileError struct {
	Index int // position in the batch's path list
	Path  string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
