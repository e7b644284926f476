package parser

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func roundTrip(t *testing.T, path string, family Family, opts Options) (*Measurement, *Measurement) {
	t.Helper()

	first, err := ParseFile(path, family, opts)
	if err != nil {
		t.Fatalf("parse original: %v", err)
	}

	out := filepath.Join(t.TempDir(), "roundtrip.DAT")
	if err := WriteDAT(first, out); err != nil {
		t.Fatalf("WriteDAT: %v", err)
	}

	second, err := ParseFile(out, family, opts)
	if err != nil {
		t.Fatalf("parse re-serialized: %v", err)
	}
	return first, second
}

func assertRecordsEqual(t *testing.T, first, second *Measurement) {
	t.Helper()
	if !reflect.DeepEqual(first.Device, second.Device) {
		t.Errorf("device settings differ:\nfirst:  %+v\nsecond: %+v", first.Device, second.Device)
	}
	if !reflect.DeepEqual(first.TraceSet, second.TraceSet) {
		t.Errorf("trace settings differ:\nfirst:  %+v\nsecond: %+v", first.TraceSet, second.TraceSet)
	}
	if !reflect.DeepEqual(first.Trace, second.Trace) {
		t.Errorf("traces differ:\nfirst:  %+v\nsecond: %+v", first.Trace, second.Trace)
	}
}

func TestRoundTripZVL(t *testing.T) {
	path := zvlFixture(t, "9000;-42.3;-45.1;", "9500;-41.0;-44.0;", "10000;-40.25;-43.875;")
	first, second := roundTrip(t, path, FamilyZVL, Options{Autopeak: true})
	assertRecordsEqual(t, first, second)
}

func TestRoundTripZNL(t *testing.T) {
	path := znlFixture(t, "9000;-83.7;", "9982;-85.1;")
	first, second := roundTrip(t, path, FamilyZNL, Options{})
	assertRecordsEqual(t, first, second)
}

func TestFormatDATLayoutZVL(t *testing.T) {
	path := zvlFixture(t, "9000;-42.3;")
	m, err := ParseFile(path, FamilyZVL, Options{})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	out := FormatDAT(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// 22 device lines + blank separator + 5 trace lines + 1 data row.
	if want := 29; len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}
	if lines[22] != "" {
		t.Errorf("line 23 = %q, want the blank separator", lines[22])
	}
	if !strings.HasPrefix(lines[0], "Type;ZVL;") {
		t.Errorf("first line = %q, want Type;ZVL;...", lines[0])
	}
	if got := lines[len(lines)-1]; got != "9000;-42.3;" {
		t.Errorf("data line = %q, want \"9000;-42.3;\"", got)
	}
}

func TestFormatDATSecondaryColumn(t *testing.T) {
	path := zvlFixture(t, "9000;-42.3;-45.1;")
	m, err := ParseFile(path, FamilyZVL, Options{Autopeak: true})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	out := FormatDAT(m)
	if !strings.Contains(out, "9000;-42.3;-45.1;\n") {
		t.Errorf("output misses the 3-column data row:\n%s", out)
	}
}
