package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write job file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeJob(t, `
family: ZNL
autopeak: true
data_dir: Testdata/ZNL
files:
  - Noise_9kHz-1MHz.DAT
  - Vin_150V_50mA_9kHz-1MHz.DAT
output:
  dir: out
  pdf: out/report.pdf
plot:
  title: Disturbances for 9kHz to 1MHz
  y_label: dBuV
  legend: [noise, 50mA]
`)

	job, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if job.Family != "ZNL" || !job.Autopeak {
		t.Errorf("family/autopeak = %q/%v", job.Family, job.Autopeak)
	}
	if job.Output.Dir != "out" || job.Output.PDF != "out/report.pdf" {
		t.Errorf("output = %+v", job.Output)
	}
	if job.Plot.Title != "Disturbances for 9kHz to 1MHz" || job.Plot.YLabel != "dBuV" {
		t.Errorf("plot = %+v", job.Plot)
	}
	want := []string{
		filepath.Join("Testdata/ZNL", "Noise_9kHz-1MHz.DAT"),
		filepath.Join("Testdata/ZNL", "Vin_150V_50mA_9kHz-1MHz.DAT"),
	}
	if got := job.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeJob(t, `
files:
  - a.DAT
`)
	job, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if job.Family != "ZVL" {
		t.Errorf("default family = %q, want ZVL", job.Family)
	}
	if job.Output.Dir != "." {
		t.Errorf("default output dir = %q, want .", job.Output.Dir)
	}
	if job.Autopeak {
		t.Error("autopeak should default to false")
	}
}

func TestLoadNoFiles(t *testing.T) {
	path := writeJob(t, "family: ZVL\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for job without files")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeJob(t, "files: [a.DAT\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing job file")
	}
}
