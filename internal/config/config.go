// Package config loads evaluation job definitions from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Job is the top-level description of one evaluation run: which files to
// parse, how to interpret them and what to produce.
type Job struct {
	Family   string   `yaml:"family"`   // ZVL | ZNL
	Autopeak bool     `yaml:"autopeak"` // files carry a third (minimum) column
	DataDir  string   `yaml:"data_dir"` // prepended to every entry in Files
	Files    []string `yaml:"files"`

	Output OutputConfig `yaml:"output"`
	Plot   PlotConfig   `yaml:"plot"`
}

// OutputConfig names the artifacts to write.
type OutputConfig struct {
	Dir string `yaml:"dir"` // directory for the PNG plots
	PDF string `yaml:"pdf"` // report path, empty disables the report
}

// PlotConfig carries the figure texts. Empty labels fall back to the units
// recorded in the parsed trace settings.
type PlotConfig struct {
	Title  string   `yaml:"title"`
	XLabel string   `yaml:"x_label"`
	YLabel string   `yaml:"y_label"`
	Legend []string `yaml:"legend"` // overlay legend, one entry per file
}

// Load reads a YAML job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job file %s: %w", path, err)
	}

	job.applyDefaults()
	if err := job.validate(); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}
	return &job, nil
}

func (j *Job) applyDefaults() {
	if j.Family == "" {
		j.Family = "ZVL"
	}
	if j.Output.Dir == "" {
		j.Output.Dir = "."
	}
}

func (j *Job) validate() error {
	if len(j.Files) == 0 {
		return fmt.Errorf("no input files listed")
	}
	return nil
}

// Paths returns the job's input files with the data directory applied.
func (j *Job) Paths() []string {
	paths := make([]string, len(j.Files))
	for i, f := range j.Files {
		paths[i] = filepath.Join(j.DataDir, f)
	}
	return paths
}
