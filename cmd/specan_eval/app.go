package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/specan_eval_go/internal/analysis"
	"github.com/user/specan_eval_go/internal/config"
	"github.com/user/specan_eval_go/internal/parser"
	"github.com/user/specan_eval_go/internal/report"
)

// App wires the parsed job through parser, analysis and report.
type App struct {
	Job     *config.Job
	Logger  *slog.Logger
	Verbose bool
}

// Run executes the job: parse the batch, write one PNG per file plus the
// overlay plot, and optionally the PDF report. Per-file parse failures are
// logged and skipped; Run fails only when nothing parses at all or an
// artifact cannot be written.
func (a *App) Run() error {
	family, err := parser.ParseFamily(a.Job.Family)
	if err != nil {
		return err
	}

	opts := parser.Options{Autopeak: a.Job.Autopeak}
	if a.Verbose {
		opts.Logger = a.Logger
	}

	paths := a.Job.Paths()
	traces, failures := parser.ParseBatch(paths, family, opts)
	for _, f := range failures {
		a.Logger.Warn("skipping file", "index", f.Index, "path", f.Path, "error", f.Err)
	}
	if len(traces) == 0 {
		return fmt.Errorf("none of the %d input files could be parsed", len(paths))
	}

	if err := os.MkdirAll(a.Job.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	summaries := analysis.SummarizeAll(traces)

	plotImages := make(map[string][]byte, len(traces)+1)
	for _, m := range traces {
		png, err := report.CreateTracePlot(m, report.PlotOptions{
			Title:         filepath.Base(m.Path),
			XLabel:        a.Job.Plot.XLabel,
			YLabel:        a.Job.Plot.YLabel,
			ShowSecondary: a.Job.Autopeak,
		})
		if err != nil {
			return fmt.Errorf("plot %s: %w", m.Path, err)
		}
		plotImages[m.Path] = png

		out := filepath.Join(a.Job.Output.Dir, plotName(m.Path))
		if err := os.WriteFile(out, png, 0o644); err != nil {
			return fmt.Errorf("write plot %s: %w", out, err)
		}
		a.Logger.Info("wrote plot", "path", out)
	}

	if len(traces) > 1 {
		png, err := report.CreateOverlayPlot(traces, report.PlotOptions{
			Title:  a.Job.Plot.Title,
			XLabel: a.Job.Plot.XLabel,
			YLabel: a.Job.Plot.YLabel,
			Legend: a.Job.Plot.Legend,
		})
		if err != nil {
			return fmt.Errorf("overlay plot: %w", err)
		}
		plotImages["overlay"] = png

		out := filepath.Join(a.Job.Output.Dir, "overlay_log.png")
		if err := os.WriteFile(out, png, 0o644); err != nil {
			return fmt.Errorf("write overlay plot %s: %w", out, err)
		}
		a.Logger.Info("wrote overlay plot", "path", out)
	}

	if a.Job.Output.PDF != "" {
		if err := report.BuildPDFReport(a.Job.Output.PDF, a.Job.Plot.Title, traces, summaries, plotImages); err != nil {
			return fmt.Errorf("build report: %w", err)
		}
		a.Logger.Info("wrote report", "path", a.Job.Output.PDF)
	}

	return nil
}

// plotName mirrors the historical figure naming: the source file's base
// name with the extension replaced by "_log.png".
func plotName(datPath string) string {
	base := filepath.Base(datPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_log.png"
}
