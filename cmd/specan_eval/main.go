// Command specan_eval parses spectrum analyzer ASCII export files and
// renders the traces on log-frequency plots, optionally bundling them into
// a PDF report.
//
// Usage:
//
//	specan_eval -config job.yaml
//	specan_eval -family ZVL -autopeak -out plots/ file1.DAT file2.DAT
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/user/specan_eval_go/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML job file; positional .DAT files are ignored when set")
		family     = flag.String("family", "ZVL", "instrument family: ZVL or ZNL")
		autopeak   = flag.Bool("autopeak", false, "files carry a third (minimum) data column")
		outDir     = flag.String("out", ".", "directory for the PNG plots")
		pdfPath    = flag.String("pdf", "", "write a PDF report to this path")
		verbose    = flag.Bool("v", false, "log parsed settings per file")
	)
	flag.Parse()

	var job *config.Job
	if *configPath != "" {
		var err error
		job, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		if flag.NArg() == 0 {
			fmt.Fprintln(os.Stderr, "no input files: pass .DAT files or -config job.yaml")
			flag.Usage()
			os.Exit(2)
		}
		job = &config.Job{
			Family:   *family,
			Autopeak: *autopeak,
			Files:    flag.Args(),
			Output:   config.OutputConfig{Dir: *outDir, PDF: *pdfPath},
		}
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	app := &App{Job: job, Logger: logger, Verbose: *verbose}
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
