package main

import "flag"

type cliConfig struct {
	SuitePath   string
	Series      string
	Output      string
	Plot        bool
	PlotWidth   int
	PlotHeight  int
	Threshold   float64
	Verbose     bool
	HTML        bool
	EscapeQuery string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "configs/ltr_quality_v1.yaml", "Path to evaluation suite YAML")
	flag.StringVar(&cfg.Series, "series", "", "Comma-separated series names to evaluate (default: all)")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")
	flag.BoolVar(&cfg.Plot, "plot", false, "Render terminal charts of NDCG and lift vs k")
	flag.IntVar(&cfg.PlotWidth, "plot-width", 72, "Chart width in cells")
	flag.IntVar(&cfg.PlotHeight, "plot-height", 16, "Chart height in cells")
	flag.Float64Var(&cfg.Threshold, "threshold", 1, "Relevance threshold for precision/MRR diagnostics")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Log per-query conversion intermediates")
	flag.BoolVar(&cfg.HTML, "html", false, "Print the evaluation table as HTML")
	flag.StringVar(&cfg.EscapeQuery, "escape-query", "", "Escape reserved query-syntax characters in the given string and exit")

	flag.Parse()
	return cfg
}
