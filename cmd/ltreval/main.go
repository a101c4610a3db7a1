package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/searchlab/ltreval/internal/dataset"
	"github.com/searchlab/ltreval/internal/eval/chart"
	"github.com/searchlab/ltreval/internal/eval/fold"
	"github.com/searchlab/ltreval/internal/eval/judgment"
	"github.com/searchlab/ltreval/internal/eval/metrics"
	"github.com/searchlab/ltreval/internal/eval/report"
	"github.com/searchlab/ltreval/internal/eval/series"
	"github.com/searchlab/ltreval/internal/eval/suite"
	"github.com/searchlab/ltreval/pkg/config/env"
	"github.com/searchlab/ltreval/pkg/stringsutil"
)

func main() {
	cfg := parseFlags()

	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if cfg.EscapeQuery != "" {
		fmt.Println(stringsutil.EscapeQuery(cfg.EscapeQuery))
		return
	}

	if err := env.LoadDotEnv(".env"); err != nil {
		os.Exit(1)
	}

	loaded, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}
	s := loaded.Suite

	tables := make([]*series.Table, 0, len(s.Folds))
	for i, f := range s.Folds {
		table, err := evaluateFold(loaded, f, cfg)
		if err != nil {
			slog.Error("Fold evaluation failed", "fold", i, "id", f.ID, "error", err)
			os.Exit(1)
		}
		tables = append(tables, table)
	}

	if len(tables) == 1 {
		reportSingle(tables[0], cfg)
		return
	}
	reportFolds(tables, cfg)
}

func evaluateFold(loaded *suite.LoadedSuite, f suite.Fold, cfg cliConfig) (*series.Table, error) {
	s := loaded.Suite

	labelFrame, err := readFrame(loaded.ResolvePath(f.Labels))
	if err != nil {
		return nil, err
	}
	labels, err := labelFrame.Column(f.LabelColumn)
	if err != nil {
		return nil, err
	}
	if err := dataset.CheckBoundaries(f.QueryDocCounts, len(labels)); err != nil {
		return nil, err
	}

	selected, err := f.SelectSeries(strings.Split(cfg.Series, ","))
	if err != nil {
		return nil, err
	}

	named := make([]series.NamedSeries, 0, len(selected)+1)
	for _, sf := range selected {
		frame, err := readFrame(loaded.ResolvePath(sf.Path))
		if err != nil {
			return nil, err
		}
		scores, err := frame.Column(sf.Column)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", sf.Name, err)
		}
		if len(scores) != len(labels) {
			return nil, fmt.Errorf("series %q has %d scores, labels have %d rows", sf.Name, len(scores), len(labels))
		}

		grades := judgment.FromScores(scores, f.QueryDocCounts, labels)
		named = append(named, series.NamedSeries{Name: sf.Name, Queries: grades})

		if cfg.Verbose {
			logRankDiagnostics(sf.Name, grades, cfg.Threshold)
		}
	}

	// The raw ground-truth ordering is the reference every scorer is lifted
	// against.
	named = append(named, series.NamedSeries{
		Name:    "ground_truth",
		Queries: splitByQuery(labels, f.QueryDocCounts),
	})

	return series.Evaluate(s.KStart, s.KEnd, s.Method, named...)
}

func reportSingle(t *series.Table, cfg cliConfig) {
	report.WriteTable(t, os.Stdout)

	lift := series.Lift(t)
	if len(lift.Names) > 0 {
		report.WriteLiftTable(lift, os.Stdout)
	}

	if cfg.HTML {
		fmt.Println(report.RenderHTML(t))
	}
	if cfg.Output != "" {
		if err := report.WriteJSON(t, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "path", cfg.Output, "error", err)
			os.Exit(1)
		}
	}
	if cfg.Plot {
		fmt.Println(chart.Render(chart.NDCGLine(t), cfg.PlotWidth, cfg.PlotHeight))
		if len(lift.Names) > 0 {
			fmt.Println(chart.Render(chart.LiftLine(lift), cfg.PlotWidth, cfg.PlotHeight))
		}
	}
}

func reportFolds(tables []*series.Table, cfg cliConfig) {
	summary, err := fold.Aggregate(tables)
	if err != nil {
		slog.Error("Failed to aggregate folds", "error", err)
		os.Exit(1)
	}

	report.WriteSummary(summary, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(summary, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "path", cfg.Output, "error", err)
			os.Exit(1)
		}
	}
	if cfg.Plot {
		fmt.Println(chart.Render(chart.SummaryLine(summary), cfg.PlotWidth, cfg.PlotHeight))
		if len(summary.Lift.Names) > 0 {
			fmt.Println(chart.Render(chart.LiftLine(summary.Lift), cfg.PlotWidth, cfg.PlotHeight))
		}
	}
}

func logRankDiagnostics(name string, grades [][]float64, threshold float64) {
	var sumP, sumRR float64
	for _, q := range grades {
		sumP += metrics.PrecisionAtK(q, 1, threshold)
		sumRR += metrics.ReciprocalRank(q, threshold)
	}
	n := float64(len(grades))
	if n == 0 {
		return
	}
	slog.Debug("rank diagnostics",
		"series", name,
		"queries", len(grades),
		"meanP@1", sumP/n,
		"mrr", sumRR/n,
	)
}

func splitByQuery(labels []float64, queryDocCounts []int) [][]float64 {
	out := make([][]float64, 0, len(queryDocCounts))
	start, end := 0, 0
	for _, c := range queryDocCounts {
		start = end
		end += c
		q := make([]float64, c)
		copy(q, labels[start:end])
		out = append(out, q)
	}
	return out
}

func readFrame(path string) (*dataset.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return dataset.ReadCSV(file)
}
