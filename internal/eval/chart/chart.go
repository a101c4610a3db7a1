// Package chart turns evaluation tables into chart-ready line data and
// renders it as terminal charts. The numeric packages never import this;
// rendering is a caller-side effect.
package chart

import (
	"github.com/searchlab/ltreval/internal/eval/fold"
	"github.com/searchlab/ltreval/internal/eval/series"
)

// Line is a renderable line chart: shared X values (cutoffs) and one or more
// named Y series, optionally with symmetric error bars.
type Line struct {
	Title  string
	XLabel string
	YLabel string
	X      []float64
	Series []LineSeries
}

// LineSeries is one named line. ErrBars, when present, holds the half-height
// of the error bar at each point and matches Y in length.
type LineSeries struct {
	Name    string
	Y       []float64
	ErrBars []float64
}

// NDCGLine builds NDCG-vs-k line data from an evaluation table.
func NDCGLine(t *series.Table) Line {
	l := Line{
		Title:  "NDCG @ k",
		XLabel: "k (position)",
		YLabel: "NDCG",
		X:      cutoffs(t.KStart, t.Rows()),
	}
	for _, name := range t.Names {
		l.Series = append(l.Series, LineSeries{Name: name, Y: t.Values[name]})
	}
	return l
}

// LiftLine builds percent-gain-vs-k line data from a lift table.
func LiftLine(t *series.Table) Line {
	l := Line{
		Title:  "Lift Percentage @ k",
		XLabel: "k (position)",
		YLabel: "Percent Gain",
		X:      cutoffs(t.KStart, t.Rows()),
	}
	for _, name := range t.Names {
		l.Series = append(l.Series, LineSeries{Name: name, Y: t.Values[name]})
	}
	return l
}

// SummaryLine builds NDCG-vs-k line data from a cross-fold summary, with the
// per-cutoff standard deviation as error bars.
func SummaryLine(s *fold.Summary) Line {
	l := Line{
		Title:  "NDCG @ k",
		XLabel: "k (position)",
		YLabel: "NDCG",
		X:      cutoffs(s.KStart, s.Rows()),
	}
	for _, name := range s.Names {
		l.Series = append(l.Series, LineSeries{
			Name:    name,
			Y:       s.Mean[name],
			ErrBars: s.Stddev[name],
		})
	}
	return l
}

func cutoffs(kStart, rows int) []float64 {
	x := make([]float64, rows)
	for i := range x {
		x[i] = float64(kStart + i)
	}
	return x
}
