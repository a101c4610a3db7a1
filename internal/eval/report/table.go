package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/searchlab/ltreval/internal/eval/fold"
	"github.com/searchlab/ltreval/internal/eval/series"
)

// WriteTable renders an evaluation table as an aligned text table, one row
// per cutoff.
func WriteTable(t *series.Table, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== NDCG @ k ===\n\n")
	writeHeader(tw, t.Names)
	for row := 0; row < t.Rows(); row++ {
		fmt.Fprintf(tw, "%d", t.K(row))
		for _, name := range t.Names {
			fmt.Fprintf(tw, "\t%.4f", t.Values[name][row])
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()
}

// WriteLiftTable renders the percent-change table between adjacent series.
func WriteLiftTable(t *series.Table, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Lift %% @ k ===\n\n")
	writeHeader(tw, t.Names)
	for row := 0; row < t.Rows(); row++ {
		fmt.Fprintf(tw, "%d", t.K(row))
		for _, name := range t.Names {
			fmt.Fprintf(tw, "\t%+.2f%%", t.Values[name][row])
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()
}

// WriteSummary renders cross-fold means with their standard deviations,
// followed by the lift table computed on the means.
func WriteSummary(s *fold.Summary, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== NDCG mean across %d folds ===\n\n", s.Folds)
	writeHeader(tw, s.Names)
	for row := 0; row < s.Rows(); row++ {
		fmt.Fprintf(tw, "%d", s.K(row))
		for _, name := range s.Names {
			fmt.Fprintf(tw, "\t%.4f ±%.4f", s.Mean[name][row], s.Stddev[name][row])
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()

	if len(s.Lift.Names) > 0 {
		WriteLiftTable(s.Lift, w)
	}
}

func writeHeader(tw *tabwriter.Writer, names []string) {
	fmt.Fprint(tw, "k")
	for _, name := range names {
		fmt.Fprintf(tw, "\t%s", name)
	}
	fmt.Fprintln(tw)
}
