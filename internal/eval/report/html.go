package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/searchlab/ltreval/internal/eval/series"
)

// RenderHTML renders an evaluation table as an HTML table. Cell text is
// HTML-escaped first, then literal `\n` escape sequences are converted to
// <br> tags so multi-line annotations display as line breaks.
func RenderHTML(t *series.Table) string {
	var b strings.Builder

	b.WriteString("<table>\n<thead>\n<tr><th>k</th>")
	for _, name := range t.Names {
		fmt.Fprintf(&b, "<th>%s</th>", htmlCell(name))
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for row := 0; row < t.Rows(); row++ {
		fmt.Fprintf(&b, "<tr><td>%d</td>", t.K(row))
		for _, name := range t.Names {
			fmt.Fprintf(&b, "<td>%s</td>", htmlCell(fmt.Sprintf("%.6f", t.Values[name][row])))
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}

func htmlCell(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), `\n`, "<br>")
}
