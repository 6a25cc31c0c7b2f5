package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// Layout renders fixed-width report rows from the observed column
// widths. The date, optional author, and repo columns are
// left-justified and padded to the table maxima; the trailing subject
// column is free-width.
type Layout struct {
	widths Widths
	indent int // total width of the fixed columns and their gaps
}

// NewLayout builds the row layout for a fully observed width table.
func NewLayout(w Widths) Layout {
	indent := w.Date + len(columnGap)
	if !w.HideAuthor {
		indent += w.Author + len(columnGap)
	}
	indent += w.Repo + len(columnGap)

	return Layout{widths: w, indent: indent}
}

// HeaderRow renders the first line of a record: the fixed columns
// followed by the first wrapped subject line.
func (l Layout) HeaderRow(r Record, subject string) string {
	var b strings.Builder
	b.WriteString(pad(r.Date, l.widths.Date))
	b.WriteString(columnGap)
	if !l.widths.HideAuthor {
		b.WriteString(pad(r.Author, l.widths.Author))
		b.WriteString(columnGap)
	}
	b.WriteString(pad(r.Repo, l.widths.Repo))
	b.WriteString(columnGap)
	b.WriteString(subject)
	return b.String()
}

// ContinuationRow renders a wrapped subject line with the fixed
// columns blanked out, so it aligns under the subject column.
func (l Layout) ContinuationRow(subject string) string {
	return strings.Repeat(" ", l.indent) + subject
}

// Indent returns the total fixed-column width, used to hang body
// blocks below a record's header row.
func (l Layout) Indent() int {
	return l.indent
}

func pad(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
