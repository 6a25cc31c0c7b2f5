package report

import "github.com/mattn/go-runewidth"

// Widths accumulates the maximum formatted display width seen for each
// report column. Widths are measured on the formatted strings, not the
// raw git output, so the columns fit exactly what gets printed.
type Widths struct {
	Date    int
	Author  int
	Repo    int
	Subject int

	// HideAuthor excludes the author column from accounting (and from
	// the row layout) when a single-author filter makes it redundant.
	HideAuthor bool
}

// NewWidths returns an empty width table. hideAuthor should be set
// when an author filter is in effect.
func NewWidths(hideAuthor bool) Widths {
	return Widths{HideAuthor: hideAuthor}
}

// Observe widens the running maxima to cover one normalized record.
func (w *Widths) Observe(r Record) {
	w.Date = max(w.Date, runewidth.StringWidth(r.Date))
	if !w.HideAuthor {
		w.Author = max(w.Author, runewidth.StringWidth(r.Author))
	}
	w.Repo = max(w.Repo, runewidth.StringWidth(r.Repo))
	w.Subject = max(w.Subject, runewidth.StringWidth(r.Subject))
}
