package report

import (
	"fmt"
	"time"

	"github.com/ihincks/what-happened/internal/git"
)

// Record is one commit entry of the final report.
type Record struct {
	Timestamp int64  // unix seconds, used only for ordering
	Date      string // display-formatted date
	Author    string
	Repo      string
	Subject   string
	Body      string
}

// rawDateLayout is the fixed committer-date format requested from the
// git CLI (%cI). A raw date that does not parse indicates a git
// version mismatch, not a recoverable condition.
const rawDateLayout = time.RFC3339

// Normalize converts one repository's raw commits into report records.
// It derives the sort timestamp and the display date from the raw date
// string, tags each record with the repository display name, and feeds
// the width table with the formatted field widths.
func Normalize(raw []git.RawCommit, repoName, dateFormat string, widths *Widths) ([]Record, error) {
	records := make([]Record, 0, len(raw))

	for _, c := range raw {
		when, err := time.Parse(rawDateLayout, c.Date)
		if err != nil {
			return nil, fmt.Errorf("parse commit date %q from %s: %w", c.Date, repoName, err)
		}

		rec := Record{
			Timestamp: when.Unix(),
			Date:      when.Format(dateFormat),
			Author:    c.Author,
			Repo:      repoName,
			Subject:   c.Subject,
			Body:      c.Body,
		}
		widths.Observe(rec)
		records = append(records, rec)
	}

	return records, nil
}
