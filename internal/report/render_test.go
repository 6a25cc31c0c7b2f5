package report

import (
	"bytes"
	"strings"
	"testing"
)

func renderToString(t *testing.T, records []Record, hideAuthor bool, width int) string {
	t.Helper()

	widths := NewWidths(hideAuthor)
	for _, rec := range records {
		widths.Observe(rec)
	}

	var buf bytes.Buffer
	renderer := NewRenderer(&buf, NewLayout(widths), width)
	if err := renderer.Render(records); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	return buf.String()
}

func TestRenderer_EmptySetPrintsNothing(t *testing.T) {
	if got := renderToString(t, nil, false, 80); got != "" {
		t.Fatalf("rendering an empty set produced output: %q", got)
	}
}

func TestRenderer_SingleRecord(t *testing.T) {
	records := []Record{
		{Date: "2020-01-01", Repo: "repoA", Subject: "fix bug"},
	}

	got := renderToString(t, records, true, 80)
	expected := "2020-01-01  repoA  fix bug\n"
	if got != expected {
		t.Fatalf("output = %q, expected %q", got, expected)
	}
}

func TestRenderer_BulletedBody(t *testing.T) {
	records := []Record{
		{
			Date:    "2020-01-01",
			Repo:    "repoA",
			Subject: "fix bug",
			Body:    "* first point\n* second point",
		},
	}

	got := renderToString(t, records, true, 80)

	indent := strings.Repeat(" ", 19) // 10 (date) + 2 + 5 (repo) + 2
	expected := "2020-01-01  repoA  fix bug\n" +
		indent + "* first point\n" +
		indent + "* second point\n"
	if got != expected {
		t.Fatalf("output = %q, expected %q", got, expected)
	}
}

func TestRenderer_SubjectContinuationLines(t *testing.T) {
	records := []Record{
		{Date: "2020-01-01", Repo: "repoA", Subject: "one two three"},
	}

	got := renderToString(t, records, true, 10)

	expected := "2020-01-01  repoA  one two\n" +
		strings.Repeat(" ", 19) + "three\n"
	if got != expected {
		t.Fatalf("output = %q, expected %q", got, expected)
	}
}

func TestRenderer_TrivialBodySkipped(t *testing.T) {
	records := []Record{
		{Date: "2020-01-01", Repo: "repoA", Subject: "fix", Body: " ok "},
	}

	got := renderToString(t, records, true, 80)
	if lines := strings.Count(got, "\n"); lines != 1 {
		t.Fatalf("output has %d lines, expected 1 (bodies of <= 2 characters are skipped):\n%s", lines, got)
	}
}

func TestRenderer_BodyWrapsWithHangingIndent(t *testing.T) {
	records := []Record{
		{Date: "2020-01-01", Repo: "repoA", Subject: "fix", Body: "alpha beta gamma"},
	}

	got := renderToString(t, records, true, 10)

	indent := strings.Repeat(" ", 19)
	expected := "2020-01-01  repoA  fix\n" +
		indent + "* alpha\n" +
		indent + " beta\n" +
		indent + " gamma\n"
	if got != expected {
		t.Fatalf("output = %q, expected %q", got, expected)
	}
}

func TestRenderer_BodyContinuationSingleSpacePrefix(t *testing.T) {
	records := []Record{
		{Date: "2020-01-01", Repo: "repoA", Subject: "fix", Body: "* one two three"},
	}

	got := renderToString(t, records, true, 10)

	indent := strings.Repeat(" ", 19)
	expected := "2020-01-01  repoA  fix\n" +
		indent + "* one two\n" +
		indent + " three\n"
	if got != expected {
		t.Fatalf("output = %q, expected %q", got, expected)
	}
}

func TestRenderer_BodyCollapsesDoubleSpaces(t *testing.T) {
	records := []Record{
		{Date: "2020-01-01", Repo: "repoA", Subject: "fix", Body: "Done.  Next"},
	}

	got := renderToString(t, records, true, 80)

	indent := strings.Repeat(" ", 19)
	expected := "2020-01-01  repoA  fix\n" +
		indent + "* Done. Next\n"
	if got != expected {
		t.Fatalf("output = %q, expected %q", got, expected)
	}
}

func TestRenderer_AuthorColumnPresentWithoutFilter(t *testing.T) {
	records := []Record{
		{Date: "2020-01-01", Author: "alice", Repo: "repoA", Subject: "fix bug"},
		{Date: "2020-01-02", Author: "bo", Repo: "repoB", Subject: "add feature"},
	}

	got := renderToString(t, records, false, 80)

	expected := "2020-01-01  alice  repoA  fix bug\n" +
		"2020-01-02  bo     repoB  add feature\n"
	if got != expected {
		t.Fatalf("output = %q, expected %q", got, expected)
	}
}

func TestSplitBullets(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "TwoBullets",
			body:     "* first point\n* second point",
			expected: []string{"first point", "second point"},
		},
		{
			name:     "NoMarker",
			body:     "plain body text",
			expected: []string{"plain body text"},
		},
		{
			name:     "LeadingProse",
			body:     "intro\n* detail",
			expected: []string{"intro", "detail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitBullets(tt.body)
			if len(got) != len(tt.expected) {
				t.Fatalf("splitBullets(%q) = %q, expected %q", tt.body, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("segment %d = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCollapseDoubleSpaces(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "ExactlyTwo", in: "a  b", expected: "a b"},
		{name: "Single", in: "a b", expected: "a b"},
		{name: "Three untouched", in: "a   b", expected: "a   b"},
		{name: "TrailingPair", in: "a  ", expected: "a "},
		{name: "NoSpaces", in: "ab", expected: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collapseDoubleSpaces(tt.in); got != tt.expected {
				t.Errorf("collapseDoubleSpaces(%q) = %q, expected %q", tt.in, got, tt.expected)
			}
		})
	}
}
