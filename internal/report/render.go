package report

import (
	"fmt"
	"io"
	"strings"
)

// bulletMarker separates bullet-point paragraphs in a commit body.
// This is a heuristic: body prose containing a literal "* " will also
// split there.
const bulletMarker = "* "

// bodyMargin reserves room for the bullet prefix on body lines.
const bodyMargin = 3

// Renderer prints records as aligned, word-wrapped report rows.
type Renderer struct {
	out    io.Writer
	layout Layout
	width  int
}

// NewRenderer returns a renderer writing to out with the given row
// layout and wrap width.
func NewRenderer(out io.Writer, layout Layout, width int) *Renderer {
	return &Renderer{out: out, layout: layout, width: width}
}

// Render prints every record in order. An empty record set prints
// nothing; that is not an error.
func (r *Renderer) Render(records []Record) error {
	for _, rec := range records {
		if err := r.renderRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderRecord(rec Record) error {
	lines := Wrap(rec.Subject, r.width)

	if _, err := fmt.Fprintln(r.out, r.layout.HeaderRow(rec, lines[0])); err != nil {
		return err
	}
	for _, line := range lines[1:] {
		if _, err := fmt.Fprintln(r.out, r.layout.ContinuationRow(line)); err != nil {
			return err
		}
	}

	body := strings.TrimSpace(rec.Body)
	if len(body) <= 2 {
		return nil
	}
	return r.renderBody(body)
}

// renderBody prints the commit body as a hanging-indent block of
// bulleted paragraphs below the header row.
func (r *Renderer) renderBody(body string) error {
	indent := strings.Repeat(" ", r.layout.Indent())

	for _, para := range splitBullets(body) {
		for i, line := range Wrap(para, r.width-bodyMargin) {
			prefix := "* "
			if i > 0 {
				prefix = " "
			}
			if _, err := fmt.Fprintln(r.out, indent+prefix+collapseDoubleSpaces(line)); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitBullets(body string) []string {
	parts := strings.Split(body, bulletMarker)

	paras := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// collapseDoubleSpaces reduces any run of exactly two spaces to one,
// normalizing git's own text reflow artifacts in body lines. Longer
// runs are intentional indentation and pass through untouched.
func collapseDoubleSpaces(s string) string {
	var b strings.Builder
	run := 0

	flush := func() {
		if run == 2 {
			b.WriteByte(' ')
		} else if run > 0 {
			b.WriteString(strings.Repeat(" ", run))
		}
		run = 0
	}

	for _, r := range s {
		if r == ' ' {
			run++
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()

	return b.String()
}
