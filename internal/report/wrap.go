package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap greedily fills lines up to width display columns. A gap of two
// or more spaces after sentence-ending punctuation is kept as a
// two-space separator when the sentence continues on the same line, so
// sentence boundaries survive wrapping. Wrap is a pure function of
// (text, width): wrapping its own output at the same width yields the
// same lines.
func Wrap(text string, width int) []string {
	words, sentenceEnd := splitWords(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for i, word := range words {
		w := runewidth.StringWidth(word)

		if lineWidth == 0 {
			line.WriteString(word)
			lineWidth = w
			continue
		}

		sep := " "
		if sentenceEnd[i-1] {
			sep = "  "
		}

		if lineWidth+len(sep)+w > width {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineWidth = w
			continue
		}

		line.WriteString(sep)
		line.WriteString(word)
		lineWidth += len(sep) + w
	}

	return append(lines, line.String())
}

// splitWords tokenizes text on whitespace. sentenceEnd[i] reports
// whether the gap after words[i] was a sentence break: the word ends a
// sentence and was followed by at least two consecutive spaces.
func splitWords(text string) (words []string, sentenceEnd []bool) {
	i := 0
	for i < len(text) {
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i >= len(text) {
			break
		}

		start := i
		for i < len(text) && !isSpace(text[i]) {
			i++
		}
		word := text[start:i]

		doubleGap := i+1 < len(text) && text[i] == ' ' && text[i+1] == ' '

		words = append(words, word)
		sentenceEnd = append(sentenceEnd, doubleGap && endsSentence(word))
	}
	return words, sentenceEnd
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// endsSentence reports whether a word ends with terminal punctuation,
// allowing a trailing close quote or bracket.
func endsSentence(word string) bool {
	word = strings.TrimRight(word, `"')]`)
	if word == "" {
		return false
	}
	return strings.ContainsRune(".!?", rune(word[len(word)-1]))
}
