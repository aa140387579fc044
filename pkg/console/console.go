// Package console prints single-line progress reports on a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Width of the progress bar in characters
const barWidth = 10

// ProgressLog rewrites the same terminal line after each step.
type ProgressLog struct {
	output      io.Writer
	showPercent bool
	total       int
	lineLength  int
}

type Option func(*ProgressLog)

func NewProgressLog(total int, options ...Option) *ProgressLog {
	result := &ProgressLog{
		output:     os.Stdout,
		total:      total,
		lineLength: 80,
	}
	for _, option := range options {
		option(result)
	}
	return result
}

func ToWriter(w io.Writer) Option {
	return func(l *ProgressLog) {
		l.output = w
	}
}

func ShowPercent() Option {
	return func(l *ProgressLog) {
		l.showPercent = true
	}
}

func LineLength(characters int) Option {
	return func(l *ProgressLog) {
		l.lineLength = characters
	}
}

// Log reports the completion of the given step.
func (l *ProgressLog) Log(step int, message string) {
	percent := 100
	if l.total > 0 {
		percent = min(step, l.total) * 100 / l.total
	}

	var sb strings.Builder
	filled := percent * barWidth / 100
	sb.WriteString(strings.Repeat("#", filled))
	sb.WriteString(strings.Repeat(" ", barWidth-filled))
	sb.WriteRune(' ')
	if l.showPercent {
		fmt.Fprintf(&sb, "(%3d%%) ", percent)
	} else {
		fmt.Fprintf(&sb, "(%d/%d) ", step, l.total)
	}
	sb.WriteString(message)

	fmt.Fprint(l.output, l.pad(sb.String()), "\r")
}

// Clear overwrites the progress line. A non-empty message is kept on its own line.
func (l *ProgressLog) Clear(message string) {
	fmt.Fprint(l.output, l.pad(message))
	if message == "" {
		fmt.Fprint(l.output, "\r")
	} else {
		fmt.Fprint(l.output, "\n")
	}
}

// pad truncates or completes the line to the configured length.
// Lengths are counted in runes as titles are often not ASCII.
func (l *ProgressLog) pad(line string) string {
	count := utf8.RuneCountInString(line)
	if count > l.lineLength {
		return string([]rune(line)[:l.lineLength])
	}
	return line + strings.Repeat(" ", l.lineLength-count)
}
