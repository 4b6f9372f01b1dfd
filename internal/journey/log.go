package journey

import (
	"strings"

	"github.com/chaos-architect/astral_engine/internal/render"
)

// Tone controls the colour of a log entry.
type Tone uint8

const (
	ToneInfo Tone = iota // gold
	ToneWarn             // red
)

// Entry is a single line in the flight log.
type Entry struct {
	Text string
	Tone Tone
}

// Log is a bounded FIFO of entries.
type Log struct {
	entries []Entry
	maxSize int
}

// NewLog creates a log that keeps the most recent maxSize entries.
func NewLog(maxSize int) *Log {
	return &Log{
		entries: make([]Entry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add appends an entry, evicting the oldest if full.
func (l *Log) Add(text string, tone Tone) {
	e := Entry{Text: text, Tone: tone}
	if len(l.entries) >= l.maxSize {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = e
		return
	}
	l.entries = append(l.entries, e)
}

// Len returns the number of entries held.
func (l *Log) Len() int { return len(l.entries) }

// Recent returns the last n entries (or fewer if the log is shorter).
func (l *Log) Recent(n int) []Entry {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[len(l.entries)-n:]
}

// wrapText splits s into lines no wider than width pixels at text size.
// A single word wider than width gets a line of its own.
func wrapText(s string, width, size float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if render.TextWidth(line+" "+w, size) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(lines, line)
}
