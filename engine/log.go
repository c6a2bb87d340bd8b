package engine

import (
	"fmt"
	"time"
)

// debugLogCap bounds the retained entries; the renderer draws at most
// this many console lines
const debugLogCap = 15

// DebugLog is a bounded newest-first ring of diagnostic entries, drawn
// on screen in debug mode. The process owns the terminal, so runtime
// diagnostics render in-frame instead of writing to stdout
type DebugLog struct {
	entries []string
}

// NewDebugLog creates an empty log
func NewDebugLog() *DebugLog {
	return &DebugLog{}
}

// Pushf prepends a formatted entry, evicting the oldest past capacity
func (l *DebugLog) Pushf(elapsed time.Duration, label, format string, args ...any) {
	entry := fmt.Sprintf("%.3f: %s: %s", elapsed.Seconds(), label, fmt.Sprintf(format, args...))
	l.entries = append([]string{entry}, l.entries...)
	if len(l.entries) > debugLogCap {
		l.entries = l.entries[:debugLogCap]
	}
}

// Entries returns a copy of the log, newest first
func (l *DebugLog) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}
