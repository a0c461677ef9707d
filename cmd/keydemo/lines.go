package main

import "strings"

// lineLog keeps the most recent lines appended to it.
type lineLog struct {
	max   int
	lines []string
}

func newLineLog(max int) *lineLog {
	return &lineLog{max: max}
}

func (l *lineLog) Add(line string) {
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.max; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

func (l *lineLog) Clear() {
	l.lines = l.lines[:0]
}

func (l *lineLog) Len() int {
	return len(l.lines)
}

// Tail returns up to n of the newest lines, oldest first.
func (l *lineLog) Tail(n int) []string {
	if n >= len(l.lines) {
		return l.lines
	}
	if n <= 0 {
		return nil
	}
	return l.lines[len(l.lines)-n:]
}

func (l *lineLog) String() string {
	return strings.Join(l.lines, "\n")
}
