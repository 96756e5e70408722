// Package actionlog records the lair's move trail: a flat, indented list of
// structured entries describing every gather, downgrade, destruction and
// placement, rendered for humans after a run. The log is deliberately dumb —
// ordering and causality are the engine's job, buffering and scoping are ours.
package actionlog

import (
	"fmt"
	"io"
	"strings"
)

// Action is the kind of exchange an entry describes.
type Action int

const (
	ActionNote Action = iota
	ActionGather
	ActionDowngrade
	ActionDestroy
	ActionAdd
)

func (a Action) String() string {
	switch a {
	case ActionGather:
		return "gather"
	case ActionDowngrade:
		return "downgrade"
	case ActionDestroy:
		return "destroy"
	case ActionAdd:
		return "add"
	}
	return "note"
}

// Entry is a single structured record. Notes carry only Text; exchange
// entries carry the source and target land/piece labels and a count.
type Entry struct {
	Action   Action
	SrcLand  string
	SrcPiece string
	TgtLand  string
	TgtPiece string
	Count    int
	Text     string
}

func (e Entry) String() string {
	switch e.Action {
	case ActionGather:
		return fmt.Sprintf("gather %d %s: %s => %s", e.Count, e.SrcPiece, e.SrcLand, e.TgtLand)
	case ActionDowngrade:
		return fmt.Sprintf("downgrade %d %s => %s: %s", e.Count, e.SrcPiece, e.TgtPiece, e.SrcLand)
	case ActionDestroy:
		if e.TgtPiece == "" {
			return fmt.Sprintf("destroy %d %s: %s", e.Count, e.SrcPiece, e.SrcLand)
		}
		return fmt.Sprintf("destroy %d %s: %s (%s => %s)", e.Count, e.SrcPiece, e.SrcLand, e.TgtPiece, e.TgtLand)
	case ActionAdd:
		return fmt.Sprintf("add %d %s: %s", e.Count, e.TgtPiece, e.TgtLand)
	}
	return e.Text
}

type line struct {
	indent int
	entry  Entry
}

// Log buffers entries at the current indent level. Forked child logs are
// folded back into their parent one level deeper when closed, so a scope's
// entries survive even if the code that produced them panicked.
type Log struct {
	lines  []line
	indent int
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Entry appends an entry at the current indent level.
func (l *Log) Entry(e Entry) {
	l.lines = append(l.lines, line{indent: l.indent, entry: e})
}

// Notef appends a free-text note at the current indent level.
func (l *Log) Notef(format string, args ...any) {
	l.Entry(Entry{Text: fmt.Sprintf(format, args...)})
}

// Indent raises the indent level until the returned func is called.
func (l *Log) Indent() func() {
	l.indent++
	return func() { l.indent-- }
}

// Fork returns a fresh child log and a close func. Closing folds the
// child's entries into the parent one indent level deeper. Callers must
// defer the close so the fold happens even on a panicking scope body.
func (l *Log) Fork() (*Log, func()) {
	child := New()
	return child, func() {
		for _, ln := range child.lines {
			l.lines = append(l.lines, line{indent: l.indent + 1 + ln.indent, entry: ln.entry})
		}
		child.lines = nil
	}
}

// Len returns the number of buffered entries.
func (l *Log) Len() int {
	return len(l.lines)
}

// Entries returns a copy of the buffered entries in order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.lines))
	for i, ln := range l.lines {
		out[i] = ln.entry
	}
	return out
}

// Render writes the trail, one line per entry, two spaces per indent level.
func (l *Log) Render(w io.Writer) error {
	for _, ln := range l.lines {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", ln.indent), ln.entry); err != nil {
			return err
		}
	}
	return nil
}

func (l *Log) String() string {
	var sb strings.Builder
	_ = l.Render(&sb)
	return sb.String()
}
