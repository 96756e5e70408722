package actionlog

import (
	"strings"
	"testing"
)

func TestEntryString(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{Entry{Text: "available gathers: 3"}, "available gathers: 3"},
		{
			Entry{Action: ActionGather, SrcLand: "A1", SrcPiece: "camp", TgtLand: "LAIR", TgtPiece: "camp", Count: 2},
			"gather 2 camp: A1 => LAIR",
		},
		{
			Entry{Action: ActionDowngrade, SrcLand: "A1", SrcPiece: "fort", TgtLand: "A1", TgtPiece: "camp", Count: 1},
			"downgrade 1 fort => camp: A1",
		},
		{
			Entry{Action: ActionDestroy, SrcLand: "A1", SrcPiece: "camp", TgtLand: "LAIR", TgtPiece: "scout", Count: 3},
			"destroy 3 camp: A1 (scout => LAIR)",
		},
		{
			Entry{Action: ActionDestroy, SrcLand: "A1", SrcPiece: "scout", Count: 2},
			"destroy 2 scout: A1",
		},
		{
			Entry{Action: ActionAdd, TgtLand: "LAIR", TgtPiece: "warden", Count: 1},
			"add 1 warden: LAIR",
		},
	}
	for _, tt := range tests {
		if got := tt.entry.String(); got != tt.want {
			t.Errorf("entry %+v: got %q, want %q", tt.entry, got, tt.want)
		}
	}
}

func TestLogIndentRender(t *testing.T) {
	l := New()
	l.Notef("top")
	undo := l.Indent()
	l.Notef("nested")
	undo()
	l.Notef("top again")

	want := "top\n  nested\ntop again\n"
	if got := l.String(); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestFork_FoldsIntoParentIndented(t *testing.T) {
	parent := New()
	parent.Notef("before")

	child, done := parent.Fork()
	child.Notef("inside")
	undo := child.Indent()
	child.Notef("deeper")
	undo()
	parent.Notef("summary")
	done()

	want := "before\nsummary\n  inside\n    deeper\n"
	if got := parent.String(); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestFork_FlushesOnPanic(t *testing.T) {
	parent := New()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic")
			}
		}()
		child, done := parent.Fork()
		defer done()
		child.Notef("partial work")
		panic("phase body failed")
	}()

	if !strings.Contains(parent.String(), "partial work") {
		t.Errorf("entries from a panicking scope must survive, got %q", parent.String())
	}
}

func TestEntriesAndLen(t *testing.T) {
	l := New()
	l.Entry(Entry{Action: ActionAdd, TgtLand: "LAIR", TgtPiece: "warden", Count: 1})
	l.Notef("note")

	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	entries := l.Entries()
	if entries[0].Action != ActionAdd || entries[1].Text != "note" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}
