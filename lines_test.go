package jsonl_test

import (
	"io"
	"strings"
	"testing"

	jsonl "github.com/gpmcp/async-jsonl"
	"github.com/gpmcp/async-jsonl/internal/tlog"
)

func TestReverseLines(t *testing.T) {
	r, err := jsonl.NewReverseLineReader(strings.NewReader("a\nb\nc\n"))
	if tlog.Check(t, err) {
		return
	}

	lines := r.Lines()
	for _, want := range []string{"c", "b", "a"} {
		line, err := lines.Next()
		if err != nil || line != want {
			t.Fatalf("want %q, got line=%q err=%v", want, line, err)
		}
	}
	if _, err := lines.Next(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
}

func TestReverseLinesPartialConsumption(t *testing.T) {
	r, err := jsonl.NewReverseLineReader(strings.NewReader("a\nb\nc\n"))
	if tlog.Check(t, err) {
		return
	}

	lines := r.Lines()
	if line, err := lines.Next(); err != nil || line != "c" {
		t.Fatalf("want %q, got line=%q err=%v", "c", line, err)
	}

	// Stopping the adapter early leaves the reader resumable.
	got := lines.Reader()
	if got != r {
		t.Fatal("Reader must return the wrapped reverse reader")
	}
	if line, err := got.ReadLine(); err != nil || line != "b" {
		t.Fatalf("resumed read: want %q, got line=%q err=%v", "b", line, err)
	}
}
