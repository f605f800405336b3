package jsonl_test

import (
	"strings"
	"testing"

	jsonl "github.com/gpmcp/async-jsonl"
	"github.com/gpmcp/async-jsonl/internal/tlog"
	"github.com/sirkon/deepequal"
)

func TestFirstN(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		n     int
		want  []string
	}{
		{
			name:  "fewer than available",
			input: "{\"line\": 1}\n{\"line\": 2}\n{\"line\": 3}\n",
			n:     2,
			want:  []string{`{"line": 1}`, `{"line": 2}`},
		},
		{
			name:  "more than available",
			input: "{\"line\": 1}\n{\"line\": 2}\n",
			n:     5,
			want:  []string{`{"line": 1}`, `{"line": 2}`},
		},
		{
			name:  "blank lines are not records",
			input: "{\"line\": 1}\n\n\n{\"line\": 2}\n",
			n:     2,
			want:  []string{`{"line": 1}`, `{"line": 2}`},
		},
		{
			name:  "empty source",
			input: "",
			n:     3,
			want:  []string{},
		},
		{
			name:  "zero requested",
			input: "{\"line\": 1}\n",
			n:     0,
			want:  []string{},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := jsonl.FirstN(strings.NewReader(test.input), test.n)
			if tlog.Check(t, err) {
				return
			}
			if !deepequal.Equal(test.want, got) {
				deepequal.SideBySide(t, "records", test.want, got)
			}
		})
	}
}

func TestLastN(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		n     int
		want  []string
	}{
		{
			name:  "newest first",
			input: "{\"line\": 1}\n{\"line\": 2}\n{\"line\": 3}\n{\"line\": 4}\n{\"line\": 5}\n",
			n:     3,
			want:  []string{`{"line": 5}`, `{"line": 4}`, `{"line": 3}`},
		},
		{
			name:  "more than available",
			input: "{\"line\": 1}\n{\"line\": 2}\n",
			n:     5,
			want:  []string{`{"line": 2}`, `{"line": 1}`},
		},
		{
			name:  "no trailing newline",
			input: "{\"line\": 1}\n{\"line\": 2}",
			n:     1,
			want:  []string{`{"line": 2}`},
		},
		{
			name:  "blank lines are not records",
			input: "{\"line\": 1}\n\n{\"line\": 2}\n\n\n",
			n:     2,
			want:  []string{`{"line": 2}`, `{"line": 1}`},
		},
		{
			name:  "empty source",
			input: "",
			n:     5,
			want:  []string{},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := jsonl.LastN(strings.NewReader(test.input), test.n)
			if tlog.Check(t, err) {
				return
			}
			if !deepequal.Equal(test.want, got) {
				deepequal.SideBySide(t, "records", test.want, got)
			}
		})
	}
}

func TestTail(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
		n     int
		want  []string
	}{
		{
			name:  "file order",
			input: "{\"line\": 1}\n{\"line\": 2}\n{\"line\": 3}\n{\"line\": 4}\n",
			n:     3,
			want:  []string{`{"line": 2}`, `{"line": 3}`, `{"line": 4}`},
		},
		{
			name:  "more than available",
			input: "{\"line\": 1}\n{\"line\": 2}\n",
			n:     5,
			want:  []string{`{"line": 1}`, `{"line": 2}`},
		},
		{
			name:  "empty source",
			input: "",
			n:     3,
			want:  []string{},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := jsonl.Tail(strings.NewReader(test.input), test.n)
			if tlog.Check(t, err) {
				return
			}
			if !deepequal.Equal(test.want, got) {
				deepequal.SideBySide(t, "records", test.want, got)
			}
		})
	}
}
