package jsonl

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/sirkon/errors"
)

// Reader streams a JSON Lines document forward, one record per call.
// Blank lines are skipped and surrounding whitespace is trimmed, so a
// record is always a non-empty chunk of text expected to hold one JSON
// value.
type Reader struct {
	br   *bufio.Reader
	file *os.File // set when Open created the source
}

// NewReader wraps a caller-owned source.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Open creates a Reader over the file at path. Close releases the file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open jsonl file").Str("path", path)
	}
	return &Reader{br: bufio.NewReader(f), file: f}, nil
}

// Close releases the file opened by Open. It is a no-op for readers
// built over a caller-owned source.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// Next returns the next record, or io.EOF once the source is drained.
func (r *Reader) Next() (string, error) {
	for {
		line, err := r.br.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", errors.Wrap(err, "read jsonl record")
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}

// Decode unmarshals the next record into v. Like Next it returns io.EOF
// once the source is drained.
func (r *Reader) Decode(v any) error {
	line, err := r.Next()
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(line), v); err != nil {
		return errors.Wrap(err, "unmarshal jsonl record")
	}
	return nil
}

// NextValue decodes the next record into an untyped JSON value.
func (r *Reader) NextValue() (any, error) {
	var v any
	if err := r.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Count drains the reader and reports how many records it held.
func (r *Reader) Count() (int, error) {
	var n int
	for {
		if _, err := r.Next(); err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}
		n++
	}
}
