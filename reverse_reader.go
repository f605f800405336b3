package jsonl

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/sirkon/errors"
)

// DefaultBufferSize is the chunk size used by NewReverseLineReader.
const DefaultBufferSize = 8192

// ErrInvalidUTF8 reports a line whose bytes do not form valid UTF-8.
// It is wrapped with positional context; test with errors.Is.
const ErrInvalidUTF8 errors.Const = "line is not valid UTF-8"

// ReverseLineReader reads lines from a seekable source in last-to-first
// order while keeping memory bounded by the buffer capacity plus the
// longest line seen. The source's seek position belongs to the reader
// for the reader's lifetime; it is not safe for concurrent use.
type ReverseLineReader struct {
	src io.ReadSeeker

	buf  []byte // fixed-size chunk, reused across fetches
	scan int    // bytes of buf not yet consumed (buf[:scan])
	pos  int64  // absolute offset of buf[0]

	// Bytes from the low edge of previously scanned chunks that still
	// wait for their line start in an earlier chunk.
	carry []byte

	primed  bool // first chunk loaded, trailing terminator handled
	sawTerm bool // at least one terminator has been consumed
	done    bool

	// A '\n' was consumed at the chunk's low edge; a '\r' at the top of
	// the next chunk belongs to the same terminator.
	crPending bool
}

// NewReverseLineReader wraps src with a DefaultBufferSize chunk buffer.
//
// Construction probes the source length with a seek to the end, so a
// source that cannot seek (a pipe, for instance) fails here rather than
// on the first read.
func NewReverseLineReader(src io.ReadSeeker) (*ReverseLineReader, error) {
	return NewReverseLineReaderSize(DefaultBufferSize, src)
}

// NewReverseLineReaderSize is NewReverseLineReader with an explicit
// chunk buffer capacity. The capacity must be positive.
func NewReverseLineReaderSize(capacity int, src io.ReadSeeker) (*ReverseLineReader, error) {
	if capacity <= 0 {
		return nil, errors.New("buffer capacity must be positive").
			Int("invalid-capacity", capacity)
	}
	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "determine source length")
	}
	return &ReverseLineReader{
		src: src,
		buf: make([]byte, capacity),
		pos: size,
	}, nil
}

// ReadLine returns the next line walking toward the start of the source,
// with its terminator ('\n' or '\r\n') stripped. Once the source is
// exhausted it returns io.EOF, and keeps returning io.EOF on every call
// after that.
//
// A trailing terminator closes the final line; it does not produce an
// extra empty line. Empty lines anywhere else are returned as empty
// strings, not skipped.
//
// A line that is not valid UTF-8 is consumed and reported via an error
// wrapping ErrInvalidUTF8, so the caller may keep iterating. I/O errors
// are surfaced without consuming anything: a failed fetch leaves the
// cursor and the carried bytes untouched, and the call may simply be
// retried.
func (r *ReverseLineReader) ReadLine() (string, error) {
	if r.done {
		return "", io.EOF
	}

	for {
		if i := bytes.LastIndexByte(r.buf[:r.scan], '\n'); i >= 0 {
			return r.emit(i)
		}

		// No terminator in the loaded chunk. The unconsumed bytes are
		// the tail of a line starting in an earlier chunk; hold them in
		// front of the carry (they precede it in the source).
		if r.scan > 0 {
			old := r.carry
			r.carry = make([]byte, r.scan+len(old))
			copy(r.carry, r.buf[:r.scan])
			copy(r.carry[r.scan:], old)
			r.scan = 0
		}

		if r.pos == 0 {
			return r.drain()
		}
		if err := r.fetch(); err != nil {
			return "", err
		}

		if !r.primed {
			r.primed = true
			if r.buf[r.scan-1] == '\n' {
				// The source ends with a terminator. It closes the last
				// line rather than opening an empty one.
				r.scan--
				r.sawTerm = true
				r.crPending = true
			}
		}
		if r.crPending && r.scan > 0 {
			if r.buf[r.scan-1] == '\r' {
				r.scan--
			}
			r.crPending = false
		}
	}
}

// emit completes the line whose terminator sits at buf[i] and advances
// the scan point past the terminator.
func (r *ReverseLineReader) emit(i int) (string, error) {
	n := r.scan - i - 1
	line := make([]byte, n+len(r.carry))
	copy(line, r.buf[i+1:r.scan])
	copy(line[n:], r.carry)
	r.carry = r.carry[:0]

	r.sawTerm = true
	r.scan = i
	if r.scan > 0 {
		if r.buf[r.scan-1] == '\r' {
			r.scan--
		}
	} else {
		// The byte before the '\n' lives in an earlier chunk. Whether it
		// is the '\r' of a split "\r\n" is only known after the next
		// fetch.
		r.crPending = true
	}

	return r.decode(line)
}

// drain ends the traversal at the start of the source. Whatever is
// carried is the first line of the source.
func (r *ReverseLineReader) drain() (string, error) {
	r.done = true
	if len(r.carry) > 0 {
		line := r.carry
		r.carry = nil
		return r.decode(line)
	}
	if r.sawTerm {
		// The lowest consumed terminator closed an empty first line.
		return "", nil
	}
	return "", io.EOF
}

// fetch loads the chunk directly below pos. State is committed only
// after both the seek and the full read succeed; on error the cursor
// still describes the previous chunk.
func (r *ReverseLineReader) fetch() error {
	n := int64(len(r.buf))
	if n > r.pos {
		n = r.pos
	}
	at := r.pos - n
	if _, err := r.src.Seek(at, io.SeekStart); err != nil {
		return errors.Wrap(err, "seek to chunk").Int64("chunk-offset", at)
	}
	if _, err := io.ReadFull(r.src, r.buf[:n]); err != nil {
		// Includes io.ErrUnexpectedEOF when the source shrank under us.
		return errors.Wrap(err, "read chunk").
			Int64("chunk-offset", at).
			Int64("chunk-size", n)
	}
	r.pos = at
	r.scan = int(n)
	return nil
}

func (r *ReverseLineReader) decode(line []byte) (string, error) {
	if !utf8.Valid(line) {
		return "", errors.Wrap(ErrInvalidUTF8, "decode line").
			Int64("near-offset", r.pos+int64(r.scan))
	}
	return string(line), nil
}

// Buffered returns the portion of the current chunk that has not been
// consumed yet. Diagnostics only; the slice aliases the internal buffer
// and is invalidated by the next ReadLine call.
func (r *ReverseLineReader) Buffered() []byte {
	return r.buf[:r.scan]
}

// Source returns the wrapped source. The reader owns the source's seek
// position while in use, so reclaiming it only makes sense once reading
// is finished.
func (r *ReverseLineReader) Source() io.ReadSeeker {
	return r.src
}
