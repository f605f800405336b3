package jsonl

// ReverseLines is a pull-based view over a ReverseLineReader: one line
// per Next call, newest first. Stopping early is fine; the underlying
// reader stays valid and resumable.
type ReverseLines struct {
	r *ReverseLineReader
}

// Lines returns a line iteration view of the reader.
func (r *ReverseLineReader) Lines() *ReverseLines {
	return &ReverseLines{r: r}
}

// Next returns the next line walking toward the start of the source, or
// io.EOF once it is exhausted.
func (l *ReverseLines) Next() (string, error) {
	return l.r.ReadLine()
}

// Reader returns the underlying ReverseLineReader.
func (l *ReverseLines) Reader() *ReverseLineReader {
	return l.r
}
