package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const maxLine = 1 << 20

// Reader yields the lines of a G-code file one at a time.
type Reader struct {
	sc     *bufio.Scanner
	closer io.Closer
	line   int
}

// Open opens path for reading. "-" reads standard input.
func Open(path string) (*Reader, error) {
	if path == "-" {
		return New(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	r := New(f)
	r.closer = f
	return r, nil
}

func New(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	return &Reader{sc: sc}
}

// Next returns the next line without its terminator. The slice is reused
// by the following call; copy it to keep it.
func (r *Reader) Next() ([]byte, bool) {
	if !r.sc.Scan() {
		return nil, false
	}
	r.line++
	return r.sc.Bytes(), true
}

// Line is the 1-based number of the line last returned by Next.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) Err() error {
	return r.sc.Err()
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
