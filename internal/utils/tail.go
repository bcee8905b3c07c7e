package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

const tailChunk int64 = 64 * 1024

// TailLines returns at most the last n lines of path, reading no more than
// maxBytes from the end of the file. A partial first line is dropped when
// the byte cap cuts into it.
func TailLines(path string, n int, maxBytes int64) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}
	if maxBytes <= 0 {
		return nil, fmt.Errorf("maxBytes must be > 0")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	end := st.Size()
	if end == 0 {
		return []byte{}, nil
	}

	var buf []byte
	pos := end
	for pos > 0 && int64(len(buf)) < maxBytes {
		// a trailing newline does not start a new line
		if bytes.Count(bytes.TrimSuffix(buf, []byte{'\n'}), []byte{'\n'}) >= n {
			break
		}
		size := min(tailChunk, pos, maxBytes-int64(len(buf)))
		pos -= size
		chunk := make([]byte, size)
		if _, err := f.ReadAt(chunk, pos); err != nil && err != io.EOF {
			return nil, err
		}
		buf = append(chunk, buf...)
	}

	body := bytes.TrimSuffix(buf, []byte{'\n'})
	lines := bytes.Split(body, []byte{'\n'})
	if pos > 0 && len(lines) > 0 {
		// cut mid-line
		lines = lines[1:]
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	if len(lines) == 0 {
		return []byte{}, nil
	}
	out := bytes.Join(lines, []byte{'\n'})
	return append(out, '\n'), nil
}
