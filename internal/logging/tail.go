package logging

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const tailChunk = 8 * 1024

// Tail returns at most n lines from the end of the file at path, oldest
// first. The file is read backwards in chunks, so only the tail is loaded.
// A missing file yields no lines.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}

	// Read until the buffer holds more than n newlines, so the partial line
	// at the front can be dropped and n whole lines remain.
	var buf []byte
	offset := info.Size()
	for offset > 0 && bytes.Count(buf, []byte{'\n'}) <= n {
		step := min(int64(tailChunk), offset)
		offset -= step
		part := make([]byte, step)
		if _, err := file.ReadAt(part, offset); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read log: %w", err)
		}
		buf = append(part, buf...)
	}

	text := strings.TrimRight(string(buf), "\r\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if offset > 0 {
		lines = lines[1:]
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}
