// Package input loads puzzle inputs fully into memory.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Error records a failed input operation and the path involved.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ReadLines reads every line of path. Trailing carriage returns are removed so
// files saved with CRLF endings parse the same as LF ones.
func ReadLines(path string, log *zap.Logger) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}

	if log != nil {
		log.Debug("Input loaded", zap.String("path", path), zap.Int("lines", len(lines)))
	}
	return lines, nil
}

// Resolve picks the input path for day: an explicit path wins, otherwise the
// configured fallback is used.
func Resolve(explicit string, fallback func(day int) string, day int) string {
	if explicit != "" {
		return explicit
	}
	return fallback(day)
}
