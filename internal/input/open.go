// internal/input/open.go
package input

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Stdin is read when a path is "-". Tests may replace it.
var Stdin io.Reader = os.Stdin

// StdinName is the display name used for "-" in reports and output files.
const StdinName = "stdin"

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" is stdin; gzip input is detected by
// magic number (1F 8B) or by a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// CheckReadable opens and closes every path so that a missing or unreadable
// input is reported before any computation starts.
func CheckReadable(paths []string) error {
	for _, p := range paths {
		if p == "-" {
			continue
		}
		rc, err := Open(p)
		if err != nil {
			return err
		}
		_ = rc.Close()
	}
	return nil
}

// DisplayName is the name used for path in reports.
func DisplayName(path string) string {
	if path == "-" {
		return StdinName
	}
	return path
}
