// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start runs a goroutine that writes every value received on the returned
// channel to out as one JSON document per line. Close the channel when done
// and read the error channel once. After the first encode failure the rest
// of the input is drained and discarded, so senders never block. Errors that
// isBroken accepts are reported as nil.
func Start[T any](out io.Writer, bufSize int, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err != nil {
				continue
			}
			err = enc.Encode(v)
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && isBroken != nil && isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}

// Write encodes values to out as JSON lines.
func Write[T any](out io.Writer, values []T, isBroken func(error) bool) error {
	in, done := Start[T](out, 0, isBroken)
	for _, v := range values {
		in <- v
	}
	close(in)
	return <-done
}
