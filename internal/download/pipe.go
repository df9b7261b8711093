package download

import (
	"context"
	"fmt"
	"io"
)

type flusher interface {
	Flush()
}

type chunk struct {
	buf []byte
	n   int
}

// pipe copies src to dst through depth buffers of chunkSize bytes. A producer
// goroutine reads into free buffers while the caller writes filled ones, so at
// most depth*chunkSize bytes are held at once. dst is flushed after every
// chunk when it supports it.
//
// pipe returns when src is exhausted, a write fails or ctx is done. A read
// blocked on src is released only when src itself is closed or cancelled.
func pipe(ctx context.Context, dst io.Writer, src io.Reader, chunkSize, depth int) (int64, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	free := make(chan []byte, depth)
	for i := 0; i < depth; i++ {
		free <- make([]byte, chunkSize)
	}
	filled := make(chan chunk, depth)
	readErr := make(chan error, 1)

	go func() {
		defer close(filled)
		for {
			var buf []byte
			select {
			case buf = <-free:
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}

			n, err := src.Read(buf)
			if n > 0 {
				select {
				case filled <- chunk{buf: buf, n: n}:
				case <-ctx.Done():
					readErr <- ctx.Err()
					return
				}
			} else {
				free <- buf
			}

			if err == io.EOF {
				return
			}
			if err != nil {
				readErr <- fmt.Errorf("read: %w", err)
				return
			}
		}
	}()

	f, _ := dst.(flusher)
	var written int64
	for c := range filled {
		n, err := dst.Write(c.buf[:c.n])
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("write: %w", err)
		}
		if f != nil {
			f.Flush()
		}
		free <- c.buf
	}

	select {
	case err := <-readErr:
		return written, err
	default:
		return written, nil
	}
}
