package console

import (
	"context"
	"errors"
	"io"
	"os"
)

// Attach copies everything the board sends to out and everything read from
// in to the board, until ctx is done, in reaches EOF or the port fails. The
// port is closed on return.
//
// The caller owns in. A Read blocked on it can not be interrupted, so the
// goroutine copying from in lives until that Read returns; whatever it reads
// after Attach returns is dropped. Close in to end it early.
func Attach(ctx context.Context, port Port, in io.Reader, out io.Writer) error {
	if err := port.Flush(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)

	errc := make(chan error, 2)
	go func() {
		errc <- pump(out, port)
	}()
	go func() {
		_, err := io.Copy(gate{port, done}, in)
		errc <- err
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errc:
	}
	if cerr := port.Close(); err == nil {
		err = cerr
	}
	return err
}

// gate forwards writes until done is closed.
type gate struct {
	w    io.Writer
	done <-chan struct{}
}

func (g gate) Write(b []byte) (int, error) {
	select {
	case <-g.done:
		return 0, os.ErrClosed
	default:
	}
	return g.w.Write(b)
}

// pump copies from the port, treating read timeouts as idle periods.
func pump(out io.Writer, port Port) error {
	buf := make([]byte, 256)
	for {
		n, err := port.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF) && n == 0:
			// tarm/serial reports a read timeout as 0, EOF on Linux.
		case errors.Is(err, os.ErrClosed):
			return nil
		default:
			return err
		}
	}
}
