package comm

import (
	"io"
	"os"
)

// Reader reads frames from a byte stream whose Read returns either no data
// or a timeout error when nothing arrives in time (e.g. a serial port with
// read timeout configured).
//
// The Reader doesn't scan for the next sign byte. A byte which isn't a sign
// is dropped and reported as ErrNoFrame, so a spurious sign inside the
// stream desynchronizes framing until it naturally realigns.
type Reader struct {
	r   io.Reader
	buf [1]byte
}

// NewReader creates a Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadFrame reads one frame. The returned frame is not validated.
func (r *Reader) ReadFrame() (*Frame, error) {
	sign, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if sign != Sign {
		return nil, ErrNoFrame
	}
	length, err := r.readByte()
	if err != nil {
		return nil, midFrame(err)
	}
	if length == 0 {
		return nil, ErrShortFrame
	}
	data := make([]byte, length)
	for n := 0; n < len(data); {
		nr, err := r.r.Read(data[n:])
		if nr == 0 && err == nil {
			return nil, ErrShortFrame
		}
		if err != nil {
			return nil, midFrame(err)
		}
		n += nr
	}
	return &Frame{
		Sign:     sign,
		Length:   length,
		Payload:  data[:length-1],
		Checksum: data[length-1],
	}, nil
}

func (r *Reader) readByte() (byte, error) {
	n, err := r.r.Read(r.buf[:])
	if err != nil {
		if os.IsTimeout(err) {
			return 0, ErrIdle
		}
		return 0, err
	}
	if n == 0 {
		return 0, ErrIdle
	}
	return r.buf[0], nil
}

func midFrame(err error) error {
	if err == ErrIdle || os.IsTimeout(err) {
		return ErrShortFrame
	}
	return err
}
