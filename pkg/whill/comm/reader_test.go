package comm

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// chunkReader returns one chunk per Read and reports no data when drained,
// the same as a serial port whose read timeout expired.
type chunkReader struct {
	chunks [][]byte
	err    error
}

func newChunkReader(chunks ...[]byte) *chunkReader {
	return &chunkReader{chunks: chunks}
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, r.err
	}
	n := copy(p, r.chunks[0])
	if n < len(r.chunks[0]) {
		r.chunks[0] = r.chunks[0][n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

type timeoutError struct{}

func (timeoutError) Error() string { return "i/o timeout" }
func (timeoutError) Timeout() bool { return true }

func TestReadFrame(t *testing.T) {
	r := NewReader(newChunkReader(Encode(Sign, []byte{1, 2, 3})))
	f, err := r.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, Sign, f.Sign)
	require.Equal(t, byte(5), f.Length)
	require.Equal(t, []byte{1, 2, 3}, f.Payload)
	require.True(t, f.Valid())
	_, err = r.ReadFrame()
	require.Equal(t, ErrIdle, err)
}

func TestReadFrameSplitChunks(t *testing.T) {
	b := Encode(Sign, []byte{1, 2, 3, 4, 5, 6})
	r := NewReader(newChunkReader(b[:1], b[1:2], b[2:4], b[4:]))
	f, err := r.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6}, f.Payload)
	require.True(t, f.Valid())
}

func TestReadFrameDropsNonSign(t *testing.T) {
	b := append([]byte{0x01, 0x02}, Encode(Sign, []byte{1})...)
	r := NewReader(newChunkReader(b))
	_, err := r.ReadFrame()
	require.Equal(t, ErrNoFrame, err)
	_, err = r.ReadFrame()
	require.Equal(t, ErrNoFrame, err)
	f, err := r.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, []byte{1}, f.Payload)
}

func TestReadFrameShort(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
	}{
		{"missing length", []byte{Sign}},
		{"zero length", []byte{Sign, 0}},
		{"missing payload", []byte{Sign, 4, 1, 2}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReader(newChunkReader(tc.in)).ReadFrame()
			require.Equal(t, ErrShortFrame, err)
		})
	}
}

func TestReadFrameTimeoutError(t *testing.T) {
	cr := newChunkReader()
	cr.err = timeoutError{}
	_, err := NewReader(cr).ReadFrame()
	require.Equal(t, ErrIdle, err)

	cr = newChunkReader([]byte{Sign, 3, 1})
	cr.err = timeoutError{}
	_, err = NewReader(cr).ReadFrame()
	require.Equal(t, ErrShortFrame, err)
}

func TestReadFrameIOError(t *testing.T) {
	cr := newChunkReader()
	cr.err = io.ErrClosedPipe
	_, err := NewReader(cr).ReadFrame()
	require.True(t, errors.Is(err, io.ErrClosedPipe))
}
