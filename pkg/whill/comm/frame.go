package comm

import (
	"encoding/hex"
	"io"
)

// Sign is the fixed marker starting every frame.
const Sign byte = 0xAF

// Frame is a single unit on the wire.
type Frame struct {
	Sign     byte
	Length   byte
	Payload  []byte
	Checksum byte
}

// Checksum calculates the XOR of all bytes.
func Checksum(bs ...byte) (sum byte) {
	for _, b := range bs {
		sum ^= b
	}
	return
}

// Encode builds the frame bytes for a command payload.
func Encode(sign byte, command []byte) []byte {
	b := make([]byte, len(command)+3)
	b[0], b[1] = sign, byte(len(command)+1)
	copy(b[2:], command)
	b[len(b)-1] = Checksum(b[:len(b)-1]...)
	return b
}

// NewFrame creates a frame carrying payload with the standard sign.
func NewFrame(payload []byte) *Frame {
	f := &Frame{Sign: Sign, Length: byte(len(payload) + 1), Payload: payload}
	f.Checksum = Checksum(f.Sign, f.Length) ^ Checksum(payload...)
	return f
}

// Valid checks the checksum of the frame.
func (f *Frame) Valid() bool {
	return Checksum(f.Sign, f.Length, f.Checksum)^Checksum(f.Payload...) == 0
}

// Bytes returns encoded bytes for sending.
func (f *Frame) Bytes() []byte {
	b := make([]byte, len(f.Payload)+3)
	b[0], b[1] = f.Sign, f.Length
	copy(b[2:], f.Payload)
	b[len(b)-1] = f.Checksum
	return b
}

// WriteTo writes encoded bytes.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}

// String dumps the frame in hex.
func (f *Frame) String() string {
	return hex.EncodeToString(f.Bytes())
}
