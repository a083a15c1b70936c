package airmash

import (
	"bufio"
	"errors"
	"io"
	"sync"

	"github.com/gstoney/airmash/packet"
	"github.com/gstoney/airmash/packet/client"
	"github.com/gstoney/airmash/packet/server"
)

var (
	ErrVarIntTooLong      = errors.New("VarInt is too long")
	ErrInvalidFrameLength = errors.New("invalid frame length")
	ErrInvalidDirection   = errors.New("invalid direction")
)

// Direction says which way a packet travelled.
type Direction byte

const (
	// Serverbound packets are sent by clients.
	Serverbound Direction = iota
	// Clientbound packets are sent by servers.
	Clientbound
)

// Registry returns the packet table used for packets travelling in d.
func (d Direction) Registry() *packet.Registry {
	if d == Serverbound {
		return client.Registry
	}
	return server.Registry
}

func (d Direction) Opposite() Direction {
	return 1 - d
}

func (d Direction) String() string {
	switch d {
	case Serverbound:
		return "serverbound"
	case Clientbound:
		return "clientbound"
	}
	return "invalid"
}

func writeVarInt(w io.ByteWriter, v int32) error {
	uv := uint32(v)
	for {
		b := byte(uv & 0x7F)
		uv >>= 7

		if uv != 0 {
			b |= 0x80
		}

		if err := w.WriteByte(b); err != nil {
			return err
		}

		if uv == 0 {
			return nil
		}
	}
}

func readVarInt(r io.ByteReader) (int32, error) {
	var v int32
	var shift uint

	for n := 0; n < 5; n++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			return v, err
		}

		v |= int32(b&0x7F) << shift
		shift += 7

		if (b & 0x80) == 0 {
			return v, nil
		}
	}
	return v, ErrVarIntTooLong
}

// A Frame is one recorded packet.
type Frame struct {
	Dir  Direction
	Data []byte
}

// Decode deserializes the frame's packet with the table for its direction.
func (f Frame) Decode() (packet.Packet, error) {
	return f.Dir.Registry().Deserialize(f.Data)
}

// CaptureWriter records packets as
// [VarInt length][direction][packet bytes], where length counts the
// direction byte. It is safe for concurrent use.
type CaptureWriter struct {
	mu sync.Mutex
	w  *bufio.Writer
	c  io.Closer
}

// NewCaptureWriter writes frames to w. If w is an io.Closer, Close closes it.
func NewCaptureWriter(w io.Writer) *CaptureWriter {
	c, _ := w.(io.Closer)
	return &CaptureWriter{w: bufio.NewWriter(w), c: c}
}

func (cw *CaptureWriter) WriteFrame(dir Direction, b []byte) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if err := writeVarInt(cw.w, int32(len(b)+1)); err != nil {
		return err
	}
	if err := cw.w.WriteByte(byte(dir)); err != nil {
		return err
	}
	if _, err := cw.w.Write(b); err != nil {
		return err
	}
	return cw.w.Flush()
}

func (cw *CaptureWriter) Close() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	err := cw.w.Flush()
	if cw.c != nil {
		if cerr := cw.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// CaptureReader reads back frames written by a CaptureWriter.
type CaptureReader struct {
	r      *bufio.Reader
	maxLen int32
}

// NewCaptureReader reads frames from r. Frames longer than maxLen are
// rejected with ErrPacketTooBig; maxLen <= 0 means DefaultMaxPacketLen.
func NewCaptureReader(r io.Reader, maxLen int32) *CaptureReader {
	if maxLen <= 0 {
		maxLen = DefaultMaxPacketLen
	}
	return &CaptureReader{r: bufio.NewReader(r), maxLen: maxLen}
}

// Next returns the next frame, or io.EOF at a clean end of the capture.
func (cr *CaptureReader) Next() (f Frame, err error) {
	length, err := readVarInt(cr.r)
	if err != nil {
		return
	}
	if length <= 0 {
		return f, ErrInvalidFrameLength
	}
	if length-1 > cr.maxLen {
		return f, ErrPacketTooBig
	}

	b := make([]byte, length)
	if _, err = io.ReadFull(cr.r, b); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return
	}

	f.Dir = Direction(b[0])
	if f.Dir != Serverbound && f.Dir != Clientbound {
		return Frame{}, ErrInvalidDirection
	}
	f.Data = b[1:]
	return
}
