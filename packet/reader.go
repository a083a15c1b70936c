package packet

// Reader is a forward-only cursor over one packet's bytes.
// It never reads past the end of buf; short reads fail with EndOfBuffer.
type Reader struct {
	buf []byte
	off int
}

func NewReader(buf []byte) Reader {
	return Reader{
		buf: buf,
		off: 0,
	}
}

func (r Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Remainder returns the unread bytes without advancing the cursor.
func (r Reader) Remainder() []byte {
	return r.buf[r.off:]
}

func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, newError(EndOfBuffer)
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// Read returns the next n bytes. The slice aliases the input buffer.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.buf) {
		return nil, newError(EndOfBuffer)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}
