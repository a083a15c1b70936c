package packet

import (
	"encoding/binary"
	"math"
)

type WriteFn[T any] func(*Writer, T) error
type ReadFn[T any] func(*Reader) (T, error)

const (
	maxSmallLen = math.MaxUint8
	maxLargeLen = math.MaxUint16
)

// WriteBool writes 1 for true and 0 for false.
func WriteBool(w *Writer, v bool) (err error) {
	b := byte(0)
	if v {
		b = 1
	}
	return w.WriteByte(b)
}

// ReadBool treats any nonzero byte as true.
func ReadBool(r *Reader) (v bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}
	return b != 0, nil
}

func WriteU8(w *Writer, v uint8) error {
	return w.WriteByte(v)
}

func ReadU8(r *Reader) (uint8, error) {
	return r.ReadByte()
}

func WriteI8(w *Writer, v int8) error {
	return w.WriteByte(byte(v))
}

func ReadI8(r *Reader) (v int8, err error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func WriteU16(w *Writer, v uint16) error {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
	return nil
}

func ReadU16(r *Reader) (v uint16, err error) {
	b, err := r.Read(2)
	if err != nil {
		return
	}
	return binary.LittleEndian.Uint16(b), nil
}

func WriteI16(w *Writer, v int16) error {
	return WriteU16(w, uint16(v))
}

func ReadI16(r *Reader) (v int16, err error) {
	u, err := ReadU16(r)
	return int16(u), err
}

// WriteU24 writes the low 24 bits of v as three bytes: bits 8-23 as a
// little-endian u16 followed by bits 0-7. 0x030201 becomes 02 03 01.
func WriteU24(w *Writer, v uint32) error {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, uint16(v>>8))
	w.buf = append(w.buf, byte(v))
	return nil
}

func ReadU24(r *Reader) (v uint32, err error) {
	b, err := r.Read(3)
	if err != nil {
		return
	}
	return uint32(binary.LittleEndian.Uint16(b))<<8 | uint32(b[2]), nil
}

func WriteU32(w *Writer, v uint32) error {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
	return nil
}

func ReadU32(r *Reader) (v uint32, err error) {
	b, err := r.Read(4)
	if err != nil {
		return
	}
	return binary.LittleEndian.Uint32(b), nil
}

func WriteI32(w *Writer, v int32) error {
	return WriteU32(w, uint32(v))
}

func ReadI32(r *Reader) (v int32, err error) {
	u, err := ReadU32(r)
	return int32(u), err
}

func WriteU64(w *Writer, v uint64) error {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
	return nil
}

func ReadU64(r *Reader) (v uint64, err error) {
	b, err := r.Read(8)
	if err != nil {
		return
	}
	return binary.LittleEndian.Uint64(b), nil
}

func WriteI64(w *Writer, v int64) error {
	return WriteU64(w, uint64(v))
}

func ReadI64(r *Reader) (v int64, err error) {
	u, err := ReadU64(r)
	return int64(u), err
}

// Uint128 is a 128-bit unsigned integer split into 64-bit halves.
type Uint128 struct {
	Lo, Hi uint64
}

// Int128 is a two's complement 128-bit integer; the sign lives in Hi.
type Int128 struct {
	Lo uint64
	Hi int64
}

func WriteU128(w *Writer, v Uint128) error {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v.Lo)
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v.Hi)
	return nil
}

func ReadU128(r *Reader) (v Uint128, err error) {
	b, err := r.Read(16)
	if err != nil {
		return
	}
	v.Lo = binary.LittleEndian.Uint64(b[:8])
	v.Hi = binary.LittleEndian.Uint64(b[8:])
	return
}

func WriteI128(w *Writer, v Int128) error {
	return WriteU128(w, Uint128{Lo: v.Lo, Hi: uint64(v.Hi)})
}

func ReadI128(r *Reader) (v Int128, err error) {
	u, err := ReadU128(r)
	return Int128{Lo: u.Lo, Hi: int64(u.Hi)}, err
}

func WriteF32(w *Writer, v float32) error {
	return WriteU32(w, math.Float32bits(v))
}

func ReadF32(r *Reader) (v float32, err error) {
	u, err := ReadU32(r)
	return math.Float32frombits(u), err
}

func WriteF64(w *Writer, v float64) error {
	return WriteU64(w, math.Float64bits(v))
}

func ReadF64(r *Reader) (v float64, err error) {
	u, err := ReadU64(r)
	return math.Float64frombits(u), err
}

func WriteBytes(w *Writer, v []byte) error {
	w.buf = append(w.buf, v...)
	return nil
}

// ReadBytes copies the next n bytes out of the input buffer.
func ReadBytes(r *Reader, n int) (v []byte, err error) {
	b, err := r.Read(n)
	if err != nil {
		return
	}
	return append([]byte(nil), b...), nil
}

func writeLength(w *Writer, n int, max int) error {
	if n > max {
		return newError(ArraySizeTooLarge)
	}
	if max == maxSmallLen {
		return WriteU8(w, uint8(n))
	}
	return WriteU16(w, uint16(n))
}

func readLength(r *Reader, max int) (int, error) {
	if max == maxSmallLen {
		n, err := ReadU8(r)
		return int(n), err
	}
	n, err := ReadU16(r)
	return int(n), err
}

// WriteTextSmall writes v prefixed by a u8 byte length.
func WriteTextSmall(w *Writer, v string) (err error) {
	if err = writeLength(w, len(v), maxSmallLen); err != nil {
		return
	}
	w.buf = append(w.buf, v...)
	return
}

func ReadTextSmall(r *Reader) (string, error) {
	return readText(r, maxSmallLen)
}

// WriteTextLarge writes v prefixed by a u16 byte length.
func WriteTextLarge(w *Writer, v string) (err error) {
	if err = writeLength(w, len(v), maxLargeLen); err != nil {
		return
	}
	w.buf = append(w.buf, v...)
	return
}

func ReadTextLarge(r *Reader) (string, error) {
	return readText(r, maxLargeLen)
}

// readText does not validate UTF-8; the bytes are kept as sent.
func readText(r *Reader, max int) (v string, err error) {
	n, err := readLength(r, max)
	if err != nil {
		return
	}
	b, err := r.Read(n)
	if err != nil {
		return
	}
	return string(b), nil
}

// WriteArraySmall writes a u8 element count followed by each element.
func WriteArraySmall[T any](w *Writer, v []T, write WriteFn[T]) error {
	return writeArray(w, v, maxSmallLen, write)
}

func ReadArraySmall[T any](r *Reader, read ReadFn[T]) ([]T, error) {
	return readArray(r, maxSmallLen, read)
}

// WriteArrayLarge writes a u16 element count followed by each element.
func WriteArrayLarge[T any](w *Writer, v []T, write WriteFn[T]) error {
	return writeArray(w, v, maxLargeLen, write)
}

func ReadArrayLarge[T any](r *Reader, read ReadFn[T]) ([]T, error) {
	return readArray(r, maxLargeLen, read)
}

func writeArray[T any](w *Writer, v []T, max int, write WriteFn[T]) (err error) {
	if err = writeLength(w, len(v), max); err != nil {
		return
	}

	for _, item := range v {
		if err = write(w, item); err != nil {
			return WithContext(err, "<array element>")
		}
	}
	return
}

func readArray[T any](r *Reader, max int, read ReadFn[T]) (v []T, err error) {
	n, err := readLength(r, max)
	if err != nil {
		return
	}

	v = make([]T, 0, min(n, r.Remaining()))
	for i := 0; i < n; i++ {
		var item T
		if item, err = read(r); err != nil {
			return nil, err
		}
		v = append(v, item)
	}
	return
}

// Optional[T] is a value that may be absent.
// How absence is put on the wire depends on the field; see WriteOptionPlayer.
type Optional[T any] struct {
	Exists bool
	Item   T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Exists: true, Item: v}
}

// WriteOptionPlayer writes a player reference as a u16, with 0 meaning none.
func WriteOptionPlayer(w *Writer, v Optional[uint16]) error {
	if !v.Exists {
		return WriteU16(w, 0)
	}
	return WriteU16(w, v.Item)
}

func ReadOptionPlayer(r *Reader) (v Optional[uint16], err error) {
	id, err := ReadU16(r)
	if err != nil || id == 0 {
		return
	}
	return Some(id), nil
}
