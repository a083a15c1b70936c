package packet

import "math"

// ScalarSpec maps a physical quantity onto an unsigned wire slot of Bits width:
// raw = clamp(round(v*Mult) + Shift) and v = (raw - Shift) / Mult.
type ScalarSpec struct {
	Bits  uint
	Shift int64
	Mult  float64
}

var (
	RotationSpec = ScalarSpec{Bits: 16, Shift: 0, Mult: 6553.6}
	CoordXSpec   = ScalarSpec{Bits: 16, Shift: 32768, Mult: 2.0}
	CoordYSpec   = ScalarSpec{Bits: 16, Shift: 32768, Mult: 4.0}
	Coord24Spec  = ScalarSpec{Bits: 24, Shift: 8388608, Mult: 512.0}
	SpeedSpec    = ScalarSpec{Bits: 16, Shift: 32768, Mult: 1638.4}
	AccelSpec    = ScalarSpec{Bits: 16, Shift: 32768, Mult: 32768.0}
	RegenSpec    = ScalarSpec{Bits: 16, Shift: 32768, Mult: 1.0e6}
	EnergySpec   = ScalarSpec{Bits: 8, Shift: 0, Mult: 255.0}
)

func (s ScalarSpec) max() int64 {
	return int64(1)<<s.Bits - 1
}

// Encode saturates at the ends of the wire range instead of wrapping.
func (s ScalarSpec) Encode(v float32) uint32 {
	f := math.Round(float64(v)*s.Mult) + float64(s.Shift)
	switch {
	case math.IsNaN(f):
		return uint32(s.Shift)
	case f <= 0:
		return 0
	case f >= float64(s.max()):
		return uint32(s.max())
	}
	return uint32(f)
}

func (s ScalarSpec) Decode(raw uint32) float32 {
	return float32(float64(int64(raw)-s.Shift) / s.Mult)
}

// Resolution is the smallest representable step.
func (s ScalarSpec) Resolution() float32 {
	return float32(1 / s.Mult)
}

func (s ScalarSpec) Write(w *Writer, v float32) error {
	raw := s.Encode(v)
	switch s.Bits {
	case 8:
		return WriteU8(w, uint8(raw))
	case 16:
		return WriteU16(w, uint16(raw))
	case 24:
		return WriteU24(w, raw)
	}
	return WriteU32(w, raw)
}

func (s ScalarSpec) Read(r *Reader) (v float32, err error) {
	var raw uint32
	switch s.Bits {
	case 8:
		var b uint8
		b, err = ReadU8(r)
		raw = uint32(b)
	case 16:
		var u uint16
		u, err = ReadU16(r)
		raw = uint32(u)
	case 24:
		raw, err = ReadU24(r)
	default:
		raw, err = ReadU32(r)
	}
	if err != nil {
		return
	}
	return s.Decode(raw), nil
}

func WriteRotation(w *Writer, v float32) error { return RotationSpec.Write(w, v) }
func ReadRotation(r *Reader) (float32, error) { return RotationSpec.Read(r) }
func WriteSpeed(w *Writer, v float32) error { return SpeedSpec.Write(w, v) }
func ReadSpeed(r *Reader) (float32, error) { return SpeedSpec.Read(r) }
func WriteEnergy(w *Writer, v float32) error { return EnergySpec.Write(w, v) }
func ReadEnergy(r *Reader) (float32, error) { return EnergySpec.Read(r) }
func WriteRegen(w *Writer, v float32) error { return RegenSpec.Write(w, v) }
func ReadRegen(r *Reader) (float32, error) { return RegenSpec.Read(r) }

// Vector2 is a 2-D quantity. Its wire form depends on the field:
// position, 24-bit position, velocity, acceleration or raw f32.
type Vector2 struct {
	X, Y float32
}

func writeVector(w *Writer, v Vector2, x, y ScalarSpec) (err error) {
	if err = x.Write(w, v.X); err != nil {
		return
	}
	return y.Write(w, v.Y)
}

func readVector(r *Reader, x, y ScalarSpec) (v Vector2, err error) {
	if v.X, err = x.Read(r); err != nil {
		return
	}
	v.Y, err = y.Read(r)
	return
}

func WritePos(w *Writer, v Vector2) error { return writeVector(w, v, CoordXSpec, CoordYSpec) }
func ReadPos(r *Reader) (Vector2, error) { return readVector(r, CoordXSpec, CoordYSpec) }
func WritePos24(w *Writer, v Vector2) error { return writeVector(w, v, Coord24Spec, Coord24Spec) }
func ReadPos24(r *Reader) (Vector2, error) { return readVector(r, Coord24Spec, Coord24Spec) }
func WriteVel(w *Writer, v Vector2) error { return writeVector(w, v, SpeedSpec, SpeedSpec) }
func ReadVel(r *Reader) (Vector2, error) { return readVector(r, SpeedSpec, SpeedSpec) }
func WriteAccel(w *Writer, v Vector2) error { return writeVector(w, v, AccelSpec, AccelSpec) }
func ReadAccel(r *Reader) (Vector2, error) { return readVector(r, AccelSpec, AccelSpec) }

func WritePosF32(w *Writer, v Vector2) (err error) {
	if err = WriteF32(w, v.X); err != nil {
		return
	}
	return WriteF32(w, v.Y)
}

func ReadPosF32(r *Reader) (v Vector2, err error) {
	if v.X, err = ReadF32(r); err != nil {
		return
	}
	v.Y, err = ReadF32(r)
	return
}

const lowResCell = 128

func lowResByte(v float32) uint8 {
	c := int64(v/lowResCell) + 128
	return uint8(max(0, min(c, math.MaxUint8)))
}

// WriteLowResPos writes one byte per axis, each a 128 unit grid cell offset
// by 128. An absent position is written as (0, 0), and a real position in
// that cell reads back as absent.
func WriteLowResPos(w *Writer, v Optional[Vector2]) error {
	if !v.Exists {
		w.buf = append(w.buf, 0, 0)
		return nil
	}
	w.buf = append(w.buf, lowResByte(v.Item.X), lowResByte(v.Item.Y))
	return nil
}

func ReadLowResPos(r *Reader) (v Optional[Vector2], err error) {
	b, err := r.Read(2)
	if err != nil {
		return
	}
	if b[0] == 0 && b[1] == 0 {
		return
	}
	return Some(Vector2{
		X: float32((int(b[0]) - 128) * lowResCell),
		Y: float32((int(b[1]) - 128) * lowResCell),
	}), nil
}
