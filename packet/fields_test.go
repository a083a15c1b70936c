package packet

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

type TestCase[T any] struct {
	desc      string
	expectErr error
	v         T
	ser       []byte
}

// runCases checks that write produces ser and that read gives v back.
// Cases with expectErr are only read.
func runCases[T comparable](t *testing.T, cases []TestCase[T], write WriteFn[T], read ReadFn[T]) {
	t.Helper()
	for _, tC := range cases {
		t.Run(tC.desc, func(t *testing.T) {
			if tC.expectErr == nil {
				w := NewWriter(0)
				if err := write(w, tC.v); err != nil {
					t.Fatalf("write failed: %v", err)
				}
				if !bytes.Equal(w.Bytes(), tC.ser) {
					t.Errorf("write expected %x, got %x", tC.ser, w.Bytes())
				}
			}

			r := NewReader(tC.ser)
			got, err := read(&r)
			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Fatalf("read expected error %v, got %v (value %v)", tC.expectErr, err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("read failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("read expected %v, got %v", tC.v, got)
			}
			if r.Remaining() != 0 {
				t.Errorf("read left %d bytes", r.Remaining())
			}
		})
	}
}

func TestU16(t *testing.T) {
	runCases(t, []TestCase[uint16]{
		{desc: "Zero", v: 0, ser: []byte{0x00, 0x00}},
		{desc: "Little endian", v: 0xABCD, ser: []byte{0xCD, 0xAB}},
		{desc: "Max", v: math.MaxUint16, ser: []byte{0xFF, 0xFF}},
		{desc: "Short buffer", expectErr: EndOfBuffer, ser: []byte{0x01}},
	}, WriteU16, ReadU16)
}

func TestU24(t *testing.T) {
	runCases(t, []TestCase[uint32]{
		{desc: "Three distinct bytes", v: 0x030201, ser: []byte{0x02, 0x03, 0x01}},
		{desc: "Low byte only", v: 0x0000AA, ser: []byte{0x00, 0x00, 0xAA}},
		{desc: "Max", v: 0xFFFFFF, ser: []byte{0xFF, 0xFF, 0xFF}},
		{desc: "Short buffer", expectErr: EndOfBuffer, ser: []byte{0x01, 0x02}},
	}, WriteU24, ReadU24)
}

func TestU32(t *testing.T) {
	runCases(t, []TestCase[uint32]{
		{desc: "Little endian", v: 0x04030201, ser: []byte{0x01, 0x02, 0x03, 0x04}},
		{desc: "Short buffer", expectErr: EndOfBuffer, ser: []byte{0x01, 0x02, 0x03}},
	}, WriteU32, ReadU32)
}

func TestI16(t *testing.T) {
	runCases(t, []TestCase[int16]{
		{desc: "Negative one", v: -1, ser: []byte{0xFF, 0xFF}},
		{desc: "Min", v: math.MinInt16, ser: []byte{0x00, 0x80}},
	}, WriteI16, ReadI16)
}

func TestU128(t *testing.T) {
	runCases(t, []TestCase[Uint128]{
		{
			desc: "Halves",
			v:    Uint128{Lo: 1, Hi: 2},
			ser:  []byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0},
		},
	}, WriteU128, ReadU128)
	runCases(t, []TestCase[Int128]{
		{
			desc: "Negative one",
			v:    Int128{Lo: math.MaxUint64, Hi: -1},
			ser:  bytes.Repeat([]byte{0xFF}, 16),
		},
	}, WriteI128, ReadI128)
}

func TestFloats(t *testing.T) {
	runCases(t, []TestCase[float32]{
		{desc: "One", v: 1, ser: []byte{0x00, 0x00, 0x80, 0x3F}},
	}, WriteF32, ReadF32)
	runCases(t, []TestCase[float64]{
		{desc: "One", v: 1, ser: []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}},
	}, WriteF64, ReadF64)
}

func TestBool(t *testing.T) {
	runCases(t, []TestCase[bool]{
		{desc: "False", v: false, ser: []byte{0x00}},
		{desc: "True", v: true, ser: []byte{0x01}},
	}, WriteBool, ReadBool)

	r := NewReader([]byte{0x7F})
	if v, err := ReadBool(&r); err != nil || !v {
		t.Errorf("ReadBool(0x7F) = %v, %v; want true", v, err)
	}
}

func TestOptionPlayer(t *testing.T) {
	runCases(t, []TestCase[Optional[uint16]]{
		{desc: "None", v: Optional[uint16]{}, ser: []byte{0x00, 0x00}},
		{desc: "Some", v: Some[uint16](4), ser: []byte{0x04, 0x00}},
	}, WriteOptionPlayer, ReadOptionPlayer)
}

func TestText(t *testing.T) {
	runCases(t, []TestCase[string]{
		{desc: "Empty", v: "", ser: []byte{0x00}},
		{desc: "Ascii", v: "hi", ser: []byte{0x02, 'h', 'i'}},
		{desc: "Truncated", expectErr: EndOfBuffer, ser: []byte{0x03, 'h', 'i'}},
	}, WriteTextSmall, ReadTextSmall)

	runCases(t, []TestCase[string]{
		{desc: "Ascii", v: "hi", ser: []byte{0x02, 0x00, 'h', 'i'}},
		{desc: "Missing length byte", expectErr: EndOfBuffer, ser: []byte{0x02}},
	}, WriteTextLarge, ReadTextLarge)
}

func TestTextSizeLimits(t *testing.T) {
	testCases := []struct {
		desc      string
		write     WriteFn[string]
		n         int
		expectErr error
	}{
		{desc: "Small at limit", write: WriteTextSmall, n: 255},
		{desc: "Small over limit", write: WriteTextSmall, n: 256, expectErr: ArraySizeTooLarge},
		{desc: "Large at limit", write: WriteTextLarge, n: 65535},
		{desc: "Large over limit", write: WriteTextLarge, n: 65536, expectErr: ArraySizeTooLarge},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			err := tC.write(NewWriter(0), strings.Repeat("a", tC.n))
			if !errors.Is(err, tC.expectErr) {
				t.Errorf("expected %v, got %v", tC.expectErr, err)
			}
		})
	}
}

func TestArraySizeLimits(t *testing.T) {
	if err := WriteArraySmall(NewWriter(0), make([]uint8, 255), WriteU8); err != nil {
		t.Errorf("255 elements: %v", err)
	}
	if err := WriteArraySmall(NewWriter(0), make([]uint8, 256), WriteU8); !errors.Is(err, ArraySizeTooLarge) {
		t.Errorf("256 elements: expected ArraySizeTooLarge, got %v", err)
	}

	w := NewWriter(0)
	if err := WriteArrayLarge(w, make([]uint8, 65535), WriteU8); err != nil {
		t.Errorf("65535 elements: %v", err)
	}
	if w.Len() != 2+65535 {
		t.Errorf("expected %d bytes, got %d", 2+65535, w.Len())
	}
	if err := WriteArrayLarge(NewWriter(0), make([]uint8, 65536), WriteU8); !errors.Is(err, ArraySizeTooLarge) {
		t.Errorf("65536 elements: expected ArraySizeTooLarge, got %v", err)
	}
}

func TestArrayRoundtrip(t *testing.T) {
	in := []uint16{1, 2, 0xBEEF}
	w := NewWriter(0)
	if err := WriteArraySmall(w, in, WriteU16); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x03, 0x01, 0x00, 0x02, 0x00, 0xEF, 0xBE}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("expected %x, got %x", want, w.Bytes())
	}

	r := NewReader(w.Bytes())
	out, err := ReadArraySmall(&r, ReadU16)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d elements, got %d", len(in), len(out))
	}
	for i := range in {
		if in[i] != out[i] {
			t.Errorf("element %d: expected %d, got %d", i, in[i], out[i])
		}
	}
}

func TestArrayElementErrorPath(t *testing.T) {
	long := strings.Repeat("a", 256)
	err := WriteArrayLarge(NewWriter(0), []string{"ok", long}, WriteTextSmall)

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if e.Kind != ArraySizeTooLarge {
		t.Errorf("expected ArraySizeTooLarge, got %v", e.Kind)
	}
	if len(e.Path) != 1 || e.Path[0] != "<array element>" {
		t.Errorf("unexpected path %q", e.Path)
	}
}

func TestArrayHugeCountTruncated(t *testing.T) {
	// The count claims 65535 elements but none follow.
	r := NewReader([]byte{0xFF, 0xFF})
	if _, err := ReadArrayLarge(&r, ReadU32); !errors.Is(err, EndOfBuffer) {
		t.Errorf("expected EndOfBuffer, got %v", err)
	}
}

func TestReaderRemainder(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	if _, err := r.Read(3); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(r.Remainder(), []byte{4}) {
		t.Errorf("unexpected remainder %x", r.Remainder())
	}
	if _, err := r.Read(2); !errors.Is(err, EndOfBuffer) {
		t.Errorf("expected EndOfBuffer, got %v", err)
	}
	if r.Remaining() != 1 {
		t.Errorf("failed read moved the cursor")
	}
}

func TestReadBytesCopies(t *testing.T) {
	buf := []byte{1, 2, 3}
	r := NewReader(buf)
	b, err := ReadBytes(&r, 2)
	if err != nil {
		t.Fatal(err)
	}
	buf[0] = 9
	if b[0] != 1 {
		t.Errorf("ReadBytes aliases the input buffer")
	}
}
