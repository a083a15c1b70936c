package packet

import (
	"bytes"
	"math"
	"testing"
)

var scalarSpecs = []struct {
	name string
	spec ScalarSpec
}{
	{"rotation", RotationSpec},
	{"coord-x", CoordXSpec},
	{"coord-y", CoordYSpec},
	{"coord24", Coord24Spec},
	{"speed", SpeedSpec},
	{"accel", AccelSpec},
	{"regen", RegenSpec},
	{"energy", EnergySpec},
}

func (s ScalarSpec) limits() (lo, hi float32) {
	return s.Decode(0), s.Decode(uint32(s.max()))
}

func TestScalarRoundtrip(t *testing.T) {
	for _, sc := range scalarSpecs {
		t.Run(sc.name, func(t *testing.T) {
			lo, hi := sc.spec.limits()
			step := (hi - lo) / 997
			for i := 0; i <= 997; i++ {
				v := lo + float32(i)*step
				if v > hi {
					v = hi
				}
				got := sc.spec.Decode(sc.spec.Encode(v))
				if d := math.Abs(float64(got - v)); d > float64(sc.spec.Resolution()) {
					t.Fatalf("%v decoded as %v, off by %v (resolution %v)", v, got, d, sc.spec.Resolution())
				}
			}
		})
	}
}

func TestScalarSaturates(t *testing.T) {
	for _, sc := range scalarSpecs {
		t.Run(sc.name, func(t *testing.T) {
			lo, hi := sc.spec.limits()
			if raw := sc.spec.Encode(hi*4 + 1000); raw != uint32(sc.spec.max()) {
				t.Errorf("above range encoded as %d, want %d", raw, sc.spec.max())
			}
			if raw := sc.spec.Encode(lo*4 - 1000); raw != 0 {
				t.Errorf("below range encoded as %d, want 0", raw)
			}
		})
	}
}

func TestScalarWidths(t *testing.T) {
	for _, sc := range scalarSpecs {
		t.Run(sc.name, func(t *testing.T) {
			w := NewWriter(0)
			if err := sc.spec.Write(w, 0); err != nil {
				t.Fatal(err)
			}
			if w.Len()*8 != int(sc.spec.Bits) {
				t.Errorf("wrote %d bytes for a %d bit slot", w.Len(), sc.spec.Bits)
			}
			r := NewReader(w.Bytes()[:w.Len()-1])
			if _, err := sc.spec.Read(&r); err == nil {
				t.Errorf("expected a short read to fail")
			}
		})
	}
}

func TestPos24(t *testing.T) {
	w := NewWriter(0)
	if err := WritePos24(w, Vector2{X: 1503, Y: -232}); err != nil {
		t.Fatal(err)
	}
	want := []byte{190, 139, 0, 48, 126, 0}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("expected %v, got %v", want, w.Bytes())
	}
}

func TestLowResPos(t *testing.T) {
	testCases := []struct {
		desc string
		v    Optional[Vector2]
		ser  []byte
		back Optional[Vector2]
	}{
		{
			desc: "None",
			v:    Optional[Vector2]{},
			ser:  []byte{0, 0},
			back: Optional[Vector2]{},
		},
		{
			desc: "Origin",
			v:    Some(Vector2{}),
			ser:  []byte{128, 128},
			back: Some(Vector2{}),
		},
		{
			desc: "Grid cell",
			v:    Some(Vector2{X: 1000, Y: -1000}),
			ser:  []byte{135, 121},
			back: Some(Vector2{X: 896, Y: -896}),
		},
		{
			desc: "Saturated",
			v:    Some(Vector2{X: 100000, Y: 5000}),
			ser:  []byte{255, 167},
			back: Some(Vector2{X: 16256, Y: 4992}),
		},
		{
			// A real position in cell (0, 0) is indistinguishable from None.
			desc: "Sentinel cell",
			v:    Some(Vector2{X: -16384, Y: -16384}),
			ser:  []byte{0, 0},
			back: Optional[Vector2]{},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			w := NewWriter(0)
			if err := WriteLowResPos(w, tC.v); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(w.Bytes(), tC.ser) {
				t.Fatalf("expected %v, got %v", tC.ser, w.Bytes())
			}
			r := NewReader(w.Bytes())
			got, err := ReadLowResPos(&r)
			if err != nil {
				t.Fatal(err)
			}
			if got != tC.back {
				t.Errorf("expected %+v, got %+v", tC.back, got)
			}
		})
	}
}

func TestPosF32(t *testing.T) {
	v := Vector2{X: 1.5, Y: -2.25}
	w := NewWriter(0)
	if err := WritePosF32(w, v); err != nil {
		t.Fatal(err)
	}
	r := NewReader(w.Bytes())
	got, err := ReadPosF32(&r)
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Errorf("expected %v, got %v", v, got)
	}
}
