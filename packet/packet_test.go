package packet

import (
	"bytes"
	"errors"
	"slices"
	"testing"
)

type testPing struct {
	Num uint32
}

func (p testPing) ID() uint8 { return 1 }

func (p testPing) EncodeFields(w *Writer) error {
	return WithContext(WriteU32(w, p.Num), "num")
}

func (p *testPing) DecodeFields(r *Reader) (err error) {
	p.Num, err = ReadU32(r)
	return WithContext(err, "num")
}

type testHello struct {
	Name string
}

func (p testHello) ID() uint8 { return 2 }

func (p testHello) EncodeFields(w *Writer) error {
	return WithContext(WriteTextSmall(w, p.Name), "name")
}

func (p *testHello) DecodeFields(r *Reader) (err error) {
	p.Name, err = ReadTextSmall(r)
	return WithContext(err, "name")
}

// testHello may carry a trailing tag.
func (p *testHello) Extend(r *Reader) (Packet, error) {
	ext := &testHelloTagged{testHello: *p}
	var err error
	if ext.Tag, err = ReadU8(r); err != nil {
		return nil, WithContext(WithContext(err, "tag"), "testHelloTagged")
	}
	return ext, nil
}

func (p *testHello) Extension() Packet {
	return &testHelloTagged{}
}

type testHelloTagged struct {
	testHello
	Tag uint8
}

func (p testHelloTagged) EncodeFields(w *Writer) (err error) {
	if err = p.testHello.EncodeFields(w); err != nil {
		return
	}
	return WithContext(WriteU8(w, p.Tag), "tag")
}

// testPong shares testPing's discriminant but is not registered.
type testPong struct {
	testPing
}

var testRegistry = NewRegistry("TestPacket", map[uint8]func() Packet{
	1: func() Packet { return &testPing{} },
	2: func() Packet { return &testHello{} },
})

func pathOf(t *testing.T, err error) []string {
	t.Helper()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %v", err)
	}
	return e.Path
}

func TestRegistrySerialize(t *testing.T) {
	b, err := testRegistry.Serialize(&testPing{Num: 0x01020304})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 4, 3, 2, 1}
	if !bytes.Equal(b, want) {
		t.Errorf("expected %v, got %v", want, b)
	}

	p, err := testRegistry.Deserialize(b)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := p.(*testPing); !ok || got.Num != 0x01020304 {
		t.Errorf("unexpected packet %#v", p)
	}
}

func TestRegistryUnknownDiscriminant(t *testing.T) {
	_, err := testRegistry.Deserialize([]byte{9})
	if !errors.Is(err, InvalidEnumValue) {
		t.Fatalf("expected InvalidEnumValue, got %v", err)
	}
	if path := pathOf(t, err); !slices.Equal(path, []string{"TestPacket"}) {
		t.Errorf("unexpected path %q", path)
	}
}

func TestRegistryEmpty(t *testing.T) {
	_, err := testRegistry.Deserialize(nil)
	if !errors.Is(err, EndOfBuffer) {
		t.Errorf("expected EndOfBuffer, got %v", err)
	}
}

func TestRegistryTruncated(t *testing.T) {
	_, err := testRegistry.Deserialize([]byte{1, 4, 3})
	if !errors.Is(err, EndOfBuffer) {
		t.Fatalf("expected EndOfBuffer, got %v", err)
	}
	want := []string{"num", "testPing", "TestPacket"}
	if path := pathOf(t, err); !slices.Equal(path, want) {
		t.Errorf("expected path %q, got %q", want, path)
	}
}

func TestRegistryTrailingData(t *testing.T) {
	_, err := testRegistry.Deserialize([]byte{1, 0, 0, 0, 0, 0xFF})
	if !errors.Is(err, UnexpectedDataRemaining) {
		t.Fatalf("expected UnexpectedDataRemaining, got %v", err)
	}
}

func TestRegistryExtension(t *testing.T) {
	base := []byte{2, 2, 'h', 'i'}

	p, err := testRegistry.Deserialize(base)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*testHello); !ok {
		t.Errorf("expected base packet, got %T", p)
	}

	p, err = testRegistry.Deserialize(append(base, 7))
	if err != nil {
		t.Fatal(err)
	}
	ext, ok := p.(*testHelloTagged)
	if !ok || ext.Name != "hi" || ext.Tag != 7 {
		t.Fatalf("unexpected packet %#v", p)
	}

	b, err := testRegistry.Serialize(ext)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, append(base, 7)) {
		t.Errorf("extended packet encoded as %v", b)
	}
}

func TestRegistryEncodeUnregistered(t *testing.T) {
	_, err := NewRegistry("Empty", nil).Serialize(&testPing{})
	if !errors.Is(err, InvalidEnumValue) {
		t.Errorf("expected InvalidEnumValue, got %v", err)
	}
}

func TestRegistryEncodeForeignType(t *testing.T) {
	testCases := []struct {
		desc      string
		p         Packet
		expectErr error
	}{
		{desc: "Registered", p: &testPing{}},
		{desc: "Extended", p: &testHelloTagged{}},
		{desc: "Same discriminant", p: &testPong{}, expectErr: InvalidEnumValue},
		{desc: "Base of extended", p: &testHello{}},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			b, err := testRegistry.Serialize(tC.p)
			if tC.expectErr == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tC.expectErr) {
				t.Fatalf("expected %v, got %v (bytes %v)", tC.expectErr, err, b)
			}
			if path := pathOf(t, err); !slices.Equal(path, []string{"TestPacket"}) {
				t.Errorf("unexpected path %q", path)
			}
		})
	}
}

func TestRegistryEncodeErrorPath(t *testing.T) {
	_, err := testRegistry.Serialize(&testHello{Name: string(make([]byte, 300))})
	if !errors.Is(err, ArraySizeTooLarge) {
		t.Fatalf("expected ArraySizeTooLarge, got %v", err)
	}
	want := []string{"name", "testHello", "TestPacket"}
	if path := pathOf(t, err); !slices.Equal(path, want) {
		t.Errorf("expected path %q, got %q", want, path)
	}
}
