package packet

import "reflect"

// Packet is one message kind. ID is the leading discriminant byte; the field
// codecs cover everything after it, in wire order.
type Packet interface {
	ID() uint8
	EncodeFields(w *Writer) error
	DecodeFields(r *Reader) error
}

// Extender is a packet that may be followed by an extension record. When
// bytes remain after its fields, Extend decodes them and returns the
// extended packet in its place. Extension returns a zero extended packet;
// the registry encodes it under the base packet's discriminant.
type Extender interface {
	Packet
	Extend(r *Reader) (Packet, error)
	Extension() Packet
}

// Registry maps discriminants to packet kinds for one direction of traffic.
type Registry struct {
	name    string
	packets map[uint8]func() Packet
	types   map[uint8][]reflect.Type
}

func NewRegistry(name string, packets map[uint8]func() Packet) *Registry {
	types := make(map[uint8][]reflect.Type, len(packets))
	for id, fn := range packets {
		p := fn()
		types[id] = append(types[id], reflect.TypeOf(p))
		if ext, ok := p.(Extender); ok {
			types[id] = append(types[id], reflect.TypeOf(ext.Extension()))
		}
	}
	return &Registry{name: name, packets: packets, types: types}
}

// accepts reports whether p is the kind registered under p.ID().
func (reg *Registry) accepts(p Packet) bool {
	t := reflect.TypeOf(p)
	for _, rt := range reg.types[p.ID()] {
		if rt == t {
			return true
		}
	}
	return false
}

// Name is the outermost frame of every error path produced by the registry.
func (reg *Registry) Name() string {
	return reg.name
}

// New returns a zero packet for id.
func (reg *Registry) New(id uint8) (Packet, bool) {
	fn, ok := reg.packets[id]
	if !ok {
		return nil, false
	}
	return fn(), true
}

func (reg *Registry) Encode(w *Writer, p Packet) (err error) {
	if !reg.accepts(p) {
		return WithContext(newError(InvalidEnumValue), reg.name)
	}
	if err = WriteU8(w, p.ID()); err != nil {
		return
	}
	if err = p.EncodeFields(w); err != nil {
		return WithContext(WithContext(err, Name(p)), reg.name)
	}
	return
}

func (reg *Registry) Serialize(p Packet) ([]byte, error) {
	w := NewWriter(64)
	if err := reg.Encode(w, p); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Decode reads one packet. Bytes after it are left in r.
func (reg *Registry) Decode(r *Reader) (p Packet, err error) {
	id, err := ReadU8(r)
	if err != nil {
		return nil, WithContext(err, reg.name)
	}

	p, ok := reg.New(id)
	if !ok {
		return nil, WithContext(newError(InvalidEnumValue), reg.name)
	}

	if err = p.DecodeFields(r); err != nil {
		return nil, WithContext(WithContext(err, Name(p)), reg.name)
	}

	if ext, ok := p.(Extender); ok && r.Remaining() > 0 {
		if p, err = ext.Extend(r); err != nil {
			return nil, WithContext(err, reg.name)
		}
	}
	return p, nil
}

// Deserialize decodes exactly one packet from b.
func (reg *Registry) Deserialize(b []byte) (Packet, error) {
	r := NewReader(b)
	p, err := reg.Decode(&r)
	if err != nil {
		return nil, err
	}
	if r.Remaining() > 0 {
		return nil, WithContext(newError(UnexpectedDataRemaining), reg.name)
	}
	return p, nil
}

// Name returns the type name of p, as used in error paths and logs.
func Name(p Packet) string {
	t := reflect.TypeOf(p)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
