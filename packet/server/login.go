package server

import "github.com/gstoney/airmash/packet"

// @gen:r,w,elem
type LoginBot struct {
	ID uint16 `field:"U16"`
}

// Login2 is a Login followed by the server config and the ids of the bots
// in the game. It has no discriminant of its own: a Login with trailing
// bytes is a Login2.
type Login2 struct {
	Login
	Config string
	Bots   []LoginBot
}

func (p Login2) EncodeFields(w *packet.Writer) (err error) {
	if err = p.Login.EncodeFields(w); err != nil {
		return
	}
	if err = packet.WriteTextLarge(w, p.Config); err != nil {
		return packet.WithContext(err, "config")
	}
	if err = packet.WriteArrayLarge(w, p.Bots, WriteLoginBot); err != nil {
		return packet.WithContext(err, "bots")
	}
	return
}

func (p *Login2) DecodeFields(r *packet.Reader) (err error) {
	if err = p.Login.DecodeFields(r); err != nil {
		return
	}
	return p.decodeExtension(r)
}

func (p *Login2) decodeExtension(r *packet.Reader) (err error) {
	if p.Config, err = packet.ReadTextLarge(r); err != nil {
		return packet.WithContext(err, "config")
	}
	if p.Bots, err = packet.ReadArrayLarge(r, ReadLoginBot); err != nil {
		return packet.WithContext(err, "bots")
	}
	return
}

// Extend decodes the trailing Login2 record that follows p's fields.
func (p *Login) Extend(r *packet.Reader) (packet.Packet, error) {
	ext := &Login2{Login: *p}
	if err := ext.decodeExtension(r); err != nil {
		return nil, packet.WithContext(err, "Login2")
	}
	return ext, nil
}

func (p *Login) Extension() packet.Packet {
	return &Login2{}
}
