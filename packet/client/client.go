//go:generate go run ../../codegen/gen_packet_codec.go -registry ClientPacket -- .

// Package client holds the packets a game client sends to the server.
package client

import "github.com/gstoney/airmash/packet"

// Serialize encodes p, which must be one of the packets of this package.
func Serialize(p packet.Packet) ([]byte, error) {
	return Registry.Serialize(p)
}

// Deserialize decodes exactly one client packet from b.
func Deserialize(b []byte) (packet.Packet, error) {
	return Registry.Deserialize(b)
}

// Login is the first packet of a connection.
//
// @gen:r,w,reg
type Login struct {
	Protocol uint8  `field:"U8"`
	Name     string `field:"TextSmall"`
	Session  string `field:"TextSmall"`
	HorizonX uint16 `field:"U16"`
	HorizonY uint16 `field:"U16"`
	Flag     string `field:"TextSmall"`
}

func (p Login) ID() uint8 {
	return 0
}

// Backup attaches a secondary connection to an existing session.
//
// @gen:r,w,reg
type Backup struct {
	Token string `field:"TextSmall"`
}

func (p Backup) ID() uint8 {
	return 1
}

// @gen:r,w,reg
type Horizon struct {
	HorizonX uint16 `field:"U16"`
	HorizonY uint16 `field:"U16"`
}

func (p Horizon) ID() uint8 {
	return 2
}

// @gen:r,w,reg
type Ack struct{}

func (p Ack) ID() uint8 {
	return 5
}

// Pong answers a server Ping with the same num.
//
// @gen:r,w,reg
type Pong struct {
	Num uint32 `field:"U32"`
}

func (p Pong) ID() uint8 {
	return 6
}

// @gen:r,w,reg
type Key struct {
	Seq   uint32         `field:"U32"`
	Key   packet.KeyCode `field:"KeyCode"`
	State bool           `field:"Bool"`
}

func (p Key) ID() uint8 {
	return 10
}

// Command carries a slash command such as "spectate" or "upgrade".
//
// @gen:r,w,reg
type Command struct {
	Com  string `field:"TextSmall"`
	Data string `field:"TextSmall"`
}

func (p Command) ID() uint8 {
	return 11
}

// @gen:r,w,reg
type ScoreDetailed struct{}

func (p ScoreDetailed) ID() uint8 {
	return 12
}

// @gen:r,w,reg
type Chat struct {
	Text string `field:"TextSmall"`
}

func (p Chat) ID() uint8 {
	return 20
}

// @gen:r,w,reg
type Whisper struct {
	PlayerID uint16 `field:"U16" name:"id"`
	Text     string `field:"TextSmall"`
}

func (p Whisper) ID() uint8 {
	return 21
}

// @gen:r,w,reg
type Say struct {
	Text string `field:"TextSmall"`
}

func (p Say) ID() uint8 {
	return 22
}

// @gen:r,w,reg
type TeamChat struct {
	Text string `field:"TextSmall"`
}

func (p TeamChat) ID() uint8 {
	return 23
}

// @gen:r,w,reg
type VoteMute struct {
	PlayerID uint16 `field:"U16" name:"id"`
}

func (p VoteMute) ID() uint8 {
	return 25
}

// @gen:r,w,reg
type LocalPing struct {
	Auth uint32 `field:"U32"`
}

func (p LocalPing) ID() uint8 {
	return 225
}
