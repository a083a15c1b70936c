package client

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/gstoney/airmash/packet"
	"github.com/gstoney/airmash/packet/server"
)

var roundtripPackets = []packet.Packet{
	&Login{Protocol: 5, Name: "pilot", Session: "none", HorizonX: 1920, HorizonY: 1080, Flag: "GB"},
	&Backup{Token: "token"},
	&Horizon{HorizonX: 3000, HorizonY: 2000},
	&Ack{},
	&Pong{Num: 42},
	&Key{Seq: 7, Key: packet.KeyCodeFire, State: true},
	&Command{Com: "respawn", Data: "1"},
	&ScoreDetailed{},
	&Chat{Text: "hello"},
	&Whisper{PlayerID: 4, Text: "psst"},
	&Say{Text: "hi"},
	&TeamChat{Text: "defend"},
	&VoteMute{PlayerID: 9},
	&LocalPing{Auth: 0xDEADBEEF},
}

func TestRoundtrip(t *testing.T) {
	for _, p := range roundtripPackets {
		t.Run(packet.Name(p), func(t *testing.T) {
			b, err := Serialize(p)
			if err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			got, err := Deserialize(b)
			if err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}
			if !reflect.DeepEqual(got, p) {
				t.Errorf("roundtrip mismatch\nwant %+v\ngot  %+v", p, got)
			}
		})
	}
}

func TestRoundtripCoversRegistry(t *testing.T) {
	seen := make(map[uint8]bool)
	for _, p := range roundtripPackets {
		seen[p.ID()] = true
	}
	for id := 0; id < 256; id++ {
		if _, ok := Registry.New(uint8(id)); ok && !seen[uint8(id)] {
			t.Errorf("packet %d has no roundtrip case", id)
		}
	}
}

func TestSerializeBytes(t *testing.T) {
	tests := []struct {
		name string
		p    packet.Packet
		want []byte
	}{
		{"Horizon", &Horizon{HorizonX: 0x0102, HorizonY: 0x0304}, []byte{2, 2, 1, 4, 3}},
		{"Ack", &Ack{}, []byte{5}},
		{"Key", &Key{Seq: 1, Key: packet.KeyCodeUp, State: true}, []byte{10, 1, 0, 0, 0, 1, 1}},
		{"Chat", &Chat{Text: "hi"}, []byte{20, 2, 'h', 'i'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Serialize(tt.p)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(b, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, b)
			}
		})
	}
}

func TestChatTooLong(t *testing.T) {
	_, err := Serialize(&Chat{Text: string(make([]byte, 256))})
	if !errors.Is(err, packet.ArraySizeTooLarge) {
		t.Fatalf("expected ArraySizeTooLarge, got %v", err)
	}
	var e *packet.Error
	if !errors.As(err, &e) {
		t.Fatal("expected *packet.Error")
	}
	want := []string{"text", "Chat", "ClientPacket"}
	if !reflect.DeepEqual(e.Path, want) {
		t.Errorf("expected path %q, got %q", want, e.Path)
	}
}

func TestServerOnlyIDRejected(t *testing.T) {
	// 3 is not a client packet.
	_, err := Deserialize([]byte{3})
	if !errors.Is(err, packet.InvalidEnumValue) {
		t.Errorf("expected InvalidEnumValue, got %v", err)
	}
}

func TestServerPacketRejected(t *testing.T) {
	// Server PlayerLeave shares discriminant 11 with Command.
	b, err := Serialize(&server.PlayerLeave{PlayerID: 1})
	if !errors.Is(err, packet.InvalidEnumValue) {
		t.Fatalf("expected InvalidEnumValue, got %v (bytes %v)", err, b)
	}
}

func TestSessionID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	login := Login{Session: "none"}.WithSession(id)
	got, ok := login.SessionID()
	if !ok || got != id {
		t.Errorf("expected %s, got %s (ok=%v)", id, got, ok)
	}

	for _, s := range []string{"none", "", "not-a-uuid"} {
		if _, ok := (Login{Session: s}).SessionID(); ok {
			t.Errorf("session %q should be a guest", s)
		}
	}
}
