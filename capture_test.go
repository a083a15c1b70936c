package airmash

import (
	"bytes"
	"io"
	"testing"

	"github.com/gstoney/airmash/packet/client"
	"github.com/gstoney/airmash/packet/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarInt(t *testing.T) {
	tests := []struct {
		v   int32
		ser []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
		{25565, []byte{0xdd, 0xc7, 0x01}},
		{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, writeVarInt(&buf, tt.v))
		assert.Equal(t, tt.ser, buf.Bytes())

		v, err := readVarInt(bytes.NewReader(tt.ser))
		require.NoError(t, err)
		assert.Equal(t, tt.v, v)
	}

	_, err := readVarInt(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x01}))
	assert.ErrorIs(t, err, ErrVarIntTooLong)

	_, err = readVarInt(bytes.NewReader([]byte{0x80}))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestCapture_Roundtrip(t *testing.T) {
	var buf bytes.Buffer
	cw := NewCaptureWriter(&buf)

	login, err := client.Serialize(&client.Login{Protocol: 5, Name: "pilot", Session: "none", Flag: "GB"})
	require.NoError(t, err)
	leave, err := server.Serialize(&server.PlayerLeave{PlayerID: 3})
	require.NoError(t, err)

	require.NoError(t, cw.WriteFrame(Serverbound, login))
	require.NoError(t, cw.WriteFrame(Clientbound, leave))
	require.NoError(t, cw.Close())

	// [len][dir][bytes]
	assert.Equal(t, []byte{4, 1, 11, 3, 0}, buf.Bytes()[len(buf.Bytes())-5:])

	cr := NewCaptureReader(&buf, 0)

	f, err := cr.Next()
	require.NoError(t, err)
	assert.Equal(t, Serverbound, f.Dir)
	p, err := f.Decode()
	require.NoError(t, err)
	assert.Equal(t, &client.Login{Protocol: 5, Name: "pilot", Session: "none", Flag: "GB"}, p)

	f, err = cr.Next()
	require.NoError(t, err)
	assert.Equal(t, Clientbound, f.Dir)
	p, err = f.Decode()
	require.NoError(t, err)
	assert.Equal(t, &server.PlayerLeave{PlayerID: 3}, p)

	_, err = cr.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestCapture_Errors(t *testing.T) {
	tests := []struct {
		desc   string
		data   []byte
		maxLen int32
		err    error
	}{
		{"zero length", []byte{0}, 0, ErrInvalidFrameLength},
		{"truncated", []byte{5, 0, 1}, 0, io.ErrUnexpectedEOF},
		{"bad direction", []byte{2, 9, 5}, 0, ErrInvalidDirection},
		{"too big", []byte{4, 0, 1, 2, 3}, 2, ErrPacketTooBig},
		// 0x7fffffff with no explicit limit must not be allocated.
		{"corrupt length", []byte{0xff, 0xff, 0xff, 0xff, 0x07, 0}, 0, ErrPacketTooBig},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := NewCaptureReader(bytes.NewReader(tt.data), tt.maxLen).Next()
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Clientbound, Serverbound.Opposite())
	assert.Equal(t, Serverbound, Clientbound.Opposite())
	assert.Equal(t, "ClientPacket", Serverbound.Registry().Name())
	assert.Equal(t, "ServerPacket", Clientbound.Registry().Name())
	assert.Equal(t, "invalid", Direction(7).String())
}
