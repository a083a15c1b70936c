package airmash

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/gstoney/airmash/packet"
	"github.com/gstoney/airmash/packet/client"
	"github.com/gstoney/airmash/packet/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, url string) *Transport {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tr, err := Dial(ctx, url, TransportConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { tr.Close() })
	return tr
}

func waitErr(t *testing.T, errc <-chan error) error {
	t.Helper()
	select {
	case err := <-errc:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for session handler")
		return nil
	}
}

// TestTransport_Roundtrip sends a client packet and gets a server packet
// back through the same connection.
func TestTransport_Roundtrip(t *testing.T) {
	errc := make(chan error, 1)
	url := startServer(t, &Server{
		SessionHandler: func(_ context.Context, _ *Session, tr *Transport) error {
			p, err := tr.Recv()
			if err != nil {
				errc <- err
				return err
			}
			chat, ok := p.(*client.Chat)
			if !ok {
				errc <- errors.New("unexpected packet " + packet.Name(p))
				return nil
			}
			errc <- tr.Send(&server.ChatPublic{PlayerID: 1, Text: chat.Text})
			return nil
		},
	})

	tr := dial(t, url)
	require.NoError(t, tr.Send(&client.Chat{Text: "hello"}))

	p, err := tr.Recv()
	require.NoError(t, err)
	assert.Equal(t, &server.ChatPublic{PlayerID: 1, Text: "hello"}, p)
	assert.NoError(t, waitErr(t, errc))
}

// TestTransport_MultiplePackets checks that packets keep their order.
func TestTransport_MultiplePackets(t *testing.T) {
	errc := make(chan error, 1)
	url := startServer(t, &Server{
		SessionHandler: func(_ context.Context, _ *Session, tr *Transport) error {
			for i := 0; i < 3; i++ {
				p, err := tr.Recv()
				if err != nil {
					errc <- err
					return err
				}
				if pong, ok := p.(*client.Pong); !ok || pong.Num != uint32(i) {
					errc <- errors.New("out of order")
					return nil
				}
			}
			errc <- nil
			return nil
		},
	})

	tr := dial(t, url)
	for i := 0; i < 3; i++ {
		require.NoError(t, tr.Send(&client.Pong{Num: uint32(i)}))
	}
	assert.NoError(t, waitErr(t, errc))
}

func TestTransport_PacketTooBig(t *testing.T) {
	errc := make(chan error, 1)
	url := startServer(t, &Server{
		Transport: TransportConfig{MaxPacketLen: 16},
		SessionHandler: func(_ context.Context, _ *Session, tr *Transport) error {
			_, err := tr.Recv()
			errc <- err
			return err
		},
	})

	tr := dial(t, url)
	require.NoError(t, tr.Send(&client.Chat{Text: strings.Repeat("x", 100)}))
	assert.ErrorIs(t, waitErr(t, errc), ErrPacketTooBig)
}

func TestTransport_TextMessage(t *testing.T) {
	errc := make(chan error, 1)
	url := startServer(t, &Server{
		SessionHandler: func(_ context.Context, _ *Session, tr *Transport) error {
			_, err := tr.Recv()
			errc <- err
			return err
		},
	})

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))
	assert.ErrorIs(t, waitErr(t, errc), ErrTextMessage)
}

// TestTransport_DecodeError verifies that a malformed message is reported
// with its codec error and the next message is still readable.
func TestTransport_DecodeError(t *testing.T) {
	errc := make(chan error, 2)
	url := startServer(t, &Server{
		SessionHandler: func(_ context.Context, _ *Session, tr *Transport) error {
			_, err := tr.Recv()
			errc <- err

			p, err := tr.Recv()
			if err == nil {
				if _, ok := p.(*client.Ack); !ok {
					err = errors.New("unexpected packet " + packet.Name(p))
				}
			}
			errc <- err
			return err
		},
	})

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// 3 is not a client packet.
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{3}))
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{5}))

	err = waitErr(t, errc)
	assert.ErrorIs(t, err, packet.InvalidEnumValue)
	var perr *packet.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, []string{"ClientPacket"}, perr.Path)

	assert.NoError(t, waitErr(t, errc))
}

func TestTransport_EncodeError(t *testing.T) {
	url := startServer(t, &Server{
		SessionHandler: func(_ context.Context, _ *Session, tr *Transport) error {
			_, err := tr.Recv()
			return err
		},
	})

	tr := dial(t, url)
	err := tr.Send(&client.Chat{Text: strings.Repeat("x", 300)})
	assert.ErrorIs(t, err, packet.ArraySizeTooLarge)

	// A server packet has no place in the client table.
	err = tr.Send(&server.PlayerLeave{PlayerID: 1})
	assert.ErrorIs(t, err, packet.InvalidEnumValue)
}

func TestTransport_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	errc := make(chan error, 1)
	url := startServer(t, &Server{
		Transport: TransportConfig{Metrics: m},
		SessionHandler: func(_ context.Context, _ *Session, tr *Transport) error {
			_, err := tr.Recv()
			if err == nil {
				_, err = tr.Recv()
			}
			errc <- err
			return err
		},
	})

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{6, 1, 0, 0, 0}))
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{6, 1}))

	assert.ErrorIs(t, waitErr(t, errc), packet.EndOfBuffer)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.packets.WithLabelValues("serverbound", "Pong")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.bytes.WithLabelValues("serverbound")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("serverbound", "EndOfBuffer")))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.packet(Serverbound, &client.Ack{}, 1)
		m.codecError(Serverbound, errors.New("x"))
		m.sessionOpened()
		m.sessionClosed()
	})
}
