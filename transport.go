package airmash

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/gstoney/airmash/packet"
	"github.com/rs/zerolog"
)

var (
	ErrPacketTooBig = errors.New("packet too big")
	ErrTextMessage  = errors.New("unexpected text message")
)

// DefaultMaxPacketLen is used when TransportConfig.MaxPacketLen is zero.
const DefaultMaxPacketLen = 1 << 20

type TransportConfig struct {
	MaxPacketLen int

	// Logger receives connection events and, at debug level, every packet.
	Logger zerolog.Logger
	// Metrics and Capture are optional.
	Metrics *Metrics
	Capture *CaptureWriter
}

// Transport exchanges packets over a websocket connection, one binary
// message per packet. Packets are serialized with the table of the
// direction they travel in.
//
// Recv must not be called concurrently. Send may be called from any
// goroutine.
type Transport struct {
	conn    *websocket.Conn
	recvDir Direction
	cfg     TransportConfig
	log     zerolog.Logger

	wmu sync.Mutex
}

// NewServerTransport wraps the server side of conn: it receives client
// packets and sends server packets.
func NewServerTransport(conn *websocket.Conn, cfg TransportConfig) *Transport {
	return newTransport(conn, Serverbound, cfg)
}

// NewClientTransport wraps the client side of conn.
func NewClientTransport(conn *websocket.Conn, cfg TransportConfig) *Transport {
	return newTransport(conn, Clientbound, cfg)
}

func newTransport(conn *websocket.Conn, recvDir Direction, cfg TransportConfig) *Transport {
	if cfg.MaxPacketLen <= 0 {
		cfg.MaxPacketLen = DefaultMaxPacketLen
	}
	conn.SetReadLimit(int64(cfg.MaxPacketLen))

	return &Transport{
		conn:    conn,
		recvDir: recvDir,
		cfg:     cfg,
		log:     cfg.Logger.With().Stringer("remote", conn.RemoteAddr()).Logger(),
	}
}

// Dial connects to the websocket endpoint at url and returns a client-side
// Transport.
func Dial(ctx context.Context, url string, cfg TransportConfig) (*Transport, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (status %s)", url, err, resp.Status)
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	t := NewClientTransport(conn, cfg)
	t.log.Info().Str("url", url).Msg("connected")
	return t, nil
}

func (t *Transport) RemoteAddr() net.Addr {
	return t.conn.RemoteAddr()
}

func (t *Transport) Send(p packet.Packet) error {
	dir := t.recvDir.Opposite()

	b, err := dir.Registry().Serialize(p)
	if err != nil {
		t.cfg.Metrics.codecError(dir, err)
		return fmt.Errorf("encode %s: %w", packet.Name(p), err)
	}

	t.wmu.Lock()
	err = t.conn.WriteMessage(websocket.BinaryMessage, b)
	t.wmu.Unlock()
	if err != nil {
		return err
	}

	t.record(dir, p, b)
	return nil
}

// Recv reads the next packet. Messages that fail to decode are consumed
// and reported as errors wrapping the *packet.Error; the connection stays
// usable.
func (t *Transport) Recv() (packet.Packet, error) {
	mt, b, err := t.conn.ReadMessage()
	if err != nil {
		if errors.Is(err, websocket.ErrReadLimit) {
			return nil, ErrPacketTooBig
		}
		return nil, err
	}
	if mt != websocket.BinaryMessage {
		return nil, ErrTextMessage
	}

	dir := t.recvDir
	p, err := dir.Registry().Deserialize(b)
	if err != nil {
		t.cfg.Metrics.codecError(dir, err)
		t.capture(dir, b)
		t.log.Warn().Err(err).Int("bytes", len(b)).Msg("decode failed")
		return nil, fmt.Errorf("decode: %w", err)
	}

	t.record(dir, p, b)
	return p, nil
}

func (t *Transport) record(dir Direction, p packet.Packet, b []byte) {
	t.cfg.Metrics.packet(dir, p, len(b))
	t.capture(dir, b)
	t.log.Debug().
		Stringer("dir", dir).
		Str("packet", packet.Name(p)).
		Uint8("id", p.ID()).
		Int("bytes", len(b)).
		Msg("packet")
}

func (t *Transport) capture(dir Direction, b []byte) {
	if t.cfg.Capture == nil {
		return
	}
	if err := t.cfg.Capture.WriteFrame(dir, b); err != nil {
		t.log.Error().Err(err).Msg("capture write failed")
	}
}

// Close sends a normal close frame and closes the connection.
func (t *Transport) Close() error {
	t.wmu.Lock()
	_ = t.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	t.wmu.Unlock()
	return t.conn.Close()
}
