package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gstoney/airmash"
	"github.com/gstoney/airmash/packet"
	"github.com/gstoney/airmash/packet/client"
	"github.com/gstoney/airmash/packet/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const protocolVersion = 5

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Accept game clients, log their packets and answer logins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srv := &airmash.Server{
				WSPath:      a.cfg.WSPath,
				MetricsPath: a.cfg.MetricsPath,
				Gatherer:    reg,
				CaptureDir:  a.cfg.CaptureDir,
				Transport: airmash.TransportConfig{
					MaxPacketLen: a.cfg.MaxPacketLen,
					Metrics:      airmash.NewMetrics(reg),
				},
				SessionHandler: newInspector(a.cfg.Room, a.log).handle,
				Logger:         a.log,
			}
			return srv.ListenAndServe(ctx, a.cfg.Addr)
		},
	}
}

// inspector plays just enough of a game server for a client to log in.
// Everything the client sends is logged.
type inspector struct {
	room    string
	log     zerolog.Logger
	started time.Time
	lastID  atomic.Uint32
}

func newInspector(room string, log zerolog.Logger) *inspector {
	return &inspector{room: room, log: log, started: time.Now()}
}

type player struct {
	id   uint16
	name string
}

func (in *inspector) clock() uint32 {
	return uint32(time.Since(in.started).Milliseconds())
}

func (in *inspector) handle(ctx context.Context, s *airmash.Session, t *airmash.Transport) error {
	log := in.log.With().Stringer("session", s.ID).Logger()
	var pl player

	// Shutdown leaves hijacked connections open; unblock Recv ourselves.
	stop := context.AfterFunc(ctx, func() { t.Close() })
	defer stop()

	for ctx.Err() == nil {
		p, err := t.Recv()
		if err != nil {
			var perr *packet.Error
			if errors.As(err, &perr) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		log.Info().Str("packet", packet.Name(p)).Interface("fields", p).Msg("recv")

		replies, done := in.reply(&pl, p)
		for _, r := range replies {
			if err := t.Send(r); err != nil {
				return err
			}
		}
		if done {
			return nil
		}
	}
	return ctx.Err()
}

// reply returns the packets that answer p. done reports that the session
// should end.
func (in *inspector) reply(pl *player, p packet.Packet) (replies []packet.Packet, done bool) {
	if pl.id == 0 {
		login, ok := p.(*client.Login)
		if !ok {
			return nil, false
		}
		if login.Protocol != protocolVersion {
			return []packet.Packet{&server.Error{Error: packet.ErrorTypeIncorrectProtocolLevel}}, true
		}
		return in.login(pl, login), false
	}

	switch p := p.(type) {
	case *client.Login:
		return []packet.Packet{&server.Error{Error: packet.ErrorTypeAccountAlreadyLoggedIn}}, false
	case *client.Backup:
		return []packet.Packet{&server.Backup{}}, false
	case *client.Chat:
		return []packet.Packet{&server.ChatPublic{PlayerID: pl.id, Text: p.Text}}, false
	case *client.Say:
		return []packet.Packet{&server.ChatSay{PlayerID: pl.id, Text: p.Text}}, false
	case *client.TeamChat:
		return []packet.Packet{&server.ChatTeam{PlayerID: pl.id, Text: p.Text}}, false
	case *client.Whisper:
		return []packet.Packet{&server.ChatWhisper{From: pl.id, To: p.PlayerID, Text: p.Text}}, false
	case *client.ScoreDetailed:
		return []packet.Packet{&server.ScoreDetailedFFA{
			Scores: []server.ScoreDetailedFFAEntry{{ID: pl.id}},
		}}, false
	case *client.Command:
		return []packet.Packet{&server.Error{Error: packet.ErrorTypeUnknownCommand}}, false
	}
	return nil, false
}

func (in *inspector) login(pl *player, login *client.Login) []packet.Packet {
	// Ids only need to be unique while the inspector runs.
	pl.id = uint16((in.lastID.Add(1)-1)%0xFFFF) + 1
	pl.name = login.Name

	ev := in.log.Info().Uint16("id", pl.id).Str("name", pl.name)
	if id, ok := login.SessionID(); ok {
		ev = ev.Stringer("account", id)
	} else {
		ev = ev.Bool("guest", true)
	}
	ev.Msg("login")

	return []packet.Packet{
		&server.Login{
			Success:  true,
			PlayerID: pl.id,
			Team:     pl.id,
			Clock:    in.clock(),
			Type:     packet.GameTypeFFA,
			Room:     in.room,
			Players: []server.LoginPlayer{{
				ID:   pl.id,
				Name: pl.name,
				Type: packet.PlaneTypePredator,
				Team: pl.id,
				Flag: packet.FlagCodeUnitedNations,
			}},
		},
		&server.ScoreUpdate{PlayerID: pl.id},
	}
}
