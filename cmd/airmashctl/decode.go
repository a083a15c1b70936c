package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gstoney/airmash"
	"github.com/gstoney/airmash/packet"
	"github.com/spf13/cobra"
)

// packetView is the JSON form of a decoded packet.
type packetView struct {
	Dir    string        `json:"dir,omitempty"`
	Packet string        `json:"packet"`
	ID     uint8         `json:"id"`
	Fields packet.Packet `json:"fields"`
}

func newPacketView(p packet.Packet) packetView {
	return packetView{Packet: packet.Name(p), ID: p.ID(), Fields: p}
}

func parseSide(side string) (airmash.Direction, error) {
	switch strings.ToLower(side) {
	case "client", "serverbound":
		return airmash.Serverbound, nil
	case "server", "clientbound":
		return airmash.Clientbound, nil
	}
	return 0, fmt.Errorf("unknown side %q, want client or server", side)
}

// parseHex accepts hex with optional whitespace, colons or a 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.NewReplacer(" ", "", ":", "", "\n", "", "\t", "").Replace(s)
	return hex.DecodeString(s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newDecodeCmd(a *app) *cobra.Command {
	var side string

	cmd := &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode one packet given as hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := parseSide(side)
			if err != nil {
				return err
			}
			b, err := parseHex(strings.Join(args, ""))
			if err != nil {
				return fmt.Errorf("parse hex: %w", err)
			}

			p, err := dir.Registry().Deserialize(b)
			if err != nil {
				return err
			}
			a.log.Debug().Int("bytes", len(b)).Str("packet", packet.Name(p)).Msg("decoded")
			return writeJSON(cmd.OutOrStdout(), newPacketView(p))
		},
	}
	cmd.Flags().StringVarP(&side, "side", "s", "server", "sender of the packet: client or server")
	return cmd
}
