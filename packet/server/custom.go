package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gstoney/airmash/packet"
)

// CTFData is the ServerCustom payload announcing the end of a CTF match.
type CTFData struct {
	Winner   uint16
	Bounty   uint32
	Duration time.Duration
}

type ctfJSON struct {
	W uint16 `json:"w"`
	B uint32 `json:"b"`
	T uint64 `json:"t"`
}

// Duration is only carried at one second resolution.
func (d CTFData) MarshalJSON() ([]byte, error) {
	return json.Marshal(ctfJSON{W: d.Winner, B: d.Bounty, T: uint64(d.Duration / time.Second)})
}

func (d *CTFData) UnmarshalJSON(b []byte) error {
	var v ctfJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = CTFData{Winner: v.W, Bounty: v.B, Duration: time.Duration(v.T) * time.Second}
	return nil
}

// BTRData is the ServerCustom payload announcing the winner of a BTR match.
type BTRData struct {
	Player   string
	Bounty   uint32
	Flag     packet.FlagCode
	Kills    uint32
	Duration time.Duration
}

type btrJSON struct {
	P string `json:"p"`
	B uint32 `json:"b"`
	F uint16 `json:"f"`
	K uint32 `json:"k"`
	T uint64 `json:"t"`
}

func (d BTRData) MarshalJSON() ([]byte, error) {
	return json.Marshal(btrJSON{
		P: d.Player,
		B: d.Bounty,
		F: uint16(d.Flag),
		K: d.Kills,
		T: uint64(d.Duration / time.Second),
	})
}

func (d *BTRData) UnmarshalJSON(b []byte) error {
	var v btrJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = BTRData{
		Player:   v.P,
		Bounty:   v.B,
		Flag:     packet.FlagCode(v.F),
		Kills:    v.K,
		Duration: time.Duration(v.T) * time.Second,
	}
	return nil
}

// NewServerCustom builds the ServerCustom packet carrying data, which must
// be a CTFData or a BTRData.
func NewServerCustom(data any) (*ServerCustom, error) {
	var ty packet.ServerCustomType
	switch data.(type) {
	case CTFData, *CTFData:
		ty = packet.ServerCustomTypeCTFWin
	case BTRData, *BTRData:
		ty = packet.ServerCustomTypeBTRWin
	default:
		return nil, fmt.Errorf("unsupported custom data %T", data)
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &ServerCustom{Type: ty, Data: string(b)}, nil
}

// DecodeData parses Data according to Type. It returns a CTFData or a
// BTRData.
func (p ServerCustom) DecodeData() (any, error) {
	switch p.Type {
	case packet.ServerCustomTypeCTFWin:
		var d CTFData
		if err := json.Unmarshal([]byte(p.Data), &d); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", p.Type, err)
		}
		return d, nil
	case packet.ServerCustomTypeBTRWin:
		var d BTRData
		if err := json.Unmarshal([]byte(p.Data), &d); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", p.Type, err)
		}
		return d, nil
	}
	return nil, fmt.Errorf("no data format for %s", p.Type)
}
