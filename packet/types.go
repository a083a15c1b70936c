package packet

// ServerKeyState is the key and status bitfield carried in player updates.
type ServerKeyState struct {
	Up        bool
	Down      bool
	Left      bool
	Right     bool
	Boost     bool
	Strafe    bool
	Stealth   bool
	FlagSpeed bool
}

func (k ServerKeyState) bits() uint8 {
	var b uint8
	for i, set := range [...]bool{k.Up, k.Down, k.Left, k.Right, k.Boost, k.Strafe, k.Stealth, k.FlagSpeed} {
		if set {
			b |= 1 << i
		}
	}
	return b
}

func WriteServerKeyState(w *Writer, v ServerKeyState) error {
	return WriteU8(w, v.bits())
}

func ReadServerKeyState(r *Reader) (v ServerKeyState, err error) {
	b, err := ReadU8(r)
	if err != nil {
		return
	}
	v = ServerKeyState{
		Up:        b&(1<<0) != 0,
		Down:      b&(1<<1) != 0,
		Left:      b&(1<<2) != 0,
		Right:     b&(1<<3) != 0,
		Boost:     b&(1<<4) != 0,
		Strafe:    b&(1<<5) != 0,
		Stealth:   b&(1<<6) != 0,
		FlagSpeed: b&(1<<7) != 0,
	}
	return
}

// Upgrades packs the speed upgrade level (0-7) with the active powerups.
type Upgrades struct {
	Speed   uint8
	Shield  bool
	Inferno bool
}

func WriteUpgrades(w *Writer, v Upgrades) error {
	b := v.Speed & 0x07
	if v.Shield {
		b |= 1 << 3
	}
	if v.Inferno {
		b |= 1 << 4
	}
	return WriteU8(w, b)
}

func ReadUpgrades(r *Reader) (v Upgrades, err error) {
	b, err := ReadU8(r)
	if err != nil {
		return
	}
	v = Upgrades{
		Speed:   b & 0x07,
		Shield:  b&(1<<3) != 0,
		Inferno: b&(1<<4) != 0,
	}
	return
}

// FlagCode identifies the country flag a player displays.
type FlagCode uint16

// FlagCodeUnitedNations is shown when a client sends no usable flag.
const FlagCodeUnitedNations FlagCode = 10

func WriteFlagCode(w *Writer, v FlagCode) error {
	return WriteU16(w, uint16(v))
}

func ReadFlagCode(r *Reader) (v FlagCode, err error) {
	u, err := ReadU16(r)
	return FlagCode(u), err
}
