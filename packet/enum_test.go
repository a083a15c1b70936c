package packet

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

func TestEnumUnknownFallback(t *testing.T) {
	r := NewReader([]byte{255})
	v, err := ReadDespawnType(&r)
	if err != nil {
		t.Fatalf("ReadDespawnType failed: %v", err)
	}
	if v.Known() {
		t.Errorf("255 should not be a known DespawnType")
	}
	if v.String() != "Unknown(255)" {
		t.Errorf("expected Unknown(255), got %s", v)
	}

	w := NewWriter(0)
	if err := WriteDespawnType(w, v); err != nil {
		t.Fatal(err)
	}
	if w.Bytes()[0] != 255 {
		t.Errorf("Unknown(255) encoded as %d", w.Bytes()[0])
	}
}

func TestEnumUnknownRoundtripsEveryValue(t *testing.T) {
	for raw := 0; raw <= 255; raw++ {
		r := NewReader([]byte{byte(raw)})
		v, err := ReadPlaneType(&r)
		if err != nil {
			t.Fatalf("%d: %v", raw, err)
		}
		w := NewWriter(1)
		if err := WritePlaneType(w, v); err != nil {
			t.Fatal(err)
		}
		if w.Bytes()[0] != byte(raw) {
			t.Fatalf("%d re-encoded as %d", raw, w.Bytes()[0])
		}
	}
}

func TestEnumCatchall(t *testing.T) {
	testCases := []struct {
		desc string
		raw  byte
		want string
	}{
		{"Firewall removed", 0, "Removed"},
		{"Firewall present", 1, "Present"},
		{"Firewall unmapped", 200, "Present"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewReader([]byte{tC.raw})
			v, err := ReadFirewallStatus(&r)
			if err != nil {
				t.Fatal(err)
			}
			if v.String() != tC.want {
				t.Errorf("expected %s, got %s", tC.want, v)
			}
		})
	}

	r := NewReader([]byte{7})
	if v, _ := ReadCommandReplyType(&r); v != CommandReplyTypeShowInPopup {
		t.Errorf("expected ShowInPopup, got %s", v)
	}
}

func TestEnumParse(t *testing.T) {
	testCases := []struct {
		desc      string
		text      string
		want      MobType
		expectErr error
	}{
		{desc: "Declared name", text: "PredatorMissile", want: MobTypePredatorMissile},
		{desc: "Lower case", text: "predatormissile", want: MobTypePredatorMissile},
		{desc: "Kebab case", text: "predator-missile", want: MobTypePredatorMissile},
		{desc: "Snake case", text: "predator_missile", want: MobTypePredatorMissile},
		{desc: "Screaming snake case", text: "TORNADO_TRIPLE_MISSILE", want: MobTypeTornadoTripleMissile},
		{desc: "Number", text: "2", want: MobTypeGoliathMissile},
		{desc: "Unknown number", text: "200", want: MobType(200)},
		{desc: "Too wide", text: "256", expectErr: InvalidEnumValue},
		{desc: "Negative", text: "-1", expectErr: InvalidEnumValue},
		{desc: "Unknown name", text: "banana", expectErr: InvalidEnumValue},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var v MobType
			err := v.UnmarshalText([]byte(tC.text))
			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Fatalf("expected %v, got %v", tC.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if v != tC.want {
				t.Errorf("expected %s, got %s", tC.want, v)
			}
		})
	}
}

func TestEnumParseAcronyms(t *testing.T) {
	for _, text := range []string{"BTRWin", "btr-win", "BTR_WIN", "btrwin"} {
		var v ServerCustomType
		if err := v.UnmarshalText([]byte(text)); err != nil || v != ServerCustomTypeBTRWin {
			t.Errorf("%q parsed as %s, %v", text, v, err)
		}
	}

	var e ErrorType
	if err := e.UnmarshalText([]byte("no-respawn-in-btr")); err != nil || e != ErrorTypeNoRespawnInBTR {
		t.Errorf("no-respawn-in-btr parsed as %s, %v", e, err)
	}
}

func TestEnumParseCatchall(t *testing.T) {
	var v FirewallStatus
	if err := v.UnmarshalText([]byte("9")); err != nil || v != FirewallStatusPresent {
		t.Errorf("9 parsed as %s, %v", v, err)
	}
}

func TestEnumJSON(t *testing.T) {
	type player struct {
		Plane PlaneType `json:"plane"`
	}

	b, err := json.Marshal(player{Plane: PlaneTypeMohawk})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"plane":"Mohawk"}` {
		t.Errorf("unexpected JSON %s", b)
	}

	b, err = json.Marshal(player{Plane: PlaneType(42)})
	if err != nil {
		t.Fatal(err)
	}
	var back player
	if err := json.Unmarshal(b, &back); err != nil || back.Plane != PlaneType(42) {
		t.Errorf("%s decoded as %s, %v", b, back.Plane, err)
	}

	for _, in := range []string{`{"plane":4}`, `{"plane":"tornado"}`} {
		var p player
		if err := json.Unmarshal([]byte(in), &p); err != nil || p.Plane != PlaneTypeTornado {
			t.Errorf("%s decoded as %s, %v", in, p.Plane, err)
		}
	}
}

func TestSplitWords(t *testing.T) {
	testCases := map[string][]string{
		"FFA":                  {"FFA"},
		"Predator":             {"Predator"},
		"BTRWin":               {"BTR", "Win"},
		"NoRespawnInBTR":       {"No", "Respawn", "In", "BTR"},
		"TornadoSingleMissile": {"Tornado", "Single", "Missile"},
	}
	for in, want := range testCases {
		if got := splitWords(in); !slices.Equal(got, want) {
			t.Errorf("splitWords(%q) = %q, want %q", in, got, want)
		}
	}
}
