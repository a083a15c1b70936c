package packet

import (
	"errors"
	"io"
	"testing"
)

func TestErrorContext(t *testing.T) {
	err := error(newError(EndOfBuffer))
	for _, field := range []string{"id", "bots", "Login2", "ServerPacket"} {
		err = WithContext(err, field)
	}

	if !errors.Is(err, EndOfBuffer) {
		t.Errorf("expected errors.Is(err, EndOfBuffer)")
	}
	if errors.Is(err, InvalidEnumValue) {
		t.Errorf("kinds should not match each other")
	}

	want := "packet: reached end of buffer (at id → bots → Login2 → ServerPacket)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWithContextPassthrough(t *testing.T) {
	if WithContext(nil, "id") != nil {
		t.Errorf("nil error gained context")
	}
	if err := WithContext(io.EOF, "id"); err != io.EOF {
		t.Errorf("foreign error was changed: %v", err)
	}
}
