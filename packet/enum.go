package packet

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

type enumInt interface {
	~uint8 | ~uint16 | ~uint32
}

type enumVariant[T enumInt] struct {
	value T
	name  string
}

// enumSpec describes one declared enum. Values without a declared variant
// are kept as their raw integer (Unknown) unless a catchall variant is set,
// in which case they collapse into it.
type enumSpec[T enumInt] struct {
	name     string
	bits     int
	variants []enumVariant[T]
	catchall *T

	byValue map[T]string
	byText  map[string]T
}

func newEnum[T enumInt](name string, bits int, variants ...enumVariant[T]) *enumSpec[T] {
	s := &enumSpec[T]{
		name:     name,
		bits:     bits,
		variants: variants,
		byValue:  make(map[T]string, len(variants)),
		byText:   make(map[string]T, 3*len(variants)),
	}
	for _, v := range variants {
		s.byValue[v.value] = v.name
		words := splitWords(v.name)
		s.byText[strings.ToLower(v.name)] = v.value
		s.byText[strings.ToLower(strings.Join(words, "-"))] = v.value
		s.byText[strings.ToLower(strings.Join(words, "_"))] = v.value
	}
	return s
}

func (s *enumSpec[T]) withCatchall(v T) *enumSpec[T] {
	s.catchall = &v
	return s
}

func (s *enumSpec[T]) known(v T) bool {
	_, ok := s.byValue[v]
	return ok
}

func (s *enumSpec[T]) fromRaw(raw T) T {
	if s.catchall != nil && !s.known(raw) {
		return *s.catchall
	}
	return raw
}

func (s *enumSpec[T]) format(v T) string {
	if name, ok := s.byValue[v]; ok {
		return name
	}
	return "Unknown(" + strconv.FormatUint(uint64(v), 10) + ")"
}

func (s *enumSpec[T]) write(w *Writer, v T) error {
	switch s.bits {
	case 8:
		return WriteU8(w, uint8(v))
	case 16:
		return WriteU16(w, uint16(v))
	}
	return WriteU32(w, uint32(v))
}

func (s *enumSpec[T]) read(r *Reader) (v T, err error) {
	var raw uint64
	switch s.bits {
	case 8:
		var b uint8
		b, err = ReadU8(r)
		raw = uint64(b)
	case 16:
		var u uint16
		u, err = ReadU16(r)
		raw = uint64(u)
	default:
		var u uint32
		u, err = ReadU32(r)
		raw = uint64(u)
	}
	if err != nil {
		return
	}
	return s.fromRaw(T(raw)), nil
}

// marshalText renders known variants by name and anything else as its number.
func (s *enumSpec[T]) marshalText(v T) ([]byte, error) {
	if name, ok := s.byValue[v]; ok {
		return []byte(name), nil
	}
	return strconv.AppendUint(nil, uint64(v), 10), nil
}

// parse accepts a variant name in any case, its kebab-case or snake_case
// spelling, or a decimal number that fits the enum's width.
func (s *enumSpec[T]) parse(text string) (T, error) {
	if v, ok := s.byText[strings.ToLower(text)]; ok {
		return v, nil
	}
	n, err := strconv.ParseUint(text, 10, s.bits)
	if err != nil {
		return 0, WithContext(newError(InvalidEnumValue), s.name)
	}
	return s.fromRaw(T(n)), nil
}

func (s *enumSpec[T]) unmarshalJSON(b []byte) (T, error) {
	var text string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &text); err != nil {
			return 0, err
		}
	} else {
		text = string(b)
	}
	return s.parse(text)
}

// splitWords breaks a CamelCase name into words, keeping runs of capitals
// together: "NoRespawnInBTR" gives No, Respawn, In, BTR.
func splitWords(name string) []string {
	rs := []rune(name)
	var words []string
	start := 0
	for i := 1; i < len(rs); i++ {
		if !unicode.IsUpper(rs[i]) {
			continue
		}
		prevLower := !unicode.IsUpper(rs[i-1])
		nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
		if prevLower || nextLower {
			words = append(words, string(rs[start:i]))
			start = i
		}
	}
	return append(words, string(rs[start:]))
}
