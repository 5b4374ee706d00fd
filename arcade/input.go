package arcade

import "strings"

// Key is a logical input key. Frontends map physical keys onto these.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = [...]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeySet is the set of keys held during a tick.
type KeySet uint8

// NewKeySet builds a set from keys; unknown keys are ignored.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns s plus k.
func (s KeySet) With(k Key) KeySet {
	if k > KeyRight {
		return s
	}
	return s | 1<<k
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

func (s KeySet) String() string {
	var names []string
	for k := KeyUp; k <= KeyRight; k++ {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// InputState is the frame-wide singleton holding this tick's keys.
type InputState struct {
	Keys KeySet
}
