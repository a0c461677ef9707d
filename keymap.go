package keydown

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrDuplicateKeyCode = errors.New("duplicate key code")
	ErrNegativeKeyCode  = errors.New("negative key code")
	ErrEmptyKeyName     = errors.New("empty key name")
)

// TableError reports a bad entry in a key code table.
type TableError struct {
	Name string
	Code int
	Err  error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("key table entry %q=%d: %s", e.Name, e.Code, e.Err)
}

func (e *TableError) Unwrap() error { return e.Err }

var defaultKeyCodes = map[string]int{
	"BACKSPACE":    8,
	"TAB":          9,
	"ENTER":        13,
	"SHIFT":        16,
	"CTRL":         17,
	"ALT":          18,
	"PAUSE":        19,
	"CAPSLOCK":     20,
	"ESC":          27,
	"SPACE":        32,
	"PAGEUP":       33,
	"PAGEDOWN":     34,
	"END":          35,
	"HOME":         36,
	"LEFT":         37,
	"UP":           38,
	"RIGHT":        39,
	"DOWN":         40,
	"INSERT":       45,
	"DELETE":       46,
	"ZERO":         48,
	"ONE":          49,
	"TWO":          50,
	"THREE":        51,
	"FOUR":         52,
	"FIVE":         53,
	"SIX":          54,
	"SEVEN":        55,
	"EIGHT":        56,
	"NINE":         57,
	"A":            65,
	"B":            66,
	"C":            67,
	"D":            68,
	"E":            69,
	"F":            70,
	"G":            71,
	"H":            72,
	"I":            73,
	"J":            74,
	"K":            75,
	"L":            76,
	"M":            77,
	"N":            78,
	"O":            79,
	"P":            80,
	"Q":            81,
	"R":            82,
	"S":            83,
	"T":            84,
	"U":            85,
	"V":            86,
	"W":            87,
	"X":            88,
	"Y":            89,
	"Z":            90,
	"F1":           112,
	"F2":           113,
	"F3":           114,
	"F4":           115,
	"F5":           116,
	"F6":           117,
	"F7":           118,
	"F8":           119,
	"F9":           120,
	"F10":          121,
	"F11":          122,
	"F12":          123,
	"SEMICOLON":    186,
	"EQUALS":       187,
	"COMMA":        188,
	"MINUS":        189,
	"PERIOD":       190,
	"SLASH":        191,
	"TILDE":        192,
	"LEFTBRACKET":  219,
	"BACKSLASH":    220,
	"RIGHTBRACKET": 221,
	"QUOTE":        222,
}

// DefaultKeyCodes returns a copy of the built-in name to key code table.
// Codes follow the numbering browsers use for KeyboardEvent.keyCode.
func DefaultKeyCodes() map[string]int {
	return maps.Clone(defaultKeyCodes)
}

// KeyCodeMap is an immutable two-way table between symbolic key names and
// key codes.
type KeyCodeMap struct {
	codes map[string]int
	names map[int]string
}

// NewKeyCodeMap validates table and builds the forward and inverse lookups.
// No two names may share a code.
func NewKeyCodeMap(table map[string]int) (*KeyCodeMap, error) {
	km := &KeyCodeMap{
		codes: make(map[string]int, len(table)),
		names: make(map[int]string, len(table)),
	}
	// sorted so that the reported duplicate does not depend on map order
	for _, name := range slices.Sorted(maps.Keys(table)) {
		code := table[name]
		switch {
		case name == "":
			return nil, &TableError{Name: name, Code: code, Err: ErrEmptyKeyName}
		case code < 0:
			return nil, &TableError{Name: name, Code: code, Err: ErrNegativeKeyCode}
		}
		if other, ok := km.names[code]; ok {
			return nil, &TableError{
				Name: name,
				Code: code,
				Err:  fmt.Errorf("%w (already used by %q)", ErrDuplicateKeyCode, other),
			}
		}
		km.codes[name] = code
		km.names[code] = name
	}
	return km, nil
}

// MustKeyCodeMap is like NewKeyCodeMap but panics on a bad table.
func MustKeyCodeMap(table map[string]int) *KeyCodeMap {
	km, err := NewKeyCodeMap(table)
	if err != nil {
		panic(err)
	}
	return km
}

func DefaultKeyCodeMap() *KeyCodeMap {
	return MustKeyCodeMap(defaultKeyCodes)
}

func (km *KeyCodeMap) NameForCode(code int) (string, bool) {
	name, ok := km.names[code]
	return name, ok
}

func (km *KeyCodeMap) CodeForName(name string) (int, bool) {
	code, ok := km.codes[name]
	return code, ok
}

// Names returns all symbolic names in sorted order.
func (km *KeyCodeMap) Names() []string {
	return slices.Sorted(maps.Keys(km.codes))
}

func (km *KeyCodeMap) Len() int {
	return len(km.codes)
}
