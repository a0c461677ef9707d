package keydown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyCodeMapRoundTrip(t *testing.T) {
	km := DefaultKeyCodeMap()
	require.Equal(t, len(defaultKeyCodes), km.Len())
	for _, name := range km.Names() {
		code, ok := km.CodeForName(name)
		require.True(t, ok, name)
		back, ok := km.NameForCode(code)
		require.True(t, ok, name)
		assert.Equal(t, name, back)
	}
}

func TestDefaultKeyCodes(t *testing.T) {
	km := DefaultKeyCodeMap()
	for name, want := range map[string]int{
		"SPACE": 32, "LEFT": 37, "UP": 38, "RIGHT": 39, "DOWN": 40,
		"A": 65, "Z": 90, "ZERO": 48, "NINE": 57, "ENTER": 13,
		"SHIFT": 16, "ESC": 27, "TAB": 9, "BACKSPACE": 8, "DELETE": 46,
		"TILDE": 192,
	} {
		code, ok := km.CodeForName(name)
		require.True(t, ok, name)
		assert.Equal(t, want, code, name)
	}
}

func TestKeyCodeMapNotFound(t *testing.T) {
	km := DefaultKeyCodeMap()
	_, ok := km.NameForCode(1000)
	assert.False(t, ok)
	_, ok = km.CodeForName("HYPER")
	assert.False(t, ok)
}

func TestDefaultKeyCodesIsCopy(t *testing.T) {
	table := DefaultKeyCodes()
	table["SPACE"] = 1
	code, _ := DefaultKeyCodeMap().CodeForName("SPACE")
	assert.Equal(t, 32, code)
}

func TestNewKeyCodeMapErrors(t *testing.T) {
	_, err := NewKeyCodeMap(map[string]int{"A": 65, "B": 65})
	require.ErrorIs(t, err, ErrDuplicateKeyCode)
	var te *TableError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "B", te.Name)
	assert.Equal(t, 65, te.Code)

	_, err = NewKeyCodeMap(map[string]int{"A": -1})
	assert.ErrorIs(t, err, ErrNegativeKeyCode)

	_, err = NewKeyCodeMap(map[string]int{"": 3})
	assert.ErrorIs(t, err, ErrEmptyKeyName)
}

func TestMustKeyCodeMapPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustKeyCodeMap(map[string]int{"X": 1, "Y": 1})
	})
	assert.NotPanics(t, func() {
		MustKeyCodeMap(map[string]int{"X": 1, "Y": 2})
	})
}
