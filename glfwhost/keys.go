package glfwhost

import (
	"github.com/cellux/keydown"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwKeyCodes translates GLFW key identifiers into the codes used by
// keydown.DefaultKeyCodeMap. Printable ASCII keys that GLFW numbers by their
// character (space, digits, letters) need no entry.
var glfwKeyCodes = map[glfw.Key]int{
	glfw.KeyApostrophe:   222,
	glfw.KeyComma:        188,
	glfw.KeyMinus:        189,
	glfw.KeyPeriod:       190,
	glfw.KeySlash:        191,
	glfw.KeySemicolon:    186,
	glfw.KeyEqual:        187,
	glfw.KeyLeftBracket:  219,
	glfw.KeyBackslash:    220,
	glfw.KeyRightBracket: 221,
	glfw.KeyGraveAccent:  192,
	glfw.KeyEscape:       27,
	glfw.KeyEnter:        13,
	glfw.KeyKPEnter:      13,
	glfw.KeyTab:          9,
	glfw.KeyBackspace:    8,
	glfw.KeyInsert:       45,
	glfw.KeyDelete:       46,
	glfw.KeyRight:        39,
	glfw.KeyLeft:         37,
	glfw.KeyDown:         40,
	glfw.KeyUp:           38,
	glfw.KeyPageUp:       33,
	glfw.KeyPageDown:     34,
	glfw.KeyHome:         36,
	glfw.KeyEnd:          35,
	glfw.KeyCapsLock:     20,
	glfw.KeyPause:        19,
	glfw.KeyLeftShift:    16,
	glfw.KeyRightShift:   16,
	glfw.KeyLeftControl:  17,
	glfw.KeyRightControl: 17,
	glfw.KeyLeftAlt:      18,
	glfw.KeyRightAlt:     18,
}

// CodeForKey returns the keydown key code for a GLFW key.
func CodeForKey(key glfw.Key) (int, bool) {
	switch {
	case key == glfw.KeySpace,
		key >= glfw.Key0 && key <= glfw.Key9,
		key >= glfw.KeyA && key <= glfw.KeyZ:
		return int(key), true
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return 112 + int(key-glfw.KeyF1), true
	}
	code, ok := glfwKeyCodes[key]
	return code, ok
}

func ModifiersFrom(mods glfw.ModifierKey) keydown.Modifier {
	var m keydown.Modifier
	if mods&glfw.ModShift != 0 {
		m |= keydown.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= keydown.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= keydown.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= keydown.ModMeta
	}
	return m
}
