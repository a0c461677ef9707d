package keydown

// Registry owns one Key per name in a KeyCodeMap together with the set of
// held key codes those keys report against.
type Registry struct {
	codes *KeyCodeMap
	keys  map[string]*Key
	held  *HeldSet
}

func NewRegistry(codes *KeyCodeMap) *Registry {
	reg := &Registry{
		codes: codes,
		keys:  make(map[string]*Key, codes.Len()),
		held:  &HeldSet{},
	}
	for _, name := range codes.Names() {
		code, _ := codes.CodeForName(name)
		reg.keys[name] = newKey(name, code, reg.held)
	}
	return reg
}

// Key returns the key registered under name, or nil.
func (reg *Registry) Key(name string) *Key {
	return reg.keys[name]
}

// KeyForCode resolves a key code through the code map.
func (reg *Registry) KeyForCode(code int) (*Key, bool) {
	name, ok := reg.codes.NameForCode(code)
	if !ok {
		return nil, false
	}
	key, ok := reg.keys[name]
	return key, ok
}

func (reg *Registry) Codes() *KeyCodeMap { return reg.codes }
func (reg *Registry) Held() *HeldSet     { return reg.held }

func (reg *Registry) Names() []string {
	return reg.codes.Names()
}
