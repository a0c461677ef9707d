package keydown

// Router turns physical key events into held set changes and key handler
// calls. Events for codes missing from the code map are dropped.
type Router struct {
	reg *Registry
}

func NewRouter(reg *Registry) *Router {
	return &Router{reg: reg}
}

// KeyPressed handles a physical key press or an OS key repeat.
//
// The press handler fires only when the code was not already held, except
// when the previous press of the same key carried Ctrl, Shift or Meta: with
// those modifiers down the release of the key is often never reported, so
// every press counts as new (repeated Ctrl+Z must undo repeatedly).
func (r *Router) KeyPressed(code int, mods Modifier) {
	key, ok := r.reg.KeyForCode(code)
	if !ok {
		logger.Debug("dropping press of unmapped key", "code", code)
		return
	}
	isNew := r.reg.held.Insert(code)
	if prev := key.lastPress; prev != nil && prev.Mods.repeatsPress() {
		isNew = true
	}
	if !isNew {
		return
	}
	key.InvokePress(&Event{Kind: EventPress, Code: code, Mods: mods})
}

// KeyReleased handles a physical key release. Releases of keys that are not
// held are ignored.
func (r *Router) KeyReleased(code int) {
	removed, ok := r.reg.held.Remove(code)
	if !ok {
		return
	}
	if key, ok := r.reg.KeyForCode(removed); ok {
		key.InvokeUp(&Event{Kind: EventRelease, Code: removed})
	}
}

// FocusLost releases every held key. A window that loses focus may never
// see the key releases, which would leave keys stuck down.
func (r *Router) FocusLost() {
	held := r.reg.held
	held.ForEach(func(code int) {
		if key, ok := r.reg.KeyForCode(code); ok {
			key.InvokeUp(&Event{Kind: EventFocusLost, Code: code})
		}
	})
	held.Clear()
}
