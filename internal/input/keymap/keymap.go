package keymap

import (
	"errors"
	"sort"
	"sync"

	"golang.org/x/text/width"

	"github.com/dshills/keycalc/internal/input/key"
)

// Keymap maps key events to actions.
//
// Keymap is safe for concurrent use; the config watcher may rebuild
// bindings while the event loop performs lookups.
type Keymap struct {
	mu       sync.RWMutex
	bindings map[key.Event]entry
}

type entry struct {
	spec     string
	action   Action
	category string
}

// New returns an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[key.Event]entry)}
}

// Bind installs a binding, replacing any existing binding for the same
// key. Binding an action of "none" removes the key.
func (k *Keymap) Bind(spec, action string) error {
	return k.bind(Binding{Keys: spec, Action: action, Category: "User"})
}

func (k *Keymap) bind(b Binding) error {
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return &BindingError{Keys: b.Keys, Action: b.Action, Err: err}
	}
	act, err := ParseAction(b.Action)
	if err != nil {
		return &BindingError{Keys: b.Keys, Action: b.Action, Err: err}
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if act.Kind == ActionNone {
		delete(k.bindings, ev)
		return nil
	}
	k.bindings[ev] = entry{spec: b.Keys, action: act, category: b.Category}
	return nil
}

// Apply installs every binding in keys (spec -> action). All valid
// bindings are installed; errors for the invalid ones are joined.
func (k *Keymap) Apply(keys map[string]string) error {
	specs := make([]string, 0, len(keys))
	for spec := range keys {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	var errs []error
	for _, spec := range specs {
		if err := k.Bind(spec, keys[spec]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the action bound to ev.
func (k *Keymap) Lookup(ev key.Event) (Action, bool) {
	ev = fold(ev.Normalize())

	k.mu.RLock()
	defer k.mu.RUnlock()

	e, ok := k.bindings[ev]
	return e.action, ok
}

// fold maps full-width and other wide character forms to their narrow
// equivalents.
func fold(ev key.Event) key.Event {
	if ev.Key != key.KeyRune {
		return ev
	}
	if narrow := width.LookupRune(ev.Rune).Narrow(); narrow != 0 {
		ev.Rune = narrow
	}
	return ev
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.bindings)
}

// Bindings returns all bindings sorted by category then key.
func (k *Keymap) Bindings() []Binding {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := make([]Binding, 0, len(k.bindings))
	for ev, e := range k.bindings {
		out = append(out, Binding{Keys: ev.String(), Action: e.action.String(), Category: e.category})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Keys < out[j].Keys
	})
	return out
}

// Clone returns an independent copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	k.mu.RLock()
	defer k.mu.RUnlock()

	c := New()
	for ev, e := range k.bindings {
		c.bindings[ev] = e
	}
	return c
}
