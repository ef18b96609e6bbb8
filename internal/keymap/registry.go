package keymap

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding maps a key to a command within a context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves key presses to command IDs.
type Registry struct {
	bindings  map[string][]Binding // context -> bindings, registration order
	overrides map[string]string    // key -> command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:  make(map[string][]Binding),
		overrides: make(map[string]string),
	}
}

// RegisterBinding adds a binding. A later binding for the same key and
// context replaces the earlier one.
func (r *Registry) RegisterBinding(b Binding) {
	list := r.bindings[b.Context]
	for i, existing := range list {
		if existing.Key == b.Key {
			list[i] = b
			return
		}
	}
	r.bindings[b.Context] = append(list, b)
}

// SetUserOverride binds key to command in every context that knows the
// command. Overrides win over defaults.
func (r *Registry) SetUserOverride(key, command string) {
	r.overrides[key] = command
}

// Lookup returns the command bound to key in context, falling back to the
// global context.
func (r *Registry) Lookup(key, context string) (string, bool) {
	if cmd, ok := r.overrides[key]; ok {
		if r.hasCommand(context, cmd) || r.hasCommand(ContextGlobal, cmd) {
			return cmd, true
		}
	}
	for _, ctx := range []string{context, ContextGlobal} {
		for _, b := range r.bindings[ctx] {
			if b.Key == key {
				return b.Command, true
			}
		}
	}
	return "", false
}

func (r *Registry) hasCommand(context, command string) bool {
	for _, b := range r.bindings[context] {
		if b.Command == command {
			return true
		}
	}
	return false
}

// BindingsForContext returns the bindings for context, including user
// overrides that apply to it.
func (r *Registry) BindingsForContext(context string) []Binding {
	out := make([]Binding, 0, len(r.bindings[context]))
	out = append(out, r.bindings[context]...)
	keys := make([]string, 0, len(r.overrides))
	for k := range r.overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if cmd := r.overrides[k]; r.hasCommand(context, cmd) {
			out = append(out, Binding{Key: k, Command: cmd, Context: context})
		}
	}
	return out
}

// KeysFor returns every key that triggers command in context, defaults
// first.
func (r *Registry) KeysFor(command, context string) []string {
	var keys []string
	for _, b := range r.BindingsForContext(context) {
		if b.Command == command {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// HelpBinding builds a bubbles key.Binding for footer hints. The binding is
// disabled when no key triggers command in context.
func (r *Registry) HelpBinding(command, context, desc string) key.Binding {
	keys := r.KeysFor(command, context)
	if len(keys) == 0 && context != ContextGlobal {
		keys = r.KeysFor(command, ContextGlobal)
	}
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	label := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		label[i] = k
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(label, "/"), desc),
	)
}
