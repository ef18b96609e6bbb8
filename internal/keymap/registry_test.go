package keymap

import "testing"

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

func TestLookup(t *testing.T) {
	r := newDefaultRegistry()

	tests := []struct {
		key     string
		context string
		want    string
		found   bool
	}{
		{"ctrl+g", ContextEditor, "generate-pdf", true},
		{"d", ContextList, "delete-note", true},
		{"d", ContextEditor, "", false},
		{"q", ContextList, "quit", true},
		{"q", ContextEditor, "", false},
		{"enter", ContextButton, "press", true},
		{"enter", ContextColor, "submit", true},
		{"right", ContextSize, "size-next", true},
		{"tab", ContextSize, "focus-next", true},
	}

	for _, tt := range tests {
		got, ok := r.Lookup(tt.key, tt.context)
		if ok != tt.found || got != tt.want {
			t.Errorf("Lookup(%q, %q) = (%q, %v), want (%q, %v)", tt.key, tt.context, got, ok, tt.want, tt.found)
		}
	}
}

func TestSetUserOverride(t *testing.T) {
	r := newDefaultRegistry()
	r.SetUserOverride("ctrl+p", "generate-pdf")
	r.SetUserOverride("x", "delete-note")

	if got, ok := r.Lookup("ctrl+p", ContextEditor); !ok || got != "generate-pdf" {
		t.Errorf("global override not applied: %q %v", got, ok)
	}
	if got, ok := r.Lookup("x", ContextList); !ok || got != "delete-note" {
		t.Errorf("list override not applied: %q %v", got, ok)
	}
	// delete-note is unknown to the editor, so x stays a plain keystroke.
	if _, ok := r.Lookup("x", ContextEditor); ok {
		t.Error("override leaked into a context without the command")
	}

	keys := r.KeysFor("delete-note", ContextList)
	if len(keys) != 3 || keys[2] != "x" {
		t.Errorf("KeysFor = %v, want defaults then override", keys)
	}
}

func TestRegisterBinding_ReplacesSameKey(t *testing.T) {
	r := NewRegistry()
	r.RegisterBinding(Binding{Key: "a", Command: "one", Context: "c"})
	r.RegisterBinding(Binding{Key: "a", Command: "two", Context: "c"})

	if got := r.BindingsForContext("c"); len(got) != 1 || got[0].Command != "two" {
		t.Errorf("bindings = %+v", got)
	}
}

func TestHelpBinding(t *testing.T) {
	r := newDefaultRegistry()

	b := r.HelpBinding("press", ContextButton, "press")
	if b.Help().Key != "enter/space" {
		t.Errorf("help key = %q", b.Help().Key)
	}

	// Falls back to global bindings.
	b = r.HelpBinding("generate-pdf", ContextList, "pdf")
	if b.Help().Key != "ctrl+g" || !b.Enabled() {
		t.Errorf("help = %+v enabled=%v", b.Help(), b.Enabled())
	}

	if r.HelpBinding("nope", ContextList, "x").Enabled() {
		t.Error("unknown command should be disabled")
	}
}
