package keymap

// DefaultBindings returns the built-in bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Digits
		{Keys: "0", Action: "press:0", Category: "Digits"},
		{Keys: "1", Action: "press:1", Category: "Digits"},
		{Keys: "2", Action: "press:2", Category: "Digits"},
		{Keys: "3", Action: "press:3", Category: "Digits"},
		{Keys: "4", Action: "press:4", Category: "Digits"},
		{Keys: "5", Action: "press:5", Category: "Digits"},
		{Keys: "6", Action: "press:6", Category: "Digits"},
		{Keys: "7", Action: "press:7", Category: "Digits"},
		{Keys: "8", Action: "press:8", Category: "Digits"},
		{Keys: "9", Action: "press:9", Category: "Digits"},
		{Keys: ".", Action: "press:.", Category: "Digits"},
		{Keys: ",", Action: "press:.", Category: "Digits"},

		// Operators
		{Keys: "+", Action: "press:+", Category: "Operators"},
		{Keys: "-", Action: "press:-", Category: "Operators"},
		{Keys: "*", Action: "press:×", Category: "Operators"},
		{Keys: "x", Action: "press:×", Category: "Operators"},
		{Keys: "X", Action: "press:×", Category: "Operators"},
		{Keys: "×", Action: "press:×", Category: "Operators"},
		{Keys: "/", Action: "press:÷", Category: "Operators"},
		{Keys: "÷", Action: "press:÷", Category: "Operators"},
		{Keys: "=", Action: "press:=", Category: "Operators"},
		{Keys: "Enter", Action: "press:=", Category: "Operators"},
		{Keys: "(", Action: "press:(", Category: "Operators"},
		{Keys: ")", Action: "press:)", Category: "Operators"},

		// Clear
		{Keys: "C", Action: "press:C", Category: "Clear"},
		{Keys: "c", Action: "press:C", Category: "Clear"},
		{Keys: "Escape", Action: "press:C", Category: "Clear"},
		{Keys: "Delete", Action: "press:C", Category: "Clear"},

		// Application
		{Keys: "q", Action: "quit", Category: "Application"},
		{Keys: "Ctrl+C", Action: "quit", Category: "Application"},
		{Keys: "Ctrl+D", Action: "quit", Category: "Application"},
		{Keys: "Ctrl+Q", Action: "quit", Category: "Application"},
		{Keys: "Ctrl+L", Action: "redraw", Category: "Application"},
	}
}

// Default returns a keymap holding DefaultBindings.
func Default() *Keymap {
	k := New()
	for _, b := range DefaultBindings() {
		if err := k.bind(b); err != nil {
			panic("keymap: invalid default binding: " + err.Error())
		}
	}
	return k
}
