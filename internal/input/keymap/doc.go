// Package keymap provides key binding management for keycalc.
//
// A Keymap maps normalized key events to actions. An action either presses
// a calculator button or controls the host:
//
//	"press:7"  - press the 7 button
//	"×"        - shorthand for press:×
//	"quit"     - exit the application
//	"redraw"   - repaint the screen
//
// # Key Specifications
//
// Bindings are written with the key package's specification syntax:
//
//	"7", "*", "Enter", "Escape", "Ctrl+C", "<C-l>"
//
// # Lookup
//
// Lookup normalizes the event first. Full-width characters produced by
// East Asian input methods are folded to their ASCII forms, so "５" finds
// the binding for "5".
//
// # Usage
//
//	km := keymap.Default()
//	if err := km.Apply(cfg.Keys); err != nil {
//	    // report invalid bindings
//	}
//	if act, ok := km.Lookup(ev); ok && act.Kind == keymap.ActionPress {
//	    state = calc.Reduce(act.Symbol, state)
//	}
package keymap
