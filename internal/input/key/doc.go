// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "7", "+", "*", "Enter", "Escape"
//   - With modifiers: "Ctrl+C", "Alt+Enter", "Ctrl++"
//   - Vim-style: "<C-c>", "<CR>", "<Esc>", "<BS>"
//
// Specifications are used by config files to bind keys to calculator
// buttons.
package key
