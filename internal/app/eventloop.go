package app

import (
	"context"
	"time"

	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/renderer/keypad"
)

// eventLoop handles events until one of them ends the session.
func (app *Application) eventLoop(ctx context.Context, events <-chan backend.Event, configs <-chan config.Config, configErrs <-chan error) error {
	log := app.logger.WithComponent("eventloop")

	for {
		select {
		case <-ctx.Done():
			log.Debug("context done: %v", ctx.Err())
			return ctx.Err()

		case <-app.done:
			return nil

		case ev := <-events:
			if ev.Type == backend.EventClosed {
				log.Debug("backend closed")
				return nil
			}
			if err := app.handleBackendEvent(ev); err != nil {
				return err
			}

		case cfg, ok := <-configs:
			if !ok {
				configs = nil
				continue
			}
			app.applyConfig(cfg)

		case err, ok := <-configErrs:
			if !ok {
				configErrs = nil
				continue
			}
			log.Warn("config reload failed, keeping current settings: %v", err)
		}
	}
}

// handleBackendEvent processes a single terminal event.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	app.metrics.RecordEvent()

	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)

	case backend.EventMouse:
		app.handleMouse(ev)

	case backend.EventResize:
		app.resize(ev.Width, ev.Height)
		app.render()

	case backend.EventInterrupt:
		app.render()
	}

	return nil
}

// handleKey resolves a key through the keymap.
func (app *Application) handleKey(ev backend.Event) error {
	kev := convertToKeyEvent(ev)

	action, ok := app.Keymap().Lookup(kev)
	if !ok {
		app.metrics.RecordUnbound()
		app.logger.WithComponent("keymap").Debug("unbound key %s", kev)
		return nil
	}

	switch action.Kind {
	case keymap.ActionPress:
		app.Press(action.Symbol)
		app.render()
	case keymap.ActionQuit:
		return ErrQuit
	case keymap.ActionRedraw:
		app.backend.Clear()
		app.render()
	}
	return nil
}

// handleMouse presses the button under the pointer when the left button
// goes down. Held buttons and motion do not repeat the press.
func (app *Application) handleMouse(ev backend.Event) {
	pressed := ev.MouseButton == backend.MouseLeft && app.lastButtons != backend.MouseLeft
	app.lastButtons = ev.MouseButton
	if !pressed {
		return
	}

	app.mu.RLock()
	sym, ok := app.layout.HitTest(ev.MouseX, ev.MouseY)
	app.mu.RUnlock()
	if !ok {
		return
	}

	app.Press(sym)
	app.render()
}

// resize recomputes the layout for a new screen size.
func (app *Application) resize(width, height int) {
	layout := keypad.NewLayout(width, height)

	app.mu.Lock()
	app.layout = layout
	app.mu.Unlock()

	app.logger.WithComponent("layout").Debug("resized to %dx%d, %d buttons", width, height, len(layout.Buttons))
}

// applyConfig swaps in the keymap and theme of a reloaded configuration.
func (app *Application) applyConfig(cfg config.Config) {
	log := app.logger.WithComponent("config")

	keys, theme, err := app.build(cfg)
	if err != nil {
		log.Warn("reload rejected: %v", err)
		return
	}

	app.mu.Lock()
	app.keys = keys
	app.theme = theme
	app.mu.Unlock()

	app.metrics.RecordReload()
	log.Info("reloaded %s (%d bindings)", cfg.Path, keys.Len())
	app.render()
}

// render draws the current state and shows it.
func (app *Application) render() {
	start := time.Now()

	app.mu.RLock()
	layout, state, theme := app.layout, app.state, app.theme
	app.mu.RUnlock()

	keypad.Draw(app.backend, layout, state, theme)
	app.backend.Show()

	app.metrics.RecordRender(time.Since(start))
}

// convertToKeyEvent converts a backend event to a key event for keymap
// lookup.
func convertToKeyEvent(ev backend.Event) key.Event {
	mods := convertModifiers(ev.Mod)

	switch ev.Key {
	case backend.KeyRune:
		return key.NewRuneEvent(ev.Rune, mods)
	case backend.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case backend.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case backend.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case backend.KeyBackspace:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case backend.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case backend.KeyCtrlC:
		return key.NewRuneEvent('c', mods.With(key.ModCtrl))
	case backend.KeyCtrlD:
		return key.NewRuneEvent('d', mods.With(key.ModCtrl))
	case backend.KeyCtrlL:
		return key.NewRuneEvent('l', mods.With(key.ModCtrl))
	case backend.KeyCtrlQ:
		return key.NewRuneEvent('q', mods.With(key.ModCtrl))
	default:
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
}

func convertModifiers(m backend.ModMask) key.Modifier {
	var mods key.Modifier
	if m.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if m.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if m.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if m.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
