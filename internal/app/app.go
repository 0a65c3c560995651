// Package app hosts the calculator in a terminal.
//
// Application owns the calculator state and serializes every input onto a
// single goroutine: backend events arrive from a poller goroutine and
// configuration reloads from a file watcher, and both are handled in the
// select loop of Run.
package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/renderer/keypad"
)

// Options configures application creation.
type Options struct {
	// Backend is the display backend. Required for Run.
	Backend backend.Backend

	// Config supplies key bindings and theme. Nil means
	// config.Default().
	Config *config.Config

	// ConfigPath is watched for changes when WatchConfig is set.
	ConfigPath string

	// WatchConfig enables live reload of ConfigPath.
	WatchConfig bool

	// ConfigOptions are passed to the reload watcher.
	ConfigOptions config.Options

	// Logger receives application logs. Defaults to NullLogger.
	Logger *Logger

	// Metrics collects usage counters. A fresh tracker is created when nil.
	Metrics *Metrics
}

// Application is the terminal calculator.
type Application struct {
	session string
	backend backend.Backend
	logger  *Logger
	metrics *Metrics

	configPath  string
	watchConfig bool
	configOpts  config.Options

	// Owned by the goroutine running the event loop once Run starts.
	mu     sync.RWMutex
	state  calc.State
	keys   *keymap.Keymap
	theme  keypad.Theme
	layout keypad.Layout

	// lastButtons tracks mouse button state so a press acts once.
	lastButtons backend.MouseButton

	running atomic.Bool
	done    chan struct{}
	once    sync.Once
}

// New creates an application from opts.
func New(opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	session := uuid.New().String()

	app := &Application{
		session:     session,
		backend:     opts.Backend,
		logger:      logger.WithField("session", session),
		metrics:     metrics,
		configPath:  opts.ConfigPath,
		watchConfig: opts.WatchConfig,
		configOpts:  opts.ConfigOptions,
		state:       calc.NewState(),
		done:        make(chan struct{}),
	}

	keys, theme, err := app.build(cfg)
	if err != nil {
		return nil, err
	}
	app.keys = keys
	app.theme = theme

	return app, nil
}

// build turns a configuration into a keymap and theme. Invalid key
// bindings are logged and skipped; an invalid theme is an error.
func (app *Application) build(cfg config.Config) (*keymap.Keymap, keypad.Theme, error) {
	theme, err := cfg.Theme.Keypad()
	if err != nil {
		return nil, keypad.Theme{}, &InitError{Component: "theme", Err: err}
	}

	keys := keymap.Default()
	if err := keys.Apply(cfg.Keys); err != nil {
		app.logger.WithComponent("keymap").Warn("ignoring invalid bindings: %v", err)
	}

	return keys, theme, nil
}

// Press applies one button press to the calculator and returns the new
// state.
func (app *Application) Press(sym calc.Symbol) calc.State {
	app.mu.Lock()
	before := app.state
	after := calc.Reduce(sym, before)
	app.state = after
	app.mu.Unlock()

	app.metrics.RecordPress(sym, after)
	if app.logger.Enabled(LogLevelDebug) {
		app.logger.WithComponent("calc").Debug("%s: %s -> %s", sym, before, after)
	}
	return after
}

// State returns the current calculator state.
func (app *Application) State() calc.State {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.state
}

// Keymap returns the active keymap.
func (app *Application) Keymap() *keymap.Keymap {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.keys
}

// Theme returns the active theme.
func (app *Application) Theme() keypad.Theme {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.theme
}

// Session returns the identifier attached to every log line of this
// application.
func (app *Application) Session() string {
	return app.session
}

// Metrics returns the metrics tracker.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Run starts the event loop and blocks until the user quits, ctx is
// cancelled, Shutdown is called or the backend closes. A user quit
// returns nil.
//
// An Application runs once. After Run returns, or after Shutdown, Run
// returns ErrShutdown.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	select {
	case <-app.done:
		return ErrShutdown
	default:
	}
	defer app.Shutdown()

	log := app.logger.WithComponent("app")

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.backend.HideCursor()

	w, h := app.backend.Size()
	app.resize(w, h)
	app.render()
	log.Info("started at %dx%d", w, h)

	var configs <-chan config.Config
	var configErrs <-chan error
	if app.watchConfig && app.configPath != "" {
		cw, err := config.NewWatcher(app.configPath, app.configOpts)
		if err != nil {
			log.Warn("config watch disabled: %v", err)
		} else {
			defer func() { _ = cw.Close() }()
			configs = cw.Configs()
			configErrs = cw.Errors()
			log.Debug("watching %s", app.configPath)
		}
	}

	events := make(chan backend.Event)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go app.poll(events, stop, &wg)

	err := app.eventLoop(ctx, events, configs, configErrs)

	close(stop)
	app.backend.Shutdown()
	wg.Wait()

	log.Info("stopped: %s", app.metrics.Snapshot())

	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// poll reads backend events until stop is closed or the backend reports
// it has closed.
func (app *Application) poll(events chan<- backend.Event, stop <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		ev := app.backend.PollEvent()
		select {
		case events <- ev:
		case <-stop:
			return
		}
		if ev.Type == backend.EventClosed {
			return
		}
	}
}

// Shutdown asks a running event loop to exit and marks the application
// finished. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.once.Do(func() { close(app.done) })
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}
