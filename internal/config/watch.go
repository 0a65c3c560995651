package config

import (
	"sync"

	"github.com/dshills/keycalc/internal/config/watcher"
)

// Watcher reloads the configuration whenever its file changes.
type Watcher struct {
	fw   *watcher.Watcher
	path string
	opts Options

	configs chan Config
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewWatcher watches path and reloads it with opts on every change.
func NewWatcher(path string, opts Options, wopts ...watcher.Option) (*Watcher, error) {
	fw, err := watcher.New(path, wopts...)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		path:    path,
		opts:    opts,
		configs: make(chan Config, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Configs delivers each successfully reloaded configuration.
func (w *Watcher) Configs() <-chan Config {
	return w.configs
}

// Errors delivers reload and watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case _, ok := <-w.fw.Events():
			if !ok {
				return
			}
			cfg, err := LoadWith(w.path, w.opts)
			if err != nil {
				w.sendError(err)
				continue
			}
			select {
			case w.configs <- cfg:
			case <-w.done:
				return
			}

		case err, ok := <-w.fw.Errors():
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	case <-w.done:
	}
}
