package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/dshills/keycalc/internal/calc"
)

// BatchOptions control RunBatch.
type BatchOptions struct {
	// JSON prints each result as a JSON object instead of the bare
	// visible value.
	JSON bool

	// Start is the state the first line continues from. The zero value
	// is a fresh calculator.
	Start calc.State

	// Logger receives per-line debug output. Defaults to NullLogger.
	Logger *Logger

	// Metrics records every press when set.
	Metrics *Metrics
}

// RunBatch reads tapes from r, one per line, and writes the state after
// each non-blank line to w. Each line continues from the state left by
// the previous one. An unknown symbol stops processing with an error
// naming the line.
func RunBatch(r io.Reader, w io.Writer, opts BatchOptions) (calc.State, error) {
	log := opts.Logger
	if log == nil {
		log = NullLogger
	}
	log = log.WithComponent("batch")

	state := opts.Start
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tape, err := calc.ParseTape(line)
		if err != nil {
			return state, NewComponentError("batch", fmt.Sprintf("line %d", lineNo), err)
		}

		for _, sym := range tape {
			state = calc.Reduce(sym, state)
			if opts.Metrics != nil {
				opts.Metrics.RecordPress(sym, state)
			}
		}
		log.Debug("line %d: %s -> %s", lineNo, tape, state)

		if err := WriteState(w, state, opts.JSON); err != nil {
			return state, err
		}
	}

	if err := scanner.Err(); err != nil {
		return state, NewComponentError("batch", "read", err)
	}
	return state, nil
}

// WriteState writes s as one line: the visible value, or a JSON object
// when asJSON is set.
func WriteState(w io.Writer, s calc.State, asJSON bool) error {
	out := s.Visible()
	if asJSON {
		var err error
		out, err = StateJSON(s)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// StateJSON encodes s as a JSON object with the fields display, entry,
// operator, visible and error. Absent entry and operator are null.
func StateJSON(s calc.State) (string, error) {
	json := "{}"
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		json, err = sjson.Set(json, path, value)
	}

	set("display", s.Display())
	if entry, ok := s.Entry(); ok {
		set("entry", entry)
	} else {
		set("entry", nil)
	}
	if op, ok := s.Operator(); ok {
		set("operator", op.String())
	} else {
		set("operator", nil)
	}
	set("visible", s.Visible())
	set("error", s.IsError())

	if err != nil {
		return "", NewComponentError("json", "encode state", err)
	}
	return json, nil
}
