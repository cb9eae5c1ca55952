// Package script replays drag gestures described in a TOML file against a
// board, without a terminal or a mouse.
//
// A script is a list of steps:
//
//	board = "drag-between"
//
//	[[steps]]
//	action = "start"
//	item = "ben"          # item id or label
//
//	[[steps]]
//	action = "move"
//	to = "right:1"        # zone and cell index
//
//	[[steps]]
//	action = "move"
//	at = [410.0, 35.0]    # raw pointer position
//
//	[[steps]]
//	action = "end"
//
// [Runner.Run] lays the board out, feeds each step to a dnd.Context, commits
// every drop with board.Apply, and records a trace of the drag state after
// each step.
package script

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dropgrid/pkg/board"
	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/geom"
	"github.com/matzehuels/dropgrid/pkg/layout"
)

// Step actions.
const (
	ActionStart  = "start"
	ActionMove   = "move"
	ActionEnd    = "end"
	ActionCancel = "cancel"
)

var actions = []string{ActionStart, ActionMove, ActionEnd, ActionCancel}

// Step is one scripted lifecycle event.
type Step struct {
	Action string    `toml:"action"`
	Item   string    `toml:"item,omitempty"` // start: item id or label
	To     string    `toml:"to,omitempty"`   // start, move: "zone:index"
	At     []float64 `toml:"at,omitempty"`   // start, move: [x, y]
}

// Script is a named sequence of steps.
type Script struct {
	Board string `toml:"board,omitempty"` // Board name, informational
	Steps []Step `toml:"steps"`
}

// Decode reads and validates a TOML script.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown script key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadFile loads a script from path.
func ReadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "script %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "open script %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks each step's action and arguments. Board references are
// resolved later by the runner.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "script has no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "step %d", i+1)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Action {
	case ActionStart:
		if st.Item == "" {
			return errors.New(errors.ErrCodeInvalidInput, "start needs an item")
		}
		if st.To != "" || st.At != nil {
			return st.validatePointer()
		}
	case ActionMove:
		if st.To == "" && st.At == nil {
			return errors.New(errors.ErrCodeInvalidInput, "move needs \"to\" or \"at\"")
		}
		return st.validatePointer()
	case ActionEnd, ActionCancel:
	default:
		if s := board.Suggest(st.Action, actions); s != "" {
			return errors.New(errors.ErrCodeInvalidInput, "unknown action %q (did you mean %q?)", st.Action, s)
		}
		return errors.New(errors.ErrCodeInvalidInput, "unknown action %q", st.Action)
	}
	return nil
}

func (st Step) validatePointer() error {
	if st.To != "" && st.At != nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s takes \"to\" or \"at\", not both", st.Action)
	}
	if st.At != nil && len(st.At) != 2 {
		return errors.New(errors.ErrCodeInvalidInput, "\"at\" needs exactly two numbers, got %d", len(st.At))
	}
	if st.To != "" {
		if _, _, err := ParseCellRef(st.To); err != nil {
			return err
		}
	}
	return nil
}

// ParseCellRef splits "zone:index".
func ParseCellRef(ref string) (zone string, index int, err error) {
	zone, idx, ok := strings.Cut(ref, ":")
	if !ok || zone == "" {
		return "", 0, errors.New(errors.ErrCodeInvalidInput, "cell reference %q must look like zone:index", ref)
	}
	index, err = strconv.Atoi(idx)
	if err != nil || index < 0 {
		return "", 0, errors.New(errors.ErrCodeInvalidInput, "cell reference %q has a bad index", ref)
	}
	return zone, index, nil
}

// pointer resolves the step's target position in l, or reports false when
// the step has none.
func (st Step) pointer(b *board.Board, l *layout.Layout) (geom.Point, bool, error) {
	if st.At != nil {
		return geom.Pt(st.At[0], st.At[1]), true, nil
	}
	if st.To == "" {
		return geom.Point{}, false, nil
	}
	zone, index, err := ParseCellRef(st.To)
	if err != nil {
		return geom.Point{}, false, err
	}
	z, err := b.LookupZone(zone)
	if err != nil {
		return geom.Point{}, false, err
	}
	p, _ := l.CellCenter(z.ID, index)
	return p, true, nil
}
