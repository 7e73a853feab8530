package session

import (
	"fmt"
	"strings"
)

// Action is the verb of a command.
type Action string

const (
	ActionQuit    Action = "quit"
	ActionConfirm Action = "confirm"
	ActionScroll  Action = "scroll"
	ActionMove    Action = "move"
	ActionSelect  Action = "select"
	ActionSetMode Action = "set_mode"
)

// Command is one parsed user action, as resolved from a key binding.
type Command struct {
	Action Action
	// Shape names the selection shape for ActionSelect ("stream" or
	// "columnar").
	Shape string
	// Arg is the motion name for move/select, the direction for scroll,
	// or the mode name for set_mode.
	Arg string
}

// motionNames is the closed set of cursor motions. Multi-word motions keep
// their spaces, matching the binding syntax ("move word left").
var motionNames = map[string]struct{}{
	"left": {}, "right": {}, "up": {}, "down": {},
	"page up": {}, "page down": {},
	"first": {}, "first nonwhite": {}, "last nonwhite": {}, "last": {},
	"top": {}, "bottom": {},
	"word left": {}, "word right": {},
	"noop": {},
}

// Parse turns a binding's action string, e.g. "select columnar word left",
// into a Command. Unknown actions, shapes, motions, directions and modes
// are configuration errors.
func Parse(s string) (Command, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty action")
	}
	verb, rest := fields[0], fields[1:]

	switch Action(verb) {
	case ActionQuit, ActionConfirm:
		if len(rest) != 0 {
			return Command{}, fmt.Errorf("%s takes no arguments: %q", verb, s)
		}
		return Command{Action: Action(verb)}, nil

	case ActionScroll:
		dir := strings.Join(rest, " ")
		if dir != "up" && dir != "down" {
			return Command{}, fmt.Errorf("scroll direction must be up or down: %q", s)
		}
		return Command{Action: ActionScroll, Arg: dir}, nil

	case ActionSetMode:
		mode := strings.Join(rest, " ")
		switch Mode(mode) {
		case ModeNormal, ModeVisual, ModeBlock:
			return Command{Action: ActionSetMode, Arg: mode}, nil
		}
		return Command{}, fmt.Errorf("unknown mode: %q", s)

	case ActionMove:
		motion := strings.Join(rest, " ")
		if _, ok := motionNames[motion]; !ok {
			return Command{}, fmt.Errorf("unknown motion: %q", s)
		}
		return Command{Action: ActionMove, Arg: motion}, nil

	case ActionSelect:
		if len(rest) < 2 {
			return Command{}, fmt.Errorf("select needs a shape and a motion: %q", s)
		}
		shape := rest[0]
		if shape != "stream" && shape != "columnar" {
			return Command{}, fmt.Errorf("unknown selection shape: %q", s)
		}
		motion := strings.Join(rest[1:], " ")
		if _, ok := motionNames[motion]; !ok {
			return Command{}, fmt.Errorf("unknown motion: %q", s)
		}
		return Command{Action: ActionSelect, Shape: shape, Arg: motion}, nil
	}
	return Command{}, fmt.Errorf("unknown action: %q", s)
}
