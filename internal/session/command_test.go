package session

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"quit", Command{Action: ActionQuit}},
		{"confirm", Command{Action: ActionConfirm}},
		{"scroll up", Command{Action: ActionScroll, Arg: "up"}},
		{"scroll down", Command{Action: ActionScroll, Arg: "down"}},
		{"set_mode visual", Command{Action: ActionSetMode, Arg: "visual"}},
		{"set_mode block", Command{Action: ActionSetMode, Arg: "block"}},
		{"set_mode normal", Command{Action: ActionSetMode, Arg: "normal"}},
		{"move left", Command{Action: ActionMove, Arg: "left"}},
		{"move page down", Command{Action: ActionMove, Arg: "page down"}},
		{"move first nonwhite", Command{Action: ActionMove, Arg: "first nonwhite"}},
		{"select stream right", Command{Action: ActionSelect, Shape: "stream", Arg: "right"}},
		{"select columnar word left", Command{Action: ActionSelect, Shape: "columnar", Arg: "word left"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"  ",
		"jump left",
		"quit now",
		"confirm twice",
		"scroll sideways",
		"scroll",
		"set_mode insert",
		"move diagonally",
		"move",
		"select",
		"select stream",
		"select circular left",
		"select stream diagonally",
	}
	for _, in := range bad {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}
