package config

// defaultBindings is the stock keymap: plain keys move, shift extends a
// stream selection, alt extends a columnar selection, and v / ctrl+v /
// ctrl+[ switch vim-style modes.
func defaultBindings() map[string]string {
	return map[string]string{
		"q":     "quit",
		"esc":   "quit",
		"enter": "confirm",

		"left":       "move left",
		"right":      "move right",
		"up":         "move up",
		"down":       "move down",
		"pgup":       "move page up",
		"pgdown":     "move page down",
		"home":       "move first",
		"a":          "move first nonwhite",
		"end":        "move last nonwhite",
		"e":          "move last",
		"ctrl+home":  "move top",
		"ctrl+end":   "move bottom",
		"ctrl+left":  "move word left",
		"ctrl+right": "move word right",

		"ctrl+up":   "scroll up",
		"ctrl+down": "scroll down",

		"shift+left":       "select stream left",
		"shift+right":      "select stream right",
		"shift+up":         "select stream up",
		"shift+down":       "select stream down",
		"shift+pgup":       "select stream page up",
		"shift+pgdown":     "select stream page down",
		"shift+home":       "select stream first",
		"A":                "select stream first nonwhite",
		"shift+a":          "select stream first nonwhite",
		"shift+end":        "select stream last nonwhite",
		"E":                "select stream last",
		"shift+e":          "select stream last",
		"ctrl+shift+home":  "select stream top",
		"ctrl+shift+end":   "select stream bottom",
		"ctrl+shift+left":  "select stream word left",
		"ctrl+shift+right": "select stream word right",

		"alt+left":       "select columnar left",
		"alt+right":      "select columnar right",
		"alt+up":         "select columnar up",
		"alt+down":       "select columnar down",
		"alt+pgup":       "select columnar page up",
		"alt+pgdown":     "select columnar page down",
		"alt+home":       "select columnar first",
		"alt+a":          "select columnar first nonwhite",
		"alt+end":        "select columnar last nonwhite",
		"alt+e":          "select columnar last",
		"ctrl+alt+home":  "select columnar top",
		"ctrl+alt+end":   "select columnar bottom",
		"ctrl+alt+left":  "select columnar word left",
		"ctrl+alt+right": "select columnar word right",

		"v":      "set_mode visual",
		"ctrl+v": "set_mode block",
		"ctrl+[": "set_mode normal",
	}
}
