// Command snag is an interactive text grabber for terminal scrollback.
//
// The host terminal invokes it with the initial cursor coordinates and a
// window title, pipes the captured styled buffer over stdin, and reads a
// JSON record {"copy": "<text>"} from stdout once the user confirms a
// selection. Keyboard input and UI output go through the controlling tty,
// leaving stdout free for the result.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/snag/internal/config"
	"github.com/xonecas/snag/internal/region"
	"github.com/xonecas/snag/internal/session"
	"github.com/xonecas/snag/internal/tui"
)

func main() {
	confirmed, err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "snag:", err)
		os.Exit(2)
	}
	if !confirmed {
		os.Exit(1)
	}
}

func run() (bool, error) {
	var (
		cursorX    = flag.Int("cursor-x", 0, "starting cursor column, 0-based")
		cursorY    = flag.Int("cursor-y", 0, "starting cursor row, 0-based")
		topLine    = flag.Int("top-line", 1, "scroll offset of the first visible line, 1-based")
		title      = flag.String("title", "", "window title of the grabbed window")
		configPath = flag.String("config", "", "config file (default ~/.config/snag/snag.toml)")
	)
	flag.Parse()
	if *cursorX < 0 || *cursorY < 0 || *topLine < 1 {
		return false, fmt.Errorf("invalid cursor position %d,%d+%d", *cursorX, *cursorY, *topLine)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return false, err
	}
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return false, err
	}
	defer closeLog()

	lines, err := readBuffer(os.Stdin)
	if err != nil {
		return false, err
	}

	// Stdin delivered the buffer; the session's keyboard input comes from
	// the controlling terminal instead.
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false, fmt.Errorf("open tty: %w", err)
	}
	defer tty.Close()

	start := region.Position{X: *cursorX, Y: *cursorY, TopLine: *topLine}
	sess := session.New(lines, start, cfg.WordCharacters())
	model, err := tui.New(sess, cfg, *title)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(model, tea.WithInput(tty), tea.WithOutput(tty))
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	text, ok := final.(tui.Model).Result()
	if !ok {
		return false, nil // cancelled
	}
	if err := json.NewEncoder(os.Stdout).Encode(result{Copy: text}); err != nil {
		return false, err
	}
	return true, nil
}

// result is the record handed back to the host terminal.
type result struct {
	Copy string `json:"copy"`
}

// readBuffer consumes the whole captured buffer from r. Every line,
// including the last, is newline-terminated, so the trailing empty record
// is dropped.
func readBuffer(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read buffer: %w", err)
	}
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty buffer")
	}
	return lines, nil
}

// setupLogging routes the global logger to the configured file, or
// silences it. Logging to the terminal would scribble over the UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return func() { f.Close() }, nil
}
