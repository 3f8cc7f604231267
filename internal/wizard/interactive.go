package wizard

import (
	"os"

	"golang.org/x/term"

	"github.com/Godevs04/tunesnip/internal/core"
)

// Interactive provides the interactive fallback for commands that need
// a track but were not given one.
type Interactive struct {
	searchFunc SearchFunc
}

// NewInteractive creates an interactive handler backed by the given
// search function.
func NewInteractive(fn SearchFunc) *Interactive {
	return &Interactive{searchFunc: fn}
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CanInteract returns true if interactive mode is available.
func (i *Interactive) CanInteract() bool {
	return i.searchFunc != nil && IsTerminal()
}

// PromptTrack launches the search wizard. Returns the selected track,
// or nil if cancelled.
func (i *Interactive) PromptTrack() (*core.Track, error) {
	if !i.CanInteract() {
		return nil, nil
	}
	return RunSearch(i.searchFunc)
}

// NeedsTrack returns true if a track argument is required but missing.
func NeedsTrack(args []string) bool {
	return len(args) == 0
}
