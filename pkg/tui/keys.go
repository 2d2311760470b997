package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/crossroads/pkg/models"
)

// keySignal maps a key press to the signal it raises
func keySignal(ev *tcell.EventKey) (models.Signal, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return models.SignalTerminate, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'c', 'C':
			return models.SignalToggleCollisions, true
		case 's', 'S':
			return models.SignalToggleSlowMode, true
		}
	}
	return 0, false
}
