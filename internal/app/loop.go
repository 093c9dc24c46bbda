package app

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/bf/internal/fs"
	statepkg "github.com/kk-code-lab/bf/internal/state"
	"github.com/kk-code-lab/bf/internal/ui/input"
)

// ErrTerminalClosed is returned by Run when the screen stops delivering
// events before the user finished.
var ErrTerminalClosed = errors.New("terminal closed")

// Run draws the listing and processes events until the user confirms or
// aborts. A returned error means navigation could not continue.
func (app *Application) Run() error {
	defer func() {
		if r := recover(); r != nil {
			// Leave the terminal usable for the panic report.
			_ = app.Close()
			panic(r)
		}
	}()

	app.renderer.Render(app.state)

	for !app.state.Finished() {
		ev := app.screen.PollEvent()
		if ev == nil {
			return ErrTerminalClosed
		}
		if err := app.handleEvent(ev); err != nil {
			app.logger.Error("navigation failed", "path", app.state.CurrentPath, "err", err)
			return err
		}
	}
	return nil
}

func (app *Application) handleEvent(ev tcell.Event) error {
	action := input.Translate(ev, app.state.Mode)
	if action == nil {
		return nil
	}

	if _, ok := action.(statepkg.SuspendAction); ok {
		if err := app.suspendToShell(); err != nil {
			return err
		}
		app.renderer.Render(app.state)
		return nil
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		if !errors.Is(err, fsutil.ErrAccessDenied) {
			return fmt.Errorf("navigation failed: %w", err)
		}
		app.logger.Debug("access denied", "err", err)
		_ = app.screen.Beep()
	}

	if _, ok := action.(statepkg.ResizeAction); ok {
		app.screen.Sync()
	}
	if !app.state.Finished() {
		app.renderer.Render(app.state)
	}
	return nil
}
