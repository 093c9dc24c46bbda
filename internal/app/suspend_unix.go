//go:build !windows

package app

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// stopProcess stops only this process; signalling the whole process group
// would also stop the wrapper shell function that launched bf.
var stopProcess = func() error {
	return unix.Kill(unix.Getpid(), unix.SIGTSTP)
}

func (app *Application) suspendToShell() error {
	// Return terminal control to the shell before stopping the process.
	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("suspend terminal: %w", err)
	}
	if err := stopProcess(); err != nil {
		app.logger.Warn("stop process", "err", err)
	}
	// Execution continues here once the shell sends SIGCONT.
	return app.resumeAfterStop()
}

func (app *Application) resumeAfterStop() error {
	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("resume terminal: %w", err)
	}
	app.screen.Sync()
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
	app.logger.Debug("resumed", "width", app.state.ScreenWidth, "height", app.state.ScreenHeight)
	return nil
}
