package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/bf/internal/fs"
	statepkg "github.com/kk-code-lab/bf/internal/state"
	renderui "github.com/kk-code-lab/bf/internal/ui/render"
)

// Options configures a navigator session.
type Options struct {
	StartDir   string        // defaults to the working directory
	Lister     fsutil.Lister // defaults to the real filesystem
	HideHidden bool
	Logger     *slog.Logger
}

// Application represents the running app.
type Application struct {
	screen    tcell.Screen
	state     *statepkg.BrowseState
	reducer   *statepkg.StateReducer
	renderer  *renderui.Renderer
	logger    *slog.Logger
	closeOnce sync.Once
}

// New takes over the terminal and lists the start directory. The caller
// must Close the application on every path once New succeeds.
func New(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialize terminal: %w", err)
	}

	app, err := newApplication(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	lister := opts.Lister
	if lister == nil {
		lister = fsutil.OSLister{}
	}

	start, err := startDirectory(opts.StartDir)
	if err != nil {
		return nil, err
	}

	reducer := statepkg.NewStateReducer(lister,
		statepkg.WithHideHidden(opts.HideHidden),
		statepkg.WithLogger(logger),
	)

	state := &statepkg.BrowseState{}
	state.ScreenWidth, state.ScreenHeight = screen.Size()
	if err := reducer.LoadDirectory(state, start); err != nil {
		return nil, fmt.Errorf("list start directory: %w", err)
	}
	logger.Info("navigator started", "path", start, "entries", len(state.Entries))

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen),
		logger:   logger,
	}, nil
}

func startDirectory(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	return abs, nil
}

// Close restores the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	app.closeOnce.Do(func() {
		app.screen.Fini()
		if err := flushConsoleInput(); err != nil {
			app.logger.Debug("flush console input", "err", err)
		}
	})
	return nil
}

// Result returns the directory the user confirmed. ok is false when the
// session was aborted or has not finished.
func (app *Application) Result() (dir string, ok bool) {
	if !app.state.Done {
		return "", false
	}
	return app.state.CurrentPath, true
}
