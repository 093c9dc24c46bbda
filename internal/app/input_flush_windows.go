//go:build windows

package app

import "golang.org/x/sys/windows"

// flushConsoleInput drops keys typed while the navigator was closing so
// they do not reach the shell prompt.
func flushConsoleInput() error {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return err
	}
	return windows.FlushConsoleInputBuffer(handle)
}
