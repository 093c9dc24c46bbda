//go:build !windows

package shellsetup

import (
	"fmt"
	"os"
	"strings"
)

// DetectParentShellName returns the command name of the parent process
// where procfs exposes it, and "" elsewhere.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 1 {
		return ""
	}

	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", ppid))
	if err != nil {
		return ""
	}

	// Login shells show up as "-bash".
	return strings.TrimPrefix(strings.TrimSpace(string(data)), "-")
}
