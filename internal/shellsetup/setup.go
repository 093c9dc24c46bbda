package shellsetup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// ParentShellFunc reports the name or path of the shell that started bf.
type ParentShellFunc func() string

// Config controls what PrintSetup emits.
type Config struct {
	DetectParent ParentShellFunc
	HandoffPath  string // file bf appends the chosen directory to
	Executable   string // defaults to the running binary
}

// PrintSetup writes a shell function named bf for the requested shell (or
// the detected one) to w. The function runs the binary and changes into the
// directory it appended to the handoff file, if it appended one.
func PrintSetup(w io.Writer, shellOverride string, cfg Config) error {
	if cfg.HandoffPath == "" {
		return errors.New("no handoff file configured")
	}

	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	}
	shell = canonicalShellName(shell)

	bpath := cfg.Executable
	if bpath == "" {
		exe, err := os.Executable()
		if err != nil {
			exe = "bf"
		}
		bpath = exe
	}
	exe := strconv.Quote(bpath)
	handoff := strconv.Quote(cfg.HandoffPath)

	var err error
	switch shell {
	case "fish":
		_, err = fmt.Fprintf(w, `function bf
    set -l handoff %s
    set -l before 0
    test -f $handoff; and set before (wc -l < $handoff | string trim)
    command %s $argv; or return $status

    set -l after 0
    test -f $handoff; and set after (wc -l < $handoff | string trim)
    if test $after -gt $before
        set -l dest (tail -n 1 $handoff)
        if test -d "$dest"
            builtin cd "$dest"
        end
    end
end
`, handoff, exe)
	case "pwsh":
		_, err = fmt.Fprintf(w, `function bf {
    $handoff = %s
    $before = 0
    if (Test-Path $handoff -PathType Leaf) {
        $before = @(Get-Content $handoff).Count
    }
    & %s @args
    if ($LASTEXITCODE -ne 0) { return }
    if (-not (Test-Path $handoff -PathType Leaf)) { return }

    $lines = @(Get-Content $handoff)
    if ($lines.Count -gt $before) {
        $dest = $lines[-1]
        if (-not [string]::IsNullOrEmpty($dest) -and (Test-Path $dest -PathType Container)) {
            Set-Location $dest
        }
    }
}
`, handoff, exe)
	default:
		// bash, zsh, sh, ksh and anything unrecognised get the POSIX function.
		_, err = fmt.Fprintf(w, `bf() {
    bf_handoff=%s
    bf_before=$(wc -l 2>/dev/null < "$bf_handoff" || echo 0)
    command %s "$@" || return $?

    bf_after=$(wc -l 2>/dev/null < "$bf_handoff" || echo 0)
    if [ $((bf_after)) -gt $((bf_before)) ]; then
        bf_dest=$(tail -n 1 "$bf_handoff")
        if [ -d "$bf_dest" ]; then
            cd "$bf_dest"
        fi
    fi
    unset bf_handoff bf_before bf_after bf_dest
}
`, handoff, exe)
	}
	return err
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		// cmd.exe has no functions; PowerShell is the only supported host.
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "\"") {
		value = value[1:]
		if idx := strings.IndexRune(value, '"'); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if strings.HasPrefix(value, "'") {
		value = value[1:]
		if idx := strings.IndexRune(value, '\''); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
