// Package browser opens URLs in the operator's browser, best effort.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the platform browser at url without waiting for it.
// The caller treats failure as non-fatal.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
