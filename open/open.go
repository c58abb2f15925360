// Package open hands URIs to the system's default handler, which is how the
// host application is asked to reload.
package open

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/prism-vault/prism/constant"
)

// Start passes uri to the default handler without waiting for it.
func Start(ctx context.Context, uri string) error {
	cmd, ok := command(ctx, uri)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(ctx context.Context, uri string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.CommandContext(ctx, rundll, "url.dll,FileProtocolHandler", uri), true
	case constant.Darwin:
		return exec.CommandContext(ctx, "open", uri), true
	case constant.Linux:
		return exec.CommandContext(ctx, "xdg-open", uri), true
	case constant.Android:
		return exec.CommandContext(ctx, "termux-open", uri), true
	default:
		return nil, false
	}
}
