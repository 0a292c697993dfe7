package cli

import (
	"context"
	"fmt"
)

// Run restores the persisted session and dispatches the command.
// Restore runs before every command so a valid saved token is attached
// and a stale one is cleared, the same way a UI rehydrates on mount.
func (c *Cli) Run(ctx context.Context, command string) error {
	c.session.Restore(ctx)

	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "whoami":
		return c.runWhoami(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
