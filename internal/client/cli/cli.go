// Package cli implements the interactive commands of the Kuhaku client.
package cli

import (
	"github.com/kuhaku/kuhaku/internal/client/iocli"
	"github.com/kuhaku/kuhaku/internal/client/session"
)

type Cli struct {
	io      iocli.IO
	session *session.Manager
}

func New(io iocli.IO, sessionManager *session.Manager) *Cli {
	return &Cli{
		io:      io,
		session: sessionManager,
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("Kuhaku Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  kuhaku [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version      Show version information")
	c.io.Println("  --server URL   Server URL (default: http://localhost:3333)")
	c.io.Println("  --db PATH      Path to local session database (default: kuhaku-client.db)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login          Login to server")
	c.io.Println("  logout         Logout and delete the local session")
	c.io.Println("  status         Show authentication status")
	c.io.Println("  whoami         Show the signed-in user's profile")
	c.io.Println("  help           Show this help")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  kuhaku login")
	c.io.Println("  kuhaku status")
	c.io.Println("  kuhaku --server https://api.example.com whoami")
}
