package cli

import (
	"context"
)

func (c *Cli) runStatus(_ context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	if !c.session.IsAuthenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'kuhaku login' to authenticate.")
		return nil
	}

	user := c.session.CurrentUser()

	c.io.Println("Status: Authenticated")
	c.io.Printf("Email: %s\n", user.Email)

	return nil
}
