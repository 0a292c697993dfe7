package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWhoami(_ context.Context) error {
	if !c.session.IsAuthenticated() {
		return fmt.Errorf("not authenticated. Please run 'kuhaku login' first")
	}

	user := c.session.CurrentUser()

	c.io.Printf("ID:    %s\n", user.ID)
	c.io.Printf("Name:  %s\n", user.Name)
	c.io.Printf("Email: %s\n", user.Email)

	return nil
}
