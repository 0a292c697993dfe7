package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	if c.session.IsAuthenticated() {
		user := c.session.CurrentUser()
		c.io.Printf("Already logged in as %s. Run 'kuhaku logout' first.\n", user.Email)
		return nil
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.session.SignIn(ctx, email, password); err != nil {
		// In-flight rejections carry no sign-in message
		if msg := c.session.Err(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}

	user := c.session.CurrentUser()

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Name: %s\n", user.Name)
	c.io.Printf("Email: %s\n", user.Email)
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}
