package cli

import (
	"context"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")

	username, password, err := c.promptCredentials()
	if err != nil {
		return err
	}

	auth, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Logged in as %s\n", auth.Username)
	return nil
}
