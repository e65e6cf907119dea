package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")

	username, password, err := c.promptCredentials()
	if err != nil {
		return err
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	auth, err := c.auth.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Registered and logged in as %s\n", auth.Username)
	return nil
}
