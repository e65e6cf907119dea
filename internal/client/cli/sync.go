package cli

import (
	"context"
)

func (c *Cli) runSync(ctx context.Context) error {
	token, err := c.auth.AccessToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.sync.SyncAll(ctx, token)
	if result != nil {
		c.io.Println()
		c.io.Printf("Pulled from server: %d\n", result.Pulled)
		c.io.Printf("Pushed to server:   %d\n", result.Pushed)
		if result.Conflicts > 0 {
			c.io.Printf("Conflicts:          %d (resolved: %d)\n", result.Conflicts, result.Resolved)
		}
		if result.Errors > 0 {
			c.io.Printf("Errors:             %d\n", result.Errors)
		}
	}
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Everything is in sync.")
	return nil
}
