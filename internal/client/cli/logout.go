package cli

import (
	"context"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}

	c.io.Println("Logged out. Local entries are kept and will sync on the next login.")
	return nil
}
