package cli

import (
	"context"
	"errors"
	"time"

	"github.com/platebook/platebook/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")

	session, err := c.auth.Session(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Not logged in.")
	case errors.Is(err, auth.ErrSessionExpired):
		c.io.Println("Session expired. Run 'platebook login' to continue syncing.")
	case err != nil:
		return err
	default:
		c.io.Printf("Logged in as:    %s\n", session.Username)
		c.io.Printf("Session expires: %s\n", time.Unix(session.ExpiresAt, 0).Format("2006-01-02 15:04:05"))
	}

	pending, err := c.sync.PendingCount(ctx)
	if err != nil {
		return err
	}
	c.io.Printf("Pending changes: %d\n", pending)

	return nil
}
