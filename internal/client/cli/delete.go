package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: platebook delete COLLECTION ID")
	}

	collection, err := parseCollection(args[0])
	if err != nil {
		return err
	}

	if err := c.data.Delete(ctx, collection, args[1]); err != nil {
		return err
	}

	c.io.Printf("Deleted %s\n", args[1])
	return nil
}
