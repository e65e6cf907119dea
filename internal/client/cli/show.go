package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: platebook show COLLECTION ID")
	}

	collection, err := parseCollection(args[0])
	if err != nil {
		return err
	}

	rec, err := c.data.Get(ctx, collection, args[1])
	if err != nil {
		return err
	}

	c.printRecord(rec)
	return nil
}
