package cli

import (
	"context"
	"fmt"

	"github.com/platebook/platebook/internal/models"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: platebook add (place|curation)")
	}

	collection, err := parseCollection(args[0])
	if err != nil {
		return err
	}

	session, err := c.auth.Session(ctx)
	if err != nil {
		return err
	}

	var rec *models.StoredRecord
	switch collection {
	case models.CollectionPlaces:
		c.io.Println("=== New place ===")
		place, err := c.promptPlace(nil)
		if err != nil {
			return err
		}
		rec, err = c.data.AddPlace(ctx, session.UserID, place)
		if err != nil {
			return err
		}
	case models.CollectionCurations:
		c.io.Println("=== New curation ===")
		curation, err := c.promptCuration(nil)
		if err != nil {
			return err
		}
		rec, err = c.data.AddCuration(ctx, session.UserID, curation)
		if err != nil {
			return err
		}
	}

	c.io.Println()
	c.io.Printf("Added %s (run 'platebook sync' to push it to the server)\n", rec.Record.ID)
	return nil
}
