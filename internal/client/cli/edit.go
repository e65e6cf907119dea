package cli

import (
	"context"
	"fmt"

	"github.com/platebook/platebook/internal/models"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: platebook edit COLLECTION ID")
	}

	collection, err := parseCollection(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	rec, err := c.data.Get(ctx, collection, id)
	if err != nil {
		return err
	}

	switch collection {
	case models.CollectionPlaces:
		current, err := models.PlaceFromFields(rec.Record.Fields)
		if err != nil {
			return err
		}
		c.io.Println("=== Edit place (empty input keeps the current value) ===")
		place, err := c.promptPlace(current)
		if err != nil {
			return err
		}
		rec, err = c.data.EditPlace(ctx, id, place)
		if err != nil {
			return err
		}
	case models.CollectionCurations:
		current, err := models.CurationFromFields(rec.Record.Fields)
		if err != nil {
			return err
		}
		c.io.Println("=== Edit curation (empty input keeps the current value) ===")
		curation, err := c.promptCuration(current)
		if err != nil {
			return err
		}
		rec, err = c.data.EditCuration(ctx, id, curation)
		if err != nil {
			return err
		}
	}

	c.io.Println()
	c.io.Printf("Saved %s (status: %s)\n", rec.Record.ID, rec.Sync.Status)
	return nil
}
