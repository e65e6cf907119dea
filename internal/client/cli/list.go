package cli

import (
	"context"
	"fmt"

	"github.com/platebook/platebook/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: platebook list (places|curations)")
	}

	collection, err := parseCollection(args[0])
	if err != nil {
		return err
	}

	var records []*models.StoredRecord
	if collection == models.CollectionPlaces {
		records, err = c.data.ListPlaces(ctx)
	} else {
		records, err = c.data.ListCurations(ctx)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		c.io.Printf("No %s yet.\n", collection)
		return nil
	}

	c.io.Printf("%-36s  %-10s  %-4s  %s\n", "ID", "STATUS", "VER", "NAME")
	for _, rec := range records {
		c.io.Println(recordSummary(rec))
	}
	return nil
}
