package sync

import (
	"github.com/platebook/platebook/internal/models"
	"github.com/platebook/platebook/pkg/api"
)

// recordFromAPI converts a wire record into the domain envelope.
func recordFromAPI(collection models.Collection, in *api.Record) *models.Record {
	return &models.Record{
		ID:         in.ID,
		Collection: collection,
		Version:    in.Version,
		CreatedAt:  in.CreatedAt,
		UpdatedAt:  in.UpdatedAt,
		CreatedBy:  in.CreatedBy,
		Fields:     models.Fields(in.Fields).Clone(),
	}
}
