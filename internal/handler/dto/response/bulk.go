package response

import (
	"fmt"

	"hotel-management/internal/usecase/commands"

	"github.com/google/uuid"
)

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

type BulkResultResponse[T any] struct {
	Message        string   `json:"message"`
	Created        []T      `json:"created" copier:"-"`
	TotalRequested int      `json:"total_requested"`
	TotalCreated   int      `json:"total_created"`
	TotalSkipped   int      `json:"total_skipped"`
	Errors         []string `json:"errors"`
}

// FromBulkResult pairs the counters with the rows loaded back for the created ids.
func FromBulkResult[T any](entity string, r *commands.BulkResult, created []T) (*BulkResultResponse[T], error) {
	var res BulkResultResponse[T]
	if err := copyInto(&res, r); err != nil {
		return nil, err
	}
	res.Message = bulkMessage(entity, r)
	res.Created = created
	if res.Created == nil {
		res.Created = []T{}
	}
	return &res, nil
}

func bulkMessage(entity string, r *commands.BulkResult) string {
	switch {
	case r.TotalCreated == r.TotalRequested:
		return fmt.Sprintf("Successfully created %d %s", r.TotalCreated, entity)
	case r.TotalCreated == 0:
		return fmt.Sprintf("No %s were created", entity)
	default:
		return fmt.Sprintf("Created %d of %d %s", r.TotalCreated, r.TotalRequested, entity)
	}
}
