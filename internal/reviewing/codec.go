package reviewing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/agritalk/cropmd/internal/platform/validate"
)

// encodeReviews serializes the whole list in order, newest first.
func encodeReviews(reviews []Review) ([]byte, error) {
	if reviews == nil {
		reviews = []Review{}
	}

	b, err := json.Marshal(reviews)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reviews: %w", err)
	}

	return b, nil
}

// decodeReviews reads a list written by encodeReviews and checks that it
// still holds up: valid ratings and no duplicate IDs.
func decodeReviews(ctx context.Context, b []byte) ([]Review, error) {
	var reviews []Review
	if err := json.Unmarshal(b, &reviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(reviews))
	for i, r := range reviews {
		if err := validate.Struct(ctx, r); err != nil {
			return nil, fmt.Errorf("review %d is invalid: %w", i, err)
		}

		if _, ok := seen[r.ID]; ok {
			return nil, fmt.Errorf("review %d has a duplicate id: %s", i, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	if reviews == nil {
		reviews = []Review{}
	}

	return reviews, nil
}
