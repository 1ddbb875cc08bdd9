package reviewing

import (
	"context"
	"fmt"

	"github.com/agritalk/cropmd/internal/platform/action"
	"github.com/agritalk/cropmd/internal/platform/validate"
)

// submitAction runs before a submit touches the list. Returning an error refuses the submit.
type submitAction = func(ctx context.Context, d Draft) error

// storeActions provides the steps the Store hands off before mutating.
// Tests swap them out through WithActionMapper, anything not swapped keeps the default.
func storeActions() *action.Mapper {
	m := &action.Mapper{}

	m.Add("Submit", submitAction(func(ctx context.Context, d Draft) error {
		if err := validate.Struct(ctx, d); err != nil {
			return fmt.Errorf("failed to validate draft: %w", err)
		}

		return nil
	}))

	return m
}
