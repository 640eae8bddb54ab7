package output

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner executes action while a spinner titled title is shown.
// When stdout is not a terminal the action runs directly.
func RunWithSpinner(ctx context.Context, title string, action func(ctx context.Context) error) error {
	if !IsTTY() {
		return action(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- action(ctx)
	}()

	resultCh := make(chan error, 1)
	spinnerErr := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() {
			resultCh <- <-errCh
		}).
		Run()

	if spinnerErr != nil && !errors.Is(spinnerErr, context.Canceled) {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	select {
	case err := <-resultCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
