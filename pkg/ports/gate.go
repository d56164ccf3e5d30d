package ports

import (
	"context"

	"github.com/aretw0/storyview/pkg/domain"
)

// Gate obtains one decision from the user.
type Gate interface {
	// Confirm prompts until the user answers with a recognized token.
	Confirm(ctx context.Context, prompt string) (domain.Result, error)
}

// Asker reads a free-form answer that still honors the quit token.
type Asker interface {
	// Ask returns the trimmed answer, or quit=true if the user asked to leave.
	Ask(ctx context.Context, prompt string) (answer string, quit bool, err error)
}
