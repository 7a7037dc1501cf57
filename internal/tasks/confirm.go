package tasks

import "context"

// ClearPrompt is asked before a non-empty collection is cleared.
const ClearPrompt = "Are you sure you want to delete all tasks?"

// Confirmer answers a yes/no question. Implementations may block until a
// person responds.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

type fixedAnswer bool

func (a fixedAnswer) Confirm(context.Context, string) (bool, error) {
	return bool(a), nil
}

var (
	// Confirmed is used once the user has already agreed, e.g. after an
	// interactive dialog or a --yes flag.
	Confirmed Confirmer = fixedAnswer(true)
	Declined  Confirmer = fixedAnswer(false)
)
