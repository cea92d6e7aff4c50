package inference

import (
	"context"
	"errors"
)

// ErrEmptyResult is returned when the backend answers without any text.
var ErrEmptyResult = errors.New("empty completion content")

// Inferencer turns a prompt into generated text. Implementations wrap a
// hosted model; any failure of the call is returned as an error.
type Inferencer interface {
	Infer(ctx context.Context, prompt string) (string, error)
}
