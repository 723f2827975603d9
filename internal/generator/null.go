package generator

import (
	"context"
	"errors"
)

// ErrUnavailable is what NullProvider returns from every call.
var ErrUnavailable = errors.New("text generation unavailable")

// NullProvider always fails, forcing the template fallback. Used in tests and
// when no API key is configured.
type NullProvider struct{}

func (NullProvider) GenerateTitle(ctx context.Context, req TitleRequest) (string, error) {
	return "", ErrUnavailable
}

func (NullProvider) GenerateBody(ctx context.Context, req BodyRequest) (string, error) {
	return "", ErrUnavailable
}

func (NullProvider) GenerateComment(ctx context.Context, req CommentRequest) (string, error) {
	return "", ErrUnavailable
}
