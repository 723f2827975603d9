// Package generator wraps the external LLM text-generation capability. The
// calendar engine treats it as optional: any provider error means "use the
// template fallback for this one field" and is never propagated.
package generator

import (
	"context"
	"strings"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// TitleRequest asks for a post title.
type TitleRequest struct {
	Topic     string
	Intent    types.Intent
	Tone      types.Tone
	Subreddit string
}

// BodyRequest asks for a post body.
type BodyRequest struct {
	Topic     string
	Intent    types.Intent
	Tone      types.Tone
	Bio       string
	Expertise []string
	Subreddit string
}

// CommentRequest asks for a reply to an existing post.
type CommentRequest struct {
	ParentTitle string
	ParentBody  string
	Topic       string
	Intent      types.Intent
	Tone        types.Tone
	Bio         string
	Expertise   []string
	CommentType string
}

// Provider defines the interface for LLM text generation.
type Provider interface {
	GenerateTitle(ctx context.Context, req TitleRequest) (string, error)
	GenerateBody(ctx context.Context, req BodyRequest) (string, error)
	GenerateComment(ctx context.Context, req CommentRequest) (string, error)
}

// IsQuotaError reports whether err looks like a quota or rate-limit failure.
// Only used to pick a log message; every provider error falls back the same way.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "rate_limit") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "overloaded")
}
