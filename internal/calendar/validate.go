package calendar

import (
	"fmt"
	"strings"
)

// ValidationError is the only fatal failure the engine produces.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// validate rejects malformed requests and collects non-fatal warnings that
// ride along with a successful result.
func validate(req Request) ([]string, error) {
	if len(req.Personas) < 2 {
		return nil, validationErrorf("need at least 2 personas, got %d", len(req.Personas))
	}
	if len(req.Subreddits) == 0 {
		return nil, validationErrorf("need at least 1 subreddit")
	}
	if len(req.Topics) == 0 {
		return nil, validationErrorf("need at least 1 topic")
	}
	if req.PostsPerWeek < 1 {
		return nil, validationErrorf("posts per week must be at least 1, got %d", req.PostsPerWeek)
	}

	warnings := []string{}

	// Duplicate usernames don't stop generation, but the caller should know.
	seen := map[string]string{}
	for _, p := range req.Personas {
		handle := strings.ToLower(p.RedditUsername)
		if handle == "" {
			continue
		}
		if first, ok := seen[handle]; ok {
			warnings = append(warnings,
				fmt.Sprintf("personas %q and %q share reddit username %q", first, p.Name, p.RedditUsername))
			continue
		}
		seen[handle] = p.Name
	}

	return warnings, nil
}
