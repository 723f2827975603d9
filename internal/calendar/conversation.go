package calendar

import (
	"context"

	"github.com/google/uuid"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// buildConversation attaches replies to one original post. Every original
// gets at least one reply whenever another persona exists: the scorer
// rewards a comment-to-post ratio near 1, and an earlier maybe-no-replies
// policy kept landing weeks below that band.
func (g *Generator) buildConversation(ctx context.Context, req Request, original types.Post) []types.Post {
	pool := make([]types.Persona, 0, len(req.Personas))
	for _, p := range req.Personas {
		if personaKey(p) != original.PersonaKey {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	replies := 1
	if g.rng.Float64() >= g.SingleReplyChance {
		replies = 2
	}

	first := pool[g.rng.Intn(len(pool))]
	out := []types.Post{g.newReply(ctx, req, original, first, 2+g.rng.Intn(5))}

	if replies == 2 {
		rest := make([]types.Persona, 0, len(pool)-1)
		for _, p := range pool {
			if personaKey(p) != personaKey(first) {
				rest = append(rest, p)
			}
		}
		if len(rest) > 0 {
			second := rest[g.rng.Intn(len(rest))]
			out = append(out, g.newReply(ctx, req, original, second, 4+g.rng.Intn(4)))
		}
	}
	return out
}

// newReply schedules a comment offsetHours after its parent. Anything
// landing past 21:00 rolls to the morning of the next calendar day.
func (g *Generator) newReply(ctx context.Context, req Request, original types.Post, author types.Persona, offsetHours int) types.Post {
	date := original.Date
	hour := original.Hour + offsetHours
	if hour > 21 {
		date = date.AddDate(0, 0, 1)
		hour -= 13
	}

	reply := types.Post{
		ID:           uuid.NewString(),
		PersonaKey:   personaKey(author),
		SubredditKey: original.SubredditKey,
		Topic:        original.Topic,
		Date:         date,
		Hour:         hour,
		Minute:       minuteSlots[g.rng.Intn(len(minuteSlots))],
		Kind:         types.KindComment,
		ParentKey:    original.ID,
		Status:       types.StatusPending,
	}
	g.renderComment(ctx, req, original, author, &reply)
	return reply
}
