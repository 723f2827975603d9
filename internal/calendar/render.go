package calendar

import (
	"context"
	"log"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/content"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/generator"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// render fills in an original post's title and body. Each field tries the
// external provider independently and falls back to the template path on any
// error, so one field coming from the LLM and its sibling from a template is
// a normal outcome.
func (g *Generator) render(ctx context.Context, req Request, post *types.Post) {
	persona := g.findPersona(req, post.PersonaKey)
	sub := g.findSubreddit(req, post.SubredditKey)
	intent := g.findIntent(req, post.Topic)

	post.Title, post.TitleSource = g.renderField(ctx, "title", func() (string, error) {
		return g.provider.GenerateTitle(ctx, generator.TitleRequest{
			Topic:     post.Topic,
			Intent:    intent,
			Tone:      persona.Tone,
			Subreddit: sub.Name,
		})
	}, func() string {
		return content.Title(g.rng, content.TitleInput{
			Topic:     post.Topic,
			Intent:    intent,
			Tone:      persona.Tone,
			Subreddit: sub.Name,
		})
	})

	post.Body, post.ContentSource = g.renderField(ctx, "body", func() (string, error) {
		return g.provider.GenerateBody(ctx, generator.BodyRequest{
			Topic:     post.Topic,
			Intent:    intent,
			Tone:      persona.Tone,
			Bio:       persona.Bio,
			Expertise: persona.Expertise,
			Subreddit: sub.Name,
		})
	}, func() string {
		return content.Body(g.rng, content.BodyInput{
			Topic:     post.Topic,
			Intent:    intent,
			Tone:      persona.Tone,
			Bio:       persona.Bio,
			Expertise: persona.Expertise,
			Subreddit: sub.Name,
		})
	})
}

// renderComment fills in a reply's body. The topic handed to the templates
// is the parent's recorded topic, or failing that a phrase recovered from
// the parent's title, so replies don't parrot the full question back.
func (g *Generator) renderComment(ctx context.Context, req Request, original types.Post, author types.Persona, reply *types.Post) {
	intent := g.findIntent(req, original.Topic)
	commentType := content.RandomCommentType(g.rng)

	topic := original.Topic
	if topic == "" {
		topic = content.TopicFromTitle(original.Title)
	}

	reply.Body, reply.ContentSource = g.renderField(ctx, "comment", func() (string, error) {
		return g.provider.GenerateComment(ctx, generator.CommentRequest{
			ParentTitle: original.Title,
			ParentBody:  original.Body,
			Topic:       topic,
			Intent:      intent,
			Tone:        author.Tone,
			Bio:         author.Bio,
			Expertise:   author.Expertise,
			CommentType: string(commentType),
		})
	}, func() string {
		return content.Comment(g.rng, content.CommentInput{
			Topic: topic,
			Tone:  author.Tone,
			Type:  commentType,
		})
	})
}

// renderField runs one external generation attempt with a template fallback.
// Provider errors are logged and swallowed; they must never abort a run.
func (g *Generator) renderField(ctx context.Context, field string, llm func() (string, error), fallback func() string) (string, string) {
	if g.provider != nil {
		text, err := llm()
		if err == nil && text != "" {
			return text, types.SourceLLM
		}
		if err != nil {
			if generator.IsQuotaError(err) {
				log.Printf("[calendar] LLM quota/rate limit on %s, using template: %v", field, err)
			} else {
				log.Printf("[calendar] LLM %s generation failed, using template: %v", field, err)
			}
		}
	}
	return fallback(), types.SourceTemplate
}

func (g *Generator) findPersona(req Request, key string) types.Persona {
	for _, p := range req.Personas {
		if personaKey(p) == key {
			return p
		}
	}
	return types.Persona{Tone: types.ToneCasual}
}

func (g *Generator) findSubreddit(req Request, key string) types.Subreddit {
	for _, s := range req.Subreddits {
		if subredditKey(s) == key {
			return s
		}
	}
	return types.Subreddit{}
}

func (g *Generator) findIntent(req Request, query string) types.Intent {
	for _, t := range req.Topics {
		if t.Query == query {
			return t.Intent
		}
	}
	return types.IntentDiscussion
}
