package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements Provider using Anthropic's Claude API.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
	gate   *Gate
}

// NewAnthropicProvider creates a provider that routes every call through the
// given rate gate.
func NewAnthropicProvider(apiKey, model string, gate *Gate) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &AnthropicProvider{
		client: &client,
		model:  model,
		gate:   gate,
	}
}

// GenerateTitle asks Claude for a single post title.
func (p *AnthropicProvider) GenerateTitle(ctx context.Context, req TitleRequest) (string, error) {
	prompt := fmt.Sprintf(
		"Write a reddit post title for r/%s.\nTopic: %s\nIntent: %s\nTone: %s\n\n"+
			"Rules: sound like a real person, no hashtags, no quotes around the title, under 120 characters. "+
			"Respond with the title only.",
		req.Subreddit, req.Topic, req.Intent, req.Tone)
	return p.complete(ctx, prompt, 256)
}

// GenerateBody asks Claude for a post body matching the persona.
func (p *AnthropicProvider) GenerateBody(ctx context.Context, req BodyRequest) (string, error) {
	prompt := fmt.Sprintf(
		"Write the body of a reddit post for r/%s.\nTopic: %s\nIntent: %s\nTone: %s\n"+
			"Author bio: %s\nAuthor expertise: %s\n\n"+
			"Rules: 2-4 short paragraphs, first person, conversational, no markdown headers, "+
			"never mention being an AI. Respond with the body only.",
		req.Subreddit, req.Topic, req.Intent, req.Tone, req.Bio, strings.Join(req.Expertise, ", "))
	return p.complete(ctx, prompt, 1024)
}

// GenerateComment asks Claude for a reply to an existing post.
func (p *AnthropicProvider) GenerateComment(ctx context.Context, req CommentRequest) (string, error) {
	prompt := fmt.Sprintf(
		"Write a reddit comment replying to this post.\nPost title: %s\nPost body: %s\n"+
			"Underlying topic: %s\nComment style: %s\nYour tone: %s\nYour bio: %s\nYour expertise: %s\n\n"+
			"Rules: 1-3 sentences, react to the post rather than restating it, "+
			"never mention being an AI. Respond with the comment only.",
		req.ParentTitle, req.ParentBody, req.Topic, req.CommentType, req.Tone,
		req.Bio, strings.Join(req.Expertise, ", "))
	return p.complete(ctx, prompt, 512)
}

func (p *AnthropicProvider) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	if p.gate != nil {
		if err := p.gate.Wait(ctx); err != nil {
			return "", err
		}
	}

	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}

	text = strings.TrimSpace(strings.Trim(strings.TrimSpace(text), `"`))
	if text == "" {
		return "", fmt.Errorf("Claude returned empty response")
	}
	return text, nil
}
