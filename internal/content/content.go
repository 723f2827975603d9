// Package content renders persona/topic placeholders into literal post text.
// It is the deterministic fallback behind the LLM provider: always available,
// random only in its choice of phrasing variant.
package content

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// CommentType selects which comment template family to use.
type CommentType string

const (
	ShareExperience CommentType = "share_experience"
	AddValue        CommentType = "add_value"
	AgreeAndExpand  CommentType = "agree_and_expand"
	AskFollowup     CommentType = "ask_followup"
	ProvideTip      CommentType = "provide_tip"
	RelatePersonal  CommentType = "relate_personally"
)

// CommentTypes lists every comment template family.
var CommentTypes = []CommentType{
	ShareExperience, AddValue, AgreeAndExpand, AskFollowup, ProvideTip, RelatePersonal,
}

// TitleInput carries everything the title templates can reference.
type TitleInput struct {
	Topic     string
	Intent    types.Intent
	Tone      types.Tone
	Subreddit string
}

// BodyInput carries everything the body templates can reference.
type BodyInput struct {
	Topic     string
	Intent    types.Intent
	Tone      types.Tone
	Bio       string
	Expertise []string
	Subreddit string
}

// CommentInput carries everything the comment templates can reference.
type CommentInput struct {
	Topic string
	Tone  types.Tone
	Type  CommentType
}

// Title renders a post title from the intent/tone phrase tables. Topics that
// compare two things ("X vs Y", "compare X and Y") get a dedicated phrasing
// that names both sides instead of quoting the whole query.
func Title(rng *rand.Rand, in TitleInput) string {
	if a, b, ok := SplitComparison(in.Topic); ok {
		return fmt.Sprintf(pick(rng, comparisonTitles[normalizeTone(in.Tone)]), a, b)
	}

	tone := normalizeTone(in.Tone)
	byTone, ok := titleTemplates[in.Intent]
	if !ok {
		byTone = titleTemplates[types.IntentDiscussion]
	}
	return fmt.Sprintf(pick(rng, byTone[tone]), in.Topic)
}

// Body renders a post body from the tone paragraph tables, weaving in the
// persona's expertise tags when it has any.
func Body(rng *rand.Rand, in BodyInput) string {
	tone := normalizeTone(in.Tone)

	var sb strings.Builder
	if a, b, ok := SplitComparison(in.Topic); ok {
		sb.WriteString(fmt.Sprintf(pick(rng, comparisonBodies[tone]), a, b))
	} else {
		sb.WriteString(fmt.Sprintf(pick(rng, bodyOpeners[tone]), in.Topic))
	}

	if len(in.Expertise) > 0 {
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprintf(pick(rng, expertiseLines[tone]), joinExpertise(in.Expertise)))
	}

	sb.WriteString(" ")
	sb.WriteString(pick(rng, bodyClosers[tone]))
	return sb.String()
}

// Comment renders a reply body from the tone x comment-type matrix.
func Comment(rng *rand.Rand, in CommentInput) string {
	tone := normalizeTone(in.Tone)
	byType, ok := commentTemplates[tone]
	if !ok {
		byType = commentTemplates[types.ToneCasual]
	}
	variants, ok := byType[in.Type]
	if !ok {
		variants = byType[AddValue]
	}
	return fmt.Sprintf(pick(rng, variants), in.Topic)
}

// RandomCommentType picks a comment template family uniformly.
func RandomCommentType(rng *rand.Rand) CommentType {
	return CommentTypes[rng.Intn(len(CommentTypes))]
}

// SplitComparison detects comparison-style queries and splits them into the
// two compared items. The match is deliberately literal: the first " vs ",
// " versus " or "compare" token wins, and queries that merely contain those
// words split the same way.
func SplitComparison(query string) (string, string, bool) {
	lower := strings.ToLower(query)

	for _, sep := range []string{" vs ", " vs. ", " versus "} {
		if idx := strings.Index(lower, sep); idx > 0 {
			left := strings.TrimSpace(query[:idx])
			right := strings.TrimSpace(query[idx+len(sep):])
			if left != "" && right != "" {
				return left, right, true
			}
		}
	}

	if idx := strings.Index(lower, "compare"); idx >= 0 {
		rest := strings.TrimSpace(query[idx+len("compare"):])
		for _, conj := range []string{" and ", " with ", " to "} {
			lowerRest := strings.ToLower(rest)
			if j := strings.Index(lowerRest, conj); j > 0 {
				left := strings.TrimSpace(rest[:j])
				right := strings.TrimSpace(rest[j+len(conj):])
				right = strings.TrimRight(right, "?!.")
				if left != "" && right != "" {
					return left, right, true
				}
			}
		}
	}

	return "", "", false
}

// topicStoplist holds question/connector words stripped when recovering a
// topic phrase from a title.
var topicStoplist = map[string]bool{
	"what": true, "whats": true, "which": true, "how": true, "why": true,
	"when": true, "where": true, "who": true, "is": true, "are": true,
	"was": true, "do": true, "does": true, "did": true, "can": true,
	"could": true, "should": true, "would": true, "the": true, "a": true,
	"an": true, "best": true, "good": true, "your": true, "my": true,
	"for": true, "about": true, "anyone": true, "thoughts": true,
	"on": true, "of": true, "to": true, "in": true, "you": true,
	"recommend": true, "opinion": true, "opinions": true, "experience": true,
	"honest": true, "worth": true, "it": true, "vs": true, "versus": true,
}

// TopicFromTitle heuristically recovers the subject phrase from a post
// title, for replies that shouldn't quote the whole question back.
func TopicFromTitle(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '?', '!', '.', ',', ':', ';', '"', '\'':
			return -1
		}
		return r
	}, title)

	var kept []string
	for _, w := range strings.Fields(cleaned) {
		if topicStoplist[strings.ToLower(w)] {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return strings.TrimSpace(cleaned)
	}
	if len(kept) > 5 {
		kept = kept[:5]
	}
	return strings.Join(kept, " ")
}

func normalizeTone(t types.Tone) types.Tone {
	if types.ValidTone(t) {
		return t
	}
	return types.ToneCasual
}

func pick(rng *rand.Rand, variants []string) string {
	if len(variants) == 0 {
		return "%s"
	}
	return variants[rng.Intn(len(variants))]
}

func joinExpertise(tags []string) string {
	if len(tags) == 1 {
		return tags[0]
	}
	return strings.Join(tags[:len(tags)-1], ", ") + " and " + tags[len(tags)-1]
}
