package types

import "time"

// Tone describes a persona's writing voice.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneFriendly     Tone = "friendly"
	ToneTechnical    Tone = "technical"
	ToneHumorous     Tone = "humorous"
)

// Tones lists every valid tone value.
var Tones = []Tone{ToneProfessional, ToneCasual, ToneFriendly, ToneTechnical, ToneHumorous}

// ValidTone reports whether t is a known tone.
func ValidTone(t Tone) bool {
	for _, v := range Tones {
		if t == v {
			return true
		}
	}
	return false
}

// Intent categorizes what a topic query is trying to do.
type Intent string

const (
	IntentQuestion   Intent = "question"
	IntentDiscussion Intent = "discussion"
	IntentAdvice     Intent = "advice"
	IntentReview     Intent = "review"
)

// Intents lists every valid intent value.
var Intents = []Intent{IntentQuestion, IntentDiscussion, IntentAdvice, IntentReview}

// ValidIntent reports whether i is a known intent.
func ValidIntent(i Intent) bool {
	for _, v := range Intents {
		if i == v {
			return true
		}
	}
	return false
}

// PostKind distinguishes top-level submissions from comments.
type PostKind string

const (
	KindOriginal PostKind = "original"
	KindComment  PostKind = "comment"
)

// Post lifecycle states. The generator always emits pending; the rest of
// the lifecycle is managed by whoever actually posts.
const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusPosted    = "posted"
)

// Text provenance for generated titles/bodies/comments.
const (
	SourceLLM      = "external-generator"
	SourceTemplate = "template"
)

// Company is the client the content calendar is generated for.
type Company struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Audience    string `json:"audience,omitempty"`
}

// Persona is a synthetic author identity.
type Persona struct {
	ID             string   `json:"id,omitempty"`
	CompanyID      string   `json:"company_id,omitempty"`
	Name           string   `json:"name"`
	RedditUsername string   `json:"reddit_username"`
	Bio            string   `json:"bio"`
	Expertise      []string `json:"expertise"`
	Tone           Tone     `json:"tone"`
}

// Subreddit is a target community with a weekly posting cap.
type Subreddit struct {
	ID           string `json:"id,omitempty"`
	CompanyID    string `json:"company_id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	PostsPerWeek int    `json:"posts_per_week"` // 0 means unset; DefaultPostsPerWeek applies
}

// DefaultPostsPerWeek is the weekly cap used when a subreddit doesn't set one.
const DefaultPostsPerWeek = 2

// Limit returns the effective weekly posting cap.
func (s Subreddit) Limit() int {
	if s.PostsPerWeek <= 0 {
		return DefaultPostsPerWeek
	}
	return s.PostsPerWeek
}

// Topic is a discussion prompt with an intent category.
type Topic struct {
	ID        string `json:"id,omitempty"`
	CompanyID string `json:"company_id,omitempty"`
	Query     string `json:"query"`
	Intent    Intent `json:"intent"`
}

// Post is one generated calendar entry, either an original submission or a
// comment threaded under one.
type Post struct {
	ID            string    `json:"id,omitempty"`
	CalendarID    string    `json:"calendar_id,omitempty"`
	PersonaKey    string    `json:"persona_key"`
	SubredditKey  string    `json:"subreddit_key"`
	Title         string    `json:"title,omitempty"` // empty for comments
	Body          string    `json:"body"`
	Topic         string    `json:"topic,omitempty"`
	Date          time.Time `json:"date"`
	Hour          int       `json:"hour"`
	Minute        int       `json:"minute"`
	Kind          PostKind  `json:"kind"`
	ParentKey     string    `json:"parent_key,omitempty"` // set for comments only
	Status        string    `json:"status"`
	TitleSource   string    `json:"title_source,omitempty"`
	ContentSource string    `json:"content_source,omitempty"`
}

// ScheduledAt combines the post's date with its hour/minute slot.
func (p Post) ScheduledAt() time.Time {
	return time.Date(p.Date.Year(), p.Date.Month(), p.Date.Day(), p.Hour, p.Minute, 0, 0, p.Date.Location())
}

// Calendar is one generated week for a company.
type Calendar struct {
	ID           string    `json:"id,omitempty"`
	CompanyID    string    `json:"company_id,omitempty"`
	WeekStart    time.Time `json:"week_start"`
	WeekEnd      time.Time `json:"week_end"`
	PostsPerWeek int       `json:"posts_per_week"`
	QualityScore float64   `json:"quality_score"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// RefKey resolves an entity to the key the engine bookkeeps under: the
// persisted id when present, otherwise a human-readable fallback. Upstream
// callers may hand us entities that haven't been persisted yet, so the
// fallback has to be stable within one generation run.
func RefKey(id, fallback string) string {
	if id != "" {
		return id
	}
	return fallback
}
