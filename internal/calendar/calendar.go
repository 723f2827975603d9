// Package calendar is the content-calendar engine: it plans one week of
// original posts, threads replies onto them, renders text for each entry and
// scores the finished week. All randomness flows through an injected
// *rand.Rand and all external text generation through an injected provider,
// so a Generator holds no state shared across requests.
package calendar

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/generator"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// Tuning parameters for the planning heuristics. These are taste values, not
// derived quantities; they can be overridden per Generator.
const (
	// DefaultPersonaBias is the chance of assigning the least-used persona
	// outright instead of sampling from the less-used half.
	DefaultPersonaBias = 0.7
	// DefaultSingleReplyChance is the chance an original gets exactly one
	// reply rather than two.
	DefaultSingleReplyChance = 0.7
)

// Posting window for originals.
const (
	firstPostHour = 9
	lastPostHour  = 20
)

var minuteSlots = []int{0, 15, 30, 45}

// Request is one calendar generation request. Entities may arrive with or
// without persisted ids; names and usernames serve as fallback keys.
type Request struct {
	Company      types.Company
	Personas     []types.Persona
	Subreddits   []types.Subreddit
	Topics       []types.Topic
	PostsPerWeek int
	WeekAnchor   time.Time
}

// Result is a finished week: calendar metadata, posts ordered by schedule,
// and any soft-constraint warnings collected along the way.
type Result struct {
	Calendar     types.Calendar `json:"calendar"`
	Posts        []types.Post   `json:"posts"`
	QualityScore float64        `json:"quality_score"`
	Warnings     []string       `json:"warnings"`
}

// Generator plans content calendars.
type Generator struct {
	provider generator.Provider
	rng      *rand.Rand

	// PersonaBias and SingleReplyChance default to the package constants.
	PersonaBias       float64
	SingleReplyChance float64
}

// New creates a Generator. provider may be nil, in which case every field
// uses the template path. The rng must not be shared with a concurrently
// running Generator.
func New(provider generator.Provider, rng *rand.Rand) *Generator {
	return &Generator{
		provider:          provider,
		rng:               rng,
		PersonaBias:       DefaultPersonaBias,
		SingleReplyChance: DefaultSingleReplyChance,
	}
}

// Generate plans one week of posts for the request. It fails only with a
// *ValidationError; every other problem is dealt with locally and at worst
// surfaces as a warning on the result.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	warnings, err := validate(req)
	if err != nil {
		return nil, err
	}

	start := WeekStart(req.WeekAnchor)
	week := weekDates(start)

	originals := g.allocate(req, week, &warnings)
	posts := make([]types.Post, 0, len(originals)*2)
	for i := range originals {
		g.render(ctx, req, &originals[i])
		posts = append(posts, originals[i])
		posts = append(posts, g.buildConversation(ctx, req, originals[i])...)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].ScheduledAt().Before(posts[j].ScheduledAt())
	})

	score := Score(posts, req.Subreddits)

	cal := types.Calendar{
		ID:           uuid.NewString(),
		CompanyID:    req.Company.ID,
		WeekStart:    start,
		WeekEnd:      start.AddDate(0, 0, 6),
		PostsPerWeek: req.PostsPerWeek,
		QualityScore: score,
		GeneratedAt:  time.Now(),
	}
	for i := range posts {
		posts[i].CalendarID = cal.ID
	}

	return &Result{
		Calendar:     cal,
		Posts:        posts,
		QualityScore: score,
		Warnings:     warnings,
	}, nil
}

// WeekStart normalizes any date to the Monday of its week, at midnight.
func WeekStart(anchor time.Time) time.Time {
	t := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset)
}

func weekDates(start time.Time) [7]time.Time {
	var days [7]time.Time
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func personaKey(p types.Persona) string {
	return types.RefKey(p.ID, p.RedditUsername)
}

func subredditKey(s types.Subreddit) string {
	return types.RefKey(s.ID, s.Name)
}
