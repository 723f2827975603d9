package calendar

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/generator"
	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

func testRequest() Request {
	return Request{
		Company: types.Company{Name: "Acme", Description: "Makes things"},
		Personas: []types.Persona{
			{Name: "Alice", RedditUsername: "alice_dev", Tone: types.ToneTechnical, Expertise: []string{"backend", "databases"}},
			{Name: "Bob", RedditUsername: "bob_builds", Tone: types.ToneCasual},
			{Name: "Carol", RedditUsername: "carol_writes", Tone: types.ToneFriendly, Bio: "Longtime community member"},
		},
		Subreddits: []types.Subreddit{
			{Name: "webdev", PostsPerWeek: 5},
			{Name: "programming", PostsPerWeek: 5},
		},
		Topics: []types.Topic{
			{Query: "best database for small startups", Intent: types.IntentAdvice},
			{Query: "PostgreSQL vs MySQL", Intent: types.IntentDiscussion},
			{Query: "is serverless worth it", Intent: types.IntentQuestion},
		},
		PostsPerWeek: 7,
		WeekAnchor:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), // a Monday
	}
}

func newTestGenerator(seed int64) *Generator {
	return New(generator.NullProvider{}, rand.New(rand.NewSource(seed)))
}

func originalsOf(posts []types.Post) []types.Post {
	var out []types.Post
	for _, p := range posts {
		if p.Kind == types.KindOriginal {
			out = append(out, p)
		}
	}
	return out
}

func TestGenerateTotalCount(t *testing.T) {
	for _, n := range []int{1, 3, 7, 10, 14} {
		req := testRequest()
		req.PostsPerWeek = n
		req.Subreddits = []types.Subreddit{{Name: "webdev", PostsPerWeek: 100}}

		result, err := newTestGenerator(int64(n)).Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("Generate(%d) failed: %v", n, err)
		}
		if got := len(originalsOf(result.Posts)); got != n {
			t.Errorf("posts_per_week=%d: got %d originals", n, got)
		}
	}
}

func TestGenerateDayDistribution(t *testing.T) {
	req := testRequest()
	req.PostsPerWeek = 10 // base 1/day plus one extra on Mon-Wed
	req.Subreddits = []types.Subreddit{{Name: "webdev", PostsPerWeek: 100}}

	result, err := newTestGenerator(42).Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	perDay := map[string]int{}
	for _, p := range originalsOf(result.Posts) {
		perDay[p.Date.Format("2006-01-02")]++
	}

	start := result.Calendar.WeekStart
	for day := 0; day < 7; day++ {
		want := 1
		if day < 3 {
			want = 2
		}
		date := start.AddDate(0, 0, day).Format("2006-01-02")
		if perDay[date] != want {
			t.Errorf("day %d (%s): got %d originals, want %d", day, date, perDay[date], want)
		}
	}
}

func TestWeekNormalization(t *testing.T) {
	req := testRequest()
	req.WeekAnchor = time.Date(2024, 1, 4, 15, 30, 0, 0, time.UTC) // a Thursday

	result, err := newTestGenerator(1).Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !result.Calendar.WeekStart.Equal(wantStart) {
		t.Errorf("week start = %v, want Monday %v", result.Calendar.WeekStart, wantStart)
	}
	if !result.Calendar.WeekEnd.Equal(wantStart.AddDate(0, 0, 6)) {
		t.Errorf("week end = %v, want %v", result.Calendar.WeekEnd, wantStart.AddDate(0, 0, 6))
	}
}

func TestOriginalTimeSlots(t *testing.T) {
	result, err := newTestGenerator(7).Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, p := range originalsOf(result.Posts) {
		if p.Hour < 9 || p.Hour > 20 {
			t.Errorf("original at hour %d, want 9-20", p.Hour)
		}
		if p.Minute%15 != 0 {
			t.Errorf("original at minute %d, want 15-minute grid", p.Minute)
		}
	}
}

func TestPostsSortedBySchedule(t *testing.T) {
	result, err := newTestGenerator(99).Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for i := 1; i < len(result.Posts); i++ {
		if result.Posts[i].ScheduledAt().Before(result.Posts[i-1].ScheduledAt()) {
			t.Fatalf("posts out of order at index %d: %v before %v",
				i, result.Posts[i].ScheduledAt(), result.Posts[i-1].ScheduledAt())
		}
	}
}

func TestReplyInvariants(t *testing.T) {
	result, err := newTestGenerator(5).Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	byID := map[string]types.Post{}
	for _, p := range result.Posts {
		byID[p.ID] = p
	}

	repliers := map[string]map[string]bool{} // parent id -> persona keys
	for _, p := range result.Posts {
		if p.Kind != types.KindComment {
			continue
		}
		parent, ok := byID[p.ParentKey]
		if !ok {
			t.Fatalf("comment %s references unknown parent %s", p.ID, p.ParentKey)
		}
		if parent.Kind != types.KindOriginal {
			t.Errorf("comment %s parented to a non-original", p.ID)
		}
		if parent.PersonaKey == p.PersonaKey {
			t.Errorf("comment %s authored by its parent's persona", p.ID)
		}
		if p.Title != "" {
			t.Errorf("comment %s has a title", p.ID)
		}
		if repliers[p.ParentKey] == nil {
			repliers[p.ParentKey] = map[string]bool{}
		}
		if repliers[p.ParentKey][p.PersonaKey] {
			t.Errorf("two comments on %s share persona %s", p.ParentKey, p.PersonaKey)
		}
		repliers[p.ParentKey][p.PersonaKey] = true
	}

	// With 3 personas every original should have at least one reply.
	for _, p := range originalsOf(result.Posts) {
		if len(repliers[p.ID]) == 0 {
			t.Errorf("original %s got no replies", p.ID)
		}
	}
}

func TestOverLimitWarning(t *testing.T) {
	req := testRequest()
	req.Subreddits = []types.Subreddit{{Name: "startups", PostsPerWeek: 2}}
	req.PostsPerWeek = 3

	result, err := newTestGenerator(11).Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var overLimit []string
	for _, w := range result.Warnings {
		if strings.Contains(w, "over its weekly limit") {
			overLimit = append(overLimit, w)
		}
	}
	if len(overLimit) != 1 {
		t.Fatalf("got %d over-limit warnings, want 1: %v", len(overLimit), result.Warnings)
	}
	if !strings.Contains(overLimit[0], "startups") {
		t.Errorf("warning doesn't name the subreddit: %q", overLimit[0])
	}
	if result.QualityScore < 0 || result.QualityScore > 10 {
		t.Errorf("score %v out of bounds", result.QualityScore)
	}
}

func TestGenerateSpecExample(t *testing.T) {
	req := Request{
		Company: types.Company{Name: "Example Co"},
		Personas: []types.Persona{
			{Name: "A", RedditUsername: "a_poster", Tone: types.ToneCasual},
			{Name: "B", RedditUsername: "b_poster", Tone: types.ToneProfessional},
		},
		Subreddits: []types.Subreddit{{Name: "saas", PostsPerWeek: 10}},
		Topics: []types.Topic{
			{Query: "choosing a CRM", Intent: types.IntentAdvice},
			{Query: "email marketing tools", Intent: types.IntentQuestion},
			{Query: "Notion vs Airtable", Intent: types.IntentReview},
		},
		PostsPerWeek: 7,
		WeekAnchor:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	result, err := newTestGenerator(3).Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	originals := originalsOf(result.Posts)
	if len(originals) != 7 {
		t.Fatalf("got %d originals, want 7", len(originals))
	}

	days := map[string]int{}
	for _, p := range originals {
		days[p.Date.Format("2006-01-02")]++
		if p.SubredditKey != "saas" {
			t.Errorf("post in %q, want saas", p.SubredditKey)
		}
		if p.Title == "" || p.Body == "" {
			t.Errorf("original has empty title or body")
		}
	}
	if len(days) != 7 {
		t.Errorf("originals cover %d days, want one per day", len(days))
	}

	for _, w := range result.Warnings {
		if strings.Contains(w, "over its weekly limit") {
			t.Errorf("unexpected over-limit warning: %q", w)
		}
	}
	if result.QualityScore < 0 || math.IsNaN(result.QualityScore) || math.IsInf(result.QualityScore, 0) {
		t.Errorf("score %v not finite and non-negative", result.QualityScore)
	}
}

func TestTemplateFallbackProvenance(t *testing.T) {
	result, err := newTestGenerator(8).Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, p := range result.Posts {
		if p.ContentSource != types.SourceTemplate {
			t.Errorf("post %s content source = %q, want template", p.ID, p.ContentSource)
		}
		if p.Kind == types.KindOriginal && p.TitleSource != types.SourceTemplate {
			t.Errorf("post %s title source = %q, want template", p.ID, p.TitleSource)
		}
		if p.Body == "" {
			t.Errorf("post %s has empty body", p.ID)
		}
	}
}

// titleOnlyProvider succeeds on titles and fails everything else, so one post
// ends up with mixed provenance.
type titleOnlyProvider struct{}

func (titleOnlyProvider) GenerateTitle(ctx context.Context, req generator.TitleRequest) (string, error) {
	return "A title from the wire about " + req.Topic, nil
}

func (titleOnlyProvider) GenerateBody(ctx context.Context, req generator.BodyRequest) (string, error) {
	return "", generator.ErrUnavailable
}

func (titleOnlyProvider) GenerateComment(ctx context.Context, req generator.CommentRequest) (string, error) {
	return "", generator.ErrUnavailable
}

func TestPerFieldProvenance(t *testing.T) {
	gen := New(titleOnlyProvider{}, rand.New(rand.NewSource(9)))
	result, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, p := range result.Posts {
		switch p.Kind {
		case types.KindOriginal:
			if p.TitleSource != types.SourceLLM {
				t.Errorf("original %s title source = %q, want %q", p.ID, p.TitleSource, types.SourceLLM)
			}
			if p.ContentSource != types.SourceTemplate {
				t.Errorf("original %s content source = %q, want %q", p.ID, p.ContentSource, types.SourceTemplate)
			}
			if !strings.HasPrefix(p.Title, "A title from the wire") {
				t.Errorf("original %s title %q didn't come from the provider", p.ID, p.Title)
			}
		case types.KindComment:
			if p.ContentSource != types.SourceTemplate {
				t.Errorf("comment %s content source = %q, want %q", p.ID, p.ContentSource, types.SourceTemplate)
			}
		}
		if p.Body == "" {
			t.Errorf("post %s has empty body", p.ID)
		}
	}
}

func TestNilProviderUsesTemplates(t *testing.T) {
	gen := New(nil, rand.New(rand.NewSource(4)))
	result, err := gen.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, p := range result.Posts {
		if p.ContentSource != types.SourceTemplate {
			t.Fatalf("nil provider produced source %q", p.ContentSource)
		}
	}
}

func TestValidationFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"one persona", func(r *Request) { r.Personas = r.Personas[:1] }},
		{"no subreddits", func(r *Request) { r.Subreddits = nil }},
		{"no topics", func(r *Request) { r.Topics = nil }},
		{"zero posts per week", func(r *Request) { r.PostsPerWeek = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest()
			tc.mutate(&req)

			_, err := newTestGenerator(1).Generate(context.Background(), req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Fatalf("got %T, want *ValidationError", err)
			}
		})
	}
}

func TestDuplicateHandleWarning(t *testing.T) {
	req := testRequest()
	req.Personas[1].RedditUsername = "Alice_Dev" // case-insensitive clash with persona 0

	result, err := newTestGenerator(2).Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "share reddit username") {
			found = true
		}
	}
	if !found {
		t.Errorf("no duplicate-handle warning in %v", result.Warnings)
	}
}

func TestReplyRollsPastCutoff(t *testing.T) {
	req := testRequest()
	gen := newTestGenerator(6)
	author := req.Personas[1]
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		parentHour, offset int
		wantDay, wantHour  int
	}{
		{12, 2, 0, 14},  // stays same day
		{19, 2, 0, 21},  // lands exactly on the cutoff
		{20, 2, 1, 9},   // 22:00 rolls to next morning
		{20, 6, 1, 13},  // 26:00 rolls to next afternoon
		{20, 7, 1, 14},  // latest possible slot, 27:00
	}
	for _, tc := range cases {
		parent := types.Post{
			ID:           "parent",
			PersonaKey:   personaKey(req.Personas[0]),
			SubredditKey: "webdev",
			Topic:        req.Topics[0].Query,
			Date:         monday,
			Hour:         tc.parentHour,
			Kind:         types.KindOriginal,
		}
		reply := gen.newReply(context.Background(), req, parent, author, tc.offset)

		wantDate := monday.AddDate(0, 0, tc.wantDay)
		if !reply.Date.Equal(wantDate) {
			t.Errorf("parent %d:00 + %dh: reply date %v, want %v",
				tc.parentHour, tc.offset, reply.Date, wantDate)
		}
		if reply.Hour != tc.wantHour {
			t.Errorf("parent %d:00 + %dh: reply hour %d, want %d",
				tc.parentHour, tc.offset, reply.Hour, tc.wantHour)
		}
		if !reply.ScheduledAt().After(parent.ScheduledAt()) {
			t.Errorf("parent %d:00 + %dh: reply at %v not after parent",
				tc.parentHour, tc.offset, reply.ScheduledAt())
		}
	}
}

func TestCommentScheduledAfterParent(t *testing.T) {
	result, err := newTestGenerator(21).Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	byID := map[string]types.Post{}
	for _, p := range result.Posts {
		byID[p.ID] = p
	}

	for _, p := range result.Posts {
		if p.Kind != types.KindComment {
			continue
		}
		parent := byID[p.ParentKey]
		if !p.ScheduledAt().After(parent.ScheduledAt()) {
			t.Errorf("comment at %v not after parent at %v", p.ScheduledAt(), parent.ScheduledAt())
		}
		if p.Hour < 0 || p.Hour > 23 {
			t.Errorf("comment hour %d out of range", p.Hour)
		}
	}
}
