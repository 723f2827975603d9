package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedCompany(t *testing.T, s *Store) *types.Company {
	t.Helper()
	c := &types.Company{Name: "Acme", Description: "Makes things"}
	if err := s.CreateCompany(c); err != nil {
		t.Fatalf("CreateCompany failed: %v", err)
	}
	return c
}

func TestCompanyCRUD(t *testing.T) {
	s := newTestStore(t)

	c := seedCompany(t, s)
	if c.ID == "" {
		t.Fatal("CreateCompany didn't assign an id")
	}

	got, err := s.GetCompany(c.ID)
	if err != nil {
		t.Fatalf("GetCompany failed: %v", err)
	}
	if got.Name != "Acme" {
		t.Errorf("got name %q, want Acme", got.Name)
	}

	companies, err := s.ListCompanies()
	if err != nil {
		t.Fatalf("ListCompanies failed: %v", err)
	}
	if len(companies) != 1 {
		t.Errorf("got %d companies, want 1", len(companies))
	}

	if err := s.DeleteCompany(c.ID); err != nil {
		t.Fatalf("DeleteCompany failed: %v", err)
	}
	if _, err := s.GetCompany(c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete, GetCompany error = %v, want ErrNotFound", err)
	}
}

func TestGetCompanyNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetCompany("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestPersonaRoundTrip(t *testing.T) {
	s := newTestStore(t)
	c := seedCompany(t, s)

	p := &types.Persona{
		CompanyID:      c.ID,
		Name:           "Alice",
		RedditUsername: "alice_dev",
		Bio:            "Backend engineer",
		Expertise:      []string{"go", "postgres"},
		Tone:           types.ToneTechnical,
	}
	if err := s.CreatePersona(p); err != nil {
		t.Fatalf("CreatePersona failed: %v", err)
	}

	personas, err := s.ListPersonas(c.ID)
	if err != nil {
		t.Fatalf("ListPersonas failed: %v", err)
	}
	if len(personas) != 1 {
		t.Fatalf("got %d personas, want 1", len(personas))
	}
	got := personas[0]
	if got.Tone != types.ToneTechnical {
		t.Errorf("tone = %q", got.Tone)
	}
	if len(got.Expertise) != 2 || got.Expertise[0] != "go" {
		t.Errorf("expertise = %v", got.Expertise)
	}

	if err := s.DeletePersona(p.ID); err != nil {
		t.Fatalf("DeletePersona failed: %v", err)
	}
	if err := s.DeletePersona(p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestSubredditAndTopicRoundTrip(t *testing.T) {
	s := newTestStore(t)
	c := seedCompany(t, s)

	sub := &types.Subreddit{CompanyID: c.ID, Name: "webdev", PostsPerWeek: 3}
	if err := s.CreateSubreddit(sub); err != nil {
		t.Fatalf("CreateSubreddit failed: %v", err)
	}
	subs, err := s.ListSubreddits(c.ID)
	if err != nil {
		t.Fatalf("ListSubreddits failed: %v", err)
	}
	if len(subs) != 1 || subs[0].PostsPerWeek != 3 {
		t.Errorf("subs = %+v", subs)
	}

	topic := &types.Topic{CompanyID: c.ID, Query: "best CRM", Intent: types.IntentAdvice}
	if err := s.CreateTopic(topic); err != nil {
		t.Fatalf("CreateTopic failed: %v", err)
	}
	topics, err := s.ListTopics(c.ID)
	if err != nil {
		t.Fatalf("ListTopics failed: %v", err)
	}
	if len(topics) != 1 || topics[0].Intent != types.IntentAdvice {
		t.Errorf("topics = %+v", topics)
	}
}

func TestSaveCalendarRoundTrip(t *testing.T) {
	s := newTestStore(t)
	c := seedCompany(t, s)

	weekStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cal := &types.Calendar{
		ID:           "cal-1",
		CompanyID:    c.ID,
		WeekStart:    weekStart,
		WeekEnd:      weekStart.AddDate(0, 0, 6),
		PostsPerWeek: 2,
		QualityScore: 7.5,
		GeneratedAt:  time.Now().UTC(),
	}
	posts := []types.Post{
		{
			ID: "p2", PersonaKey: "alice", SubredditKey: "webdev",
			Title: "Later post", Body: "b", Date: weekStart.AddDate(0, 0, 1),
			Hour: 10, Minute: 15, Kind: types.KindOriginal, Status: types.StatusPending,
			TitleSource: types.SourceTemplate, ContentSource: types.SourceTemplate,
		},
		{
			ID: "p1", PersonaKey: "bob", SubredditKey: "webdev",
			Title: "Earlier post", Body: "b", Date: weekStart,
			Hour: 9, Minute: 0, Kind: types.KindOriginal, Status: types.StatusPending,
			TitleSource: types.SourceTemplate, ContentSource: types.SourceTemplate,
		},
		{
			ID: "p3", PersonaKey: "bob", SubredditKey: "webdev",
			Body: "nice post", Date: weekStart.AddDate(0, 0, 1),
			Hour: 14, Minute: 30, Kind: types.KindComment, ParentKey: "p2",
			Status: types.StatusPending, ContentSource: types.SourceTemplate,
		},
	}

	if err := s.SaveCalendar(cal, posts); err != nil {
		t.Fatalf("SaveCalendar failed: %v", err)
	}

	calendars, err := s.ListCalendars(c.ID)
	if err != nil {
		t.Fatalf("ListCalendars failed: %v", err)
	}
	if len(calendars) != 1 || calendars[0].QualityScore != 7.5 {
		t.Fatalf("calendars = %+v", calendars)
	}

	got, err := s.ListPosts("cal-1")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d posts, want 3", len(got))
	}
	// Schedule order, not insert order.
	if got[0].ID != "p1" || got[1].ID != "p2" || got[2].ID != "p3" {
		t.Errorf("post order = %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[2].ParentKey != "p2" || got[2].Kind != types.KindComment {
		t.Errorf("comment round-trip broken: %+v", got[2])
	}
}

func TestDeleteCompanyCascades(t *testing.T) {
	s := newTestStore(t)
	c := seedCompany(t, s)

	p := &types.Persona{CompanyID: c.ID, Name: "Alice", RedditUsername: "alice", Tone: types.ToneCasual}
	if err := s.CreatePersona(p); err != nil {
		t.Fatalf("CreatePersona failed: %v", err)
	}
	cal := &types.Calendar{ID: "cal-1", CompanyID: c.ID, WeekStart: time.Now(), WeekEnd: time.Now(), GeneratedAt: time.Now()}
	if err := s.SaveCalendar(cal, []types.Post{{ID: "p1", PersonaKey: "alice", SubredditKey: "s", Body: "b", Date: time.Now(), Kind: types.KindOriginal, Status: types.StatusPending}}); err != nil {
		t.Fatalf("SaveCalendar failed: %v", err)
	}

	if err := s.DeleteCompany(c.ID); err != nil {
		t.Fatalf("DeleteCompany failed: %v", err)
	}

	personas, err := s.ListPersonas(c.ID)
	if err != nil {
		t.Fatalf("ListPersonas failed: %v", err)
	}
	if len(personas) != 0 {
		t.Errorf("personas survived cascade: %+v", personas)
	}
	posts, err := s.ListPosts("cal-1")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("posts survived cascade: %+v", posts)
	}
}
