package store

import (
	"database/sql"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// SaveCalendar persists a generated calendar and all its posts in one
// transaction.
func (s *Store) SaveCalendar(cal *types.Calendar, posts []types.Post) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO calendars (id, company_id, week_start, week_end, posts_per_week, quality_score, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		cal.ID, cal.CompanyID, cal.WeekStart, cal.WeekEnd, cal.PostsPerWeek, cal.QualityScore, cal.GeneratedAt)
	if err != nil {
		return err
	}

	for _, p := range posts {
		_, err = tx.Exec(`
			INSERT INTO posts (id, calendar_id, persona_key, subreddit_key, title, body, topic,
				date, hour, minute, kind, parent_key, status, title_source, content_source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, cal.ID, p.PersonaKey, p.SubredditKey, p.Title, p.Body, p.Topic,
			p.Date, p.Hour, p.Minute, string(p.Kind), p.ParentKey, p.Status,
			p.TitleSource, p.ContentSource)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetCalendar retrieves a calendar by id.
func (s *Store) GetCalendar(id string) (*types.Calendar, error) {
	row := s.db.QueryRow(`
		SELECT id, company_id, week_start, week_end, posts_per_week, quality_score, generated_at
		FROM calendars WHERE id = ?`, id)

	var c types.Calendar
	err := row.Scan(&c.ID, &c.CompanyID, &c.WeekStart, &c.WeekEnd, &c.PostsPerWeek, &c.QualityScore, &c.GeneratedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCalendars returns a company's calendars, newest first.
func (s *Store) ListCalendars(companyID string) ([]types.Calendar, error) {
	rows, err := s.db.Query(`
		SELECT id, company_id, week_start, week_end, posts_per_week, quality_score, generated_at
		FROM calendars WHERE company_id = ? ORDER BY week_start DESC`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calendars []types.Calendar
	for rows.Next() {
		var c types.Calendar
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.WeekStart, &c.WeekEnd, &c.PostsPerWeek, &c.QualityScore, &c.GeneratedAt); err != nil {
			return nil, err
		}
		calendars = append(calendars, c)
	}
	return calendars, rows.Err()
}

// ListPosts returns a calendar's posts in schedule order.
func (s *Store) ListPosts(calendarID string) ([]types.Post, error) {
	rows, err := s.db.Query(`
		SELECT id, calendar_id, persona_key, subreddit_key, title, body, topic,
			date, hour, minute, kind, parent_key, status, title_source, content_source
		FROM posts WHERE calendar_id = ?
		ORDER BY date, hour, minute`, calendarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []types.Post
	for rows.Next() {
		var p types.Post
		var kind string
		err := rows.Scan(&p.ID, &p.CalendarID, &p.PersonaKey, &p.SubredditKey, &p.Title, &p.Body, &p.Topic,
			&p.Date, &p.Hour, &p.Minute, &kind, &p.ParentKey, &p.Status, &p.TitleSource, &p.ContentSource)
		if err != nil {
			return nil, err
		}
		p.Kind = types.PostKind(kind)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
