package store

import (
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// Roster operations: the personas, subreddits and topics scoped under one
// company, loaded as a unit before a generation run.

// CreatePersona inserts a persona, assigning an id when it doesn't have one.
func (s *Store) CreatePersona(p *types.Persona) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	expertiseJSON, _ := json.Marshal(p.Expertise)
	_, err := s.db.Exec(`
		INSERT INTO personas (id, company_id, name, reddit_username, bio, expertise, tone)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.CompanyID, p.Name, p.RedditUsername, p.Bio, string(expertiseJSON), string(p.Tone))
	return err
}

// ListPersonas returns a company's personas.
func (s *Store) ListPersonas(companyID string) ([]types.Persona, error) {
	rows, err := s.db.Query(`
		SELECT id, company_id, name, reddit_username, bio, expertise, tone
		FROM personas WHERE company_id = ? ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var personas []types.Persona
	for rows.Next() {
		var p types.Persona
		var expertiseJSON, tone string
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.RedditUsername, &p.Bio, &expertiseJSON, &tone); err != nil {
			return nil, err
		}
		json.Unmarshal([]byte(expertiseJSON), &p.Expertise)
		p.Tone = types.Tone(tone)
		personas = append(personas, p)
	}
	return personas, rows.Err()
}

// DeletePersona removes a persona by id.
func (s *Store) DeletePersona(id string) error {
	return s.deleteByID("personas", id)
}

// CreateSubreddit inserts a subreddit, assigning an id when it doesn't have one.
func (s *Store) CreateSubreddit(sub *types.Subreddit) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`
		INSERT INTO subreddits (id, company_id, name, description, posts_per_week)
		VALUES (?, ?, ?, ?, ?)`,
		sub.ID, sub.CompanyID, sub.Name, sub.Description, sub.PostsPerWeek)
	return err
}

// ListSubreddits returns a company's target subreddits.
func (s *Store) ListSubreddits(companyID string) ([]types.Subreddit, error) {
	rows, err := s.db.Query(`
		SELECT id, company_id, name, description, posts_per_week
		FROM subreddits WHERE company_id = ? ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []types.Subreddit
	for rows.Next() {
		var sub types.Subreddit
		if err := rows.Scan(&sub.ID, &sub.CompanyID, &sub.Name, &sub.Description, &sub.PostsPerWeek); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// DeleteSubreddit removes a subreddit by id.
func (s *Store) DeleteSubreddit(id string) error {
	return s.deleteByID("subreddits", id)
}

// CreateTopic inserts a topic, assigning an id when it doesn't have one.
func (s *Store) CreateTopic(t *types.Topic) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`
		INSERT INTO topics (id, company_id, query, intent)
		VALUES (?, ?, ?, ?)`,
		t.ID, t.CompanyID, t.Query, string(t.Intent))
	return err
}

// ListTopics returns a company's topics.
func (s *Store) ListTopics(companyID string) ([]types.Topic, error) {
	rows, err := s.db.Query(`
		SELECT id, company_id, query, intent
		FROM topics WHERE company_id = ? ORDER BY query`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []types.Topic
	for rows.Next() {
		var t types.Topic
		var intent string
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Query, &intent); err != nil {
			return nil, err
		}
		t.Intent = types.Intent(intent)
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// DeleteTopic removes a topic by id.
func (s *Store) DeleteTopic(id string) error {
	return s.deleteByID("topics", id)
}

func (s *Store) deleteByID(table, id string) error {
	var res sql.Result
	var err error
	switch table {
	case "personas":
		res, err = s.db.Exec(`DELETE FROM personas WHERE id = ?`, id)
	case "subreddits":
		res, err = s.db.Exec(`DELETE FROM subreddits WHERE id = ?`, id)
	case "topics":
		res, err = s.db.Exec(`DELETE FROM topics WHERE id = ?`, id)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
