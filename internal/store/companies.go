package store

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// CreateCompany inserts a company, assigning an id when it doesn't have one.
func (s *Store) CreateCompany(c *types.Company) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`
		INSERT INTO companies (id, name, description, website, industry, audience)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Description, c.Website, c.Industry, c.Audience)
	return err
}

// GetCompany retrieves a company by id.
func (s *Store) GetCompany(id string) (*types.Company, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, website, industry, audience
		FROM companies WHERE id = ?`, id)

	var c types.Company
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.Industry, &c.Audience)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCompanies returns all companies ordered by creation time.
func (s *Store) ListCompanies() ([]types.Company, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, website, industry, audience
		FROM companies ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []types.Company
	for rows.Next() {
		var c types.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.Industry, &c.Audience); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// DeleteCompany removes a company and everything scoped under it.
func (s *Store) DeleteCompany(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM posts WHERE calendar_id IN (SELECT id FROM calendars WHERE company_id = ?)`,
		`DELETE FROM calendars WHERE company_id = ?`,
		`DELETE FROM personas WHERE company_id = ?`,
		`DELETE FROM subreddits WHERE company_id = ?`,
		`DELETE FROM topics WHERE company_id = ?`,
	} {
		if _, err := tx.Exec(q, id); err != nil {
			return err
		}
	}

	res, err := tx.Exec(`DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}
