package storage

import (
	"context"
	"database/sql"
	"errors"

	"galatea-ai-backend/internal/models"
)

var ErrNotFound = errors.New("model not found")

func (s *Store) Insert(ctx context.Context, prompt, imageURL, profile string) (int64, error) {
	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO models(prompt, image_url, profile) VALUES(?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, prompt, imageURL, profile)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID returns ErrNotFound when no row has the id.
func (s *Store) GetByID(ctx context.Context, id int64) (models.GeneratedProfile, error) {
	var p models.GeneratedProfile
	var prompt, imageURL, profile sql.NullString

	row := s.db.QueryRowContext(ctx, "SELECT id, prompt, image_url, profile FROM models WHERE id = ?", id)
	if err := row.Scan(&p.ID, &prompt, &imageURL, &profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, ErrNotFound
		}
		return p, err
	}
	p.Prompt = prompt.String
	p.ImageURL = imageURL.String
	p.Profile = profile.String
	return p, nil
}

// GetAll returns every row in the table's natural order. The result is
// never nil.
func (s *Store) GetAll(ctx context.Context) ([]models.GeneratedProfile, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, prompt, image_url, profile FROM models")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]models.GeneratedProfile, 0)
	for rows.Next() {
		var p models.GeneratedProfile
		var prompt, imageURL, profile sql.NullString
		if err := rows.Scan(&p.ID, &prompt, &imageURL, &profile); err != nil {
			return nil, err
		}
		p.Prompt = prompt.String
		p.ImageURL = imageURL.String
		p.Profile = profile.String
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}
