package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Create(ctx context.Context, name string) (*Profile, error) {
	now := time.Now().UTC()
	p := &Profile{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, name, country, year_grade, age, created_at, updated_at)
		 VALUES (?, ?, '', '', 0, ?, ?)`,
		p.ID, p.Name, now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

func (r *profileRepo) Get(ctx context.Context, id string) (*Profile, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, name, country, year_grade, age, created_at, updated_at
		 FROM profiles WHERE id = ?`, id))
}

func (r *profileRepo) ByName(ctx context.Context, name string) (*Profile, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, name, country, year_grade, age, created_at, updated_at
		 FROM profiles WHERE name = ?`, name))
}

func (r *profileRepo) List(ctx context.Context) ([]*Profile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, country, year_grade, age, created_at, updated_at
		 FROM profiles ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		var p Profile
		var created, updated int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Country, &p.YearGrade, &p.Age, &created, &updated); err != nil {
			return nil, err
		}
		p.CreatedAt = time.UnixMilli(created).UTC()
		p.UpdatedAt = time.UnixMilli(updated).UTC()
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}

func (r *profileRepo) SetCurriculum(ctx context.Context, id, country, yearGrade string, age int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET country = ?, year_grade = ?, age = ?, updated_at = ?
		 WHERE id = ?`,
		country, yearGrade, age, time.Now().UTC().UnixMilli(), id,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *profileRepo) scanOne(row *sql.Row) (*Profile, error) {
	var p Profile
	var created, updated int64
	err := row.Scan(&p.ID, &p.Name, &p.Country, &p.YearGrade, &p.Age, &created, &updated)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt = time.UnixMilli(created).UTC()
	p.UpdatedAt = time.UnixMilli(updated).UTC()
	return &p, nil
}
