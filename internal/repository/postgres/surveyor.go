package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Caesar-design242/beacongen/internal/domain/surveyor"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/logger"
	"github.com/Caesar-design242/beacongen/internal/postgres"
	"github.com/lib/pq"
)

// pq error code for unique constraint violations
const pqUniqueViolation = "23505"

type surveyorRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewSurveyorRepository(client postgres.IClient, log *logger.Logger) surveyor.Repository {
	return &surveyorRepository{
		client: client,
		log:    log,
	}
}

const surveyorColumns = `id, name, prefix, company, address, phone, email, status, created_at, updated_at, created_by, updated_by`

func (r *surveyorRepository) Create(ctx context.Context, s *surveyor.Surveyor) error {
	if err := s.Validate(); err != nil {
		return err
	}

	client := r.client.Querier(ctx)

	r.log.Debugw("creating surveyor",
		"surveyor_id", s.ID,
		"prefix", s.Prefix,
		"name", s.Name,
	)

	_, err := client.ExecContext(ctx,
		`INSERT INTO surveyors (`+surveyorColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.Name, s.Prefix, s.Company, s.Address, s.Phone, s.Email,
		s.Status, s.CreatedAt, s.UpdatedAt, s.CreatedBy, s.UpdatedBy,
	)
	if err != nil {
		var pqErr *pq.Error
		if ierr.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ierr.NewError("surveyor prefix already registered").
				WithHintf("A surveyor with prefix %q already exists", s.Prefix).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create surveyor").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *surveyorRepository) GetByPrefix(ctx context.Context, prefix string) (*surveyor.Surveyor, error) {
	client := r.client.Querier(ctx)

	var s surveyor.Surveyor
	err := client.GetContext(ctx, &s,
		`SELECT `+surveyorColumns+` FROM surveyors WHERE UPPER(prefix) = $1`,
		strings.ToUpper(prefix),
	)
	if err == sql.ErrNoRows {
		return nil, ierr.NewError("surveyor not found").
			WithHintf("No surveyor registered with prefix %q", prefix).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get surveyor").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *surveyorRepository) FindByName(ctx context.Context, name string) (*surveyor.Surveyor, error) {
	client := r.client.Querier(ctx)

	var s surveyor.Surveyor
	err := client.GetContext(ctx, &s,
		`SELECT `+surveyorColumns+` FROM surveyors WHERE name ILIKE $1 ORDER BY created_at LIMIT 1`,
		"%"+name+"%",
	)
	if err == sql.ErrNoRows {
		return nil, ierr.NewError("surveyor not found").
			WithHintf("No surveyor name matches %q", name).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to find surveyor").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *surveyorRepository) List(ctx context.Context) ([]*surveyor.Surveyor, error) {
	client := r.client.Querier(ctx)

	var surveyors []*surveyor.Surveyor
	err := client.SelectContext(ctx, &surveyors,
		`SELECT `+surveyorColumns+` FROM surveyors ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list surveyors").
			Mark(ierr.ErrDatabase)
	}
	return surveyors, nil
}
