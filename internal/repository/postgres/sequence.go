package postgres

import (
	"context"
	"database/sql"

	"github.com/Caesar-design242/beacongen/internal/domain/sequence"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/logger"
	"github.com/Caesar-design242/beacongen/internal/postgres"
)

// cursorRowID is the fixed primary key of the singleton cursor row.
const cursorRowID = 1

type sequenceRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewSequenceRepository(client postgres.IClient, log *logger.Logger) sequence.Repository {
	return &sequenceRepository{
		client: client,
		log:    log,
	}
}

func (r *sequenceRepository) Get(ctx context.Context) (*sequence.Cursor, error) {
	client := r.client.Querier(ctx)

	var cursor sequence.Cursor
	err := client.GetContext(ctx, &cursor,
		`SELECT current_alpha, current_number, updated_at FROM beacon_cursor WHERE id = $1`,
		cursorRowID,
	)
	if err == nil {
		return &cursor, nil
	}
	if err != sql.ErrNoRows {
		return nil, ierr.WithError(err).
			WithHint("Failed to read sequence cursor").
			Mark(ierr.ErrDatabase)
	}

	// First use: seed the initial cursor. A concurrent seeder is harmless,
	// ON CONFLICT keeps whichever row landed first.
	seed := sequence.NewCursor()
	_, err = client.ExecContext(ctx,
		`INSERT INTO beacon_cursor (id, current_alpha, current_number)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO NOTHING`,
		cursorRowID, seed.Alpha, seed.Number,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to seed sequence cursor").
			Mark(ierr.ErrDatabase)
	}

	err = client.GetContext(ctx, &cursor,
		`SELECT current_alpha, current_number, updated_at FROM beacon_cursor WHERE id = $1`,
		cursorRowID,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read sequence cursor").
			Mark(ierr.ErrDatabase)
	}
	return &cursor, nil
}

func (r *sequenceRepository) CompareAndSwap(ctx context.Context, old, next *sequence.Cursor) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("advancing sequence cursor",
		"from_alpha", old.Alpha,
		"from_number", old.Number,
		"to_alpha", next.Alpha,
		"to_number", next.Number,
	)

	res, err := client.ExecContext(ctx,
		`UPDATE beacon_cursor
		 SET current_alpha = $1, current_number = $2, updated_at = now()
		 WHERE id = $3 AND current_alpha = $4 AND current_number = $5`,
		next.Alpha, next.Number, cursorRowID, old.Alpha, old.Number,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update sequence cursor").
			Mark(ierr.ErrDatabase)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update sequence cursor").
			Mark(ierr.ErrDatabase)
	}
	if affected == 0 {
		return ierr.NewError("sequence cursor changed concurrently").
			WithHint("Another allocation advanced the cursor first").
			WithReportableDetails(map[string]any{
				"expected_alpha":  old.Alpha,
				"expected_number": old.Number,
			}).
			Mark(ierr.ErrVersionConflict)
	}
	return nil
}
