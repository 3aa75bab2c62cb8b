package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/Caesar-design242/beacongen/internal/domain/issuance"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/logger"
	"github.com/Caesar-design242/beacongen/internal/postgres"
	"github.com/Caesar-design242/beacongen/internal/types"
	"github.com/samber/lo"
)

type issuanceRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewIssuanceRepository(client postgres.IClient, log *logger.Logger) issuance.Repository {
	return &issuanceRepository{
		client: client,
		log:    log,
	}
}

// issuanceRow is the storage shape; codes are newline-joined in one column.
type issuanceRow struct {
	ID             string        `db:"id"`
	SurveyorPrefix string        `db:"surveyor_prefix"`
	SurveyorName   string        `db:"surveyor_name"`
	BeaconCodes    string        `db:"beacon_codes"`
	Quantity       int           `db:"quantity"`
	Quarter        types.Quarter `db:"quarter"`
	IssuedAt       time.Time     `db:"issued_at"`
}

func (r *issuanceRepository) Append(ctx context.Context, record *issuance.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	client := r.client.Querier(ctx)

	r.log.Debugw("appending issuance record",
		"record_id", record.ID,
		"surveyor_prefix", record.SurveyorPrefix,
		"quantity", record.Quantity,
		"quarter", record.Quarter,
	)

	_, err := client.ExecContext(ctx,
		`INSERT INTO issuance_log (id, surveyor_prefix, surveyor_name, beacon_codes, quantity, quarter, issued_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID,
		record.SurveyorPrefix,
		record.SurveyorName,
		strings.Join(record.Codes, "\n"),
		record.Quantity,
		record.Quarter,
		record.IssuedAt,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to append issuance record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *issuanceRepository) ListBySurveyor(ctx context.Context, surveyorPrefix string) ([]*issuance.Record, error) {
	client := r.client.Querier(ctx)

	var rows []issuanceRow
	err := client.SelectContext(ctx, &rows,
		`SELECT id, surveyor_prefix, surveyor_name, beacon_codes, quantity, quarter, issued_at
		 FROM issuance_log
		 WHERE surveyor_prefix = $1
		 ORDER BY issued_at DESC`,
		surveyorPrefix,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list issuance records").
			Mark(ierr.ErrDatabase)
	}

	return lo.Map(rows, func(row issuanceRow, _ int) *issuance.Record {
		return &issuance.Record{
			ID:             row.ID,
			SurveyorPrefix: row.SurveyorPrefix,
			SurveyorName:   row.SurveyorName,
			Codes:          strings.Split(row.BeaconCodes, "\n"),
			Quantity:       row.Quantity,
			Quarter:        row.Quarter,
			IssuedAt:       row.IssuedAt,
		}
	}), nil
}
