package postgres

import (
	"context"
	"database/sql"

	"github.com/Caesar-design242/beacongen/internal/domain/quota"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/logger"
	"github.com/Caesar-design242/beacongen/internal/postgres"
	"github.com/Caesar-design242/beacongen/internal/types"
)

type quotaRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewQuotaRepository(client postgres.IClient, log *logger.Logger) quota.Repository {
	return &quotaRepository{
		client: client,
		log:    log,
	}
}

func (r *quotaRepository) Get(ctx context.Context, surveyorPrefix string, quarter types.Quarter) (*quota.Entry, error) {
	client := r.client.Querier(ctx)

	var entry quota.Entry
	err := client.GetContext(ctx, &entry,
		`SELECT id, surveyor_prefix, quarter, usage_count, created_at, updated_at
		 FROM quarterly_usage WHERE surveyor_prefix = $1 AND quarter = $2`,
		surveyorPrefix, quarter,
	)
	if err == sql.ErrNoRows {
		return &quota.Entry{SurveyorPrefix: surveyorPrefix, Quarter: quarter}, nil
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read quarterly usage").
			Mark(ierr.ErrDatabase)
	}
	return &entry, nil
}

// Reserve performs the check-and-increment as a single guarded upsert so the
// quota cap can never be raced past. The WHERE clause rejects the increment
// when it would exceed the cap; zero rows back means the reservation lost.
func (r *quotaRepository) Reserve(ctx context.Context, surveyorPrefix string, quarter types.Quarter, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, ierr.NewError("quantity must be positive").
			WithHintf("Requested quantity %d is not a positive integer", quantity).
			Mark(ierr.ErrInvalidQuantity)
	}

	client := r.client.Querier(ctx)

	r.log.Debugw("reserving quarterly quota",
		"surveyor_prefix", surveyorPrefix,
		"quarter", quarter,
		"quantity", quantity,
	)

	// The upsert's guard only protects the update arm, so an oversized first
	// reservation must be rejected before any row is inserted.
	if quantity > types.QuarterlyCodeLimit {
		return 0, r.quotaExceeded(ctx, surveyorPrefix, quarter, quantity)
	}

	var usage int
	err := client.QueryRowxContext(ctx,
		`INSERT INTO quarterly_usage (id, surveyor_prefix, quarter, usage_count)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (surveyor_prefix, quarter)
		 DO UPDATE SET usage_count = quarterly_usage.usage_count + EXCLUDED.usage_count,
		               updated_at  = now()
		 WHERE quarterly_usage.usage_count + EXCLUDED.usage_count <= $5
		 RETURNING usage_count`,
		types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTA_ENTRY),
		surveyorPrefix, quarter, quantity, types.QuarterlyCodeLimit,
	).Scan(&usage)

	if err == sql.ErrNoRows {
		return 0, r.quotaExceeded(ctx, surveyorPrefix, quarter, quantity)
	}
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to reserve quarterly quota").
			Mark(ierr.ErrDatabase)
	}
	return usage, nil
}

func (r *quotaRepository) quotaExceeded(ctx context.Context, surveyorPrefix string, quarter types.Quarter, quantity int) error {
	entry, err := r.Get(ctx, surveyorPrefix, quarter)
	if err != nil {
		return err
	}
	return ierr.NewError("quarterly quota exceeded").
		WithHintf("Requested %d codes but only %d remain this quarter", quantity, types.RemainingQuota(entry.UsageCount)).
		WithReportableDetails(map[string]any{
			"surveyor_prefix": surveyorPrefix,
			"quarter":         quarter,
			"usage":           entry.UsageCount,
			"remaining":       types.RemainingQuota(entry.UsageCount),
			"requested":       quantity,
		}).
		Mark(ierr.ErrQuotaExceeded)
}
