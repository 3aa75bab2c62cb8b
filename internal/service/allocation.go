package service

import (
	"context"
	"time"

	"github.com/Caesar-design242/beacongen/internal/api/dto"
	"github.com/Caesar-design242/beacongen/internal/domain/issuance"
	"github.com/Caesar-design242/beacongen/internal/domain/sequence"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/types"
	"github.com/samber/lo"
)

// casMaxAttempts bounds the compare-and-swap retry loop on the sequence
// cursor. Conflicts mean another allocation advanced the cursor first; the
// loop re-reads and retries rather than blocking.
const casMaxAttempts = 8

// AllocationService is the single entry point for issuing beacon codes. One
// Allocate call composes the quota reservation, the sequence allocation and
// the issuance log append into one all-or-nothing operation.
type AllocationService interface {
	Allocate(ctx context.Context, req dto.AllocateBeaconsRequest) (*dto.AllocateBeaconsResponse, error)
	CurrentUsage(ctx context.Context, surveyorPrefix string) (*dto.UsageResponse, error)
	History(ctx context.Context, surveyorPrefix string) (*dto.ListIssuanceRecordsResponse, error)
}

type allocationService struct {
	ServiceParams
}

func NewAllocationService(params ServiceParams) AllocationService {
	return &allocationService{
		ServiceParams: params,
	}
}

func (s *allocationService) Allocate(ctx context.Context, req dto.AllocateBeaconsRequest) (*dto.AllocateBeaconsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	surveyorService := NewSurveyorService(s.ServiceParams)
	sv, err := surveyorService.Resolve(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}

	// The quarter is fixed at request start for the whole batch; a request
	// straddling a quarter rollover still counts against the quarter it
	// started in.
	now := time.Now().UTC()
	quarter := types.CurrentQuarter(now)

	var (
		codes    []string
		usage    int
		reserved bool
	)
	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		// Reserve before allocating so a partial failure can only leave
		// quota counted without codes issued, never codes issued without
		// quota counted.
		newUsage, err := s.QuotaRepo.Reserve(ctx, sv.Prefix, quarter, req.Quantity)
		if err != nil {
			return err
		}
		reserved = true
		usage = newUsage

		rawCodes, err := s.allocateCodes(ctx, req.Quantity)
		if err != nil {
			return err
		}
		codes = lo.Map(rawCodes, func(raw string, _ int) string {
			return sequence.FormatCode(raw, sv.Prefix)
		})

		record := &issuance.Record{
			ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ISSUANCE),
			SurveyorPrefix: sv.Prefix,
			SurveyorName:   sv.Name,
			Codes:          codes,
			Quantity:       req.Quantity,
			Quarter:        quarter,
			IssuedAt:       now,
		}
		return s.IssuanceRepo.Append(ctx, record)
	})
	if err != nil {
		// Quota refusals and an exhausted sequence are clean failures: the
		// transaction rolls the reservation back and the caller gets the
		// original error class. Only failures past both gates can strand a
		// counted reservation on a store without rollback.
		if reserved && !ierr.IsQuotaExceeded(err) && !ierr.IsSequenceExhausted(err) {
			// A transactional store rolls the reservation back; a
			// non-transactional one is now ahead of the issuance log and
			// needs manual reconciliation.
			s.Logger.Errorw("allocation failed after quota reservation",
				"surveyor_prefix", sv.Prefix,
				"quarter", quarter,
				"quantity", req.Quantity,
				"error", err,
			)
			return nil, ierr.WithError(err).
				WithHint("Allocation failed after the quota reservation; quota and issuance may need reconciliation").
				Mark(ierr.ErrPartialCommit)
		}
		return nil, err
	}

	s.Logger.Infow("issued beacon codes",
		"surveyor_prefix", sv.Prefix,
		"quarter", quarter,
		"quantity", req.Quantity,
		"first_code", codes[0],
		"last_code", codes[len(codes)-1],
		"usage", usage,
	)

	return &dto.AllocateBeaconsResponse{
		SurveyorPrefix: sv.Prefix,
		SurveyorName:   sv.Name,
		Codes:          codes,
		Quantity:       req.Quantity,
		Quarter:        quarter,
		Usage:          usage,
		Remaining:      types.RemainingQuota(usage),
	}, nil
}

// allocateCodes reserves the next quantity raw codes from the global
// sequence via a compare-and-swap retry loop. The codes and the cursor
// update commit together; a conflicting writer forces a re-read so two
// allocations can never advance from the same cursor snapshot.
func (s *allocationService) allocateCodes(ctx context.Context, quantity int) ([]string, error) {
	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		current, err := s.SequenceRepo.Get(ctx)
		if err != nil {
			return nil, err
		}

		next := *current
		codes, err := next.Next(quantity)
		if err != nil {
			return nil, err
		}

		if err := s.SequenceRepo.CompareAndSwap(ctx, current, &next); err != nil {
			if ierr.IsVersionConflict(err) {
				continue
			}
			return nil, err
		}
		return codes, nil
	}

	return nil, ierr.NewError("sequence cursor contention").
		WithHintf("Could not advance the sequence cursor after %d attempts", casMaxAttempts).
		Mark(ierr.ErrVersionConflict)
}

func (s *allocationService) CurrentUsage(ctx context.Context, surveyorPrefix string) (*dto.UsageResponse, error) {
	sv, err := s.SurveyorRepo.GetByPrefix(ctx, surveyorPrefix)
	if err != nil {
		return nil, err
	}

	quarter := types.CurrentQuarter(time.Now().UTC())
	entry, err := s.QuotaRepo.Get(ctx, sv.Prefix, quarter)
	if err != nil {
		return nil, err
	}

	return &dto.UsageResponse{
		SurveyorPrefix: sv.Prefix,
		Quarter:        quarter,
		Usage:          entry.UsageCount,
		Remaining:      types.RemainingQuota(entry.UsageCount),
	}, nil
}

func (s *allocationService) History(ctx context.Context, surveyorPrefix string) (*dto.ListIssuanceRecordsResponse, error) {
	sv, err := s.SurveyorRepo.GetByPrefix(ctx, surveyorPrefix)
	if err != nil {
		return nil, err
	}

	records, err := s.IssuanceRepo.ListBySurveyor(ctx, sv.Prefix)
	if err != nil {
		return nil, err
	}

	items := lo.Map(records, func(r *issuance.Record, _ int) *dto.IssuanceRecordResponse {
		return &dto.IssuanceRecordResponse{Record: r}
	})
	return &dto.ListIssuanceRecordsResponse{
		Items: items,
		Total: len(items),
	}, nil
}
