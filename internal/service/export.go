package service

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	ierr "github.com/Caesar-design242/beacongen/internal/errors"
)

type ExportService interface {
	// ExportHistoryCSV streams the surveyor's issuance history as CSV,
	// one row per individual beacon code, newest batch first.
	ExportHistoryCSV(ctx context.Context, surveyorPrefix string, w io.Writer) error
}

type exportService struct {
	ServiceParams
}

func NewExportService(params ServiceParams) ExportService {
	return &exportService{
		ServiceParams: params,
	}
}

func (s *exportService) ExportHistoryCSV(ctx context.Context, surveyorPrefix string, w io.Writer) error {
	sv, err := s.SurveyorRepo.GetByPrefix(ctx, surveyorPrefix)
	if err != nil {
		return err
	}

	records, err := s.IssuanceRepo.ListBySurveyor(ctx, sv.Prefix)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Beacon Code", "Issued At", "Quarter"}); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to write CSV export").
			Mark(ierr.ErrSystem)
	}

	for _, record := range records {
		issuedAt := record.IssuedAt.UTC().Format(time.RFC3339)
		for _, code := range record.Codes {
			if err := writer.Write([]string{code, issuedAt, record.Quarter.String()}); err != nil {
				return ierr.WithError(err).
					WithHint("Failed to write CSV export").
					Mark(ierr.ErrSystem)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to flush CSV export").
			Mark(ierr.ErrSystem)
	}
	return nil
}
