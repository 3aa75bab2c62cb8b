package service

import (
	"context"
	"strings"

	"github.com/Caesar-design242/beacongen/internal/api/dto"
	"github.com/Caesar-design242/beacongen/internal/domain/surveyor"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/samber/lo"
)

type SurveyorService interface {
	CreateSurveyor(ctx context.Context, req dto.CreateSurveyorRequest) (*dto.SurveyorResponse, error)
	// Resolve matches the identifier against the roster: case-insensitive
	// prefix match first, then case-insensitive substring match on name.
	Resolve(ctx context.Context, identifier string) (*surveyor.Surveyor, error)
	ListSurveyors(ctx context.Context) (*dto.ListSurveyorsResponse, error)
}

type surveyorService struct {
	ServiceParams
}

func NewSurveyorService(params ServiceParams) SurveyorService {
	return &surveyorService{
		ServiceParams: params,
	}
}

func (s *surveyorService) CreateSurveyor(ctx context.Context, req dto.CreateSurveyorRequest) (*dto.SurveyorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	surveyorModel := req.ToSurveyor(ctx)
	if err := s.SurveyorRepo.Create(ctx, surveyorModel); err != nil {
		return nil, err
	}

	s.Logger.Infow("registered surveyor",
		"surveyor_id", surveyorModel.ID,
		"prefix", surveyorModel.Prefix,
	)

	return &dto.SurveyorResponse{Surveyor: surveyorModel}, nil
}

func (s *surveyorService) Resolve(ctx context.Context, identifier string) (*surveyor.Surveyor, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ierr.NewError("identifier is required").
			WithHint("Provide a surveyor prefix or name").
			Mark(ierr.ErrValidation)
	}

	match, err := s.SurveyorRepo.GetByPrefix(ctx, identifier)
	if err == nil {
		return match, nil
	}
	if !ierr.IsNotFound(err) {
		return nil, err
	}

	return s.SurveyorRepo.FindByName(ctx, identifier)
}

func (s *surveyorService) ListSurveyors(ctx context.Context) (*dto.ListSurveyorsResponse, error) {
	surveyors, err := s.SurveyorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(surveyors, func(sv *surveyor.Surveyor, _ int) *dto.SurveyorResponse {
		return &dto.SurveyorResponse{Surveyor: sv}
	})
	return &dto.ListSurveyorsResponse{
		Items: items,
		Total: len(items),
	}, nil
}
