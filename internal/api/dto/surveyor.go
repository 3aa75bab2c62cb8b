package dto

import (
	"context"
	"strings"

	"github.com/Caesar-design242/beacongen/internal/domain/surveyor"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/types"
	"github.com/Caesar-design242/beacongen/internal/validator"
)

type CreateSurveyorRequest struct {
	Name    string `json:"name" binding:"required" validate:"required"`
	Prefix  string `json:"prefix" binding:"required" validate:"required"`
	Company string `json:"company"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

func (r *CreateSurveyorRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	prefix := strings.TrimSpace(r.Prefix)
	if prefix == "" {
		return ierr.NewError("prefix is required").
			WithHint("Surveyor prefix is required").
			Mark(ierr.ErrValidation)
	}
	if strings.ContainsAny(prefix, " \t\n") {
		return ierr.NewError("prefix must not contain whitespace").
			WithHintf("Surveyor prefix %q must be a single token", r.Prefix).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateSurveyorRequest) ToSurveyor(ctx context.Context) *surveyor.Surveyor {
	return &surveyor.Surveyor{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SURVEYOR),
		Name:      r.Name,
		Prefix:    strings.ToUpper(strings.TrimSpace(r.Prefix)),
		Company:   r.Company,
		Address:   r.Address,
		Phone:     r.Phone,
		Email:     r.Email,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type SurveyorResponse struct {
	*surveyor.Surveyor
}

type ListSurveyorsResponse struct {
	Items []*SurveyorResponse `json:"items"`
	Total int                 `json:"total"`
}
