package dto

import (
	"github.com/Caesar-design242/beacongen/internal/domain/issuance"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/types"
	"github.com/Caesar-design242/beacongen/internal/validator"
)

type AllocateBeaconsRequest struct {
	// Identifier is a surveyor prefix or name fragment, resolved
	// case-insensitively (prefix first).
	Identifier string `json:"identifier" binding:"required" validate:"required"`
	Quantity   int    `json:"quantity"`
}

func (r *AllocateBeaconsRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Quantity <= 0 {
		return ierr.NewError("quantity must be a positive integer").
			WithHintf("Requested quantity %d is not a positive integer", r.Quantity).
			Mark(ierr.ErrInvalidQuantity)
	}
	return nil
}

type AllocateBeaconsResponse struct {
	SurveyorPrefix string        `json:"surveyor_prefix"`
	SurveyorName   string        `json:"surveyor_name"`
	Codes          []string      `json:"codes"`
	Quantity       int           `json:"quantity"`
	Quarter        types.Quarter `json:"quarter"`
	Usage          int           `json:"usage"`
	Remaining      int           `json:"remaining"`
}

type UsageResponse struct {
	SurveyorPrefix string        `json:"surveyor_prefix"`
	Quarter        types.Quarter `json:"quarter"`
	Usage          int           `json:"usage"`
	Remaining      int           `json:"remaining"`
}

type IssuanceRecordResponse struct {
	*issuance.Record
}

type ListIssuanceRecordsResponse struct {
	Items []*IssuanceRecordResponse `json:"items"`
	Total int                       `json:"total"`
}
