package service

import (
	"github.com/Caesar-design242/beacongen/internal/config"
	"github.com/Caesar-design242/beacongen/internal/domain/issuance"
	"github.com/Caesar-design242/beacongen/internal/domain/quota"
	"github.com/Caesar-design242/beacongen/internal/domain/sequence"
	"github.com/Caesar-design242/beacongen/internal/domain/surveyor"
	"github.com/Caesar-design242/beacongen/internal/logger"
	"github.com/Caesar-design242/beacongen/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	// Repositories
	SequenceRepo sequence.Repository
	QuotaRepo    quota.Repository
	IssuanceRepo issuance.Repository
	SurveyorRepo surveyor.Repository
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	sequenceRepo sequence.Repository,
	quotaRepo quota.Repository,
	issuanceRepo issuance.Repository,
	surveyorRepo surveyor.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		DB:           db,
		SequenceRepo: sequenceRepo,
		QuotaRepo:    quotaRepo,
		IssuanceRepo: issuanceRepo,
		SurveyorRepo: surveyorRepo,
	}
}
