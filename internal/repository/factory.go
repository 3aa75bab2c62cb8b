package repository

import (
	"github.com/Caesar-design242/beacongen/internal/domain/issuance"
	"github.com/Caesar-design242/beacongen/internal/domain/quota"
	"github.com/Caesar-design242/beacongen/internal/domain/sequence"
	"github.com/Caesar-design242/beacongen/internal/domain/surveyor"
	"github.com/Caesar-design242/beacongen/internal/logger"
	"github.com/Caesar-design242/beacongen/internal/postgres"
	postgresRepo "github.com/Caesar-design242/beacongen/internal/repository/postgres"
)

func NewSequenceRepository(client postgres.IClient, logger *logger.Logger) sequence.Repository {
	return postgresRepo.NewSequenceRepository(client, logger)
}

func NewQuotaRepository(client postgres.IClient, logger *logger.Logger) quota.Repository {
	return postgresRepo.NewQuotaRepository(client, logger)
}

func NewIssuanceRepository(client postgres.IClient, logger *logger.Logger) issuance.Repository {
	return postgresRepo.NewIssuanceRepository(client, logger)
}

func NewSurveyorRepository(client postgres.IClient, logger *logger.Logger) surveyor.Repository {
	return postgresRepo.NewSurveyorRepository(client, logger)
}
