package testutil

import (
	"context"
	"time"

	"github.com/Caesar-design242/beacongen/internal/config"
	"github.com/Caesar-design242/beacongen/internal/domain/issuance"
	"github.com/Caesar-design242/beacongen/internal/domain/quota"
	"github.com/Caesar-design242/beacongen/internal/domain/sequence"
	"github.com/Caesar-design242/beacongen/internal/domain/surveyor"
	"github.com/Caesar-design242/beacongen/internal/logger"
	"github.com/Caesar-design242/beacongen/internal/postgres"
	"github.com/Caesar-design242/beacongen/internal/types"
	"github.com/Caesar-design242/beacongen/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	SequenceRepo sequence.Repository
	QuotaRepo    quota.Repository
	IssuanceRepo issuance.Repository
	SurveyorRepo surveyor.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     postgres.IClient
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	// Initialize logger with test config
	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		SequenceRepo: NewInMemorySequenceStore(),
		QuotaRepo:    NewInMemoryQuotaStore(),
		IssuanceRepo: NewInMemoryIssuanceStore(),
		SurveyorRepo: NewInMemorySurveyorStore(),
	}
	s.db = NewMockPostgresClient(s.logger)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.SequenceRepo.(*InMemorySequenceStore).Clear()
	s.stores.QuotaRepo.(*InMemoryQuotaStore).Clear()
	s.stores.IssuanceRepo.(*InMemoryIssuanceStore).Clear()
	s.stores.SurveyorRepo.(*InMemorySurveyorStore).Clear()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
