package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/Caesar-design242/beacongen/internal/api/dto"
	"github.com/Caesar-design242/beacongen/internal/domain/surveyor"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/testutil"
	"github.com/Caesar-design242/beacongen/internal/types"
	"github.com/stretchr/testify/suite"
)

type ExportServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    ExportService
	allocation AllocationService
}

func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceSuite))
}

func (s *ExportServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	params := ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		SequenceRepo: stores.SequenceRepo,
		QuotaRepo:    stores.QuotaRepo,
		IssuanceRepo: stores.IssuanceRepo,
		SurveyorRepo: stores.SurveyorRepo,
	}
	s.service = NewExportService(params)
	s.allocation = NewAllocationService(params)

	sv := &surveyor.Surveyor{
		ID:        "srv_zg",
		Name:      "Zenith Geomatics",
		Prefix:    "ZG",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(stores.SurveyorRepo.Create(s.GetContext(), sv))
}

func (s *ExportServiceSuite) TestExportHistoryCSV() {
	_, err := s.allocation.Allocate(s.GetContext(), dto.AllocateBeaconsRequest{Identifier: "ZG", Quantity: 3})
	s.NoError(err)
	_, err = s.allocation.Allocate(s.GetContext(), dto.AllocateBeaconsRequest{Identifier: "ZG", Quantity: 2})
	s.NoError(err)

	var buf bytes.Buffer
	s.NoError(s.service.ExportHistoryCSV(s.GetContext(), "ZG", &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	s.NoError(err)

	// header plus one row per individual code
	s.Len(rows, 1+5)
	s.Equal([]string{"Beacon Code", "Issued At", "Quarter"}, rows[0])

	quarter := types.CurrentQuarter(s.GetNow()).String()
	codes := map[string]bool{}
	for _, row := range rows[1:] {
		s.Len(row, 3)
		codes[row[0]] = true
		s.Equal(quarter, row[2])
	}
	s.Len(codes, 5)
	s.True(codes["SC/ED AA 0001 ZG"])
	s.True(codes["SC/ED AA 0005 ZG"])
}

func (s *ExportServiceSuite) TestExportEmptyHistory() {
	var buf bytes.Buffer
	s.NoError(s.service.ExportHistoryCSV(s.GetContext(), "ZG", &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	s.NoError(err)
	s.Len(rows, 1) // header only
}

func (s *ExportServiceSuite) TestExportUnknownSurveyor() {
	var buf bytes.Buffer
	err := s.service.ExportHistoryCSV(s.GetContext(), "NOPE", &buf)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.Zero(buf.Len())
}
