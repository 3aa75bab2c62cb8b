package service

import (
	"testing"

	"github.com/Caesar-design242/beacongen/internal/api/dto"
	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type SurveyorServiceSuite struct {
	testutil.BaseServiceTestSuite
	service      SurveyorService
	surveyorRepo *testutil.InMemorySurveyorStore
}

func TestSurveyorService(t *testing.T) {
	suite.Run(t, new(SurveyorServiceSuite))
}

func (s *SurveyorServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.surveyorRepo = stores.SurveyorRepo.(*testutil.InMemorySurveyorStore)
	s.service = NewSurveyorService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		SequenceRepo: stores.SequenceRepo,
		QuotaRepo:    stores.QuotaRepo,
		IssuanceRepo: stores.IssuanceRepo,
		SurveyorRepo: stores.SurveyorRepo,
	})
}

func (s *SurveyorServiceSuite) TestCreateSurveyor() {
	resp, err := s.service.CreateSurveyor(s.GetContext(), dto.CreateSurveyorRequest{
		Name:    "Zenith Geomatics",
		Prefix:  "zg",
		Company: "Zenith Geomatics Ltd",
		Email:   "ops@zenithgeo.example",
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	// prefix is normalised to uppercase on registration
	s.Equal("ZG", resp.Prefix)
	s.Equal("Zenith Geomatics", resp.Name)
}

func (s *SurveyorServiceSuite) TestCreateSurveyorValidation() {
	tests := []struct {
		name string
		req  dto.CreateSurveyorRequest
	}{
		{name: "missing name", req: dto.CreateSurveyorRequest{Prefix: "ZG"}},
		{name: "missing prefix", req: dto.CreateSurveyorRequest{Name: "Zenith"}},
		{name: "prefix with spaces", req: dto.CreateSurveyorRequest{Name: "Zenith", Prefix: "Z G"}},
		{name: "malformed email", req: dto.CreateSurveyorRequest{Name: "Zenith", Prefix: "ZG", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		resp, err := s.service.CreateSurveyor(s.GetContext(), tt.req)
		s.Error(err, tt.name)
		s.True(ierr.IsValidation(err), tt.name)
		s.Nil(resp, tt.name)
	}
}

func (s *SurveyorServiceSuite) TestCreateSurveyorDuplicatePrefix() {
	_, err := s.service.CreateSurveyor(s.GetContext(), dto.CreateSurveyorRequest{
		Name:   "Zenith Geomatics",
		Prefix: "ZG",
	})
	s.NoError(err)

	// duplicate check is case-insensitive
	resp, err := s.service.CreateSurveyor(s.GetContext(), dto.CreateSurveyorRequest{
		Name:   "Zambezi Grid",
		Prefix: "zg",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
	s.Nil(resp)
}

func (s *SurveyorServiceSuite) TestResolveByPrefix() {
	_, err := s.service.CreateSurveyor(s.GetContext(), dto.CreateSurveyorRequest{
		Name:   "Zenith Geomatics",
		Prefix: "ZG",
	})
	s.NoError(err)

	for _, identifier := range []string{"ZG", "zg", " zg "} {
		sv, err := s.service.Resolve(s.GetContext(), identifier)
		s.NoError(err, identifier)
		s.Equal("ZG", sv.Prefix, identifier)
	}
}

func (s *SurveyorServiceSuite) TestResolveByNameFragment() {
	_, err := s.service.CreateSurveyor(s.GetContext(), dto.CreateSurveyorRequest{
		Name:   "Kamwala Mapping Services",
		Prefix: "KWM",
	})
	s.NoError(err)

	sv, err := s.service.Resolve(s.GetContext(), "mapping")
	s.NoError(err)
	s.Equal("KWM", sv.Prefix)
}

func (s *SurveyorServiceSuite) TestResolvePrefixWinsOverName() {
	_, err := s.service.CreateSurveyor(s.GetContext(), dto.CreateSurveyorRequest{
		Name:   "ZG Surveys",
		Prefix: "AB",
	})
	s.NoError(err)
	_, err = s.service.CreateSurveyor(s.GetContext(), dto.CreateSurveyorRequest{
		Name:   "Zenith Geomatics",
		Prefix: "ZG",
	})
	s.NoError(err)

	// "ZG" matches both a prefix and a name; the prefix match wins
	sv, err := s.service.Resolve(s.GetContext(), "ZG")
	s.NoError(err)
	s.Equal("Zenith Geomatics", sv.Name)
}

func (s *SurveyorServiceSuite) TestResolveNotFound() {
	sv, err := s.service.Resolve(s.GetContext(), "missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.Nil(sv)
}

func (s *SurveyorServiceSuite) TestResolveEmptyIdentifier() {
	sv, err := s.service.Resolve(s.GetContext(), "  ")
	s.Error(err)
	s.True(ierr.IsValidation(err))
	s.Nil(sv)
}

func (s *SurveyorServiceSuite) TestListSurveyors() {
	for _, req := range []dto.CreateSurveyorRequest{
		{Name: "Zenith Geomatics", Prefix: "ZG"},
		{Name: "Kamwala Mapping", Prefix: "KWM"},
	} {
		_, err := s.service.CreateSurveyor(s.GetContext(), req)
		s.NoError(err)
	}

	resp, err := s.service.ListSurveyors(s.GetContext())
	s.NoError(err)
	s.Equal(2, resp.Total)
	// newest first
	s.Equal("KWM", resp.Items[0].Prefix)
}
