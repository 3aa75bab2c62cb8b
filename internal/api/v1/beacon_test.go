package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Caesar-design242/beacongen/internal/domain/issuance"
	"github.com/Caesar-design242/beacongen/internal/domain/surveyor"
	"github.com/Caesar-design242/beacongen/internal/service"
	"github.com/Caesar-design242/beacongen/internal/testutil"
	"github.com/Caesar-design242/beacongen/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type BeaconHandlerSuite struct {
	testutil.BaseServiceTestSuite
	router *gin.Engine
}

func TestBeaconHandler(t *testing.T) {
	suite.Run(t, new(BeaconHandlerSuite))
}

func (s *BeaconHandlerSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	gin.SetMode(gin.TestMode)

	stores := s.GetStores()
	params := service.ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		SequenceRepo: stores.SequenceRepo,
		QuotaRepo:    stores.QuotaRepo,
		IssuanceRepo: stores.IssuanceRepo,
		SurveyorRepo: stores.SurveyorRepo,
	}
	handler := NewBeaconHandler(
		service.NewAllocationService(params),
		service.NewExportService(params),
		s.GetLogger(),
	)

	s.router = gin.New()
	s.router.GET("/v1/beacons/history/:prefix/export", handler.ExportHistory)
}

func (s *BeaconHandlerSuite) seedHistory() {
	err := s.GetStores().SurveyorRepo.Create(s.GetContext(), &surveyor.Surveyor{
		ID:        s.GetUUID(),
		Name:      "Zenith Geomatics",
		Prefix:    "ZG",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	})
	s.Require().NoError(err)

	err = s.GetStores().IssuanceRepo.Append(s.GetContext(), &issuance.Record{
		ID:             s.GetUUID(),
		SurveyorPrefix: "ZG",
		SurveyorName:   "Zenith Geomatics",
		Codes:          []string{"SC/ED AA 0001 ZG", "SC/ED AA 0002 ZG"},
		Quantity:       2,
		Quarter:        types.CurrentQuarter(s.GetNow()),
		IssuedAt:       time.Now().UTC(),
	})
	s.Require().NoError(err)
}

func (s *BeaconHandlerSuite) TestExportHistory() {
	s.seedHistory()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/beacons/history/ZG/export", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/csv")
	s.Contains(w.Header().Get("Content-Disposition"), "beacon_codes_ZG.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	s.Len(lines, 3)
	s.Contains(lines[0], "Beacon Code")
	s.Contains(lines[1], "SC/ED AA 0001 ZG")
}

func (s *BeaconHandlerSuite) TestExportHistoryUnknownSurveyor() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/beacons/history/XX/export", nil)
	s.router.ServeHTTP(w, req)

	// a failed export must be a clean JSON error, never a truncated CSV
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "application/json")
	s.NotContains(w.Body.String(), "Beacon Code")

	var errResp ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &errResp))
	s.NotEmpty(errResp.Error)
}
