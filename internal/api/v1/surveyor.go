package v1

import (
	"net/http"

	"github.com/Caesar-design242/beacongen/internal/api/dto"
	"github.com/Caesar-design242/beacongen/internal/logger"
	"github.com/Caesar-design242/beacongen/internal/service"
	"github.com/gin-gonic/gin"
)

type SurveyorHandler struct {
	service service.SurveyorService
	log     *logger.Logger
}

func NewSurveyorHandler(service service.SurveyorService, log *logger.Logger) *SurveyorHandler {
	return &SurveyorHandler{service: service, log: log}
}

// CreateSurveyor godoc
// @Summary Register a surveyor
// @Description Register a new surveyor with a unique prefix
// @Tags Surveyors
// @Accept json
// @Produce json
// @Param surveyor body dto.CreateSurveyorRequest true "Surveyor details"
// @Success 201 {object} dto.SurveyorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /surveyors [post]
func (h *SurveyorHandler) CreateSurveyor(c *gin.Context) {
	var req dto.CreateSurveyorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.CreateSurveyor(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetSurveyor godoc
// @Summary Resolve a surveyor
// @Description Look up a surveyor by prefix (case-insensitive) or name fragment
// @Tags Surveyors
// @Produce json
// @Param identifier path string true "Prefix or name fragment"
// @Success 200 {object} dto.SurveyorResponse
// @Failure 404 {object} ErrorResponse
// @Router /surveyors/{identifier} [get]
func (h *SurveyorHandler) GetSurveyor(c *gin.Context) {
	identifier := c.Param("identifier")
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifier is required"})
		return
	}

	sv, err := h.service.Resolve(c.Request.Context(), identifier)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SurveyorResponse{Surveyor: sv})
}

// ListSurveyors godoc
// @Summary List surveyors
// @Description List registered surveyors, newest first
// @Tags Surveyors
// @Produce json
// @Success 200 {object} dto.ListSurveyorsResponse
// @Router /surveyors [get]
func (h *SurveyorHandler) ListSurveyors(c *gin.Context) {
	resp, err := h.service.ListSurveyors(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
