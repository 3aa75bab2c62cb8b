package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Caesar-design242/beacongen/internal/api/dto"
	"github.com/Caesar-design242/beacongen/internal/logger"
	"github.com/Caesar-design242/beacongen/internal/service"
	"github.com/gin-gonic/gin"
)

type BeaconHandler struct {
	allocationService service.AllocationService
	exportService     service.ExportService
	log               *logger.Logger
}

func NewBeaconHandler(allocationService service.AllocationService, exportService service.ExportService, log *logger.Logger) *BeaconHandler {
	return &BeaconHandler{
		allocationService: allocationService,
		exportService:     exportService,
		log:               log,
	}
}

// AllocateBeacons godoc
// @Summary Allocate beacon codes
// @Description Issue a batch of sequential beacon codes to a surveyor, subject to the quarterly quota
// @Tags Beacons
// @Accept json
// @Produce json
// @Param request body dto.AllocateBeaconsRequest true "Allocation request"
// @Success 201 {object} dto.AllocateBeaconsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /beacons [post]
func (h *BeaconHandler) AllocateBeacons(c *gin.Context) {
	var req dto.AllocateBeaconsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.allocationService.Allocate(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetUsage godoc
// @Summary Get quarterly usage
// @Description Get a surveyor's usage and remaining quota for the current quarter
// @Tags Beacons
// @Produce json
// @Param prefix path string true "Surveyor prefix"
// @Success 200 {object} dto.UsageResponse
// @Failure 404 {object} ErrorResponse
// @Router /beacons/usage/{prefix} [get]
func (h *BeaconHandler) GetUsage(c *gin.Context) {
	prefix := c.Param("prefix")
	if prefix == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prefix is required"})
		return
	}

	resp, err := h.allocationService.CurrentUsage(c.Request.Context(), prefix)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetHistory godoc
// @Summary Get issuance history
// @Description Get a surveyor's issuance records, newest first
// @Tags Beacons
// @Produce json
// @Param prefix path string true "Surveyor prefix"
// @Success 200 {object} dto.ListIssuanceRecordsResponse
// @Failure 404 {object} ErrorResponse
// @Router /beacons/history/{prefix} [get]
func (h *BeaconHandler) GetHistory(c *gin.Context) {
	prefix := c.Param("prefix")
	if prefix == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prefix is required"})
		return
	}

	resp, err := h.allocationService.History(c.Request.Context(), prefix)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportHistory godoc
// @Summary Export issuance history as CSV
// @Description Download a surveyor's issuance history, one row per beacon code
// @Tags Beacons
// @Produce text/csv
// @Param prefix path string true "Surveyor prefix"
// @Success 200 {string} string "CSV payload"
// @Failure 404 {object} ErrorResponse
// @Router /beacons/history/{prefix}/export [get]
func (h *BeaconHandler) ExportHistory(c *gin.Context) {
	prefix := c.Param("prefix")
	if prefix == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prefix is required"})
		return
	}

	// Build the whole document before touching the response so a failed
	// export still gets a proper error status instead of a truncated 200.
	var buf bytes.Buffer
	if err := h.exportService.ExportHistoryCSV(c.Request.Context(), prefix, &buf); err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=beacon_codes_%s.csv", prefix))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
