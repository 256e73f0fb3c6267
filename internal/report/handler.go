package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	httperr "github.com/storepulse/store-monitor/internal/core/errors"
	"github.com/storepulse/store-monitor/internal/core/storage"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

// Submitter queues a new report run. *Dispatcher implements it.
type Submitter interface {
	Submit(ctx context.Context) (string, error)
}

// Handler serves the report trigger and download endpoints.
type Handler struct {
	submitter Submitter
	jobs      storage.JobStore
}

func NewHandler(submitter Submitter, jobs storage.JobStore) *Handler {
	if submitter == nil {
		panic("report: NewHandler requires a non-nil Submitter")
	}
	if jobs == nil {
		panic("report: NewHandler requires a non-nil JobStore")
	}
	return &Handler{submitter: submitter, jobs: jobs}
}

// RegisterRoutes registers the report API routes on the given router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/trigger_report", h.HandleTrigger)
	r.GET("/get_report/:report_id", h.HandleGetReport)
}

// HandleTrigger handles POST /trigger_report.
func (h *Handler) HandleTrigger(c *gin.Context) {
	id, err := h.submitter.Submit(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrQueueFull) {
			c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
				ErrorType: httperr.HttpQueueFullError,
				Message:   "Too many reports in progress, retry later",
			})
			return
		}

		slog.Error("[Handler] Failed to trigger report", "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to trigger report",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report_id": id})
}

// HandleGetReport handles GET /get_report/:report_id
// Query parameters: format (csv, xlsx; default csv)
func (h *Handler) HandleGetReport(c *gin.Context) {
	id := c.Param("report_id")

	format := c.DefaultQuery("format", formatCSV)
	if format != formatCSV && format != formatXLSX {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidFormatError,
			Message:   "Unsupported report format",
			Details:   fmt.Sprintf("format must be %q or %q, got %q", formatCSV, formatXLSX, format),
		})
		return
	}

	job, err := h.jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, httperr.ErrorResponse{
				ErrorType: httperr.HttpReportNotFoundError,
				Message:   "Report not found",
				Details:   id,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to get report",
			Details:   err.Error(),
		})
		return
	}

	switch job.Status {
	case storage.JobRunning:
		c.JSON(http.StatusOK, gin.H{"status": string(storage.JobRunning)})
	case storage.JobFailed:
		c.JSON(http.StatusOK, gin.H{"status": string(storage.JobFailed), "error": job.Error})
	default:
		h.writePayload(c, job, format)
	}
}

func (h *Handler) writePayload(c *gin.Context, job *storage.ReportJob, format string) {
	if format == formatCSV {
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=report_%s.csv", job.ID))
		c.Data(http.StatusOK, "text/csv", []byte(job.Payload))
		return
	}

	book, err := RenderXLSX(job.Payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to render report",
			Details:   err.Error(),
		})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=report_%s.xlsx", job.ID))
	c.Data(http.StatusOK, XLSXContentType, book)
}
