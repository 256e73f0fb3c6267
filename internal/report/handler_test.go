package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	httperr "github.com/storepulse/store-monitor/internal/core/errors"
	"github.com/storepulse/store-monitor/internal/core/storage"
	"github.com/storepulse/store-monitor/internal/core/storage/memory"
	reportmocks "github.com/storepulse/store-monitor/internal/mocks/report"
	storagemocks "github.com/storepulse/store-monitor/internal/mocks/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func TestHandler_HandleTrigger(t *testing.T) {
	tests := []struct {
		name           string
		submitErr      error
		expectedStatus int
		expectedType   string
	}{
		{name: "queued returns report id", expectedStatus: http.StatusOK},
		{name: "queue full returns 503", submitErr: ErrQueueFull, expectedStatus: http.StatusServiceUnavailable, expectedType: httperr.HttpQueueFullError},
		{name: "store error returns 500", submitErr: errors.New("db down"), expectedStatus: http.StatusInternalServerError, expectedType: httperr.HttpInternalError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			submitter := reportmocks.NewSubmitter(t)
			if tc.submitErr != nil {
				submitter.EXPECT().Submit(mock.Anything).Return("", tc.submitErr).Once()
			} else {
				submitter.EXPECT().Submit(mock.Anything).Return("job-1", nil).Once()
			}

			router := newTestRouter(NewHandler(submitter, memory.NewStore()))
			req := httptest.NewRequest(http.MethodPost, "/trigger_report", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedType == "" {
				assert.JSONEq(t, `{"report_id":"job-1"}`, rec.Body.String())
				return
			}
			var body httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedType, body.ErrorType)
		})
	}
}

func TestHandler_HandleGetReport(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.CreateJob(ctx, "running"))
	require.NoError(t, store.CreateJob(ctx, "failed"))
	require.NoError(t, store.FailJob(ctx, "failed", "load observations: timeout"))
	require.NoError(t, store.CreateJob(ctx, "done"))
	require.NoError(t, store.CompleteJob(ctx, "done", "store_id,uptime_last_hour\nS1,0\n"))
	require.NoError(t, store.CreateJob(ctx, "empty"))
	require.NoError(t, store.CompleteJob(ctx, "empty", ""))

	router := newTestRouter(NewHandler(reportmocks.NewSubmitter(t), store))

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
		expectedJSON   string
		expectedType   string
	}{
		{name: "running", path: "/get_report/running", expectedStatus: http.StatusOK, expectedJSON: `{"status":"running"}`},
		{name: "failed", path: "/get_report/failed", expectedStatus: http.StatusOK, expectedJSON: `{"status":"failed","error":"load observations: timeout"}`},
		{name: "complete csv", path: "/get_report/done", expectedStatus: http.StatusOK, expectedBody: "store_id,uptime_last_hour\nS1,0\n", expectedType: "text/csv"},
		{name: "complete empty csv", path: "/get_report/empty?format=csv", expectedStatus: http.StatusOK, expectedBody: "", expectedType: "text/csv"},
		{name: "unknown id", path: "/get_report/nope", expectedStatus: http.StatusNotFound},
		{name: "bad format", path: "/get_report/done?format=pdf", expectedStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)
			switch {
			case tc.expectedJSON != "":
				assert.JSONEq(t, tc.expectedJSON, rec.Body.String())
			case tc.expectedType != "":
				assert.Equal(t, tc.expectedType, rec.Header().Get("Content-Type"))
				assert.Equal(t, tc.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_HandleGetReportErrorTypes(t *testing.T) {
	router := newTestRouter(NewHandler(reportmocks.NewSubmitter(t), memory.NewStore()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_report/unknown", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, httperr.HttpReportNotFoundError, body.ErrorType)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_report/unknown?format=json", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, httperr.HttpInvalidFormatError, body.ErrorType)
}

func TestHandler_HandleGetReportCSVAttachment(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.CreateJob(ctx, "abc"))
	require.NoError(t, store.CompleteJob(ctx, "abc", "store_id\n"))

	router := newTestRouter(NewHandler(reportmocks.NewSubmitter(t), store))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_report/abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment;filename=report_abc.csv", rec.Header().Get("Content-Disposition"))
}

func TestHandler_HandleGetReportXLSX(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.CreateJob(ctx, "abc"))
	require.NoError(t, store.CompleteJob(ctx, "abc", "store_id,uptime_last_hour,uptime_last_day,downtime_last_hour,downtime_last_day,downtime_last_week\nS1,0,1,60,1,1\n"))

	router := newTestRouter(NewHandler(reportmocks.NewSubmitter(t), store))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_report/abc?format=xlsx", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, XLSXContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment;filename=report_abc.xlsx", rec.Header().Get("Content-Disposition"))
	// XLSX files are zip archives.
	assert.Equal(t, "PK", rec.Body.String()[:2])
}

func TestHandler_HandleGetReportStoreError(t *testing.T) {
	jobs := storagemocks.NewJobStore(t)
	jobs.EXPECT().GetJob(mock.Anything, "abc").Return((*storage.ReportJob)(nil), errors.New("db down")).Once()

	router := newTestRouter(NewHandler(reportmocks.NewSubmitter(t), jobs))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_report/abc", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
