package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fundr-dashboard/internal/logging"
	"github.com/carson-networks/fundr-dashboard/internal/service"
)

// GetStatsResponseBody is the envelope returned by the stats endpoint. Data is
// absent when Status is "error".
type GetStatsResponseBody struct {
	Status  string `json:"status" enum:"success,error" doc:"Envelope status"`
	Data    *Stats `json:"data,omitempty" doc:"Dashboard stats, absent on error"`
	Message string `json:"message,omitempty" doc:"Error message, set on error"`
}

// GetStatsOutput is the Huma output for the stats endpoint.
type GetStatsOutput struct {
	Body GetStatsResponseBody
}

type statsGetter interface {
	GetDashboardStats(ctx context.Context) service.Envelope[service.DashboardStats]
}

// GetStatsHandler handles GET /v1/dashboard/stats.
type GetStatsHandler struct {
	API statsGetter
}

func NewGetStatsHandler(api statsGetter) *GetStatsHandler {
	return &GetStatsHandler{API: api}
}

func (h *GetStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard-stats",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/stats",
		Summary:     "Get dashboard stats",
		Description: "Returns the revenue series and account details. Simulated failures are reported in the envelope with HTTP 200.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *GetStatsHandler) handle(ctx context.Context, input *struct{}) (*GetStatsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getDashboardStatsMs")
	}
	result := h.API.GetDashboardStats(ctx)
	if stopTimer != nil {
		stopTimer()
	}

	if logData != nil {
		logData.AddData("envelopeStatus", result.Status)
	}

	if !result.OK() {
		return &GetStatsOutput{Body: GetStatsResponseBody{
			Status:  string(result.Status),
			Message: result.Message,
		}}, nil
	}

	return &GetStatsOutput{Body: GetStatsResponseBody{
		Status: string(result.Status),
		Data:   statsFromService(result.Data),
	}}, nil
}
