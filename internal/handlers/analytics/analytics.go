package analytics

//go:generate mockgen -source=analytics.go -destination=analytics_mock.go -package=analytics

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/dto"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/httperr"
	"github.com/GlebRadaev/furniture-crm/pkg/utils"
)

type Service interface {
	Summary(ctx context.Context) (*domain.Analytics, error)
}

type AnalyticsHandler struct {
	analyticsService Service
}

func New(analyticsService Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetAnalytics godoc
//
//	@Summary		Business summary
//	@Description	Turnover, cash received, outstanding debt and order counts per status
//	@Tags			Analytics
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AnalyticsResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.Summary(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAnalyticsResponse(*summary))
}
