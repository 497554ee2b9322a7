package admin

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=admin

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/furniture-crm/internal/dto"
	"github.com/GlebRadaev/furniture-crm/internal/handlers/httperr"
	"github.com/GlebRadaev/furniture-crm/internal/reconcile"
	"github.com/GlebRadaev/furniture-crm/pkg/utils"
)

type ReconcileService interface {
	Run(ctx context.Context) (*reconcile.Report, error)
}

type AdminHandler struct {
	reconcileService ReconcileService
}

func New(reconcileService ReconcileService) *AdminHandler {
	return &AdminHandler{
		reconcileService: reconcileService,
	}
}

// ReconcileAll godoc
//
//	@Summary		Reconcile every order
//	@Description	Recompute the paid amount of all orders from their payment logs and repair drifted ones
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BulkReconcileResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		503	{object}	utils.Response	"Storage unavailable"
//	@Router			/api/admin/reconcile [post]
func (h *AdminHandler) ReconcileAll(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconcileService.Run(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBulkReconcileResponse(*report))
}
