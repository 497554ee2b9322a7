package dto

import (
	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/reconcile"
	"github.com/GlebRadaev/furniture-crm/pkg/money"
)

type StatusCountDTO struct {
	Status string `json:"status" example:"Production"`
	Count  int    `json:"count" example:"3"`
}

type AnalyticsResponseDTO struct {
	OrdersCount int              `json:"orders_count" example:"12"`
	Turnover    string           `json:"turnover" example:"1800000.00"`
	Cash        string           `json:"cash" example:"950000.00"`
	Debt        string           `json:"debt" example:"850000.00"`
	ByStatus    []StatusCountDTO `json:"by_status"`
}

func NewAnalyticsResponse(a domain.Analytics) AnalyticsResponseDTO {
	byStatus := make([]StatusCountDTO, len(a.ByStatus))
	for i, sc := range a.ByStatus {
		byStatus[i] = StatusCountDTO{Status: string(sc.Status), Count: sc.Count}
	}
	return AnalyticsResponseDTO{
		OrdersCount: a.OrdersCount,
		Turnover:    money.Format(a.Turnover),
		Cash:        money.Format(a.Cash),
		Debt:        money.Format(a.Debt),
		ByStatus:    byStatus,
	}
}

type BulkReconcileResponseDTO struct {
	Checked    int   `json:"checked" example:"120"`
	Repaired   int   `json:"repaired" example:"2"`
	Failed     int   `json:"failed" example:"0"`
	Skipped    int   `json:"skipped" example:"0"`
	DurationMs int64 `json:"duration_ms" example:"340"`
}

func NewBulkReconcileResponse(r reconcile.Report) BulkReconcileResponseDTO {
	return BulkReconcileResponseDTO{
		Checked:    r.Checked,
		Repaired:   r.Repaired,
		Failed:     r.Failed,
		Skipped:    r.Skipped,
		DurationMs: r.Duration.Milliseconds(),
	}
}
