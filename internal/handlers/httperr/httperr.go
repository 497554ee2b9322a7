// Package httperr maps service errors to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/export"
	"github.com/GlebRadaev/furniture-crm/internal/ledger"
	"github.com/GlebRadaev/furniture-crm/internal/reconcile"
	"github.com/GlebRadaev/furniture-crm/pkg/utils"
)

var statuses = []struct {
	err  error
	code int
}{
	{ledger.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{ledger.ErrOverpaymentRejected, http.StatusConflict},
	{ledger.ErrPaymentNotFound, http.StatusNotFound},
	{ledger.ErrTotalBelowPaid, http.StatusConflict},
	{ledger.ErrLedgerOverTotal, http.StatusConflict},
	{domain.ErrOrderNotFound, http.StatusNotFound},
	{domain.ErrUserNotFound, http.StatusUnprocessableEntity},
	{domain.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{domain.ErrUnsupportedFile, http.StatusUnsupportedMediaType},
	{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{export.ErrUnknownColumn, http.StatusBadRequest},
	{reconcile.ErrPoolClosed, http.StatusServiceUnavailable},
}

// Status returns the response code for err and the message safe to show
// to the client.
func Status(err error) (int, string) {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.code, s.err.Error()
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func Respond(w http.ResponseWriter, err error) {
	code, msg := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("unhandled error", zap.Error(err))
	}
	utils.RespondWithError(w, code, msg)
}
