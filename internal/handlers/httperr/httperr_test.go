package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/internal/export"
	"github.com/GlebRadaev/furniture-crm/internal/ledger"
	"github.com/GlebRadaev/furniture-crm/internal/reconcile"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"Invalid amount", ledger.ErrInvalidAmount, http.StatusUnprocessableEntity, "invalid amount"},
		{"Overpayment", ledger.ErrOverpaymentRejected, http.StatusConflict, "payment exceeds the remaining balance"},
		{"Payment not found", ledger.ErrPaymentNotFound, http.StatusNotFound, "payment not found"},
		{"Total below paid", ledger.ErrTotalBelowPaid, http.StatusConflict, "total price is below the amount already paid"},
		{"Log over total", ledger.ErrLedgerOverTotal, http.StatusConflict, "payment log exceeds the order total"},
		{"Order not found wrapped", fmt.Errorf("load: %w", domain.ErrOrderNotFound), http.StatusNotFound, "order not found"},
		{"Storage hides driver error", fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, errors.New("dial tcp: refused")), http.StatusServiceUnavailable, "storage unavailable"},
		{"Unsupported file", domain.ErrUnsupportedFile, http.StatusUnsupportedMediaType, "unsupported file type"},
		{"File too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "file too large"},
		{"Unknown column", fmt.Errorf("%w: %q", export.ErrUnknownColumn, "x"), http.StatusBadRequest, "unknown export column"},
		{"Reconcile pool closed", reconcile.ErrPoolClosed, http.StatusServiceUnavailable, "worker pool is closed"},
		{"Unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := Status(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespond(t *testing.T) {
	w := httptest.NewRecorder()
	Respond(w, ledger.ErrOverpaymentRejected)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"payment exceeds the remaining balance"}`, w.Body.String())
}
