package pg

import (
	"fmt"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
)

// StorageErr marks a driver failure as domain.ErrStorageUnavailable and keeps the cause.
func StorageErr(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}
