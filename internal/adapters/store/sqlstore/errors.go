package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/recurring-todo-service/internal/domain"
)

// translateError maps a database/sql error to a domain error. A missing row
// becomes domain.ErrNotFound; anything else is a domain.StorageError that
// keeps the driver error reachable.
func translateError(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}
	return domain.NewStorageError(op, err)
}

// requireAffected reports domain.ErrNotFound when a write touched no row.
func requireAffected(op string, id int64, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return domain.NewStorageError(op, err)
	}
	if n == 0 {
		return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
