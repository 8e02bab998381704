package postgres

import (
	"context"
	"fmt"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
)

// PermissionRepo implements ports.PermissionRepository on PostgreSQL.
// Grants are administered out of band; this repository only reads them.
type PermissionRepo struct {
	db *DB
}

// NewPermissionRepo creates a permission repository backed by the given pool.
func NewPermissionRepo(db *DB) *PermissionRepo {
	return &PermissionRepo{db: db}
}

// Has reports whether the exact (userID, permission) grant exists.
func (r *PermissionRepo) Has(ctx context.Context, userID, permission string) (bool, error) {
	var exists bool

	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM assigned_permissions WHERE user_id = $1 AND permission = $2
		 )`,
		userID, permission,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking permission: %w", err)
	}

	return exists, nil
}

// ListForUser returns every grant assigned to the user.
func (r *PermissionRepo) ListForUser(ctx context.Context, userID string) ([]domain.AssignedPermission, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT user_id, permission
		 FROM assigned_permissions
		 WHERE user_id = $1
		 ORDER BY permission`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing permissions: %w", err)
	}
	defer rows.Close()

	grants := []domain.AssignedPermission{}

	for rows.Next() {
		var grant domain.AssignedPermission

		if err := rows.Scan(&grant.UserID, &grant.Permission); err != nil {
			return nil, fmt.Errorf("scanning permission: %w", err)
		}

		grants = append(grants, grant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing permissions: %w", err)
	}

	return grants, nil
}
