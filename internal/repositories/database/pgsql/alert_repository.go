package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	"github.com/trustops/trust_governance_app/internal/models"
	"github.com/trustops/trust_governance_app/internal/utils/mapping"
)

const alertColumns = `alert_id, trust_id, asset_id, actor_id, kind, severity, message, is_read, created_at`

type PgxAlertRepository struct {
	pool *pgxpool.Pool
}

// newPgxAlertRepository creates a new repository for alert data.
func newPgxAlertRepository(pool *pgxpool.Pool) portsrepo.AlertRepositoryFacade {
	return &PgxAlertRepository{pool: pool}
}

// Ensure PgxAlertRepository implements portsrepo.AlertRepositoryFacade
var _ portsrepo.AlertRepositoryFacade = (*PgxAlertRepository)(nil)

// SaveAlerts persists a batch of alerts with one batched round trip.
func (r *PgxAlertRepository) SaveAlerts(ctx context.Context, alerts []domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	query := `
		INSERT INTO alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	for _, alert := range alerts {
		m := mapping.ToModelAlert(alert)
		batch.Queue(query,
			m.AlertID,
			m.TrustID,
			m.AssetID,
			m.ActorID,
			m.Kind,
			m.Severity,
			m.Message,
			m.IsRead,
			m.CreatedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range alerts {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save alert batch: %w", err)
		}
	}
	return nil
}

// ListAlertsByActor retrieves a paginated list of an actor's alerts, newest first.
func (r *PgxAlertRepository) ListAlertsByActor(ctx context.Context, actorID string, limit int, offset int) ([]domain.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE actor_id = $1
		ORDER BY created_at DESC, alert_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, actorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts for actor %s: %w", actorID, err)
	}
	defer rows.Close()

	alerts := []models.Alert{}
	for rows.Next() {
		var m models.Alert
		err := rows.Scan(
			&m.AlertID,
			&m.TrustID,
			&m.AssetID,
			&m.ActorID,
			&m.Kind,
			&m.Severity,
			&m.Message,
			&m.IsRead,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert rows: %w", err)
	}

	return mapping.ToDomainAlertSlice(alerts), nil
}

// CountUnreadAlerts counts an actor's unread alerts.
func (r *PgxAlertRepository) CountUnreadAlerts(ctx context.Context, actorID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM alerts WHERE actor_id = $1 AND is_read = FALSE;`, actorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread alerts for actor %s: %w", actorID, err)
	}
	return count, nil
}

// MarkAlertRead marks one alert as read, scoped to its recipient.
func (r *PgxAlertRepository) MarkAlertRead(ctx context.Context, alertID string, actorID string) error {
	query := `UPDATE alerts SET is_read = TRUE WHERE alert_id = $1 AND actor_id = $2;`

	tag, err := r.pool.Exec(ctx, query, alertID, actorID)
	if err != nil {
		return fmt.Errorf("failed to mark alert %s read: %w", alertID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
