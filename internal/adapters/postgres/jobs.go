package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"tradelens/internal/domain"
)

// DefaultJobLease is how long a claimed refresh job may stay running before
// another worker may claim it again.
const DefaultJobLease = 10 * time.Minute

// EnqueueRefresh queues a refresh unless one is already queued or running
// for the key.
func (db *DB) EnqueueRefresh(ctx context.Context, job domain.RefreshJob) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO enrichment_refresh_jobs (company_key, locator, company_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_key, locator) WHERE status IN ('queued', 'running') DO NOTHING`,
		job.Key.CompanyName, job.Key.Locator, job.CompanyName)
	return err
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
// Jobs left running longer than the lease, e.g. by a crashed worker, are
// claimable again.
func (db *DB) ClaimNext(ctx context.Context) (job domain.RefreshJob, found bool, err error) {
	lease := db.JobLease
	if lease <= 0 {
		lease = DefaultJobLease
	}
	err = db.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			SELECT id, company_key, locator, company_name FROM enrichment_refresh_jobs
			WHERE status = 'queued'
			   OR (status = 'running' AND started_at < now() - make_interval(secs => $1))
			ORDER BY queued_at
			FOR UPDATE SKIP LOCKED
			LIMIT 1`,
			lease.Seconds(),
		).Scan(&job.ID, &job.Key.CompanyName, &job.Key.Locator, &job.CompanyName)
		if noRows(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			UPDATE enrichment_refresh_jobs SET status = 'running', started_at = now(), attempts = attempts + 1
			WHERE id = $1`, job.ID); err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return domain.RefreshJob{}, false, err
	}
	return job, found, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	return db.finishJob(ctx, jobID, "completed", nil)
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	return db.finishJob(ctx, jobID, "failed", &reason)
}

func (db *DB) finishJob(ctx context.Context, jobID, status string, reason *string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE enrichment_refresh_jobs SET status = $2, reason = $3, finished_at = now()
		WHERE id = $1`, jobID, status, reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
