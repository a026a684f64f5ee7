package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trustops/trust_governance_app/internal/apperrors"
	"github.com/trustops/trust_governance_app/internal/core/domain"
	portsrepo "github.com/trustops/trust_governance_app/internal/core/ports/repositories"
	"github.com/trustops/trust_governance_app/internal/models"
	"github.com/trustops/trust_governance_app/internal/utils/mapping"
)

const voteColumns = `vote_id, asset_id, trust_id, round, voter_id, vote, reason, cast_at`

type PgxVoteRepository struct {
	BaseRepository
	assetRepo portsrepo.AssetRepositoryFacade
}

// newPgxVoteRepository creates a new repository for exception vote data.
func newPgxVoteRepository(pool *pgxpool.Pool, assetRepo portsrepo.AssetRepositoryFacade) portsrepo.VoteRepositoryFacade {
	return &PgxVoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
		assetRepo:      assetRepo,
	}
}

// Ensure PgxVoteRepository implements portsrepo.VoteRepositoryFacade
var _ portsrepo.VoteRepositoryFacade = (*PgxVoteRepository)(nil)

// RecordVote appends a vote to the log and resolves the asset once the round
// reaches a majority, all inside one transaction. The asset row is locked
// first so concurrent votes serialize and at most one of them can close the
// round.
func (r *PgxVoteRepository) RecordVote(ctx context.Context, vote domain.ExceptionVote, committeeSize int) (domain.VoteTally, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.VoteTally{}, err
	}
	defer r.Rollback(ctx, tx) // No-op once the transaction is committed

	// 1. Lock the asset row and re-check its state under the lock.
	asset, err := r.assetRepo.FindAssetForUpdate(ctx, tx, vote.AssetID)
	if err != nil {
		return domain.VoteTally{}, err
	}
	if asset.ComplianceStatus != domain.StatusPendingReview {
		if asset.ComplianceStatus.Terminal() {
			return domain.VoteTally{}, fmt.Errorf("%w: asset %s already resolved to %s", apperrors.ErrRoundClosed, asset.AssetID, asset.ComplianceStatus)
		}
		return domain.VoteTally{}, fmt.Errorf("%w: asset %s is %s, not under review", apperrors.ErrInvalidState, asset.AssetID, asset.ComplianceStatus)
	}
	vote.Round = asset.VoteRound

	// 2. Read the current round's log and reject duplicate voters.
	votes, err := r.findVotesByAssetRound(ctx, tx, vote.AssetID, vote.Round)
	if err != nil {
		return domain.VoteTally{}, err
	}
	for _, existing := range votes {
		if existing.VoterID == vote.VoterID {
			return domain.VoteTally{}, fmt.Errorf("%w: %s already voted in round %d", apperrors.ErrDuplicateVote, vote.VoterID, vote.Round)
		}
	}

	// 3. Append the vote.
	m := mapping.ToModelExceptionVote(vote)
	insertQuery := `
		INSERT INTO exception_votes (` + voteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.VoteID,
		m.AssetID,
		m.TrustID,
		m.Round,
		m.VoterID,
		m.Vote,
		m.Reason,
		m.CastAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.VoteTally{}, fmt.Errorf("%w: %s already voted in round %d", apperrors.ErrDuplicateVote, vote.VoterID, vote.Round)
		}
		return domain.VoteTally{}, fmt.Errorf("failed to insert vote %s: %w", m.VoteID, err)
	}

	// 4. Tally from the log, never from a counter.
	votes = append(votes, vote)
	tally := domain.TallyVotes(votes, committeeSize)

	// 5. A majority closes the round while the lock is still held.
	if tally.Outcome != domain.OutcomePending {
		status := domain.StatusExceptionApproved
		if tally.Outcome == domain.OutcomeRejected {
			status = domain.StatusNonCompliant
		}
		reason := fmt.Sprintf("committee vote %d-%d in round %d", tally.ApproveVotes, tally.RejectVotes, vote.Round)
		if err := r.assetRepo.ResolveAssetInTx(ctx, tx, vote.AssetID, status, reason, vote.VoterID, vote.CastAt); err != nil {
			return domain.VoteTally{}, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.VoteTally{}, err
	}
	return tally, nil
}

// FindVotesByAssetRound retrieves the vote log for one asset and round.
func (r *PgxVoteRepository) FindVotesByAssetRound(ctx context.Context, assetID string, round int) ([]domain.ExceptionVote, error) {
	return r.findVotesByAssetRound(ctx, r.Pool, assetID, round)
}

// FindVotesByAsset retrieves the full vote history of an asset across rounds.
func (r *PgxVoteRepository) FindVotesByAsset(ctx context.Context, assetID string) ([]domain.ExceptionVote, error) {
	query := `SELECT ` + voteColumns + ` FROM exception_votes WHERE asset_id = $1 ORDER BY round, cast_at;`

	rows, err := r.Pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes for asset %s: %w", assetID, err)
	}
	defer rows.Close()

	return collectVotes(rows)
}

// querier covers both pool and transaction reads of the vote log.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgxVoteRepository) findVotesByAssetRound(ctx context.Context, db querier, assetID string, round int) ([]domain.ExceptionVote, error) {
	query := `SELECT ` + voteColumns + ` FROM exception_votes WHERE asset_id = $1 AND round = $2 ORDER BY cast_at;`

	rows, err := db.Query(ctx, query, assetID, round)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes for asset %s round %d: %w", assetID, round, err)
	}
	defer rows.Close()

	return collectVotes(rows)
}

func collectVotes(rows pgx.Rows) ([]domain.ExceptionVote, error) {
	votes := []models.ExceptionVote{}
	for rows.Next() {
		var m models.ExceptionVote
		err := rows.Scan(
			&m.VoteID,
			&m.AssetID,
			&m.TrustID,
			&m.Round,
			&m.VoterID,
			&m.Vote,
			&m.Reason,
			&m.CastAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote row: %w", err)
		}
		votes = append(votes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vote rows: %w", err)
	}
	return mapping.ToDomainExceptionVoteSlice(votes), nil
}
