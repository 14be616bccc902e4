package reconcile

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credits-service/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/persistence"
)

// Reconciler periodically recomputes each user's cached balance from the
// transaction log. The cached balance is only ever a denormalized
// projection of the ledger; this job makes it self-healing on a schedule.
type Reconciler struct {
	userRepo        persistence.UserRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	interval        time.Duration
}

// NewReconciler creates a new reconciler
func NewReconciler(
	userRepo persistence.UserRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	interval time.Duration,
) *Reconciler {
	return &Reconciler{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
		interval:        interval,
	}
}

// Run executes reconciliation on the configured interval until the context
// is canceled. If runImmediately is set, one pass runs before the first
// tick.
func (r *Reconciler) Run(ctx context.Context, runImmediately bool) {
	if runImmediately {
		if err := r.ReconcileAll(ctx); err != nil {
			r.logger.Error("Startup reconciliation failed", map[string]any{
				"error": err.Error(),
			})
		}
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Reconciler stopped", nil)
			return
		case <-ticker.C:
			if err := r.ReconcileAll(ctx); err != nil {
				r.logger.Error("Reconciliation pass failed", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}

// ReconcileAll runs a single reconciliation pass over every user. A
// failure on one user does not stop the pass; the first error is returned
// after all users have been visited.
func (r *Reconciler) ReconcileAll(ctx context.Context) error {
	start := r.timeProvider.Now()

	users, err := r.userRepo.List(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	corrected := 0

	for _, user := range users {
		changed, err := r.reconcileUser(ctx, user)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if changed {
			corrected++
		}
	}

	r.logger.Info("Reconciliation pass completed", map[string]any{
		"users":       len(users),
		"corrected":   corrected,
		"duration_ms": r.timeProvider.Since(start).Std().Milliseconds(),
	})

	return firstErr
}

// reconcileUser overwrites the cached balance from the ledger sum when
// they disagree. The write may race with an in-flight transaction; the
// next pass converges.
func (r *Reconciler) reconcileUser(ctx context.Context, user *entity.User) (bool, error) {
	sum, err := r.transactionRepo.SumByNetID(ctx, user.NetID)
	if err != nil {
		r.logger.Error("Failed to sum transactions", map[string]any{
			"netid": user.NetID,
			"error": err.Error(),
		})
		return false, err
	}

	if sum == user.Balance() {
		return false, nil
	}

	r.logger.Warn("Balance drift detected, correcting", map[string]any{
		"netid":          user.NetID,
		"cached_balance": user.GetBalance(),
		"ledger_balance": entity.AmountInCentsToString(sum),
	})

	if err := r.userRepo.UpdateBalance(ctx, user.NetID, sum); err != nil {
		r.logger.Error("Failed to correct balance", map[string]any{
			"netid": user.NetID,
			"error": err.Error(),
		})
		return false, err
	}

	return true, nil
}
