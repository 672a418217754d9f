// Package checker drives one get-check-and-report cycle: list the
// resources the client service wants checked, then for each one
// resolve its URL, probe it, and report the outcome back.
package checker

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/deadoralive/checker/internal/client"
	"github.com/deadoralive/checker/internal/domain"
)

// Ports (interfaces) — the runner never talks HTTP itself, so tests
// can substitute fakes for all four collaborators.
type Lister interface {
	ResourcesToCheck(ctx context.Context) ([]domain.ResourceID, error)
}

type Resolver interface {
	URLForResource(ctx context.Context, id domain.ResourceID) (string, error)
}

type Prober interface {
	Check(ctx context.Context, url string) domain.ProbeResult
}

type Reporter interface {
	UpsertResult(ctx context.Context, id domain.ResourceID, result domain.ProbeResult) error
}

type Runner struct {
	Logger   *zap.Logger
	Lister   Lister
	Resolver Resolver
	Prober   Prober
	Reporter Reporter
}

func NewRunner(logger *zap.Logger, l Lister, r Resolver, p Prober, rep Reporter) *Runner {
	return &Runner{Logger: logger, Lister: l, Resolver: r, Prober: p, Reporter: rep}
}

// Run executes a single pass over the listed resources, one at a time
// and in listing order. Only the listing step can fail the whole run;
// a resource whose URL can't be resolved is skipped without a report,
// and probe outcomes (dead included) are always reported. It does not
// loop; repeating the cycle is the caller's business.
func (r *Runner) Run(ctx context.Context) error {
	ids, err := r.Lister.ResourcesToCheck(ctx)
	if err != nil {
		return err
	}
	r.Logger.Info("resources_listed", zap.Int("count", len(ids)))

	for _, id := range ids {
		url, err := r.Resolver.URLForResource(ctx, id)
		if err != nil {
			var re *client.ResolutionError
			if errors.As(err, &re) {
				r.Logger.Info("resource_skipped",
					zap.String("resource_id", string(id)),
					zap.Int("status", re.Status),
					zap.String("reason", re.Reason),
				)
			} else {
				r.Logger.Info("resource_skipped",
					zap.String("resource_id", string(id)),
					zap.String("reason", err.Error()),
				)
			}
			continue
		}

		result := r.Prober.Check(ctx, url)
		if result.Alive {
			status, _ := result.StatusCode()
			r.Logger.Info("check_succeeded",
				zap.String("url", url),
				zap.String("resource_id", string(id)),
				zap.Int("status", status),
			)
		} else {
			r.Logger.Info("check_failed",
				zap.String("url", url),
				zap.String("resource_id", string(id)),
				zap.String("reason", result.Reason),
			)
		}

		if err := r.Reporter.UpsertResult(ctx, id, result); err != nil {
			r.Logger.Warn("report_failed",
				zap.String("resource_id", string(id)),
				zap.Error(err),
			)
		}
	}
	return nil
}
