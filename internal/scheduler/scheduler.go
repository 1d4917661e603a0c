// Package scheduler runs the periodic domain statistics refresh.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/chawalitkim/veritas-lens-project/internal/config"
)

// Nightly, off the top of the hour to dodge other cron herds.
const defaultSpec = "17 3 * * *"

const refreshTimeout = time.Minute

// Refresher is satisfied by *core.Lens.
type Refresher interface {
	RefreshDomainStats(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func New(refresher Refresher, cfg config.SchedulerConfig, log *zap.Logger) (*Scheduler, error) {
	spec := cfg.Spec
	if spec == "" {
		spec = defaultSpec
	}

	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		touched, err := refresher.RefreshDomainStats(ctx)
		if err != nil {
			log.Error("domain stats refresh failed", zap.Error(err))
			return
		}
		log.Info("domain stats refreshed", zap.Int64("domains", touched))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}

	return &Scheduler{cron: c, log: log}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop halts the cron loop and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}
