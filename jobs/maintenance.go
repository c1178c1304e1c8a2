package jobs

import (
	"context"
	"fmt"
	"stay/config"
	"stay/infras/otel"
	"stay/internal/domains/availability/repository"
	"stay/shared/constant"
	"stay/shared/timezone"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Maintenance rolls the availability window forward on a schedule:
// past rows are pruned and future rows are materialized out to the
// configured horizon.
type Maintenance struct {
	repo repository.Availability
	cfg  *config.Config
	otel otel.Otel
	cron *cron.Cron
}

func NewMaintenance(repo repository.Availability, cfg *config.Config, otel otel.Otel) *Maintenance {
	return &Maintenance{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		cron: cron.New(),
	}
}

func (m *Maintenance) Start() error {
	_, err := m.cron.AddFunc(m.cfg.Jobs.AvailabilityCron, m.RollWindow)
	if err != nil {
		return fmt.Errorf("failed to schedule availability maintenance: %w", err)
	}

	m.cron.Start()
	log.Info().Str("schedule", m.cfg.Jobs.AvailabilityCron).Msg("Availability maintenance scheduled")

	return nil
}

func (m *Maintenance) Stop() {
	m.cron.Stop()
}

func (m *Maintenance) RollWindow() {
	ctx, scope := m.otel.NewScope(context.Background(), constant.OtelJobScopeName, constant.OtelJobScopeName+".RollWindow")
	defer scope.End()

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())
	cutoff := today.AddDate(0, 0, -1)
	horizon := today.AddDate(0, 0, m.cfg.Jobs.AvailabilityWindowDays)

	deleted, err := m.repo.PruneBefore(ctx, cutoff)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to prune past availability rows")

		return
	}

	if err := m.repo.ExtendWindow(ctx, today, horizon); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to extend availability window")

		return
	}

	log.Info().
		Int64("pruned", deleted).
		Str("horizon", horizon.Format(constant.DateOnlyFormat)).
		Msg("Availability window rolled")
}
