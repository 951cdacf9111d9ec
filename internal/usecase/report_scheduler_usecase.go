package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mecanica_os/internal/domain"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/logger"

	"github.com/robfig/cron/v3"
)

const (
	defaultDispatchTimeout = 60 * time.Second
	firingMinuteLayout     = "2006-01-02T15:04"
)

// IReportSchedulerUseCase owns the single daily trigger of the report job.
//
// States are Stopped (initial) and Scheduled(hour, minute). Schedule always
// replaces the previous trigger; Stop is a no-op when already stopped.
type IReportSchedulerUseCase interface {
	Schedule(hour, minute int) (entities.ScheduleConfig, error)
	Stop() entities.ScheduleConfig
	State() entities.ScheduleConfig
}

// SchedulerOptions tunes firing. Zero values fall back to defaults.
type SchedulerOptions struct {
	Location        *time.Location
	DispatchTimeout time.Duration
}

type ReportSchedulerUseCase struct {
	engine     interfaces.ICronEngine
	dispatcher IReportDispatcher
	log        *logger.Logger
	loc        *time.Location
	timeout    time.Duration
	now        func() time.Time

	mu  sync.Mutex
	cfg entities.ScheduleConfig
	// entry is valid only while cfg.Active.
	entry cron.EntryID
	// generation invalidates callbacks of replaced triggers.
	generation uint64
	lastFired  string
}

var _ IReportSchedulerUseCase = (*ReportSchedulerUseCase)(nil)

func NewReportSchedulerUseCase(engine interfaces.ICronEngine, dispatcher IReportDispatcher, log *logger.Logger, opts SchedulerOptions) *ReportSchedulerUseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DispatchTimeout <= 0 {
		opts.DispatchTimeout = defaultDispatchTimeout
	}
	return &ReportSchedulerUseCase{
		engine:     engine,
		dispatcher: dispatcher,
		log:        log.Component("report_scheduler"),
		loc:        opts.Location,
		timeout:    opts.DispatchTimeout,
		now:        time.Now,
	}
}

// Schedule validates the time, registers the new trigger and then removes the
// previous one. When registration fails the previous state is kept and the
// error wraps ErrReportDispatchFailure.
func (s *ReportSchedulerUseCase) Schedule(hour, minute int) (entities.ScheduleConfig, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return s.State(), fmt.Errorf("%w: %d:%d", domain.ErrInvalidTime, hour, minute)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.generation + 1
	id, err := s.engine.AddFunc(cronSpec(hour, minute), func() { s.fire(gen) })
	if err != nil {
		s.log.Error().Err(err).Int("hour", hour).Int("minute", minute).Msg("register report trigger failed")
		return s.cfg, fmt.Errorf("%w: %w", domain.ErrReportDispatchFailure, err)
	}
	if s.cfg.Active {
		s.engine.Remove(s.entry)
	}

	s.generation = gen
	s.entry = id
	s.cfg = entities.ScheduleConfig{Hour: hour, Minute: minute, Active: true}
	s.log.Info().Int("hour", hour).Int("minute", minute).Str("location", s.loc.String()).Msg("report dispatch scheduled")
	return s.cfg, nil
}

// Stop returns the resulting state; Hour and Minute keep the last values.
func (s *ReportSchedulerUseCase) Stop() entities.ScheduleConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.Active {
		return s.cfg
	}
	s.engine.Remove(s.entry)
	s.generation++
	s.entry = 0
	s.cfg.Active = false
	s.log.Info().Msg("report dispatch stopped")
	return s.cfg
}

func (s *ReportSchedulerUseCase) State() entities.ScheduleConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// fire runs the job unless the trigger was replaced or already fired during
// the current minute. A failed dispatch is logged and waits for the next day.
func (s *ReportSchedulerUseCase) fire(gen uint64) {
	s.mu.Lock()
	if !s.cfg.Active || gen != s.generation {
		s.mu.Unlock()
		return
	}
	minute := s.now().In(s.loc).Format(firingMinuteLayout)
	if minute == s.lastFired {
		s.mu.Unlock()
		s.log.Debug().Str("minute", minute).Msg("duplicate firing ignored")
		return
	}
	s.lastFired = minute
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.dispatcher.GenerateAndSendReport(ctx); err != nil {
		s.log.Error().Err(err).Str("minute", minute).Msg("report dispatch failed; next attempt at the next scheduled time")
		return
	}
	s.log.Info().Str("minute", minute).Dur("elapsed", time.Since(start)).Msg("report dispatch done")
}

// cronSpec is the standard five-field daily expression.
func cronSpec(hour, minute int) string {
	return fmt.Sprintf("%d %d * * *", minute, hour)
}
