package scheduler

import (
	"time"

	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/logger"

	"github.com/robfig/cron/v3"
)

var _ interfaces.ICronEngine = (*cron.Cron)(nil)

// NewCronEngine returns a cron runner that evaluates standard 5-field specs in
// loc. Panicking jobs are recovered and logged. The caller starts and stops
// it.
func NewCronEngine(loc *time.Location, log *logger.Logger) *cron.Cron {
	if loc == nil {
		loc = time.UTC
	}
	cl := cronLogger{log: log.Component("cron")}
	return cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl)),
	)
}

// cronLogger adapts the zerolog wrapper to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
