package scheduler

import (
	"testing"
	"time"

	"mecanica_os/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCronEngine_Location(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	c := NewCronEngine(loc, logger.Nop())
	assert.Equal(t, loc, c.Location())

	assert.Equal(t, time.UTC, NewCronEngine(nil, logger.Nop()).Location())
}

func TestNewCronEngine_DailySpec(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	c := NewCronEngine(loc, logger.Nop())

	id, err := c.AddFunc("30 7 * * *", func() {})
	require.NoError(t, err)

	next := c.Entry(id).Schedule.Next(time.Date(2025, 1, 1, 8, 0, 0, 0, loc))
	assert.True(t, next.Equal(time.Date(2025, 1, 2, 7, 30, 0, 0, loc)), "next=%s", next)

	_, err = c.AddFunc("61 7 * * *", func() {})
	assert.Error(t, err)

	c.Remove(id)
	assert.Empty(t, c.Entries())
}

func TestNewCronEngine_RecoversPanics(t *testing.T) {
	c := NewCronEngine(time.UTC, logger.Nop())
	id, err := c.AddFunc("0 0 * * *", func() { panic("boom") })
	require.NoError(t, err)

	assert.NotPanics(t, func() { c.Entry(id).WrappedJob.Run() })
}
