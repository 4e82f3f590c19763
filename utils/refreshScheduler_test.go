package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	loads  int32
	prunes int32
	err    error
}

func (r *countingRefresher) LoadCatalog(ctx context.Context) error {
	atomic.AddInt32(&r.loads, 1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("missing deadline")
	}
	return r.err
}

func (r *countingRefresher) PruneSessions(maxIdle time.Duration) int {
	atomic.AddInt32(&r.prunes, 1)
	return 0
}

func TestRefreshCatalogRunsBothSteps(t *testing.T) {
	r := &countingRefresher{err: errors.New("backend down")}
	refreshCatalog(r, time.Second)

	assert.Equal(t, int32(1), r.loads)
	assert.Equal(t, int32(1), r.prunes)
}

func TestInitializeRefreshSchedulerRejectsBadSpec(t *testing.T) {
	_, err := InitializeRefreshScheduler(&countingRefresher{}, "not a cron", time.Second)
	assert.Error(t, err)
}

func TestInitializeRefreshSchedulerStarts(t *testing.T) {
	c, err := InitializeRefreshScheduler(&countingRefresher{}, "@every 1h", time.Second)
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)
}
