package linemux

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseDrainsBacklog(t *testing.T) {
	logger, sink := createTestLogger(t)

	const lines = 200
	for i := 0; i < lines; i++ {
		logger.Line("n ", i)
	}

	// Close returns only after every accepted entry reached the sink
	require.NoError(t, logger.Close())

	for i := 0; i < lines; i++ {
		assert.Contains(t, sink.Joined(), fmt.Sprintf("n %d\n", i))
	}

	stats := logger.Stats()
	assert.Zero(t, stats.Pending)
	assert.Zero(t, stats.Dropped)
}

func TestCloseIdempotent(t *testing.T) {
	logger, sink := createTestLogger(t)

	logger.Line("once")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())

	assert.Equal(t, "once\n", sink.Joined())
}

func TestCloseConcurrent(t *testing.T) {
	logger, _ := createTestLogger(t)
	logger.Line("before close")

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = logger.Close()
		}(i)
	}
	wg.Wait()

	// Every caller observes the same outcome
	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestDoneSignal(t *testing.T) {
	logger, _ := createTestLogger(t)

	select {
	case <-logger.Done():
		t.Fatal("Done closed before Close")
	default:
	}

	require.NoError(t, logger.Close())

	select {
	case <-logger.Done():
	default:
		t.Fatal("Done still open after Close")
	}
}

func TestAppendAfterClose(t *testing.T) {
	logger, sink := createTestLogger(t)

	logger.Line("kept")
	require.NoError(t, logger.Close())

	// Refused values leave the sink untouched and are counted
	logger.Append("lost").Append(Ln)
	logger.Line("also lost")

	assert.Equal(t, "kept\n", sink.Joined())
	assert.Equal(t, uint64(4), logger.Stats().Dropped)
}

// failingSink rejects every write.
type failingSink struct {
	err error
}

func (s *failingSink) Write(p []byte) (int, error) {
	return 0, s.err
}

func TestSinkFailureStopsWorker(t *testing.T) {
	sinkErr := errors.New("pipe broken")
	cfg := DefaultConfig()
	cfg.Sink = &failingSink{err: sinkErr}

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Line("boom")

	// The failed write terminates the worker
	select {
	case <-logger.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not terminate after sink failure")
	}

	err = logger.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink write")
	assert.ErrorIs(t, err, sinkErr)

	// Later appends are refused and counted
	logger.Append("late")
	assert.Equal(t, uint64(1), logger.Stats().Dropped)

	// Close surfaces the same failure
	assert.Equal(t, err, logger.Close())
}

// panicStringer explodes when rendered.
type panicStringer struct{}

func (panicStringer) String() string { panic("bad value") }

func TestRenderPanicStopsWorker(t *testing.T) {
	logger, sink := createTestLogger(t)

	logger.Append(panicStringer{}).Append(Ln)

	select {
	case <-logger.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not terminate after render panic")
	}

	err := logger.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render panic")
	assert.Contains(t, err.Error(), "bad value")

	assert.Error(t, logger.Close())
	assert.Empty(t, sink.Segments())
}
