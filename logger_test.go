package linemux

import (
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectorSink records every Write it receives as one segment.
type collectorSink struct {
	mu       sync.Mutex
	segments []string
}

func (s *collectorSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.segments = append(s.segments, string(p))
	return len(p), nil
}

// Segments returns a copy of the recorded segments.
func (s *collectorSink) Segments() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.segments...)
}

// Joined returns the full sink content in arrival order.
func (s *collectorSink) Joined() string {
	return strings.Join(s.Segments(), "")
}

// createTestLogger creates a logger draining into an in-memory sink
func createTestLogger(t *testing.T) (*Logger, *collectorSink) {
	sink := &collectorSink{}
	cfg := DefaultConfig()
	cfg.Sink = sink

	logger, err := New(cfg)
	require.NoError(t, err)

	return logger, sink
}

// TestNew verifies that a new logger starts with a clean state
func TestNew(t *testing.T) {
	logger, _ := createTestLogger(t)
	defer logger.Close()

	assert.NotNil(t, logger)
	assert.NoError(t, logger.Err())

	select {
	case <-logger.Done():
		t.Fatal("worker terminated before Close")
	default:
	}

	stats := logger.Stats()
	assert.Zero(t, stats.Appended)
	assert.Zero(t, stats.Emitted)
	assert.Zero(t, stats.Dropped)
}

// TestNewNilConfig verifies that a nil configuration falls back to defaults
func TestNewNilConfig(t *testing.T) {
	logger, err := New(nil)
	require.NoError(t, err)
	defer logger.Close()

	cfg := logger.GetConfig()
	assert.Equal(t, TargetStdout, cfg.Target)
	assert.Equal(t, time.RFC3339Nano, cfg.TimeLayout)
}

// TestNewInvalidConfig verifies that New rejects configurations that fail
// validation
func TestNewInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{
			name:   "bad target",
			mutate: func(cfg *Config) { cfg.Target = "file" },
		},
		{
			name:   "empty time layout",
			mutate: func(cfg *Config) { cfg.TimeLayout = "  " },
		},
		{
			name:   "zero buffer size",
			mutate: func(cfg *Config) { cfg.BufferSize = 0 },
		},
		{
			name:   "render depth out of range",
			mutate: func(cfg *Config) { cfg.MaxRenderDepth = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			logger, err := New(cfg)
			assert.Error(t, err)
			assert.Nil(t, logger)
		})
	}
}

// TestSingleWriterLine verifies that chained appends ending in Ln produce
// exactly one segment holding the whole line
func TestSingleWriterLine(t *testing.T) {
	logger, sink := createTestLogger(t)
	defer logger.Close()

	logger.Append("a").Append("b").Append(Ln)

	require.Eventually(t, func() bool {
		return len(sink.Segments()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"ab\n"}, sink.Segments())
}

// TestValueConcatenation verifies that consecutive values render back to
// back with no separators
func TestValueConcatenation(t *testing.T) {
	logger, sink := createTestLogger(t)

	logger.Append("count=").Append(42).Append(" ratio=").Append(0.5).Append(Ln)
	logger.Print("flag=", true, " name=", "drain").Append(Ln)
	logger.Line("mixed ", int64(-7), " ", uint(9))

	require.NoError(t, logger.Close())

	assert.Equal(t,
		"count=42 ratio=0.5\nflag=true name=drain\nmixed -7 9\n",
		sink.Joined())
}

// TestNoEmissionWithoutFlush verifies that buffered text reaches the sink
// only at a flush boundary, and that Close forces out whatever remains
func TestNoEmissionWithoutFlush(t *testing.T) {
	logger, sink := createTestLogger(t)

	logger.Append("a").Append("b")

	// Give the worker time to consume the entries
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, sink.Segments())
	assert.Zero(t, logger.Stats().Emitted)

	// Close drains the buffered text as one final segment
	require.NoError(t, logger.Close())
	assert.Equal(t, []string{"ab"}, sink.Segments())
}

// TestFlushTokenEmitsWithoutNewline verifies that Flush marks a boundary
// without adding a line terminator
func TestFlushTokenEmitsWithoutNewline(t *testing.T) {
	logger, sink := createTestLogger(t)

	logger.Append("prompt> ").Append(Flush)

	require.Eventually(t, func() bool {
		return len(sink.Segments()) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, logger.Close())
	assert.Equal(t, []string{"prompt> "}, sink.Segments())
}

// TestInterleavedWritersKeepLinesWhole confirms that concurrent writers
// never interleave inside a line
func TestInterleavedWritersKeepLinesWhole(t *testing.T) {
	logger, sink := createTestLogger(t)

	const iterations = 200
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			logger.Append("abc").Append(42).Append(Ln)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			logger.Append("x").Append(1).Append(Ln)
		}
	}()

	wg.Wait()
	require.NoError(t, logger.Close())

	counts := map[string]int{}
	for _, line := range strings.Split(sink.Joined(), "\n") {
		if line == "" {
			continue
		}
		counts[line]++
	}

	// Every line is one writer's output, never a mix of the two
	assert.Equal(t, map[string]int{"abc42": iterations, "x1": iterations}, counts)
}

// TestPerWriterOrder verifies that each writer's lines appear in the order
// that writer produced them, regardless of interleaving with other writers
func TestPerWriterOrder(t *testing.T) {
	logger, sink := createTestLogger(t)

	const lines = 50
	var wg sync.WaitGroup
	writer := func(name string) {
		defer wg.Done()
		for i := 0; i < lines; i++ {
			logger.Append(name).Append(" ").Append(i).Append(Ln)
		}
	}

	wg.Add(2)
	go writer("a")
	go writer("b")
	wg.Wait()

	require.NoError(t, logger.Close())

	sequences := map[string][]int{}
	for _, line := range strings.Split(sink.Joined(), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		require.Len(t, parts, 2, "malformed line: %q", line)
		n, err := strconv.Atoi(parts[1])
		require.NoError(t, err, "malformed line: %q", line)
		sequences[parts[0]] = append(sequences[parts[0]], n)
	}

	for name, seq := range sequences {
		require.Len(t, seq, lines, "writer %s", name)
		for i, n := range seq {
			assert.Equal(t, i, n, "writer %s out of order", name)
		}
	}
}

// TestStatsCounters verifies that the activity counters track appends,
// emissions, and queue depth
func TestStatsCounters(t *testing.T) {
	logger, _ := createTestLogger(t)

	const lines = 10
	for i := 0; i < lines; i++ {
		logger.Line("line ", i)
	}

	require.NoError(t, logger.Close())

	stats := logger.Stats()
	// Line enqueues its arguments plus the Ln token
	assert.Equal(t, uint64(lines*3), stats.Appended)
	assert.NotZero(t, stats.Emitted)
	assert.Zero(t, stats.Dropped)
	assert.Zero(t, stats.Pending)
}

// TestGetConfigReturnsCopy verifies that mutating a returned configuration
// does not affect the running logger
func TestGetConfigReturnsCopy(t *testing.T) {
	logger, _ := createTestLogger(t)
	defer logger.Close()

	cfg := logger.GetConfig()
	cfg.Target = "changed"
	cfg.BufferSize = 1

	fresh := logger.GetConfig()
	assert.Equal(t, TargetStdout, fresh.Target)
	assert.Equal(t, defaultConfig.BufferSize, fresh.BufferSize)
}

// TestPackageLevelFunctions verifies that package-level calls delegate to
// the shared logger and that CloseDefault resets it
func TestPackageLevelFunctions(t *testing.T) {
	sink := &collectorSink{}
	cfg := DefaultConfig()
	cfg.Sink = sink
	l, err := New(cfg)
	require.NoError(t, err)

	defaultMu.Lock()
	prev := defaultLogger
	defaultLogger = l
	defaultMu.Unlock()
	defer func() {
		defaultMu.Lock()
		defaultLogger = prev
		defaultMu.Unlock()
	}()

	Append("pkg ").Print("level ", 1)
	Line("done")

	require.NoError(t, CloseDefault())
	assert.Equal(t, "pkg level 1done\n", sink.Joined())

	// The shared logger is gone; closing again is a no-op
	assert.NoError(t, CloseDefault())
}
