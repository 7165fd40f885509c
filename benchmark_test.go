package linemux

import (
	"testing"

	"github.com/lixenwraith/linemux/render"
)

func newBenchLogger(b *testing.B) *Logger {
	cfg := DefaultConfig()
	cfg.Target = TargetDiscard

	logger, err := New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	return logger
}

// BenchmarkLine benchmarks one whole line per iteration
func BenchmarkLine(b *testing.B) {
	logger := newBenchLogger(b)
	defer logger.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Line("benchmark message ", i)
	}
}

// BenchmarkAppendChain benchmarks chained appends ending in a flush
func BenchmarkAppendChain(b *testing.B) {
	logger := newBenchLogger(b)
	defer logger.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Append("key=").Append(i).Append(" ok=").Append(true).Append(Ln)
	}
}

// BenchmarkCompositeValue benchmarks rendering through the dump path
func BenchmarkCompositeValue(b *testing.B) {
	logger := newBenchLogger(b)
	defer logger.Close()

	payload := struct {
		ID   int
		Name string
	}{ID: 7, Name: "bench"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Append(payload).Append(Ln)
	}
}

// BenchmarkConcurrentWriters benchmarks the stream under concurrent load
func BenchmarkConcurrentWriters(b *testing.B) {
	logger := newBenchLogger(b)
	defer logger.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Line("concurrent ", i)
			i++
		}
	})
}

// BenchmarkRenderScalars benchmarks the buffer's direct value conversion
func BenchmarkRenderScalars(b *testing.B) {
	buf := render.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.WriteValue("count=")
		buf.WriteValue(i)
		buf.WriteValue(" ratio=")
		buf.WriteValue(0.5)
		buf.WriteValue(render.Ln)
		buf.Take()
	}
}
