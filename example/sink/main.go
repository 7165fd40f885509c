package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/linemux"
)

const configFile = "./linemux_demo.toml"

// Example configuration loaded in scenario 2.
const tomlContent = `[linemux]
target = "stdout"
time_layout = "15:04:05.000"
buffer_size = 2048
internal_errors_to_stderr = true
`

// countingSink numbers each segment it receives, demonstrating that
// the sink sees exactly one Write per flushed line.
type countingSink struct {
	n int
}

func (s *countingSink) Write(p []byte) (int, error) {
	s.n++
	fmt.Printf("segment %02d | %s", s.n, p)
	return len(p), nil
}

// main orchestrates the different demo scenarios.
func main() {
	fmt.Println("--- Running Stream Demo Suite ---")

	fmt.Println("\n--- SCENARIO 1: Custom sink observes whole lines only ---")
	testCustomSink()

	fmt.Println("\n--- SCENARIO 2: Configuration loaded from a TOML file ---")
	testFileConfig()

	fmt.Println("\n--- SCENARIO 3: Concurrent writers never interleave ---")
	testConcurrentWriters()

	fmt.Println("\n--- Stream Demo Suite Complete ---")
}

// testCustomSink routes the stream into an injected writer.
func testCustomSink() {
	sink := &countingSink{}
	logger, err := linemux.NewBuilder().Sink(sink).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start stream: %v\n", err)
		os.Exit(1)
	}

	logger.Append("alpha ").Append(1).Append(linemux.Ln)
	logger.Line("beta ", 2.5)
	logger.Print("gamma ", true).Append(linemux.Ln)

	closeStream(logger, "1: Custom-Sink")
}

// testFileConfig builds the stream from a TOML file on disk.
func testFileConfig() {
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write demo config: %v\n", err)
		os.Exit(1)
	}
	defer os.Remove(configFile)

	cfg, err := linemux.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := linemux.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start stream: %v\n", err)
		os.Exit(1)
	}

	logger.Line("configured from ", configFile, " at ", time.Now())

	closeStream(logger, "2: File-Config")

	stats := logger.Stats()
	fmt.Printf("appended=%d emitted=%d\n", stats.Appended, stats.Emitted)
}

// testConcurrentWriters runs several goroutines against one sink.
func testConcurrentWriters() {
	sink := &countingSink{}
	logger, err := linemux.NewBuilder().Sink(sink).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start stream: %v\n", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 5; i++ {
				// Each value lands in the writer's own segment
				logger.Append("writer ").Append(id).Append(" item ").Append(i).Append(linemux.Ln)
			}
		}(w)
	}
	wg.Wait()

	closeStream(logger, "3: Concurrent-Writers")
}

// closeStream is a helper to drain and stop a stream instance.
func closeStream(l *linemux.Logger, phaseName string) {
	if err := l.Close(); err != nil {
		fmt.Printf("  WARNING: Close error in phase '%s': %v\n", phaseName, err)
	}
}
