package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/linemux"
	"github.com/lixenwraith/linemux/compat"
)

func main() {
	// Keep server output on stdout and the shared log stream on stderr
	logger, err := linemux.NewBuilder().
		Target("stderr").
		BufferSize(2048).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	// Create fasthttp adapter with custom tag detection
	httpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithPrefix("[http] "),
		compat.WithTagDetector(customTagDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  httpAdapter,

		// Other server settings
		Name:              "LinemuxExample",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	logger.Line("starting server on :8080")

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customTagDetector(msg string) string {
	// Inspect fasthttp-specific message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return "WARN"
	}
	if strings.Contains(msg, "error when serving connection") {
		return "ERROR"
	}

	// Fall back to the default detection
	return compat.DetectTag(msg)
}
