package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/linemux"
	"github.com/lixenwraith/linemux/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	cfg := linemux.DefaultConfig()
	err := cfg.ApplyOverride(
		"target=stderr",
		"buffer_size=2048",
	)
	if err != nil {
		panic(err)
	}

	logger, err := linemux.New(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	gnetAdapter := compat.NewGnetAdapter(logger)

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
