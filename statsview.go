package main

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

const (
	statsviewAddress = "localhost:12600"
	statsviewPath    = "/debug/statsview"
)

// launchStatsview serves runtime statistics in the background. Go pprof
// data is available under /debug/pprof/ on the same address.
func launchStatsview(logger *log.Logger) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(statsviewAddress))
		mgr := statsview.New()
		mgr.Start()
	}()

	logger.Info("Stats server available",
		log.String("url", "http://"+statsviewAddress+statsviewPath))
}
