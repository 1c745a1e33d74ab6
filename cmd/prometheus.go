package main

import (
	"recifi/internal/usecasees"
	"recifi/internal/usecasees/structs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (a *App) InitMetrics() {
	metrics := usecasees.Metrics{}

	for _, name := range []structs.MetricConst{
		structs.MetricTradeClosed,
		structs.MetricTradeFailed,
		structs.MetricTradeReopened,
		structs.MetricPriceTicks,
	} {
		metrics[name] = promauto.NewCounter(prometheus.CounterOpts{
			Name: name.ToString(),
			Help: name.ToString(),
		})
	}

	a.Metrics = metrics
}
