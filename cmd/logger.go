package main

import (
	"github.com/ic2hrmk/promtail"
	"github.com/sirupsen/logrus"
)

func (a *App) initLogger() {
	a.Logger = logrus.New()

	switch a.Config.LogLevel {
	case "DEBUG":
		a.Logger.SetLevel(logrus.DebugLevel)
	case "ERROR":
		a.Logger.SetLevel(logrus.ErrorLevel)
	default:
		a.Logger.SetLevel(logrus.InfoLevel)
	}
}

// promtailHook forwards log entries to Loki.
type promtailHook struct {
	client promtail.Client
}

func (h *promtailHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}

func (h *promtailHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}

	switch entry.Level {
	case logrus.ErrorLevel:
		h.client.Logf(promtail.Error, "%s", line)
	case logrus.WarnLevel:
		h.client.Logf(promtail.Warn, "%s", line)
	default:
		h.client.Logf(promtail.Info, "%s", line)
	}

	return nil
}
