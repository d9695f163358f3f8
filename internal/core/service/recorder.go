package service

import (
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"
	"time"
)

func observe(recorder port.MetricsRecorder, provider string, kind domain.FailureKind, start time.Time) {
	if recorder == nil {
		return
	}

	recorder.ObserveProviderCall(provider, kind, time.Since(start))
}
