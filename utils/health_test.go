package utils

import (
	"context"
	"errors"
	"testing"
)

func TestRunHealthCheck(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	runHealthCheck(context.Background(), ok, down)

	status := GetHealthStatus()
	if !status.Redis {
		t.Error("expected redis to be reported healthy")
	}
	if status.Mongo {
		t.Error("expected mongo to be reported unhealthy")
	}
	if status.CheckedAt.IsZero() {
		t.Error("expected a check timestamp on the snapshot")
	}

	runHealthCheck(context.Background(), down, ok)

	status = GetHealthStatus()
	if status.Redis || !status.Mongo {
		t.Errorf("expected snapshot to flip, got %+v", status)
	}
}
