//go:build !protogen

package main

import (
	"context"
	"log/slog"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/synclog"
)

func startGrpcServer(_ context.Context, _ *slog.Logger, _ *synclog.Reconciler) error {
	return nil
}
