//go:build protogen

package main

import (
	"context"
	"log/slog"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/daybook-cal/daybook/libs/config"
	"github.com/daybook-cal/daybook/libs/grpcx"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/grpcserver"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/synclog"
)

func startGrpcServer(ctx context.Context, logger *slog.Logger, recon *synclog.Reconciler) error {
	port, err := config.Port("GRPC_PORT", "9090")
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcx.UnaryServerRequestIDInterceptor()),
	)
	grpcserver.Register(srv, recon)

	go func() {
		logger.Info("grpc server starting", "addr", lis.Addr().String())
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc server error", "err", err)
		}
	}()

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	return nil
}
