//go:build protogen

package grpcserver

import (
	"context"

	"google.golang.org/grpc"

	syncv1 "github.com/daybook-cal/daybook/protos/gen/sync/v1"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/synclog"
)

type server struct {
	syncv1.UnimplementedSyncFeedServer
	recon *synclog.Reconciler
}

func Register(grpcServer *grpc.Server, recon *synclog.Reconciler) {
	syncv1.RegisterSyncFeedServer(grpcServer, &server{recon: recon})
}

func (s *server) ListPending(ctx context.Context, _ *syncv1.ListPendingRequest) (*syncv1.ListPendingResponse, error) {
	entries, err := s.recon.Pending(ctx)
	if err != nil {
		return nil, err
	}
	resp := &syncv1.ListPendingResponse{}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &syncv1.PendingEntry{
			Id:     int64(e.ID),
			Uid:    e.UID,
			Object: string(e.Object),
			Action: string(e.Action),
		})
	}
	return resp, nil
}

func (s *server) Acknowledge(ctx context.Context, req *syncv1.AcknowledgeRequest) (*syncv1.AcknowledgeResponse, error) {
	if err := s.recon.Remove(ctx, int(req.GetId()), model.ObjectType(req.GetObject())); err != nil {
		return nil, err
	}
	return &syncv1.AcknowledgeResponse{}, nil
}

func (s *server) Reset(ctx context.Context, _ *syncv1.ResetRequest) (*syncv1.ResetResponse, error) {
	if err := s.recon.Reset(ctx); err != nil {
		return nil, err
	}
	return &syncv1.ResetResponse{}, nil
}
