package grpcapi

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/radieske/eventos-service/internal/eventos/repo"
	"github.com/radieske/eventos-service/pkg/eventospb"
)

// Repo define as operações de leitura usadas pelo gateway gRPC.
// É o mesmo repositório do gateway REST: os dois enxergam o mesmo estado.
type Repo interface {
	Get(ctx context.Context, id string) (*repo.Evento, error)
	List(ctx context.Context) ([]repo.Evento, error)
}

// Server implementa o serviço gRPC de leitura de eventos
type Server struct {
	eventospb.UnimplementedEventoServiceServer

	log  *zap.Logger
	repo Repo
}

func NewServer(log *zap.Logger, r Repo) *Server {
	return &Server{log: log, repo: r}
}

// GetEvento retorna um evento pelo id (campo texto, validado como UUID)
func (s *Server) GetEvento(ctx context.Context, req *eventospb.GetEventoRequest) (*eventospb.EventoResponse, error) {
	if _, err := uuid.Parse(req.GetId()); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid event id")
	}

	ev, err := s.repo.Get(ctx, req.GetId())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "event not found")
		}
		s.log.Error("get evento", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return toProto(ev), nil
}

// ListEventos retorna todos os eventos cadastrados
func (s *Server) ListEventos(ctx context.Context, _ *eventospb.ListEventosRequest) (*eventospb.ListEventosResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("list eventos", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := &eventospb.ListEventosResponse{
		Eventos: make([]*eventospb.EventoResponse, 0, len(list)),
	}
	for i := range list {
		out.Eventos = append(out.Eventos, toProto(&list[i]))
	}
	return out, nil
}

// toProto mapeia o modelo interno pro wire. Opcionais viram campos com
// presença explícita: ausência não colapsa em ""/0.0.
func toProto(e *repo.Evento) *eventospb.EventoResponse {
	return &eventospb.EventoResponse{
		Id:          e.ID,
		Name:        e.Name,
		Sport:       e.Sport,
		ScheduledAt: e.ScheduledAt.Format(time.RFC3339),
		Status:      e.Status,
		HomeTeam:    e.HomeTeam,
		AwayTeam:    e.AwayTeam,
		OddsHome:    e.OddsHome,
		OddsDraw:    e.OddsDraw,
		OddsAway:    e.OddsAway,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
