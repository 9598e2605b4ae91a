package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/eventos-service/internal/eventos/dto"
	"github.com/radieske/eventos-service/internal/eventos/repo"
	"github.com/radieske/eventos-service/pkg/contracts/events"
)

// createEvento valida os campos obrigatórios antes de tocar o banco
// e aplica o default de status. Retorna 201 com o registro gravado.
func (s *Server) createEvento(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Sport == "" {
		writeError(w, http.StatusBadRequest, "sport is required")
		return
	}
	if req.ScheduledAt == nil {
		writeError(w, http.StatusBadRequest, "scheduled_at is required")
		return
	}

	status := req.Status
	if status == "" {
		status = "scheduled"
	}

	ev, err := s.repo.Create(r.Context(), &repo.Evento{
		Name:        req.Name,
		Sport:       req.Sport,
		ScheduledAt: *req.ScheduledAt,
		Status:      status,
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		OddsHome:    req.OddsHome,
		OddsDraw:    req.OddsDraw,
		OddsAway:    req.OddsAway,
	})
	if err != nil {
		s.log.Error("create evento", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.publishChange(r.Context(), events.EventoCreated, ev)
	writeJSON(w, http.StatusCreated, dto.FromEvento(ev))
}

// listEventos retorna todos os eventos cadastrados
func (s *Server) listEventos(w http.ResponseWriter, r *http.Request) {
	list, err := s.repo.List(r.Context())
	if err != nil {
		s.log.Error("list eventos", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, dto.FromEventos(list))
}

// getEvento retorna um evento por ID
func (s *Server) getEvento(w http.ResponseWriter, r *http.Request) {
	id, ok := s.eventoID(w, r)
	if !ok {
		return
	}

	ev, err := s.repo.Get(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "get evento")
		return
	}
	writeJSON(w, http.StatusOK, dto.FromEvento(ev))
}

// updateEvento aplica só os campos presentes no payload
func (s *Server) updateEvento(w http.ResponseWriter, r *http.Request) {
	id, ok := s.eventoID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateEventoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	ev, err := s.repo.Update(r.Context(), id, repo.UpdateFields{
		Name:        req.Name,
		Sport:       req.Sport,
		ScheduledAt: req.ScheduledAt,
		Status:      req.Status,
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		OddsHome:    req.OddsHome,
		OddsDraw:    req.OddsDraw,
		OddsAway:    req.OddsAway,
	})
	if err != nil {
		s.storeError(w, err, "update evento")
		return
	}

	s.publishChange(r.Context(), events.EventoUpdated, ev)
	writeJSON(w, http.StatusOK, dto.FromEvento(ev))
}

// deleteEvento remove o evento fisicamente; 204 sem corpo
func (s *Server) deleteEvento(w http.ResponseWriter, r *http.Request) {
	id, ok := s.eventoID(w, r)
	if !ok {
		return
	}

	if err := s.repo.Delete(r.Context(), id); err != nil {
		s.storeError(w, err, "delete evento")
		return
	}

	s.publishChange(r.Context(), events.EventoDeleted, &repo.Evento{ID: id})
	w.WriteHeader(http.StatusNoContent)
}

// eventoID extrai e valida o {id} da rota. ID malformado é 400,
// distinto de 404, nas duas interfaces.
func (s *Server) eventoID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return "", false
	}
	return id, true
}

// storeError traduz erro do repositório pra resposta HTTP
func (s *Server) storeError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, repo.ErrNotFound) {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	s.log.Error(op, zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

// publishChange publica a mudança no Kafka; falha só gera log, nunca
// derruba a resposta do cliente
func (s *Server) publishChange(ctx context.Context, typ string, ev *repo.Evento) {
	msg := events.EventoChanged{
		Type:     typ,
		EventoID: ev.ID,
		TsUnixMs: time.Now().UnixMilli(),
	}
	if typ != events.EventoDeleted {
		msg.Evento = &events.EventoPayload{
			ID:          ev.ID,
			Name:        ev.Name,
			Sport:       ev.Sport,
			ScheduledAt: ev.ScheduledAt,
			Status:      ev.Status,
			HomeTeam:    ev.HomeTeam,
			AwayTeam:    ev.AwayTeam,
			OddsHome:    ev.OddsHome,
			OddsDraw:    ev.OddsDraw,
			OddsAway:    ev.OddsAway,
			CreatedAt:   ev.CreatedAt,
		}
	}

	if err := s.publ.PublishEventoChanged(ctx, msg); err != nil {
		s.log.Warn("publish evento change", zap.String("type", typ), zap.Error(err))
	}
}
