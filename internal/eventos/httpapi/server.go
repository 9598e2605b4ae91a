package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/radieske/eventos-service/internal/eventos/auth"
	"github.com/radieske/eventos-service/internal/eventos/repo"
	"github.com/radieske/eventos-service/pkg/contracts/events"
)

// Repo define as operações de persistência usadas pelos handlers HTTP
type Repo interface {
	Create(ctx context.Context, e *repo.Evento) (*repo.Evento, error)
	Get(ctx context.Context, id string) (*repo.Evento, error)
	List(ctx context.Context) ([]repo.Evento, error)
	Update(ctx context.Context, id string, f repo.UpdateFields) (*repo.Evento, error)
	Delete(ctx context.Context, id string) error
}

// Publisher publica mudanças de eventos pros demais serviços da plataforma
type Publisher interface {
	PublishEventoChanged(ctx context.Context, e events.EventoChanged) error
}

// Server expõe o CRUD de eventos esportivos sob /api/v1.
// Toda rota de recurso passa pelo verificador de token; /health fica aberta.
type Server struct {
	log  *zap.Logger
	repo Repo
	auth *auth.Verifier
	publ Publisher

	// OnRequest é chamado ao fim de cada request (métricas); pode ser nil
	OnRequest func(method, route string, status int)
}

func NewServer(log *zap.Logger, r Repo, v *auth.Verifier, p Publisher) *Server {
	return &Server{log: log, repo: r, auth: v, publ: p}
}

// Router retorna o roteador HTTP com os endpoints REST
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.observe)

	r.Get("/api/v1/health", s.health)

	r.Route("/api/v1/eventos", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/", s.createEvento)       // Cria um novo evento
		r.Get("/", s.listEventos)         // Lista todos os eventos
		r.Get("/{id}", s.getEvento)       // Obtém um evento por ID
		r.Put("/{id}", s.updateEvento)    // Update parcial
		r.Delete("/{id}", s.deleteEvento) // Remoção física
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// observe captura o status final da resposta e repassa pro callback de métricas
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		if s.OnRequest != nil {
			s.OnRequest(r.Method, r.URL.Path, ww.Status())
		}
	})
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError padroniza o corpo de erro: {"error": "..."}
// Mensagens são curtas e estáveis; detalhe de infra só vai pro log.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
