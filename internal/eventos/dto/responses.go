package dto

import (
	"time"

	"github.com/radieske/eventos-service/internal/eventos/repo"
)

// EventoResponse é a representação JSON completa de um evento.
// Opcionais não definidos saem como null, nunca como zero.
type EventoResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Sport       string    `json:"sport"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	HomeTeam    *string   `json:"home_team"`
	AwayTeam    *string   `json:"away_team"`
	OddsHome    *float64  `json:"odds_home"`
	OddsDraw    *float64  `json:"odds_draw"`
	OddsAway    *float64  `json:"odds_away"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromEvento(e *repo.Evento) EventoResponse {
	return EventoResponse{
		ID:          e.ID,
		Name:        e.Name,
		Sport:       e.Sport,
		ScheduledAt: e.ScheduledAt,
		Status:      e.Status,
		HomeTeam:    e.HomeTeam,
		AwayTeam:    e.AwayTeam,
		OddsHome:    e.OddsHome,
		OddsDraw:    e.OddsDraw,
		OddsAway:    e.OddsAway,
		CreatedAt:   e.CreatedAt,
	}
}

func FromEventos(list []repo.Evento) []EventoResponse {
	out := make([]EventoResponse, 0, len(list))
	for i := range list {
		out = append(out, FromEvento(&list[i]))
	}
	return out
}
