package events

import "time"

// Tipos de mudança publicados no tópico "evento_changes"
const (
	EventoCreated = "created"
	EventoUpdated = "updated"
	EventoDeleted = "deleted"
)

// EventoPayload é o snapshot do evento no momento da mudança.
// Campos opcionais são ponteiros: nil significa "sem valor", distinto de zero.
type EventoPayload struct {
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

type EventoChanged struct {
	Type     string         `json:"type"` // "created" | "updated" | "deleted"
	EventoID string         `json:"evento_id"`
	Evento   *EventoPayload `json:"evento,omitempty"` // ausente em "deleted"
	TsUnixMs int64          `json:"ts_unix_ms"`
}
