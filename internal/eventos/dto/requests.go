package dto

import "time"

// CreateEventoRequest é o payload de criação de evento.
// scheduled_at é ponteiro pra distinguir "ausente" de zero value na validação.
type CreateEventoRequest struct {
	Name        string     `json:"name"`
	Sport       string     `json:"sport"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      string     `json:"status"`
	HomeTeam    *string    `json:"home_team"`
	AwayTeam    *string    `json:"away_team"`
	OddsHome    *float64   `json:"odds_home"`
	OddsDraw    *float64   `json:"odds_draw"`
	OddsAway    *float64   `json:"odds_away"`
}

// UpdateEventoRequest é o payload de update parcial: só campos presentes
// no JSON são aplicados, o resto preserva o valor atual.
type UpdateEventoRequest struct {
	Name        *string    `json:"name"`
	Sport       *string    `json:"sport"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      *string    `json:"status"`
	HomeTeam    *string    `json:"home_team"`
	AwayTeam    *string    `json:"away_team"`
	OddsHome    *float64   `json:"odds_home"`
	OddsDraw    *float64   `json:"odds_draw"`
	OddsAway    *float64   `json:"odds_away"`
}
