package repo

import "time"

// Evento é o modelo persistido no Postgres (tabela eventos).
// Times e odds são opcionais: nil significa "não definido", distinto de zero.
type Evento struct {
	ID          string
	Name        string
	Sport       string
	ScheduledAt time.Time
	Status      string
	HomeTeam    *string
	AwayTeam    *string
	OddsHome    *float64
	OddsDraw    *float64
	OddsAway    *float64
	CreatedAt   time.Time
}

// UpdateFields carrega apenas os campos presentes num update parcial.
// Campo nil = não informado = preserva o valor atual no banco.
type UpdateFields struct {
	Name        *string
	Sport       *string
	ScheduledAt *time.Time
	Status      *string
	HomeTeam    *string
	AwayTeam    *string
	OddsHome    *float64
	OddsDraw    *float64
	OddsAway    *float64
}
