package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("evento not found")

const eventoColumns = `id, name, sport, scheduled_at, status, home_team, away_team, odds_home, odds_draw, odds_away, created_at`

// Postgres implementa a persistência de eventos esportivos.
// Todas as operações são atômicas sobre um único registro; quem arbitra
// mutação concorrente é o próprio banco.
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de eventos
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Create insere um novo evento, gerando o id aqui e deixando created_at
// por conta do default do banco. Retorna o registro como ficou gravado.
func (p *Postgres) Create(ctx context.Context, e *Evento) (*Evento, error) {
	e.ID = uuid.NewString()

	const q = `
		INSERT INTO eventos (id, name, sport, scheduled_at, status, home_team, away_team, odds_home, odds_draw, odds_away)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at`
	err := p.db.QueryRowContext(ctx, q,
		e.ID, e.Name, e.Sport, e.ScheduledAt, e.Status,
		e.HomeTeam, e.AwayTeam, e.OddsHome, e.OddsDraw, e.OddsAway,
	).Scan(&e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert evento: %w", err)
	}
	return e, nil
}

// Get retorna um evento pelo id, ou ErrNotFound
func (p *Postgres) Get(ctx context.Context, id string) (*Evento, error) {
	q := `SELECT ` + eventoColumns + ` FROM eventos WHERE id=$1`
	e, err := scanEvento(p.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// List retorna todos os eventos em ordem estável (created_at, id)
func (p *Postgres) List(ctx context.Context) ([]Evento, error) {
	q := `SELECT ` + eventoColumns + ` FROM eventos ORDER BY created_at, id`
	rows, err := p.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Evento
	for rows.Next() {
		e, err := scanEvento(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Update aplica apenas os campos informados em f, preservando o restante.
// id e created_at nunca entram no SET. Retorna o registro atualizado.
func (p *Postgres) Update(ctx context.Context, id string, f UpdateFields) (*Evento, error) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}

	if f.Name != nil {
		add("name", *f.Name)
	}
	if f.Sport != nil {
		add("sport", *f.Sport)
	}
	if f.ScheduledAt != nil {
		add("scheduled_at", *f.ScheduledAt)
	}
	if f.Status != nil {
		add("status", *f.Status)
	}
	if f.HomeTeam != nil {
		add("home_team", *f.HomeTeam)
	}
	if f.AwayTeam != nil {
		add("away_team", *f.AwayTeam)
	}
	if f.OddsHome != nil {
		add("odds_home", *f.OddsHome)
	}
	if f.OddsDraw != nil {
		add("odds_draw", *f.OddsDraw)
	}
	if f.OddsAway != nil {
		add("odds_away", *f.OddsAway)
	}

	// update vazio é um no-op: só devolve o registro atual
	if len(sets) == 0 {
		return p.Get(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf(`UPDATE eventos SET %s WHERE id=$%d`, strings.Join(sets, ", "), len(args))
	res, err := p.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("update evento: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	return p.Get(ctx, id)
}

// Delete remove o evento fisicamente, ou ErrNotFound
func (p *Postgres) Delete(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM eventos WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete evento: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvento(row rowScanner) (*Evento, error) {
	var e Evento
	var homeTeam, awayTeam sql.NullString
	var oddsHome, oddsDraw, oddsAway sql.NullFloat64

	err := row.Scan(
		&e.ID, &e.Name, &e.Sport, &e.ScheduledAt, &e.Status,
		&homeTeam, &awayTeam, &oddsHome, &oddsDraw, &oddsAway,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if homeTeam.Valid {
		e.HomeTeam = &homeTeam.String
	}
	if awayTeam.Valid {
		e.AwayTeam = &awayTeam.String
	}
	if oddsHome.Valid {
		e.OddsHome = &oddsHome.Float64
	}
	if oddsDraw.Valid {
		e.OddsDraw = &oddsDraw.Float64
	}
	if oddsAway.Valid {
		e.OddsAway = &oddsAway.Float64
	}
	return &e, nil
}
