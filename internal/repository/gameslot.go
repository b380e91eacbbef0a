package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TheBlckbird/crabsweeper/internal/mines"
)

var (
	ErrSlotTaken    = errors.New("save slot already taken")
	ErrSlotNotFound = errors.New("save slot not found")
)

type GameSlot struct {
	GameSlotId int64     `json:"game_slot_id"`
	Name       string    `json:"name"`
	Params     string    `json:"params"`
	Outcome    string    `json:"outcome"`
	State      []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s GameSlot) Board() (*mines.Board, error) {
	b, err := mines.DecodeBoard(s.State)
	if err != nil {
		return nil, fmt.Errorf("slot %q holds an invalid board: %w", s.Name, err)
	}
	return b, nil
}

func slotArgs(name string, b *mines.Board) (pgx.NamedArgs, error) {
	state, err := b.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return pgx.NamedArgs{
		"name":    name,
		"params":  b.Params().Seed(),
		"outcome": b.Outcome().String(),
		"state":   state,
	}, nil
}

func (q Queries) SaveBoard(
	ctx context.Context, name string, b *mines.Board,
) (*GameSlot, error) {
	args, err := slotArgs(name, b)
	if err != nil {
		return nil, err
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_slot (name, params, outcome, state)
		VALUES (@name, @params, @outcome, @state)
		RETURNING *;`,
		args,
	)
	slot, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSlot])
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return nil, fmt.Errorf("%w: %s", ErrSlotTaken, name)
	}
	return slot, err
}

func (q Queries) OverwriteBoard(
	ctx context.Context, name string, b *mines.Board,
) (*GameSlot, error) {
	args, err := slotArgs(name, b)
	if err != nil {
		return nil, err
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_slot (name, params, outcome, state)
		VALUES (@name, @params, @outcome, @state)
		ON CONFLICT (name) DO UPDATE SET
			params = EXCLUDED.params,
			outcome = EXCLUDED.outcome,
			state = EXCLUDED.state
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSlot])
}

func (q Queries) FetchSlot(ctx context.Context, name string) (*GameSlot, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM game_slot WHERE name = $1", name,
	)
	slot, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSlot])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSlotNotFound, name)
	}
	return slot, err
}

func (q Queries) LoadBoard(ctx context.Context, name string) (*mines.Board, error) {
	slot, err := q.FetchSlot(ctx, name)
	if err != nil {
		return nil, err
	}
	return slot.Board()
}

func (q Queries) ListSlots(ctx context.Context) ([]GameSlot, error) {
	rows, err := q.db.Query(
		ctx, "SELECT * FROM game_slot ORDER BY updated_at DESC",
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GameSlot])
}

func (q Queries) DeleteSlot(ctx context.Context, name string) error {
	tag, err := q.db.Exec(ctx, "DELETE FROM game_slot WHERE name = $1", name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, name)
	}
	return nil
}
