package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/TheBlckbird/crabsweeper/internal/mines"
	"github.com/TheBlckbird/crabsweeper/internal/repository"
)

var (
	errQuit   = errors.New("quit")
	errNoGame = errors.New("no game in progress, start one with 'n'")
	errNoDB   = errors.New("save slots need a database")
)

type response struct {
	Board  *mines.Snapshot       `json:"board,omitempty"`
	Result *mines.RevealResult   `json:"result,omitempty"`
	Flag   *mines.Visibility     `json:"flag,omitempty"`
	Slots  []repository.GameSlot `json:"slots,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// session is one player's game. The mutex serializes commands with the
// exit autosave.
type session struct {
	mu    sync.Mutex
	board *mines.Board
	repo  *repository.Queries
	rnd   *rand.Rand
	slot  string
}

func (s *session) withBoard(resp response) response {
	if s.board != nil {
		snapshot := s.board.Snapshot()
		resp.Board = &snapshot
	}
	return resp
}

func (s *session) execute(ctx context.Context, line string) (response, error) {
	cmd, args, err := parseCommand(line)
	if err != nil {
		return response{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd {
	case cmdQuit:
		return response{}, errQuit
	case cmdNew:
		params, err := parseGameParams(args[0])
		if err != nil {
			return response{}, err
		}
		board, err := mines.NewBoard(params, s.rnd)
		if err != nil {
			return response{}, err
		}
		s.board = board
		log.WithField("params", params.Seed()).Info("new game")
		return s.withBoard(response{}), nil
	case cmdSlots:
		if s.repo == nil {
			return response{}, errNoDB
		}
		slots, err := s.repo.ListSlots(ctx)
		if err != nil {
			return response{}, err
		}
		return response{Slots: slots}, nil
	case cmdLoad:
		if s.repo == nil {
			return response{}, errNoDB
		}
		board, err := s.repo.LoadBoard(ctx, args[0])
		if err != nil {
			return response{}, err
		}
		s.board, s.slot = board, args[0]
		return s.withBoard(response{}), nil
	case cmdDrop:
		if s.repo == nil {
			return response{}, errNoDB
		}
		if err := s.repo.DeleteSlot(ctx, args[0]); err != nil {
			return response{}, err
		}
		if s.slot == args[0] {
			s.slot = ""
		}
		return s.withBoard(response{}), nil
	}

	if s.board == nil {
		return response{}, errNoGame
	}

	switch cmd {
	case cmdGet:
		return s.withBoard(response{}), nil
	case cmdSave, cmdWrite:
		if s.repo == nil {
			return response{}, errNoDB
		}
		save := s.repo.SaveBoard
		if cmd == cmdWrite {
			save = s.repo.OverwriteBoard
		}
		if _, err := save(ctx, args[0], s.board); err != nil {
			return response{}, err
		}
		s.slot = args[0]
		return s.withBoard(response{}), nil
	}

	x, y, err := parseXY(args)
	if err != nil {
		return response{}, err
	}

	var result mines.RevealResult
	switch cmd {
	case cmdOpen:
		result, err = s.board.Reveal(x, y)
	case cmdChord:
		result, err = s.board.Chord(x, y)
	case cmdFlag:
		flag, err := s.board.ToggleFlag(x, y)
		if err != nil {
			return response{}, err
		}
		return s.withBoard(response{Flag: &flag}), nil
	}
	if err != nil {
		return response{}, err
	}
	if result.Outcome != mines.InProgress && len(result.Opened) > 0 {
		log.WithFields(logrus.Fields{
			"params":  s.board.Params().Seed(),
			"outcome": result.Outcome,
		}).Info("game over")
	}
	return s.withBoard(response{Result: &result}), nil
}

// autosave writes the board back to the slot it was last saved to or
// loaded from.
func (s *session) autosave(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil || s.board == nil || s.slot == "" {
		return nil
	}
	if _, err := s.repo.OverwriteBoard(ctx, s.slot, s.board); err != nil {
		return err
	}
	log.WithField("slot", s.slot).Info("autosaved")
	return nil
}
