package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/TheBlckbird/crabsweeper/internal/config"
	"github.com/TheBlckbird/crabsweeper/internal/database"
	"github.com/TheBlckbird/crabsweeper/internal/mines"
	"github.com/TheBlckbird/crabsweeper/internal/repository"
)

var (
	log = logrus.New()

	paramsFlag string
	seedFlag   uint64
	slotFlag   string
)

func init() {
	const (
		defaultParams = "width=9&height=9&mine_count=10&safe_start=1"
		paramsUsage   = `new game params, "width=9&height=9&mine_count=10" or "9:9:10:0"`
		seedUsage     = "mine placement seed, 0 picks a random one"
		slotUsage     = "save slot to load on start and autosave on exit"
	)
	flag.StringVar(&paramsFlag, "params", defaultParams, paramsUsage)
	flag.StringVar(&paramsFlag, "p", defaultParams, paramsUsage+" (shorthand)")
	flag.Uint64Var(&seedFlag, "seed", 0, seedUsage)
	flag.StringVar(&slotFlag, "slot", "", slotUsage)
}

func setupLogging() error {
	level, err := config.LogLevel()
	if err != nil {
		return err
	}

	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if config.Development() {
		formatter = &logrus.TextFormatter{ForceColors: true}
	}

	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.SetLevel(level)
		l.SetFormatter(formatter)
		l.SetOutput(os.Stderr)
	}

	if path := config.LogFile(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return err
		}
		log.AddHook(hook)
		mines.Log.AddHook(hook)
	}
	return nil
}

func readLines(r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines <- line
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("read: ", err)
	}
}

// run executes commands until quit, end of input or cancellation. Each
// command gets exactly one JSON line on w.
func (s *session) run(ctx context.Context, lines <-chan string, w io.Writer) error {
	enc := json.NewEncoder(w)
	for {
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
			if !ok {
				return errQuit
			}
		}

		log.Debug("\t> ", line)
		resp, err := s.execute(ctx, line)
		if errors.Is(err, errQuit) {
			return errQuit
		}
		if err != nil {
			log.WithField("command", line).Warn(err)
			resp = response{Error: err.Error()}
		}
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := setupLogging(); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	s := &session{slot: slotFlag}
	if seedFlag != 0 {
		s.rnd = mines.NewRand(seedFlag)
	}

	if config.DatabaseConfigured() {
		pool, err := database.ConnectAndMigrate(mainCtx)
		if err != nil {
			log.Fatal("unable to connect to database: ", err)
		}
		defer pool.Close()
		s.repo = repository.New(pool)
	} else if slotFlag != "" {
		log.Fatal("-slot needs DATABASE_URL or POSTGRES_* env variables")
	}

	if s.repo != nil && slotFlag != "" {
		board, err := s.repo.LoadBoard(mainCtx, slotFlag)
		switch {
		case err == nil:
			s.board = board
			log.WithField("slot", slotFlag).Info("loaded game")
		case errors.Is(err, repository.ErrSlotNotFound):
		default:
			log.Fatal("unable to load slot: ", err)
		}
	}

	if s.board == nil {
		params, err := parseGameParams(paramsFlag)
		if err != nil {
			log.Fatal("invalid -params: ", err)
		}
		if s.board, err = mines.NewBoard(params, s.rnd); err != nil {
			log.Fatal("unable to create board: ", err)
		}
	}

	// stdin reads cannot be interrupted, so the reader is not waited on
	lines := make(chan string)
	go readLines(os.Stdin, lines)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return s.run(gCtx, lines, os.Stdout)
	})
	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.autosave(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		log.Error("exit reason: ", err)
		os.Exit(1)
	}
}
