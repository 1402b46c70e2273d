package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/assets"
	"github.com/robalobadob/wordsearch/internal/board"
	"github.com/robalobadob/wordsearch/internal/config"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/httpserver"
	"github.com/robalobadob/wordsearch/internal/results"
	"github.com/robalobadob/wordsearch/internal/store"
	"github.com/robalobadob/wordsearch/internal/turnclock"
	"github.com/robalobadob/wordsearch/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	difficulty, err := game.ParseDifficulty(cfg.DefaultDifficulty)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DEFAULT_DIFFICULTY")
	}
	b, err := loadBoard(cfg.BoardFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.BoardFile).Msg("failed to load board")
	}
	wl, err := loadWords(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load word list")
	}
	log.Info().Int("rows", len(b)).Int("words", wl.Len()).Int("on_board", board.CountOnBoard(b, wl.Words())).
		Msg("default board loaded")

	var archive *results.Store
	if cfg.DBPath != "" {
		var db *sql.DB
		if db, err = results.Open(cfg.DBPath); err != nil {
			log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("failed to open results database")
		}
		defer db.Close()
		archive = results.NewStore(db)
	} else {
		log.Warn().Msg("DB_PATH empty, results are not archived")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	go turnclock.Run(ctx, mem, cfg.TurnTick)

	srv, err := httpserver.New(mem, archive, httpserver.Options{
		JWTSecret:         cfg.JWTSecret,
		JWTTTL:            time.Duration(cfg.JWTExpiresHours) * time.Hour,
		HostPassword:      cfg.HostPassword,
		CookieName:        cfg.CookieName,
		CookieSecure:      cfg.CookieSecure,
		ClientOrigin:      cfg.ClientOrigin,
		DefaultDifficulty: difficulty,
		DefaultBoard:      b,
		DefaultWords:      wl,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	log.Info().Str("port", cfg.Port).Msg("starting wordsearch server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func setupLogging(cfg config.Config) {
	if cfg.LogFormat == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// loadBoard reads the board file, or the embedded sample when path is empty.
func loadBoard(path string) (board.Board, error) {
	if path == "" {
		lines, err := assets.BoardLines()
		if err != nil {
			return nil, err
		}
		return board.Parse(lines)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return board.Load(f)
}

// loadWords reads the word list file, or the embedded sample when path is empty.
func loadWords(path string) (*words.List, error) {
	if path == "" {
		lines, err := assets.WordLines()
		if err != nil {
			return nil, err
		}
		return words.NewList(words.Parse(lines))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return words.Load(f)
}
