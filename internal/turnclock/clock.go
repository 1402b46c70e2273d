// internal/turnclock/clock.go
//
// External scheduler for turn timers.
// The game engine only exposes Session.Tick; this package calls it once per
// interval for every stored session until the context is cancelled.

package turnclock

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/store"
)

// Run ticks every session in st each interval. It blocks until ctx is done.
func Run(ctx context.Context, st store.Store, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	log.Info().Dur("interval", interval).Msg("turn clock started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("turn clock stopped")
			return
		case <-t.C:
			Step(ctx, st)
		}
	}
}

// Step advances every session's turn timer by one unit and returns how many turns expired.
func Step(ctx context.Context, st store.Store) int {
	expired := 0
	st.Each(ctx, func(s *game.Session) {
		res := s.Tick()
		if !res.Expired {
			return
		}
		expired++
		log.Debug().
			Str("session", s.ID).
			Str("player", res.Player).
			Str("next", s.CurrentPlayer().Name).
			Msg("turn timed out")
	})
	return expired
}
