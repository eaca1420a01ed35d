package automatic

// Data collection for automatic games. Allows computer vs computer games.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/config"
	"github.com/ingenious/othello/coordinator"
	"github.com/ingenious/othello/stats"
	"github.com/ingenious/othello/worker"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int

	// Results tallies the games of the latest StartCompVCompGames.
	Results = &stats.Tally{}
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// LogHeader names the columns of the per-turn log.
const LogHeader = "player,colour,gameID,turn,move,black,white,eval\n"

type Job struct {
	id int
}

// NewPlayers builds the two players for one runner. Engine players search
// in-process with cfg's settings.
func NewPlayers(cfg *config.Config, black, white string) (Player, Player, error) {
	dist := worker.NewDistributor(coordinator.NewUnits(cfg.Workers, nil, ""),
		worker.ParamsFromConfig(cfg))
	b, err := NewPlayer(black, dist)
	if err != nil {
		return nil, nil, err
	}
	w, err := NewPlayer(white, dist)
	if err != nil {
		return nil, nil, err
	}
	return b, w, nil
}

// StartCompVCompGames plays numGames games over threads goroutines and
// writes every turn to outputFilename. It returns once the games are
// queued; they keep going in the background until done or ctx ends.
func StartCompVCompGames(ctx context.Context, cfg *config.Config, numGames, threads int,
	outputFilename, black, white string) error {

	if IsPlaying.Value() > 0 {
		return errors.New("games are already being played, please wait till complete")
	}
	if _, _, err := NewPlayers(cfg, black, white); err != nil {
		return err
	}

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return err
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	CVCCounter.Set(0)
	Results.Reset()
	jobs := make(chan Job, 100)
	logChan := make(chan string, 100)
	var wg sync.WaitGroup
	wg.Add(threads)

	for i := 1; i <= threads; i++ {
		go func(i int) {
			defer wg.Done()
			bp, wp, _ := NewPlayers(cfg, black, white)
			r := NewGameRunner(logChan, bp, wp)
			IsPlaying.Add(1)
			for j := range jobs {
				r.StartGame()
				r.gameID = j.id
				out, err := r.PlayGame(ctx)
				if err != nil {
					log.Err(err).Int("thread", i).Int("game", j.id).Msg("game-failed")
					continue
				}
				log.Debug().Int("game", j.id).Str("winner", fmt.Sprint(out.Winner)).Msg("game-finished")
				Results.Add(out.Black, out.White)
				CVCCounter.Add(1)
			}
			IsPlaying.Add(-1)
		}(i)
	}

	go func() {
	gameLoop:
		for i := 1; i < numGames+1; i++ {
			jobs <- Job{id: i}
			if i%1000 == 0 {
				log.Info().Msgf("Queued %v jobs", i)
			}
			select {
			case <-ctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				break gameLoop
			default:
			}
		}

		close(jobs)
		log.Info().Msg("Finished queueing all jobs.")
		wg.Wait()
		log.Info().Msg("All games finished.")
		log.Info().Str("results", Results.String()).Msg("autoplay-summary")
		close(logChan)
	}()

	go func() {
		logfile.WriteString(LogHeader)
		for msg := range logChan {
			logfile.WriteString(msg)
		}
		logfile.Close()
		log.Info().Msg("Exiting turn logger goroutine!")
	}()

	return nil
}
