package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/gridsnake/audio"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/game"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/scoreboard"
	"github.com/lixenwraith/gridsnake/settings"
	"github.com/lixenwraith/gridsnake/snapshot"
	"github.com/lixenwraith/gridsnake/terminal"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/gridsnake.log")
	configFlag   = flag.String("config", "", "TOML settings file (defaults and GRIDSNAKE_* env when empty)")
	envFlag      = flag.String("env", ".env", "dotenv file loaded before settings")
	seedFlag     = flag.Int64("seed", 0, "Random seed; 0 picks one from the clock")
	validateFlag = flag.Bool("validate", false, "Run world consistency checks every tick")
	scoresFlag   = flag.String("scores", "", "SQLite file to record finished rounds in")
	nameFlag     = flag.String("name", "", "Player name for the scoreboard (defaults to $USER)")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := godotenv.Load(*envFlag); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("dotenv %s: %v", *envFlag, err)
	}

	cfg, err := loadSettings(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *validateFlag {
		cfg.Validate = true
	}

	g, err := game.New(cfg, log.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	log.Printf("game started: seed=%d cells=%d difficulty=%s", g.Seed(), cfg.CellsPerSide, cfg.ObstacleDifficulty)

	var scores *scoreboard.Board
	if *scoresFlag != "" {
		scores, err = scoreboard.Open(*scoresFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open scoreboard: %v\n", err)
			os.Exit(1)
		}
		defer scores.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetRestoreHook(screen.Fini)
	defer screen.Fini()

	player := audio.NewPlayer()
	if cfg.SoundEffects || cfg.BackgroundMusic {
		if err := player.Init(); err != nil {
			log.Printf("audio init failed: %v (continuing without audio)", err)
		}
	}
	defer player.Close()

	run(screen, g, player, scores, playerName())

	if cfg.Validate {
		if rep := g.Validation(); !rep.OK() {
			log.Printf("last validation at tick %d: %d anomalies", rep.Tick, len(rep.Anomalies))
		}
	}
}

func loadSettings(path string) (settings.Settings, error) {
	if path != "" {
		return settings.Load(path)
	}
	s := settings.Default()
	settings.ApplyEnv(&s)
	if err := s.Check(); err != nil {
		return s, err
	}
	s.Normalize()
	return s, nil
}

func playerName() string {
	if *nameFlag != "" {
		return *nameFlag
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// run is the host loop: input from the poller goroutine, fixed-step ticks, one draw per tick
func run(screen tcell.Screen, g *game.Game, player *audio.Player, scores *scoreboard.Board, name string) {
	renderer := terminal.NewRenderer(screen)

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	last := time.Now()
	wasOver := false
	renderer.Draw(snapshot.Capture(g.World()))

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				cmd := terminal.TranslateKey(ev)
				switch cmd.Action {
				case terminal.ActionMove:
					g.SetDirection(cmd.Direction)
				case terminal.ActionPause:
					g.TogglePause()
				case terminal.ActionReset:
					if err := g.Reset(); err != nil {
						log.Printf("reset failed: %v", err)
					}
				case terminal.ActionQuit:
					return
				}
			}

		case now := <-ticker.C:
			g.Tick(float64(now.Sub(last)) / float64(time.Millisecond))
			last = now

			st := g.State()
			if st.GameOver && !wasOver {
				log.Printf("game over: cause=%s score=%d high=%d", st.DeathCause, st.Score, st.HighScore)
				recordRound(scores, g, name)
			}
			wasOver = st.GameOver

			player.Consume(&g.World().Resources.Audio)
			renderer.Draw(snapshot.Capture(g.World()))
		}
	}
}

func recordRound(scores *scoreboard.Board, g *game.Game, name string) {
	if scores == nil {
		return
	}
	st := g.State()
	cfg := g.Settings()
	length := 0
	if sn := g.Snake(); sn != nil {
		length = len(sn.Cells())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := scores.Insert(ctx, scoreboard.Entry{
		Name:       name,
		Score:      st.Score,
		Length:     length,
		Cause:      string(st.DeathCause),
		Difficulty: cfg.ObstacleDifficulty.String(),
		Cells:      cfg.CellsPerSide,
		Seed:       g.Seed(),
	})
	if err != nil {
		log.Printf("record round: %v", err)
	}
}
