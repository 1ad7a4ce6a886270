package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/gridsnake/scoreboard"
	"github.com/lixenwraith/gridsnake/server"
	"github.com/lixenwraith/gridsnake/settings"
)

var (
	addrFlag    = flag.String("addr", "", "Listen address (default $GRIDSNAKE_ADDR or :8080)")
	configFlag  = flag.String("config", "", "TOML settings file applied to every session")
	dbFlag      = flag.String("db", "", "SQLite scoreboard path (default $GRIDSNAKE_DB or gridsnake.db; \"none\" disables)")
	originsFlag = flag.String("origins", "", "Comma-separated allowed origins (default $GRIDSNAKE_ORIGINS or *)")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("no .env file found, using environment variables only")
		}
	}

	cfg := server.DefaultConfig()
	cfg.Addr = pick(*addrFlag, os.Getenv("GRIDSNAKE_ADDR"), cfg.Addr)
	if origins := pick(*originsFlag, os.Getenv("GRIDSNAKE_ORIGINS"), ""); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	if *configFlag != "" {
		s, err := settings.Load(*configFlag)
		if err != nil {
			log.Fatalf("load settings: %v", err)
		}
		cfg.Settings = s
	} else {
		settings.ApplyEnv(&cfg.Settings)
	}

	var scores *scoreboard.Board
	if dbPath := pick(*dbFlag, os.Getenv("GRIDSNAKE_DB"), "gridsnake.db"); dbPath != "none" {
		b, err := scoreboard.Open(dbPath)
		if err != nil {
			log.Fatalf("open scoreboard %s: %v", dbPath, err)
		}
		defer b.Close()
		scores = b
		log.Printf("scoreboard at %s", dbPath)
	}

	srv, err := server.New(cfg, scores, log.Default())
	if err != nil {
		log.Fatalf("server setup: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		log.Printf("server stopped: %v", err)
		return
	}
	log.Println("server shut down")
}

// pick returns the first non-empty value
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
