package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Vacilotto/fab-rs-elo/config"
	"github.com/Vacilotto/fab-rs-elo/internal/hero"
	"github.com/Vacilotto/fab-rs-elo/internal/importer"
	"github.com/Vacilotto/fab-rs-elo/internal/match"
	"github.com/Vacilotto/fab-rs-elo/internal/player"
	"github.com/Vacilotto/fab-rs-elo/internal/ranking"
	"github.com/Vacilotto/fab-rs-elo/internal/tournament"
)

func main() {
	file := flag.String("file", "./tournament_results.json", "tournament results JSON file")
	name := flag.String("name", "Regional Tournament", "tournament name")
	location := flag.String("location", "Rio Grande do Sul", "tournament location")
	top := flag.Int("top", 10, "how many final standings to print")
	flag.Parse()

	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&player.Player{}, &hero.Hero{}, &tournament.Tournament{},
		&match.Match{}, &match.EloHistory{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	imp := importer.New(config.DB, cfg.Elo.KFactor)
	t, err := imp.ImportFile(*file, *name, *location)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Import completed: tournament %q (id %d)", t.Name, t.ID)

	rankings, err := ranking.NewRankingRepository(config.DB).GetRankingsWithHeroAffinity()
	if err != nil {
		log.Fatalf("Failed to load final rankings: %v", err)
	}

	fmt.Println("Final Rankings:")
	for i, r := range rankings {
		if i >= *top {
			break
		}
		fmt.Printf("%2d. %-24s %7.1f  %s\n", i+1, r.Name, r.Elo, r.BestHero)
	}
}
