package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fitnessforge/database"
	"fitnessforge/internal/config"
	"fitnessforge/internal/logging"
	"fitnessforge/internal/utils"

	log "github.com/sirupsen/logrus"
)

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of demo users to create")
	randSeed := seedCmd.Int64("seed", 0, "Random seed for reproducible data (0 means random)")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)
	countCmd := flag.NewFlagSet("count", flag.ExitOnError)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cfg, err := config.Load(".env", "../../.env")
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}
	logging.Setup(logging.Options{Level: cfg.Log.Level})

	db, err := database.ConnectDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %s", err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatalf("failed to run database migrations: %s", err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "seed":
		_ = seedCmd.Parse(os.Args[2:])
		log.Infof("seeding %d demo users (password %q)", *numUsers, utils.DefaultSeedPassword)

		created, err := utils.NewSeeder(db, *randSeed).SeedUsers(ctx, *numUsers)
		if err != nil {
			log.Fatalf("error seeding users after %d created: %s", created, err)
		}
		log.Infof("created %d demo users", created)

	case "clear":
		_ = clearCmd.Parse(os.Args[2:])
		deleted, err := utils.NewSeeder(db, 0).Clear(ctx)
		if err != nil {
			log.Fatalf("error clearing demo users: %s", err)
		}
		log.Infof("deleted %d demo users", deleted)

	case "count":
		_ = countCmd.Parse(os.Args[2:])
		count, err := utils.NewSeeder(db, 0).Count(ctx)
		if err != nil {
			log.Fatalf("error counting demo users: %s", err)
		}
		fmt.Printf("demo users: %d\n", count)

	case "help", "-h", "--help":
		printHelp()

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`FitnessForge demo data seeder

Usage:
  go run ./cmd/seed <command> [flags]

Commands:
  seed    Create demo users with profiles, weight/BMI logs and workouts
          -users int   number of users (default 25)
          -seed int    random seed for reproducible data
  clear   Delete every demo user (emails ending in @seed.fitnessforge.local)
  count   Print the number of demo users
  help    Show this help`)
}
