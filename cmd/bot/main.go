package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/bibleinayear/biaybot/internal/announcer"
	"github.com/bibleinayear/biaybot/internal/config"
	"github.com/bibleinayear/biaybot/internal/scheduler"
	"github.com/bibleinayear/biaybot/internal/slackchat"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "config.json"

func main() {
	once := flag.Bool("once", false, "send today's reading immediately and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client := slackchat.New(cfg.Token)

	log.Println("Connecting to Slack...")
	identity, err := client.Authenticate()
	if err != nil {
		log.Fatalf("Failed to login to Slack, please check your token: %v", err)
	}
	log.Printf("Logged in as %s", identity)

	bot := announcer.New(cfg, client, loc)

	if *once {
		bot.Fire()
		return
	}

	sched := scheduler.New(loc)
	if err := sched.AddDaily(bot.Fire); err != nil {
		log.Fatalf("Failed to schedule daily reading: %v", err)
	}
	defer sched.Stop()

	log.Printf("Next reading at %s", sched.NextFiring(time.Now()).Format("2006-01-02 15:04:05 MST"))
	sched.Run()
}
