package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	Port          string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

// Load reads a .env file when present, then the environment. A missing
// bot token is fatal.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "9095"
	}
	return Config{
		TelegramToken: mustEnv("TELEGRAM_BOT_TOKEN"),
		Port:          port,
	}
}
