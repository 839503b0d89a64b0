package main

import (
	"log"

	"github.com/Tima2028/crypto-bot1/internal/config"
	"github.com/Tima2028/crypto-bot1/internal/server"
	"github.com/Tima2028/crypto-bot1/internal/telegram"
)

func main() {
	cfg := config.Load()

	bot, err := telegram.NewBot(cfg.TelegramToken)
	if err != nil {
		log.Fatal(err)
	}

	mux := server.NewHTTPMux() // registers /healthz
	addr := ":" + cfg.Port
	go func() {
		log.Println("http: listening on", addr)
		if err := server.ListenAndServe(addr, mux); err != nil {
			log.Println("server error:", err)
		}
	}()

	log.Println("telegram: polling for updates")
	bot.Run()
}
