package main

import (
	"fmt"
	"log"

	"approval-tracker/internal/config"
	"approval-tracker/internal/database"
	"approval-tracker/internal/directory"
	"approval-tracker/internal/lifecycle"
	"approval-tracker/internal/notifier"
	"approval-tracker/internal/server"
)

func main() {
	cfg := config.Load()
	db := database.Init(cfg.DBDSN)

	dir := directory.New(db)
	mailer := notifier.New(cfg)
	if !mailer.IsEnabled() {
		log.Println("smtp no configurado: las notificaciones quedarán solo en el log")
	}
	engine := lifecycle.New(db, dir, mailer)

	r := server.NewRouter(cfg, engine, dir)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
