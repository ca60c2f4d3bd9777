package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4"            // Echo web framework
	"github.com/labstack/echo/v4/middleware" // Built-in middleware (logger, recover, CORS)

	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/config"
	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/database"
	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/handler"
	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/repository"
	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/router"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())  // request log lines
	e.Use(middleware.Recover()) // keep one bad request from killing the process
	e.Use(middleware.CORS())    // the Ionic frontend is served from another origin

	// Every handler gets its own repository over the shared pool; the wiring
	// is explicit, done once at startup.
	router.RegisterRoutes(e,
		handler.NewUsuarioHandler(repository.NewUsuarioRepo(db)),
		handler.NewEnsaioHandler(repository.NewEnsaioRepo(db)),
		handler.NewEquipamentoHandler(repository.NewEquipamentoRepo(db)),
		handler.NewAgendamentoHandler(repository.NewAgendamentoRepo(db)),
		handler.NewContratoHandler(repository.NewContratoRepo(db)),
	)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
