package main

import (
	"fmt"
	"log"
	"net/http"

	"invoicematch/internal/claims"
	"invoicematch/internal/config"
	"invoicematch/internal/extract"
	"invoicematch/internal/handler"
	"invoicematch/internal/port"
	"invoicematch/internal/reconciler/openai"
	"invoicematch/internal/router"
	"invoicematch/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	extractor := extract.NewExtractor()

	// A missing OpenAI key keeps the service up; every reconcile call then
	// answers 503 until the credential is provided.
	var llm port.ReconciliationClient
	if cfg.OpenAI.APIKey != "" {
		llm = openai.NewClient(&cfg.OpenAI)
		log.Println("OpenAI client initialized")
	} else {
		log.Println("OpenAI API key missing; reconcile endpoint disabled")
	}

	// A missing claims credential degrades forwarding only.
	var submitter port.ClaimSubmitter
	if claimsClient := claims.NewClient(&cfg.Claims); claimsClient != nil {
		submitter = claimsClient
		log.Println("claims API client initialized")
	} else {
		log.Println("claims API not configured; claim forwarding disabled")
	}
	forwarder := claims.NewForwarder(submitter)

	reconcileSvc := service.NewReconcileService(extractor, llm, forwarder, &cfg.Upload)

	reconcileH := handler.NewReconcileHandler(reconcileSvc)
	healthH := handler.NewHealthHandler()

	r := router.Setup(&cfg.CORS, reconcileH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
