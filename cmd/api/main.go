package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "galatea-ai-backend/docs"
	"galatea-ai-backend/internal/config"
	"galatea-ai-backend/internal/handler"
	"galatea-ai-backend/internal/images"
	"galatea-ai-backend/internal/llm"
	"galatea-ai-backend/internal/storage"
	"galatea-ai-backend/internal/traits"
)

// @title        Galatea Profile API
// @version      1.0
// @description  랜덤 외형 설명과 LLM으로 데이팅 프로필을 생성하고 매칭을 판단하는 API
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	h := handler.New(
		traits.NewComposer(traits.Default()),
		images.NewDirectory(cfg.ImageDir, images.DefaultExt),
		llm.NewClient(cfg.LLM),
		store,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.NewRouter(h),
	}

	go func() {
		log.Printf("Server starting on %s (images: %s, database: %s, model: %s)", server.Addr, cfg.ImageDir, cfg.DatabaseURL, cfg.LLM.Model)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server exited")
}
