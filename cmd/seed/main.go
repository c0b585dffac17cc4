package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/uxelf/tasksapp/config"
	"github.com/uxelf/tasksapp/internal/domain/entity"
	"github.com/uxelf/tasksapp/internal/domain/repository"
	pginfra "github.com/uxelf/tasksapp/internal/infrastructure/postgres"
	"github.com/uxelf/tasksapp/pkg/helpers"
)

// Seeds a demo user with a few tasks for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	tasks := pginfra.NewTaskRepository(pool)

	username := "demo"
	password := "password123"

	u, err := users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Fatalf("failed to look up demo user: %v", err)
		}
		hash, err := helpers.HashPassword(password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		u = &entity.User{Username: username, Password: hash}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("failed to create demo user: %v", err)
		}
		log.Printf("created demo user %q (password %q)", username, password)
	} else {
		log.Printf("demo user %q already exists", username)
	}

	today := helpers.Today()
	desc := "Seeded sample task"
	samples := []*entity.Task{
		{Title: "Plan the week", Description: &desc, Status: entity.StatusPending, Start: today, End: today.AddDays(2), AuthorID: u.ID},
		{Title: "Quarterly review", Status: entity.StatusInProgress, Start: today, End: today.AddDays(30), AuthorID: u.ID},
		{Title: "Renew certificates", Status: entity.StatusPending, Start: today.AddDays(7), End: today.AddDays(7), AuthorID: u.ID},
	}
	for _, t := range samples {
		if err := tasks.Create(ctx, t); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.Title, err)
		}
	}
	log.Printf("seeded %d tasks for %q", len(samples), username)
}
