//go:build ignore
// +build ignore

// Helper script to seed a demo account with projects and tasks
// Run with: go run add_test_data.go [email]

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/thenoetrevino/tracker/internal/app"
	"github.com/thenoetrevino/tracker/internal/config"
	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/models"
)

func main() {
	ctx := context.Background()

	email := "demo@localhost"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	a := app.New(db)
	defer a.Close()

	user, err := a.AccountService.GetUserByEmail(ctx, email)
	if models.IsNotFound(err) {
		user, err = a.AccountService.CreateUser(ctx, email, "")
	}
	if err != nil {
		log.Fatalf("Failed to get user %s: %v", email, err)
	}
	log.Printf("Seeding data for %s (ID: %d)", user.Email, user.ID)

	tomorrow := time.Now().Add(24 * time.Hour)
	nextWeek := time.Now().Add(7 * 24 * time.Hour)

	seed := map[string][]struct {
		title    string
		priority int
		deadline *time.Time
		done     bool
	}{
		"Home": {
			{"Buy milk", models.PriorityHigh, &tomorrow, false},
			{"Fix the leaking tap", models.PriorityMedium, nil, false},
			{"Pay electricity bill", models.PriorityVeryHigh, nil, true},
		},
		"Work": {
			{"Write quarterly report", models.PriorityHigh, &nextWeek, false},
			{"Review pull requests", models.PriorityLow, nil, false},
		},
	}

	for name, tasks := range seed {
		project, err := a.ProjectService.CreateProject(ctx, user, name)
		if err != nil {
			// A project with this name already exists from an earlier run
			if models.IsValidation(err) {
				log.Printf("Skipping project %s: %v", name, err)
				continue
			}
			log.Fatalf("Failed to create project %s: %v", name, err)
		}

		for _, item := range tasks {
			task, err := a.TaskService.CreateTask(ctx, user, project.ID, item.title, item.deadline)
			if err != nil {
				log.Fatalf("Failed to create task %s: %v", item.title, err)
			}
			if _, err := a.TaskService.SetPriority(ctx, user, task.ID, item.priority); err != nil {
				log.Fatalf("Failed to set priority on %s: %v", item.title, err)
			}
			if item.done {
				if _, err := a.TaskService.CompleteTask(ctx, user, task.ID); err != nil {
					log.Fatalf("Failed to complete %s: %v", item.title, err)
				}
			}
		}
		log.Printf("Created project %s with %d tasks", name, len(tasks))
	}
}
