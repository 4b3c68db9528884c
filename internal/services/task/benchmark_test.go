package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/models"
	projectservice "github.com/thenoetrevino/tracker/internal/services/project"
)

// ============================================================================
// BENCHMARK SETUP HELPERS
// ============================================================================

// setupBenchmark creates a database holding one project with n tasks spread
// across every status and priority
func setupBenchmark(b *testing.B, n int) (Service, *models.User, *models.Project) {
	b.Helper()
	ctx := context.Background()

	db, err := database.InitDB(ctx, database.MemoryPath)
	if err != nil {
		b.Fatalf("Failed to create benchmark database: %v", err)
	}
	b.Cleanup(func() { _ = db.Close() })
	repo := database.NewRepository(db, nil)

	user, err := repo.Users().Create(ctx, database.UserFields{Email: "bench@example.com", IsActive: true})
	if err != nil {
		b.Fatalf("Failed to create benchmark user: %v", err)
	}
	project, err := repo.Projects().Create(ctx, user.ID, "Benchmark Project")
	if err != nil {
		b.Fatalf("Failed to create benchmark project: %v", err)
	}

	statuses := []models.TaskStatus{models.StatusNew, models.StatusInProgress, models.StatusDone}
	for i := 0; i < n; i++ {
		_, err := repo.Tasks().Create(ctx, database.TaskFields{
			ProjectID: project.ID,
			Name:      fmt.Sprintf("Task %d", i),
			Status:    statuses[i%len(statuses)],
			Priority:  i%models.MaxPriority + 1,
		})
		if err != nil {
			b.Fatalf("Failed to create benchmark task: %v", err)
		}
	}

	svc := NewService(repo.Tasks(), projectservice.NewService(repo.Projects(), nil), nil)
	return svc, user, project
}

// ============================================================================
// BENCHMARKS
// ============================================================================

func BenchmarkGetProjectTasksSorted(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("tasks=%d", n), func(b *testing.B) {
			svc, user, project := setupBenchmark(b, n)
			ctx := context.Background()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := svc.GetProjectTasksSorted(ctx, user, project.ID); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGetUserTasksOverdue(b *testing.B) {
	svc, user, _ := setupBenchmark(b, 500)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.GetUserTasks(ctx, user, TaskQuery{Overdue: true}); err != nil {
			b.Fatal(err)
		}
	}
}
