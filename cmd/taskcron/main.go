// Command taskcron inserts a timestamped task for user 1. It is meant to
// be invoked from cron.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/minhvu/user-admin/internal/config"
	"github.com/minhvu/user-admin/internal/database"
	"github.com/minhvu/user-admin/internal/repository"
	"github.com/minhvu/user-admin/internal/services"
)

func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	taskRepo := repository.NewTaskRepository(database.GetDB())
	taskService := services.NewTaskService(taskRepo)

	task, err := taskService.CreateTask(services.CreateTaskInput{
		Name:   fmt.Sprintf("New Task%d", time.Now().Unix()),
		UserID: 1,
	})
	if err != nil {
		log.Fatalf("Failed to insert task: %v", err)
	}

	log.Printf("Inserted task %d for user %d", task.ID, task.UserID)
}
