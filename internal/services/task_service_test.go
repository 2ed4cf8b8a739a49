package services

import (
	"testing"

	"github.com/minhvu/user-admin/internal/models"
	"github.com/minhvu/user-admin/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTaskServiceTestEnv(t *testing.T) (*gorm.DB, *TaskService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	svc := NewTaskService(repository.NewTaskRepository(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, svc
}

func TestListAll_EmptyAndOrdered(t *testing.T) {
	db, svc := setupTaskServiceTestEnv(t)

	tasks, err := svc.ListAll()
	require.NoError(t, err)
	require.Empty(t, tasks)

	require.NoError(t, db.Create(&models.Task{Name: "first", UserID: 1}).Error)
	require.NoError(t, db.Create(&models.Task{Name: "second", UserID: 2}).Error)

	tasks, err = svc.ListAll()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "first", tasks[0].Name)
	require.Equal(t, uint64(1), tasks[0].UserID)
	require.Equal(t, "second", tasks[1].Name)
	require.Equal(t, uint64(2), tasks[1].UserID)
}

func TestListForUser(t *testing.T) {
	db, svc := setupTaskServiceTestEnv(t)

	require.NoError(t, db.Create(&models.Task{Name: "mine", UserID: 1}).Error)
	require.NoError(t, db.Create(&models.Task{Name: "theirs", UserID: 2}).Error)

	tasks, err := svc.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "mine", tasks[0].Name)
}

func TestCreateTask(t *testing.T) {
	_, svc := setupTaskServiceTestEnv(t)

	task, err := svc.CreateTask(CreateTaskInput{Name: "New Task", UserID: 1})
	require.NoError(t, err)
	require.NotZero(t, task.ID)
	require.Equal(t, uint64(1), task.UserID)
}

func TestCreateTask_Validation(t *testing.T) {
	_, svc := setupTaskServiceTestEnv(t)

	_, err := svc.CreateTask(CreateTaskInput{UserID: 1})
	require.ErrorIs(t, err, ErrTaskNameRequired)

	_, err = svc.CreateTask(CreateTaskInput{Name: "orphan"})
	require.ErrorIs(t, err, ErrTaskOwnerMissing)
}
