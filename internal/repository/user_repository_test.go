package repository

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewUserRepository(db), mock
}

func TestDeleteCascade_DeletesInOrderAndCommits(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE user_id = ?")).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `role_user` WHERE user_id = ?")).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `users` WHERE `users`.`id` = ?")).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCascade(42))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascade_TaskDeleteFailureRollsBack(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE user_id = ?")).
		WithArgs(uint64(42)).
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.DeleteCascade(42)
	require.ErrorIs(t, err, ErrDeleteTasks)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascade_RoleDetachFailureRollsBack(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE user_id = ?")).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `role_user` WHERE user_id = ?")).
		WithArgs(uint64(42)).
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := repo.DeleteCascade(42)
	require.ErrorIs(t, err, ErrDetachRoles)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCascade_UserDeleteFailureRollsBack(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE user_id = ?")).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `role_user` WHERE user_id = ?")).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `users` WHERE `users`.`id` = ?")).
		WithArgs(uint64(42)).
		WillReturnError(errors.New("server has gone away"))
	mock.ExpectRollback()

	err := repo.DeleteCascade(42)
	require.ErrorIs(t, err, ErrDeleteUser)
	require.NoError(t, mock.ExpectationsWereMet())
}
