package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"agencyflow/internal/model"
)

func TestTaskAssigneeRepository_Add幂等插入(t *testing.T) {
	t.Run("重复指派不报错", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewTaskAssigneeRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `task_assignees` .* ON DUPLICATE KEY UPDATE").
			WithArgs(int64(20), int64(5), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Add(&model.TaskAssignee{TaskID: 20, UserID: 5})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaskAssigneeRepository_Remove未指派静默成功(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewTaskAssigneeRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `task_assignees` WHERE task_id = \\? AND user_id = \\?").
		WithArgs(int64(20), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, repo.Remove(20, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
