package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"agencyflow/internal/model"
)

func TestProjectMemberRepository_Add幂等插入(t *testing.T) {
	t.Run("首次添加产生新行", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewProjectMemberRepository(gdb)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `project_members` .* ON DUPLICATE KEY UPDATE").
			WithArgs(int64(10), int64(5), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Add(&model.ProjectMember{ProjectID: 10, UserID: 5})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("重复添加同一成员不报错", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewProjectMemberRepository(gdb)

		// 唯一索引冲突被冲突子句吞掉, 影响行数为0
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `project_members` .* ON DUPLICATE KEY UPDATE").
			WithArgs(int64(10), int64(5), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Add(&model.ProjectMember{ProjectID: 10, UserID: 5})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectMemberRepository_Remove非成员静默成功(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewProjectMemberRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `project_members` WHERE project_id = \\? AND user_id = \\?").
		WithArgs(int64(10), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, repo.Remove(10, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
