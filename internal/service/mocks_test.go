package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"agencyflow/internal/adapter/email"
	"agencyflow/internal/model"
)

// inlineQueue 测试用同步队列, 入队即执行
type inlineQueue struct{}

func (q *inlineQueue) Enqueue(name string, run func(ctx context.Context) error) {
	_ = run(context.Background())
}

// dropQueue 测试用丢弃队列, 断言主流程不依赖副作用执行
type dropQueue struct{}

func (q *dropQueue) Enqueue(name string, run func(ctx context.Context) error) {}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg *email.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id int64) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(id int64, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *model.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByToken(token string) (*model.Session, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteByToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteByUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(before time.Time) (int64, error) {
	args := m.Called(before)
	return args.Get(0).(int64), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(profile *model.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByID(id int64) (*model.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) List() ([]*model.Profile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(id int64, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

type MockUserRoleRepository struct {
	mock.Mock
}

func (m *MockUserRoleRepository) ListByUser(userID int64) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRoleRepository) Add(userID int64, role string) error {
	args := m.Called(userID, role)
	return args.Error(0)
}

func (m *MockUserRoleRepository) ReplaceForUser(userID int64, role string) error {
	args := m.Called(userID, role)
	return args.Error(0)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(id int64) (*model.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) ListAll() ([]*model.Project, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByMember(userID int64) ([]*model.Project, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(id int64, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

type MockProjectMemberRepository struct {
	mock.Mock
}

func (m *MockProjectMemberRepository) ListByProject(projectID int64) ([]*model.ProjectMember, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProjectMember), args.Error(1)
}

func (m *MockProjectMemberRepository) Add(member *model.ProjectMember) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockProjectMemberRepository) Remove(projectID, userID int64) error {
	args := m.Called(projectID, userID)
	return args.Error(0)
}

func (m *MockProjectMemberRepository) Exists(projectID, userID int64) (bool, error) {
	args := m.Called(projectID, userID)
	return args.Bool(0), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(task *model.Task) error {
	args := m.Called(task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(id int64) (*model.Task, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByProject(projectID int64) ([]*model.Task, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByAssignee(userID int64) ([]*model.Task, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListDueBefore(deadline time.Time) ([]*model.Task, error) {
	args := m.Called(deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(id int64, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

type MockTaskAssigneeRepository struct {
	mock.Mock
}

func (m *MockTaskAssigneeRepository) ListByTask(taskID int64) ([]*model.TaskAssignee, error) {
	args := m.Called(taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TaskAssignee), args.Error(1)
}

func (m *MockTaskAssigneeRepository) Add(assignee *model.TaskAssignee) error {
	args := m.Called(assignee)
	return args.Error(0)
}

func (m *MockTaskAssigneeRepository) Remove(taskID, userID int64) error {
	args := m.Called(taskID, userID)
	return args.Error(0)
}

type MockTaskCommentRepository struct {
	mock.Mock
}

func (m *MockTaskCommentRepository) ListByTask(taskID int64) ([]*model.TaskComment, error) {
	args := m.Called(taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TaskComment), args.Error(1)
}

func (m *MockTaskCommentRepository) Create(comment *model.TaskComment) error {
	args := m.Called(comment)
	return args.Error(0)
}

type MockTaskLogRepository struct {
	mock.Mock
}

func (m *MockTaskLogRepository) ListByTask(taskID int64, actionType string) ([]*model.TaskLog, error) {
	args := m.Called(taskID, actionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TaskLog), args.Error(1)
}

func (m *MockTaskLogRepository) Create(log *model.TaskLog) error {
	args := m.Called(log)
	return args.Error(0)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) ListByUser(userID int64) ([]*model.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Create(notification *model.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkRead(id, userID int64) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(id, userID int64) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteAllByUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}
