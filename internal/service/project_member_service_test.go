package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agencyflow/internal/model"
	pkgErrors "agencyflow/pkg/errors"
)

func TestProjectMemberService_Add(t *testing.T) {
	project := &model.Project{BaseModel: model.BaseModel{ID: 10}, Name: "Brand Refresh"}
	profile := &model.Profile{ID: 5, FullName: "Alice", Email: "alice@example.com"}

	t.Run("添加成功_通知与邮件经由队列投递", func(t *testing.T) {
		memberRepo := new(MockProjectMemberRepository)
		projectRepo := new(MockProjectRepository)
		profileRepo := new(MockProfileRepository)
		notifyRepo := new(MockNotificationRepository)
		mailer := new(MockMailer)

		projectRepo.On("FindByID", int64(10)).Return(project, nil)
		profileRepo.On("FindByID", int64(5)).Return(profile, nil)
		memberRepo.On("Add", mock.MatchedBy(func(m *model.ProjectMember) bool {
			return m.ProjectID == 10 && m.UserID == 5
		})).Return(nil)
		notifyRepo.On("Create", mock.MatchedBy(func(n *model.Notification) bool {
			return n.UserID == 5 && n.Title == "Added to Project"
		})).Return(nil)
		mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

		svc := NewProjectMemberService(memberRepo, projectRepo, profileRepo, notifyRepo, &inlineQueue{}, mailer)
		err := svc.Add(10, 5)

		assert.NoError(t, err)
		memberRepo.AssertExpectations(t)
		notifyRepo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("项目不存在", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		projectRepo.On("FindByID", int64(99)).Return(nil, pkgErrors.ErrRecordNotFound)

		svc := NewProjectMemberService(new(MockProjectMemberRepository), projectRepo, new(MockProfileRepository), new(MockNotificationRepository), &inlineQueue{}, new(MockMailer))
		err := svc.Add(99, 5)
		assert.Equal(t, pkgErrors.ErrProjectNotFound, err)
	})

	t.Run("副作用失败不影响主流程", func(t *testing.T) {
		memberRepo := new(MockProjectMemberRepository)
		projectRepo := new(MockProjectRepository)
		profileRepo := new(MockProfileRepository)

		projectRepo.On("FindByID", int64(10)).Return(project, nil)
		profileRepo.On("FindByID", int64(5)).Return(profile, nil)
		memberRepo.On("Add", mock.Anything).Return(nil)

		// 丢弃队列: 副作用从未执行, Add仍然成功
		svc := NewProjectMemberService(memberRepo, projectRepo, profileRepo, new(MockNotificationRepository), &dropQueue{}, new(MockMailer))
		assert.NoError(t, svc.Add(10, 5))
	})
}

func TestProjectMemberService_Remove(t *testing.T) {
	project := &model.Project{BaseModel: model.BaseModel{ID: 10}, Name: "Brand Refresh"}
	profile := &model.Profile{ID: 5, FullName: "Alice", Email: "alice@example.com"}

	t.Run("移除成员_发送邮件", func(t *testing.T) {
		memberRepo := new(MockProjectMemberRepository)
		projectRepo := new(MockProjectRepository)
		profileRepo := new(MockProfileRepository)
		mailer := new(MockMailer)

		projectRepo.On("FindByID", int64(10)).Return(project, nil)
		profileRepo.On("FindByID", int64(5)).Return(profile, nil)
		memberRepo.On("Exists", int64(10), int64(5)).Return(true, nil)
		memberRepo.On("Remove", int64(10), int64(5)).Return(nil)
		mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

		svc := NewProjectMemberService(memberRepo, projectRepo, profileRepo, new(MockNotificationRepository), &inlineQueue{}, mailer)
		assert.NoError(t, svc.Remove(10, 5))
		mailer.AssertExpectations(t)
	})

	t.Run("移除非成员_静默成功且不发邮件", func(t *testing.T) {
		memberRepo := new(MockProjectMemberRepository)
		projectRepo := new(MockProjectRepository)
		profileRepo := new(MockProfileRepository)
		mailer := new(MockMailer)

		projectRepo.On("FindByID", int64(10)).Return(project, nil)
		profileRepo.On("FindByID", int64(5)).Return(profile, nil)
		memberRepo.On("Exists", int64(10), int64(5)).Return(false, nil)
		memberRepo.On("Remove", int64(10), int64(5)).Return(nil)

		svc := NewProjectMemberService(memberRepo, projectRepo, profileRepo, new(MockNotificationRepository), &inlineQueue{}, mailer)
		assert.NoError(t, svc.Remove(10, 5))
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}
