package service

import (
	"context"
	"fmt"

	"agencyflow/internal/adapter/email"
	"agencyflow/internal/model"
	"agencyflow/internal/outbox"
	"agencyflow/internal/repository"
	"agencyflow/pkg/constants"
	pkgErrors "agencyflow/pkg/errors"
)

type ProjectMemberService interface {
	List(projectID int64) ([]*model.ProjectMember, error)
	Add(projectID, userID int64) error
	Remove(projectID, userID int64) error
}

type projectMemberService struct {
	memberRepo       repository.ProjectMemberRepository
	projectRepo      repository.ProjectRepository
	profileRepo      repository.ProfileRepository
	notificationRepo repository.NotificationRepository
	queue            outbox.Queue
	mailer           email.Mailer
}

func NewProjectMemberService(
	memberRepo repository.ProjectMemberRepository,
	projectRepo repository.ProjectRepository,
	profileRepo repository.ProfileRepository,
	notificationRepo repository.NotificationRepository,
	queue outbox.Queue,
	mailer email.Mailer,
) ProjectMemberService {
	return &projectMemberService{
		memberRepo:       memberRepo,
		projectRepo:      projectRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		queue:            queue,
		mailer:           mailer,
	}
}

func (s *projectMemberService) List(projectID int64) ([]*model.ProjectMember, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, err
	}
	return s.memberRepo.ListByProject(projectID)
}

// Add 幂等加入成员, 副作用(站内通知+邮件)走Outbox, 不影响主流程结果
func (s *projectMemberService) Add(projectID, userID int64) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return pkgErrors.ErrProjectNotFound
		}
		return err
	}

	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return pkgErrors.ErrUserNotFound
		}
		return err
	}

	if err := s.memberRepo.Add(&model.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
	}); err != nil {
		return err
	}

	link := fmt.Sprintf("/projects/%d", projectID)
	s.queue.Enqueue("project_member_added_notification", func(ctx context.Context) error {
		return s.notificationRepo.Create(&model.Notification{
			UserID:  userID,
			Title:   "Added to Project",
			Message: fmt.Sprintf("You have been added to the project \"%s\".", project.Name),
			Type:    constants.NotifyTypeInfo,
			Link:    &link,
		})
	})
	s.queue.Enqueue("project_member_added_email", func(ctx context.Context) error {
		return s.mailer.Send(ctx, email.BuildProjectMemberMessage(
			profile.Email, profile.FullName, project.Name, true))
	})

	return nil
}

// Remove 非成员移除静默成功, 不发通知
func (s *projectMemberService) Remove(projectID, userID int64) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return pkgErrors.ErrProjectNotFound
		}
		return err
	}

	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return pkgErrors.ErrUserNotFound
		}
		return err
	}

	existed, err := s.memberRepo.Exists(projectID, userID)
	if err != nil {
		return err
	}

	if err := s.memberRepo.Remove(projectID, userID); err != nil {
		return err
	}

	if !existed {
		return nil
	}

	s.queue.Enqueue("project_member_removed_email", func(ctx context.Context) error {
		return s.mailer.Send(ctx, email.BuildProjectMemberMessage(
			profile.Email, profile.FullName, project.Name, false))
	})

	return nil
}
