package service

import (
	"context"

	"agencyflow/internal/adapter/email"
	"agencyflow/internal/dto"
	"agencyflow/internal/model"
	"agencyflow/internal/outbox"
	"agencyflow/internal/repository"
	"agencyflow/pkg/constants"
	pkgErrors "agencyflow/pkg/errors"
)

// NotificationService 站内通知, 读写均以本人为界
type NotificationService interface {
	List(userID int64) ([]*model.Notification, error)
	Create(req *dto.NotificationCreateRequest) (*model.Notification, error)
	MarkRead(id, userID int64) error
	Delete(id, userID int64) error
	ClearAll(userID int64) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	profileRepo      repository.ProfileRepository
	queue            outbox.Queue
	mailer           email.Mailer
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	profileRepo repository.ProfileRepository,
	queue outbox.Queue,
	mailer email.Mailer,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		queue:            queue,
		mailer:           mailer,
	}
}

func (s *notificationService) List(userID int64) ([]*model.Notification, error) {
	return s.notificationRepo.ListByUser(userID)
}

// Create 通知行同步落库, 可选的邮件副本走Outbox
func (s *notificationService) Create(req *dto.NotificationCreateRequest) (*model.Notification, error) {
	profile, err := s.profileRepo.FindByID(req.UserID)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, err
	}

	notifyType := req.Type
	if notifyType == "" {
		notifyType = constants.NotifyTypeInfo
	}

	notification := &model.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    notifyType,
		Link:    req.Link,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	if req.SendEmail {
		s.queue.Enqueue("notification_email", func(ctx context.Context) error {
			return s.mailer.Send(ctx, email.BuildNotificationMessage(
				profile.Email, profile.FullName, req.Title, req.Message, req.Link))
		})
	}

	return notification, nil
}

func (s *notificationService) MarkRead(id, userID int64) error {
	return s.notificationRepo.MarkRead(id, userID)
}

func (s *notificationService) Delete(id, userID int64) error {
	return s.notificationRepo.Delete(id, userID)
}

func (s *notificationService) ClearAll(userID int64) error {
	return s.notificationRepo.DeleteAllByUser(userID)
}
