package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"agencyflow/internal/adapter/email"
	"agencyflow/internal/dto"
	"agencyflow/internal/model"
	"agencyflow/internal/outbox"
	"agencyflow/internal/pkg/logger"
	"agencyflow/internal/repository"
	"agencyflow/pkg/constants"
	pkgErrors "agencyflow/pkg/errors"
)

type TaskService interface {
	Create(actor *dto.UserInfo, req *dto.TaskCreateRequest) (*model.Task, error)
	ListByProject(projectID int64) ([]*model.Task, error)
	ListByAssignee(userID int64) ([]dto.TaskWithProject, error)
	GetByID(id int64) (*model.Task, error)
	Update(actor *dto.UserInfo, id int64, req *dto.TaskUpdateRequest) (*model.Task, error)
	Workbench(actor *dto.UserInfo, now time.Time) (*dto.WorkbenchResponse, error)
	ListAssignees(taskID int64) ([]*model.TaskAssignee, error)
	AddAssignee(actor *dto.UserInfo, taskID, userID int64) error
	RemoveAssignee(actor *dto.UserInfo, taskID, userID int64) error
	ListComments(taskID int64) ([]*model.TaskComment, error)
	AddComment(actor *dto.UserInfo, taskID int64, req *dto.CommentCreateRequest) (*model.TaskComment, error)
	ListLogs(taskID int64, actionType string) ([]*model.TaskLog, error)
}

type taskService struct {
	taskRepo         repository.TaskRepository
	assigneeRepo     repository.TaskAssigneeRepository
	commentRepo      repository.TaskCommentRepository
	logRepo          repository.TaskLogRepository
	projectRepo      repository.ProjectRepository
	profileRepo      repository.ProfileRepository
	notificationRepo repository.NotificationRepository
	queue            outbox.Queue
	mailer           email.Mailer
}

func NewTaskService(
	taskRepo repository.TaskRepository,
	assigneeRepo repository.TaskAssigneeRepository,
	commentRepo repository.TaskCommentRepository,
	logRepo repository.TaskLogRepository,
	projectRepo repository.ProjectRepository,
	profileRepo repository.ProfileRepository,
	notificationRepo repository.NotificationRepository,
	queue outbox.Queue,
	mailer email.Mailer,
) TaskService {
	return &taskService{
		taskRepo:         taskRepo,
		assigneeRepo:     assigneeRepo,
		commentRepo:      commentRepo,
		logRepo:          logRepo,
		projectRepo:      projectRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		queue:            queue,
		mailer:           mailer,
	}
}

// Create 创建任务并记录created日志, 初始负责人逐个指派(含通知/邮件副作用)
func (s *taskService) Create(actor *dto.UserInfo, req *dto.TaskCreateRequest) (*model.Task, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, err
	}

	task := &model.Task{
		ProjectID:   req.ProjectID,
		CreatedBy:   &actor.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	} else {
		task.Priority = constants.TaskPriorityMedium
	}
	if req.Status != "" {
		task.Status = req.Status
	} else {
		task.Status = constants.TaskStatusTodo
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	s.writeLog(&model.TaskLog{
		TaskID:     task.ID,
		UserID:     actor.ID,
		ActionType: constants.LogActionCreated,
		NewValue:   &task.Title,
	})

	for _, userID := range req.AssigneeIDs {
		if err := s.assign(actor, task, project, userID); err != nil {
			return nil, err
		}
	}

	return task, nil
}

func (s *taskService) ListByProject(projectID int64) ([]*model.Task, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, err
	}
	return s.taskRepo.ListByProject(projectID)
}

func (s *taskService) GetByID(id int64) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return nil, pkgErrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// Update 部分更新, 状态/优先级变更各记一条日志(旧值新值快照)
func (s *taskService) Update(actor *dto.UserInfo, id int64, req *dto.TaskUpdateRequest) (*model.Task, error) {
	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if req.IsBlocked != nil {
		fields["is_blocked"] = *req.IsBlocked
	}

	if req.Status != nil && *req.Status != task.Status {
		fields["status"] = *req.Status
		old := task.Status
		s.writeLog(&model.TaskLog{
			TaskID:     task.ID,
			UserID:     actor.ID,
			ActionType: constants.LogActionStatusChange,
			OldValue:   &old,
			NewValue:   req.Status,
		})
	}
	if req.Priority != nil && *req.Priority != task.Priority {
		fields["priority"] = *req.Priority
		old := task.Priority
		s.writeLog(&model.TaskLog{
			TaskID:     task.ID,
			UserID:     actor.ID,
			ActionType: constants.LogActionPriorityChange,
			OldValue:   &old,
			NewValue:   req.Priority,
		})
	}

	if len(fields) > 0 {
		if err := s.taskRepo.Update(id, fields); err != nil {
			return nil, err
		}
	}

	return s.taskRepo.FindByID(id)
}

// Workbench 负责人视角分桶: done / overdue / today / upcoming, 每个任务只进一个桶
// ListByAssignee 负责人视角的任务列表, 附带所属项目名称与品牌色
func (s *taskService) ListByAssignee(userID int64) ([]dto.TaskWithProject, error) {
	tasks, err := s.taskRepo.ListByAssignee(userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TaskWithProject, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, withProject(task))
	}
	return items, nil
}

func withProject(task *model.Task) dto.TaskWithProject {
	item := dto.TaskWithProject{Task: *task}
	if task.Project != nil {
		item.ProjectName = task.Project.Name
		item.ProjectColor = task.Project.BrandColor
	}
	return item
}

func (s *taskService) Workbench(actor *dto.UserInfo, now time.Time) (*dto.WorkbenchResponse, error) {
	tasks, err := s.taskRepo.ListByAssignee(actor.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.WorkbenchResponse{
		Overdue:  make([]dto.TaskWithProject, 0),
		Today:    make([]dto.TaskWithProject, 0),
		Upcoming: make([]dto.TaskWithProject, 0),
		Done:     make([]dto.TaskWithProject, 0),
	}

	for _, task := range tasks {
		item := withProject(task)

		switch bucketOf(task, now) {
		case constants.BucketDone:
			resp.Done = append(resp.Done, item)
		case constants.BucketOverdue:
			resp.Overdue = append(resp.Overdue, item)
		case constants.BucketToday:
			resp.Today = append(resp.Today, item)
		default:
			resp.Upcoming = append(resp.Upcoming, item)
		}
	}

	return resp, nil
}

// bucketOf 完成的任务永远在done桶, 不算逾期; 无到期时间的未完成任务在upcoming桶
func bucketOf(task *model.Task, now time.Time) string {
	if task.Status == constants.TaskStatusDone {
		return constants.BucketDone
	}
	if task.DueDate == nil {
		return constants.BucketUpcoming
	}
	if task.DueDate.Before(now) {
		return constants.BucketOverdue
	}
	y1, m1, d1 := task.DueDate.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return constants.BucketToday
	}
	return constants.BucketUpcoming
}

func (s *taskService) ListAssignees(taskID int64) ([]*model.TaskAssignee, error) {
	if _, err := s.GetByID(taskID); err != nil {
		return nil, err
	}
	return s.assigneeRepo.ListByTask(taskID)
}

func (s *taskService) AddAssignee(actor *dto.UserInfo, taskID, userID int64) error {
	task, err := s.GetByID(taskID)
	if err != nil {
		return err
	}

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return err
	}

	return s.assign(actor, task, project, userID)
}

// assign 幂等指派 + assigned日志 + 站内通知/邮件副作用
func (s *taskService) assign(actor *dto.UserInfo, task *model.Task, project *model.Project, userID int64) error {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return pkgErrors.ErrUserNotFound
		}
		return err
	}

	if err := s.assigneeRepo.Add(&model.TaskAssignee{
		TaskID: task.ID,
		UserID: userID,
	}); err != nil {
		return err
	}

	s.writeLog(&model.TaskLog{
		TaskID:     task.ID,
		UserID:     actor.ID,
		ActionType: constants.LogActionAssigned,
		Details:    &profile.FullName,
	})

	link := fmt.Sprintf("/projects/%d", task.ProjectID)
	s.queue.Enqueue("task_assigned_notification", func(ctx context.Context) error {
		return s.notificationRepo.Create(&model.Notification{
			UserID:  userID,
			Title:   "New Task Assignment",
			Message: fmt.Sprintf("You have been assigned to \"%s\" in %s.", task.Title, project.Name),
			Type:    constants.NotifyTypeTask,
			Link:    &link,
		})
	})
	s.queue.Enqueue("task_assigned_email", func(ctx context.Context) error {
		return s.mailer.Send(ctx, email.BuildTaskAssignmentMessage(profile.Email, &email.TaskAssignmentParams{
			TaskTitle:    task.Title,
			AssigneeName: profile.FullName,
			ProjectName:  project.Name,
			Priority:     task.Priority,
			DueDate:      task.DueDate,
			Assigned:     true,
		}))
	})

	return nil
}

// RemoveAssignee 移除负责人, 未指派时同样成功且不产生日志/通知
func (s *taskService) RemoveAssignee(actor *dto.UserInfo, taskID, userID int64) error {
	task, err := s.GetByID(taskID)
	if err != nil {
		return err
	}

	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return pkgErrors.ErrUserNotFound
		}
		return err
	}

	assignees, err := s.assigneeRepo.ListByTask(taskID)
	if err != nil {
		return err
	}
	assigned := false
	for _, a := range assignees {
		if a.UserID == userID {
			assigned = true
			break
		}
	}

	if err := s.assigneeRepo.Remove(taskID, userID); err != nil {
		return err
	}
	if !assigned {
		return nil
	}

	s.writeLog(&model.TaskLog{
		TaskID:     taskID,
		UserID:     actor.ID,
		ActionType: constants.LogActionUnassigned,
		Details:    &profile.FullName,
	})

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return err
	}

	s.queue.Enqueue("task_unassigned_email", func(ctx context.Context) error {
		return s.mailer.Send(ctx, email.BuildTaskAssignmentMessage(profile.Email, &email.TaskAssignmentParams{
			TaskTitle:    task.Title,
			AssigneeName: profile.FullName,
			ProjectName:  project.Name,
			Priority:     task.Priority,
			Assigned:     false,
		}))
	})

	return nil
}

func (s *taskService) ListComments(taskID int64) ([]*model.TaskComment, error) {
	if _, err := s.GetByID(taskID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByTask(taskID)
}

// AddComment 创建评论并记录commented日志
func (s *taskService) AddComment(actor *dto.UserInfo, taskID int64, req *dto.CommentCreateRequest) (*model.TaskComment, error) {
	if _, err := s.GetByID(taskID); err != nil {
		return nil, err
	}

	comment := &model.TaskComment{
		TaskID:  taskID,
		UserID:  actor.ID,
		Content: req.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	s.writeLog(&model.TaskLog{
		TaskID:     taskID,
		UserID:     actor.ID,
		ActionType: constants.LogActionCommented,
	})

	return comment, nil
}

func (s *taskService) ListLogs(taskID int64, actionType string) ([]*model.TaskLog, error) {
	if _, err := s.GetByID(taskID); err != nil {
		return nil, err
	}
	return s.logRepo.ListByTask(taskID, actionType)
}

// writeLog 日志写失败不阻断主流程, 仅记录
func (s *taskService) writeLog(entry *model.TaskLog) {
	if err := s.logRepo.Create(entry); err != nil {
		logger.Warn("写入任务日志失败",
			zap.Int64("task_id", entry.TaskID),
			zap.String("action", entry.ActionType),
			zap.Error(err))
	}
}
