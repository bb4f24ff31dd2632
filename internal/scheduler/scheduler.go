package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"agencyflow/internal/model"
	"agencyflow/internal/outbox"
	"agencyflow/internal/pkg/config"
	"agencyflow/internal/repository"
	"agencyflow/pkg/constants"
)

// Scheduler 调度器: 过期会话清理 + 任务到期提醒
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	sessionRepo   repository.SessionRepository
	taskRepo      repository.TaskRepository
	assigneeRepo  repository.TaskAssigneeRepository
	notifyRepo    repository.NotificationRepository
	queue         outbox.Queue
	cronSchedules map[string]cron.EntryID
}

// NewScheduler 创建调度器
func NewScheduler(
	logger *zap.Logger,
	sessionRepo repository.SessionRepository,
	taskRepo repository.TaskRepository,
	assigneeRepo repository.TaskAssigneeRepository,
	notifyRepo repository.NotificationRepository,
	queue outbox.Queue,
) *Scheduler {
	// cron 表达式格式: 秒 分 时 日 月 周
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:          c,
		logger:        logger,
		sessionRepo:   sessionRepo,
		taskRepo:      taskRepo,
		assigneeRepo:  assigneeRepo,
		notifyRepo:    notifyRepo,
		queue:         queue,
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cfg *config.SchedulerConfig) error {
	log := s.logger.Sugar()

	log.Info("启动定时任务调度器...")

	purgeCron := cfg.SessionPurgeCron
	if purgeCron == "" {
		purgeCron = "0 0 * * * *" // 默认: 每小时整点
		log.Warn("未配置scheduler.session_purge_cron,使用默认值", zap.String("cron", purgeCron))
	}
	entryID, err := s.cron.AddFunc(purgeCron, func() {
		log.Info("执行定时任务: 清理过期会话")
		s.PurgeExpiredSessions()
	})
	if err != nil {
		log.Errorf("注册会话清理任务失败: %v", err)
		return err
	}
	s.cronSchedules["session_purge"] = entryID
	log.Infof("会话清理任务已注册: %s entry_id=%d", purgeCron, entryID)

	reminderCron := cfg.DueReminderCron
	if reminderCron == "" {
		reminderCron = "0 0 9 * * *" // 默认: 每天上午9点
		log.Warn("未配置scheduler.due_reminder_cron,使用默认值", zap.String("cron", reminderCron))
	}
	entryID, err = s.cron.AddFunc(reminderCron, func() {
		log.Info("执行定时任务: 任务到期提醒")
		if err := s.RemindDueTasks(time.Now()); err != nil {
			log.Errorf("任务到期提醒执行失败: %v", err)
		}
	})
	if err != nil {
		log.Errorf("注册到期提醒任务失败: %v", err)
		return err
	}
	s.cronSchedules["due_reminder"] = entryID
	log.Infof("到期提醒任务已注册: %s entry_id=%d", reminderCron, entryID)

	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 等待正在执行的任务完成
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// PurgeExpiredSessions 删除已过期的会话行
func (s *Scheduler) PurgeExpiredSessions() {
	count, err := s.sessionRepo.DeleteExpired(time.Now())
	if err != nil {
		s.logger.Error("清理过期会话失败", zap.Error(err))
		return
	}
	if count > 0 {
		s.logger.Info("已清理过期会话", zap.Int64("count", count))
	}
}

// RemindDueTasks 给24小时内到期(含已逾期)的未完成任务的负责人投递站内提醒
func (s *Scheduler) RemindDueTasks(now time.Time) error {
	tasks, err := s.taskRepo.ListDueBefore(now.Add(24 * time.Hour))
	if err != nil {
		return err
	}

	for _, task := range tasks {
		assignees, err := s.assigneeRepo.ListByTask(task.ID)
		if err != nil {
			s.logger.Error("查询任务负责人失败",
				zap.Int64("task_id", task.ID), zap.Error(err))
			continue
		}

		title := "Task Due Soon"
		message := fmt.Sprintf("\"%s\" is due soon.", task.Title)
		if task.DueDate != nil && task.DueDate.Before(now) {
			title = "Task Overdue"
			message = fmt.Sprintf("\"%s\" is overdue.", task.Title)
		}
		link := fmt.Sprintf("/projects/%d", task.ProjectID)

		for _, assignee := range assignees {
			userID := assignee.UserID
			taskID := task.ID
			s.queue.Enqueue("due_task_reminder", func(ctx context.Context) error {
				return s.notifyRepo.Create(&model.Notification{
					UserID:  userID,
					Title:   title,
					Message: message,
					Type:    constants.NotifyTypeTask,
					Link:    &link,
				})
			})
			s.logger.Debug("已投递到期提醒",
				zap.Int64("task_id", taskID),
				zap.Int64("user_id", userID))
		}
	}

	s.logger.Info("到期提醒扫描完成", zap.Int("tasks", len(tasks)))
	return nil
}
