package constants

// TaskStatus 任务状态
const (
	TaskStatusTodo           = "Todo"
	TaskStatusInProgress     = "In Progress"
	TaskStatusInternalReview = "Internal Review"
	TaskStatusClientReview   = "Pending Client Review"
	TaskStatusDone           = "Done"
)

// ValidTaskStatuses 合法任务状态集合
var ValidTaskStatuses = []string{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusInternalReview,
	TaskStatusClientReview,
	TaskStatusDone,
}

// TaskPriority 任务优先级
const (
	TaskPriorityHigh   = "P1-High"
	TaskPriorityMedium = "P2-Medium"
	TaskPriorityLow    = "P3-Low"
)

// ValidTaskPriorities 合法优先级集合
var ValidTaskPriorities = []string{
	TaskPriorityHigh,
	TaskPriorityMedium,
	TaskPriorityLow,
}

// 任务日志动作类型
const (
	LogActionCreated        = "created"
	LogActionStatusChange   = "status_change"
	LogActionPriorityChange = "priority_change"
	LogActionAssigned       = "assigned"
	LogActionUnassigned     = "unassigned"
	LogActionCommented      = "commented"
)

// 工作台任务分桶
const (
	BucketOverdue  = "overdue"
	BucketToday    = "today"
	BucketUpcoming = "upcoming"
	BucketDone     = "done"
)
