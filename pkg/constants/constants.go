package constants

// 角色
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// ValidRoles 合法角色集合
var ValidRoles = []string{RoleAdmin, RoleManager, RoleStaff}

// 项目状态
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusArchived  = "archived"
)

// 通知类型
const (
	NotifyTypeInfo    = "info"
	NotifyTypeTask    = "task"
	NotifyTypeProject = "project"
)

// JWT 相关
const (
	TokenExpireDays = 7 // Token有效期(天)
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)

// Context Key (由认证中间件写入)
const (
	ContextUserKey  = "user"
	ContextTokenKey = "token"
)
