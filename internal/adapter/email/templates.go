package email

import (
	"fmt"
	"time"
)

const (
	bodyOpen = `<html><body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">` +
		`<div style="max-width: 600px; margin: 0 auto; padding: 20px;">`
	bodyClose = `<p style="margin-top: 30px;">Best regards,<br><strong>AgencyFlow Team</strong></p>` +
		`</div></body></html>`
)

// TaskAssignmentParams 任务指派邮件参数
type TaskAssignmentParams struct {
	TaskTitle    string
	AssigneeName string
	ProjectName  string
	Priority     string
	DueDate      *time.Time
	Assigned     bool
}

// BuildTaskAssignmentMessage 构建任务指派/取消指派邮件
func BuildTaskAssignmentMessage(to string, p *TaskAssignmentParams) *Message {
	if p.Assigned {
		due := ""
		if p.DueDate != nil {
			due = fmt.Sprintf(`<p><strong>Due Date:</strong> %s</p>`, p.DueDate.Format("2006-01-02"))
		}
		html := bodyOpen +
			`<h2 style="color: #0f172a;">Task Assigned to You</h2>` +
			fmt.Sprintf(`<p>Hi %s,</p>`, p.AssigneeName) +
			fmt.Sprintf(`<p>You have been assigned to a task in <strong>%s</strong>:</p>`, p.ProjectName) +
			`<div style="background: #f8fafc; padding: 15px; border-radius: 8px; margin: 20px 0;">` +
			fmt.Sprintf(`<h3 style="margin-top: 0; color: #0f172a;">%s</h3>`, p.TaskTitle) +
			fmt.Sprintf(`<p><strong>Priority:</strong> %s</p>`, p.Priority) +
			due +
			`</div>` +
			`<p>Please log in to AgencyFlow to view the task details and start working on it.</p>` +
			bodyClose
		return &Message{
			To:      to,
			Subject: fmt.Sprintf("Task Assigned: %s", p.TaskTitle),
			HTML:    html,
		}
	}

	html := bodyOpen +
		`<h2 style="color: #0f172a;">Task Unassignment</h2>` +
		fmt.Sprintf(`<p>Hi %s,</p>`, p.AssigneeName) +
		fmt.Sprintf(`<p>You have been unassigned from a task in <strong>%s</strong>:</p>`, p.ProjectName) +
		`<div style="background: #f8fafc; padding: 15px; border-radius: 8px; margin: 20px 0;">` +
		fmt.Sprintf(`<h3 style="margin-top: 0; color: #0f172a;">%s</h3>`, p.TaskTitle) +
		`</div>` +
		`<p>You are no longer responsible for this task.</p>` +
		bodyClose
	return &Message{
		To:      to,
		Subject: fmt.Sprintf("Task Unassignment: %s", p.TaskTitle),
		HTML:    html,
	}
}

// BuildProjectMemberMessage 构建项目成员变更邮件
func BuildProjectMemberMessage(to, memberName, projectName string, added bool) *Message {
	if added {
		html := bodyOpen +
			`<h2 style="color: #0f172a;">Added to Project</h2>` +
			fmt.Sprintf(`<p>Hi %s,</p>`, memberName) +
			fmt.Sprintf(`<p>You have been added to the project <strong>%s</strong>.</p>`, projectName) +
			`<p>You can now view and work on tasks within this project.</p>` +
			`<p>Please log in to AgencyFlow to see the project details.</p>` +
			bodyClose
		return &Message{
			To:      to,
			Subject: fmt.Sprintf("Added to Project: %s", projectName),
			HTML:    html,
		}
	}

	html := bodyOpen +
		`<h2 style="color: #0f172a;">Removed from Project</h2>` +
		fmt.Sprintf(`<p>Hi %s,</p>`, memberName) +
		fmt.Sprintf(`<p>You have been removed from the project <strong>%s</strong>.</p>`, projectName) +
		`<p>You no longer have access to this project.</p>` +
		bodyClose
	return &Message{
		To:      to,
		Subject: fmt.Sprintf("Removed from Project: %s", projectName),
		HTML:    html,
	}
}

// BuildNotificationMessage 构建通用通知邮件, 邮件主题复用通知标题
func BuildNotificationMessage(to, name, title, message string, link *string) *Message {
	linkHTML := ""
	if link != nil && *link != "" {
		linkHTML = fmt.Sprintf(`<p><a href="%s" style="color: #2563eb;">View Details</a></p>`, *link)
	}
	html := bodyOpen +
		fmt.Sprintf(`<h2 style="color: #0f172a;">%s</h2>`, title) +
		fmt.Sprintf(`<p>Hi %s,</p>`, name) +
		fmt.Sprintf(`<p>%s</p>`, message) +
		linkHTML +
		bodyClose
	return &Message{To: to, Subject: title, HTML: html}
}
