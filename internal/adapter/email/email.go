package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"agencyflow/internal/pkg/config"
)

// Message 邮件消息
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Mailer 邮件发送器接口
type Mailer interface {
	// Send 发送邮件
	Send(ctx context.Context, msg *Message) error
}

// ============= SMTP 邮件适配器 =============

// SMTPMailer SMTP邮件发送器
type SMTPMailer struct {
	cfg    *config.EmailConfig
	logger *zap.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer 创建SMTP邮件发送器
func NewSMTPMailer(cfg *config.EmailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// Send 发送邮件, 未配置SMTP时跳过并返回nil
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if !m.cfg.Enabled || m.cfg.Host == "" {
		m.logger.Debug("SMTP未配置,跳过邮件发送", zap.String("to", msg.To))
		return nil
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := m.send(addr, auth, from, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	m.logger.Info("邮件发送成功",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}

// ============= 日志邮件适配器(仅记录日志,不实际发送) =============

// LogMailer 日志邮件发送器
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer 创建日志邮件发送器
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send 记录邮件到日志
func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	m.logger.Info("📧 邮件",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}
