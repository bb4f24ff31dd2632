package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"agencyflow/internal/pkg/config"
)

// 包级日志函数在Init之前调用必须安全(服务层构造期/测试中常见)
func TestLogger_Init之前调用不崩溃(t *testing.T) {
	assert.NotPanics(t, func() {
		Debug("debug message")
		Info("info message", zap.String("key", "value"))
		Warn("warn message")
		Error("error message")
		Sugar().Infof("sugared %s", "message")
	})
	assert.NotNil(t, Log)
	assert.NoError(t, Close())
}

func TestLogger_Init(t *testing.T) {
	err := Init(&config.LogConfig{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	})
	assert.NoError(t, err)
	assert.NotNil(t, Log)

	assert.NotPanics(t, func() {
		Info("after init", zap.Int("n", 1))
	})
}
