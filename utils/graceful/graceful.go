package graceful

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Shutdown 阻塞直到收到退出信号，然后停止服务
func Shutdown(instance *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := instance.Shutdown(ctx); err != nil {
		logger.Error("服务关闭失败", zap.Error(err))
		return
	}
	logger.Info("服务已关闭")
}

// Welcome 欢迎
func Welcome(port string) {
	projectName := "museum-tender-notifier"
	currentTime := time.Now().Format(time.DateTime)

	fmt.Printf("=======================================\n")
	fmt.Printf("  %s\n", projectName)
	fmt.Printf("  启动时间: %s\n", currentTime)
	fmt.Printf("  监听端口: %s\n", port)
	fmt.Printf("=======================================\n")
}
