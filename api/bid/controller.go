package bid

import (
	"errors"
	"net/http"

	"github.com/crjhappy123/museum-tender-notifier/utils/api_helper"
	"github.com/crjhappy123/museum-tender-notifier/utils/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 招标接口
type Handler struct {
	runner Runner
	logger *zap.Logger
}

func NewHandler(runner Runner, logger *zap.Logger) *Handler {
	return &Handler{runner: runner, logger: logger}
}

// ListTenders 爬取并返回匹配的公告，不推送
func (h *Handler) ListTenders(c *gin.Context) {
	since := c.Query("since")
	if !validator.IsDateValid(since) {
		api_helper.BadRequestHandler(c, errors.New("日期参数格式错误，格式必须为2024-01-19！"))
		return
	}

	h.logger.Info("开始查询", zap.String("since", since))
	tenders := FilterSince(h.runner.Collect(c.Request.Context()), since)
	h.logger.Info("查询结束", zap.Int("count", len(tenders)))

	c.JSON(http.StatusOK, api_helper.Success(tenders))
}

// RunOnce 完整运行一次并推送
func (h *Handler) RunOnce(c *gin.Context) {
	report := h.runner.Run(c.Request.Context())

	rsp := api_helper.Success(report.Tenders)
	rsp.Notify = string(report.Status)
	c.JSON(http.StatusOK, rsp)
}
