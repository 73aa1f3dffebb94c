package api

import (
	"github.com/crjhappy123/museum-tender-notifier/api/bid"
	"github.com/gin-gonic/gin"
)

// RegisterHandler 注册路由
func RegisterHandler(r *gin.Engine, h *bid.Handler) {
	group := r.Group("/api")
	group.GET("/tenders", h.ListTenders)
	group.POST("/run", h.RunOnce)
}
