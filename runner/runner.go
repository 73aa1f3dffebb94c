package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/crjhappy123/museum-tender-notifier/config"
	"github.com/crjhappy123/museum-tender-notifier/http"
	"github.com/crjhappy123/museum-tender-notifier/notify"
	"github.com/crjhappy123/museum-tender-notifier/parser"
	"github.com/crjhappy123/museum-tender-notifier/types"
	"go.uber.org/zap"
)

// NotifyStatus 推送结果
type NotifyStatus string

const (
	NotifySent    NotifyStatus = "sent"
	NotifySkipped NotifyStatus = "skipped"
	NotifyFailed  NotifyStatus = "failed"
)

// Archiver 公告归档
type Archiver interface {
	Insert(ctx context.Context, tenders []types.Tender) error
}

// Report 一次运行的结果
type Report struct {
	Tenders []types.Tender `json:"tenders"`
	Message string         `json:"message"`
	Status  NotifyStatus   `json:"status"`
}

// Runner 爬取 -> 解析 -> 过滤 -> 格式化 -> 推送
type Runner struct {
	conf     *config.Config
	fetcher  http.Fetcher
	notifier http.Notifier
	archiver Archiver
	logger   *zap.Logger
}

// Option 可选依赖
type Option func(*Runner)

// WithNotifier 指定推送，未指定时按配置中的 webhook 地址创建
func WithNotifier(n http.Notifier) Option {
	return func(r *Runner) { r.notifier = n }
}

// WithArchiver 启用归档
func WithArchiver(a Archiver) Option {
	return func(r *Runner) { r.archiver = a }
}

// New 创建 Runner
func New(conf *config.Config, fetcher http.Fetcher, logger *zap.Logger, opts ...Option) *Runner {
	r := &Runner{
		conf:    conf,
		fetcher: fetcher,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.notifier == nil && conf.Webhook.URL != "" {
		r.notifier = http.NewWebhook(conf.Webhook.URL, conf.Webhook.Timeout)
	}
	return r
}

// Collect 依次爬取所有站点，返回匹配关键词的公告
func (r *Runner) Collect(ctx context.Context) []types.Tender {
	all := make([]types.Tender, 0)
	for _, site := range r.conf.Sites {
		log := r.logger.With(zap.String("source", site.Name), zap.String("url", site.URL))
		log.Info(fmt.Sprintf("爬取 %s 网站", site.Name))

		content, err := r.fetcher.FetchPage(ctx, site.URL)
		if err != nil {
			log.Error(fmt.Sprintf("无法访问 %s 页面", site.Name), zap.Error(err))
			continue
		}
		r.dump(site, content)

		tenders, err := parser.Parse(content, site, r.conf.Selectors)
		if err != nil {
			log.Error(fmt.Sprintf("%s 页面解析失败", site.Name), zap.Error(err))
			continue
		}

		matched := parser.Filter(tenders, r.conf.Keywords)
		if len(matched) == 0 {
			log.Info(fmt.Sprintf("%s 无相关信息。", site.Name), zap.Int("items", len(tenders)))
			continue
		}
		log.Info(fmt.Sprintf("从 %s 找到 %d 条博物馆相关招标信息。", site.Name, len(matched)), zap.Int("count", len(matched)))
		all = append(all, matched...)
	}
	return all
}

// Run 完整运行一次并推送
func (r *Runner) Run(ctx context.Context) Report {
	tenders := r.Collect(ctx)

	if r.archiver != nil {
		if err := r.archiver.Insert(ctx, tenders); err != nil {
			r.logger.Error("归档失败", zap.Error(err))
		}
	}

	message := notify.Format(tenders)
	fmt.Println(message)

	return Report{
		Tenders: tenders,
		Message: message,
		Status:  r.send(ctx, message),
	}
}

func (r *Runner) send(ctx context.Context, message string) NotifyStatus {
	if r.notifier == nil {
		r.logger.Warn("缺少 WECHAT_WEBHOOK_URL 配置")
		return NotifySkipped
	}
	for i, part := range notify.Split(message, r.conf.Webhook.MaxBytes) {
		if err := r.notifier.Send(ctx, part); err != nil {
			r.logger.Error("发送失败", zap.Int("part", i+1), zap.Error(err))
			return NotifyFailed
		}
	}
	r.logger.Info("企业微信消息发送成功")
	return NotifySent
}

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)

// dump 保存原始 html 便于离线排查
func (r *Runner) dump(site types.Site, content string) {
	dir := r.conf.Debug.DumpDir
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.logger.Warn("创建调试目录失败", zap.String("dir", dir), zap.Error(err))
		return
	}
	name := unsafeFileChars.ReplaceAllString(site.Name, "_") + "_debug.html"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.logger.Warn("写入调试文件失败", zap.String("path", path), zap.Error(err))
		return
	}
	r.logger.Debug("已保存调试文件", zap.String("path", path))
}
