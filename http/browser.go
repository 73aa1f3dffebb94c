package http

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/crjhappy123/museum-tender-notifier/config"
)

// Fetcher 获取渲染后的页面
type Fetcher interface {
	// FetchPage 打开页面，等待列表元素出现后返回完整 html
	FetchPage(ctx context.Context, target string) (string, error)
}

type browserImpl struct {
	conf config.Browser
	opts []chromedp.ExecAllocatorOption
}

// NewBrowser 创建无头浏览器抓取器，每次抓取启动独立的浏览器会话
func NewBrowser(conf config.Browser) Fetcher {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", conf.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(conf.WindowWidth, conf.WindowHeight),
		chromedp.UserAgent(conf.UserAgent),
	)
	if conf.Proxy != "" {
		opts = append(opts, chromedp.ProxyServer(conf.Proxy))
	}
	return &browserImpl{
		conf: conf,
		opts: opts,
	}
}

// FetchPage 获取页面 html
func (b *browserImpl) FetchPage(ctx context.Context, target string) (string, error) {
	// 浏览器进程、标签页、超时均随函数返回释放
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, b.opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	// 先启动浏览器，避免超时 ctx 绑定到浏览器生命周期
	if err := chromedp.Run(tabCtx); err != nil {
		return "", fmt.Errorf("浏览器启动失败：%w", err)
	}

	runCtx, cancelRun := context.WithTimeout(tabCtx, b.conf.Timeout)
	defer cancelRun()

	var content string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(target),
		chromedp.WaitReady(b.conf.WaitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &content, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("页面【%s】加载失败：%w", target, err)
	}
	return content, nil
}
