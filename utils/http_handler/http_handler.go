package http_handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// UserAgent 默认请求头
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36"

// NewRequest 实例化HTTP请求
func NewRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("请求构建失败：%w", err)
	}
	// 添加常规请求头
	req.Header.Set("User-Agent", UserAgent)
	return req, nil
}

// NewJSONRequest 实例化JSON请求
func NewJSONRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := NewRequest(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}
