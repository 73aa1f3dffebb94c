package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/crjhappy123/museum-tender-notifier/utils/http_handler"
)

// ErrWebhookRejected 机器人返回非0错误码
var ErrWebhookRejected = errors.New("机器人拒绝消息")

// Notifier 消息推送
type Notifier interface {
	// Send 推送文本消息，失败不重试
	Send(ctx context.Context, content string) error
}

type webhookImpl struct {
	url    string
	client *http.Client
}

// NewWebhook 创建企业微信机器人推送
func NewWebhook(url string, timeout time.Duration) Notifier {
	return &webhookImpl{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Send 发送文本消息
func (w *webhookImpl) Send(ctx context.Context, content string) error {
	data, err := json.Marshal(NewTextMessage(content))
	if err != nil {
		return fmt.Errorf("消息序列化失败：%w", err)
	}

	req, err := http_handler.NewJSONRequest(ctx, http.MethodPost, w.url, bytes.NewReader(data))
	if err != nil {
		return err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("消息发送请求失败：%w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("消息发送响应读取失败：%w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("消息发送失败，状态码：%d, body: %s", resp.StatusCode, string(body))
	}

	// 非企业微信的 webhook 可能不返回 json，此时只看状态码
	var response WebhookRsp
	if err := json.Unmarshal(body, &response); err == nil && response.ErrCode != 0 {
		return fmt.Errorf("%w：errcode=%d, errmsg=%s", ErrWebhookRejected, response.ErrCode, response.ErrMsg)
	}
	return nil
}
