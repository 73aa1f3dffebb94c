package http

// TextMessage 企业微信机器人文本消息
type TextMessage struct {
	MsgType string      `json:"msgtype"`
	Text    TextContent `json:"text"`
}

type TextContent struct {
	Content string `json:"content"`
}

// NewTextMessage 构造文本消息
func NewTextMessage(content string) TextMessage {
	return TextMessage{
		MsgType: "text",
		Text:    TextContent{Content: content},
	}
}

// WebhookRsp 企业微信机器人响应，errcode 为 0 表示成功
type WebhookRsp struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}
