package api_helper

import "github.com/crjhappy123/museum-tender-notifier/types"

// Response 通用响应
type Response struct {
	Status  int            `json:"status"`
	Message string         `json:"msg"`
	ErrCode int            `json:"errCode"`
	Count   int            `json:"count"`
	Items   []types.Tender `json:"items"`
	Notify  string         `json:"notify,omitempty"` // 推送结果：sent/skipped/failed
}

// Success 成功响应
func Success(items []types.Tender) Response {
	if items == nil {
		items = []types.Tender{}
	}
	return Response{Status: 200, Message: "success", Count: len(items), Items: items}
}
