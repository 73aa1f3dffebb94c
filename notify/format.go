package notify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/crjhappy123/museum-tender-notifier/types"
)

const (
	// EmptyMessage 无匹配公告时推送的内容
	EmptyMessage = "未找到博物馆相关的招标信息。"
	header       = "博物馆相关招标信息更新：\n\n"
	// WeChatTextLimit 企业微信机器人文本消息的字节上限
	WeChatTextLimit = 2048
)

// Format 生成推送文本
func Format(tenders []types.Tender) string {
	if len(tenders) == 0 {
		return EmptyMessage
	}
	var b strings.Builder
	b.WriteString(header)
	for i, t := range tenders {
		fmt.Fprintf(&b, "%d. %s\n   来源: %s\n   日期: %s\n   链接: %s\n\n", i+1, t.Title, t.Source, t.Date, t.Link)
	}
	return b.String()
}

// Split 按条目边界把消息切成不超过 maxBytes 的多段，maxBytes<=0 时不切分
func Split(message string, maxBytes int) []string {
	if maxBytes <= 0 || len(message) <= maxBytes {
		return []string{message}
	}

	var parts []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}

	for _, block := range strings.SplitAfter(message, "\n\n") {
		if block == "" {
			continue
		}
		if cur.Len()+len(block) <= maxBytes {
			cur.WriteString(block)
			continue
		}
		flush()
		// 单条超长，按字符边界硬切
		for len(block) > maxBytes {
			cut := maxBytes
			for cut > 0 && !utf8.RuneStart(block[cut]) {
				cut--
			}
			if cut == 0 {
				_, size := utf8.DecodeRuneInString(block)
				cut = size
			}
			parts = append(parts, block[:cut])
			block = block[cut:]
		}
		cur.WriteString(block)
	}
	flush()
	return parts
}
