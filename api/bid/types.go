package bid

import (
	"context"
	"strings"
	"time"

	"github.com/crjhappy123/museum-tender-notifier/runner"
	"github.com/crjhappy123/museum-tender-notifier/types"
	"github.com/crjhappy123/museum-tender-notifier/utils/validator"
)

// Runner 爬取任务
type Runner interface {
	Collect(ctx context.Context) []types.Tender
	Run(ctx context.Context) runner.Report
}

// ParseDate 解析公告日期，兼容 "2024-05-20 10:00:00" 之类带时间的写法
func ParseDate(dateStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if len(dateStr) >= len(validator.DateLayout) {
		dateStr = dateStr[:len(validator.DateLayout)]
	}
	t, err := time.Parse(validator.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FilterSince 去掉日期早于 since 的公告，日期无法解析的保留
func FilterSince(tenders []types.Tender, since string) []types.Tender {
	from, ok := ParseDate(since)
	if !ok {
		return tenders
	}
	kept := make([]types.Tender, 0, len(tenders))
	for _, t := range tenders {
		if d, ok := ParseDate(t.Date); ok && d.Before(from) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
