package validator

import "time"

// DateLayout 公告日期格式
const DateLayout = "2006-01-02"

// IsDateValid 检查日期字符串是否符合 "2006-01-02" 格式，空字符串视为合法
func IsDateValid(dateStr string) bool {
	if dateStr == "" {
		return true
	}
	_, err := time.Parse(DateLayout, dateStr)
	return err == nil
}
