package types

const (
	// UnknownDate 列表项缺少日期时的占位值
	UnknownDate = "未知日期"
	// UnresolvedLink 无法还原公告链接时的占位值
	UnresolvedLink = "链接未解析"
)

// SiteKind 站点类型，决定公告链接的还原方式
type SiteKind string

const (
	SiteNanjing SiteKind = "nanjing"
	SiteJiangsu SiteKind = "jiangsu"
	SiteGeneric SiteKind = "generic"
)

// Valid 是否为已知站点类型
func (k SiteKind) Valid() bool {
	switch k {
	case SiteNanjing, SiteJiangsu, SiteGeneric:
		return true
	}
	return false
}

// Site 待爬取的招标站点
type Site struct {
	Name         string
	URL          string
	Kind         SiteKind
	LinkTemplate string // 覆盖站点类型默认的链接模板
	ArgIndex     *int   // 覆盖站点类型默认的 onclick 参数位置
}

// Tender 招标公告
type Tender struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Date   string `json:"date"`
	Source string `json:"source"`
}
