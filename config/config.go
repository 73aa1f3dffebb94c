package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/crjhappy123/museum-tender-notifier/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 配置校验错误
var (
	ErrNoSites          = errors.New("至少需要配置一个站点")
	ErrSiteMissingName  = errors.New("站点名称不能为空")
	ErrSiteMissingURL   = errors.New("站点链接不能为空")
	ErrUnknownSiteKind  = errors.New("未知的站点类型")
	ErrBadLinkTemplate  = errors.New("链接模板缺少占位符")
	ErrNoKeywords       = errors.New("至少需要配置一个关键词")
	ErrInvalidTimeout   = errors.New("浏览器等待超时必须大于0")
	ErrNoWaitSelector   = errors.New("浏览器等待元素选择器不能为空")
	ErrNoItemSelector   = errors.New("列表项选择器不能为空")
	ErrNoTitleSelector  = errors.New("标题选择器不能为空")
	ErrInvalidMaxBytes  = errors.New("webhook.maxBytes 不能为负数")
	ErrInvalidServePort = errors.New("server.port 不能为空")
)

// 默认搜索词：博物馆
const defaultQuery = "博物馆"

// Config 配置文件结构
type Config struct {
	Sites     []types.Site
	Keywords  []string
	Browser   Browser
	Selectors Selectors
	Webhook   Webhook
	Debug     Debug
	Log       Log
	Server    Server
	MySQL     MySQL
}

// Browser 无头浏览器参数
type Browser struct {
	WaitSelector string
	Timeout      time.Duration
	UserAgent    string
	Headless     bool
	WindowWidth  int
	WindowHeight int
	Proxy        string
}

// Selectors 列表解析选择器，按顺序尝试，命中即止
type Selectors struct {
	Items []string
	Title []string
	Date  []string
}

// Webhook 企业微信机器人
type Webhook struct {
	URL      string
	Timeout  time.Duration
	MaxBytes int
}

// Debug 调试输出
type Debug struct {
	DumpDir string
}

// Log 日志
type Log struct {
	Level       string
	Development bool
}

// Server 触发接口服务
type Server struct {
	Enabled bool
	Port    string
}

// MySQL 招标归档库，Address 为空时不启用
type MySQL struct {
	User     string
	Password string
	Address  string
	DBName   string
}

// Enabled 是否启用归档
func (m MySQL) Enabled() bool {
	return m.Address != ""
}

// DefaultSites 默认爬取站点
func DefaultSites() []types.Site {
	wd := url.QueryEscape(defaultQuery)
	return []types.Site{
		{
			Name: "Nanjing",
			URL:  "https://njggzy.nanjing.gov.cn/njweb/search/fullsearch.html?wd=" + wd,
			Kind: types.SiteNanjing,
		},
		{
			Name: "Jiangsu",
			URL:  "http://jsggzy.jszwfw.gov.cn/search/fullsearch.html?wd=" + wd,
			Kind: types.SiteJiangsu,
		},
	}
}

// DefaultKeywords 默认博物馆相关关键词
func DefaultKeywords() []string {
	return []string{"博物馆", "展览馆", "文物", "文化遗产"}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("browser.waitSelector", ".search-row")
	v.SetDefault("browser.timeout", 30*time.Second)
	v.SetDefault("browser.userAgent", "Mozilla/5.0")
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.windowWidth", 1920)
	v.SetDefault("browser.windowHeight", 1080)

	v.SetDefault("selectors.items", []string{"li.search-row", ".search-row"})
	v.SetDefault("selectors.title", []string{"h2.title a", ".title a", "a.title"})
	v.SetDefault("selectors.date", []string{"span.content-date", ".content-date", ".date"})

	v.SetDefault("webhook.timeout", 10*time.Second)
	v.SetDefault("webhook.maxBytes", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("server.port", "8080")
}

// LoadEnv 加载 .env 文件，文件不存在时忽略
func LoadEnv() error {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("加载 %s 失败：%w", name, err)
		}
	}
	return nil
}

// locate 查找配置文件：TENDER_CONFIG > 程序所在目录 > 当前工作目录
func locate() string {
	if p := os.Getenv("TENDER_CONFIG"); p != "" {
		return p
	}
	if exePath, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exePath), "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}

// ReadConfig 读取配置文件，path 为空时自动查找；找不到配置文件时使用默认配置
func ReadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if err := v.BindEnv("webhook.url", "WECHAT_WEBHOOK_URL"); err != nil {
		return nil, fmt.Errorf("绑定环境变量失败：%w", err)
	}

	if path == "" {
		path = locate()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("配置文件读取失败：%w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("配置文件解析失败：%w", err)
	}
	if len(conf.Sites) == 0 {
		conf.Sites = DefaultSites()
	}
	if len(conf.Keywords) == 0 {
		conf.Keywords = DefaultKeywords()
	}
	for i := range conf.Sites {
		if conf.Sites[i].Kind == "" {
			conf.Sites[i].Kind = types.SiteGeneric
		}
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("配置校验失败：%w", err)
	}
	return &conf, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if len(c.Sites) == 0 {
		return ErrNoSites
	}
	for i, site := range c.Sites {
		if strings.TrimSpace(site.Name) == "" {
			return fmt.Errorf("%w: sites[%d]", ErrSiteMissingName, i)
		}
		if strings.TrimSpace(site.URL) == "" {
			return fmt.Errorf("%w: sites[%d]", ErrSiteMissingURL, i)
		}
		if !site.Kind.Valid() {
			return fmt.Errorf("%w: sites[%d] %q", ErrUnknownSiteKind, i, site.Kind)
		}
		if site.LinkTemplate != "" && !strings.Contains(site.LinkTemplate, "{") {
			return fmt.Errorf("%w: sites[%d]", ErrBadLinkTemplate, i)
		}
	}
	if len(c.Keywords) == 0 {
		return ErrNoKeywords
	}
	if c.Browser.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Browser.WaitSelector == "" {
		return ErrNoWaitSelector
	}
	if len(c.Selectors.Items) == 0 {
		return ErrNoItemSelector
	}
	if len(c.Selectors.Title) == 0 {
		return ErrNoTitleSelector
	}
	if c.Webhook.MaxBytes < 0 {
		return ErrInvalidMaxBytes
	}
	if c.Server.Enabled && c.Server.Port == "" {
		return ErrInvalidServePort
	}
	return nil
}

// DSN 归档库连接串
func (m MySQL) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", m.User, m.Password, m.Address, m.DBName)
}
