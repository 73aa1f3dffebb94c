package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crjhappy123/museum-tender-notifier/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadConfigDefaults(t *testing.T) {
	t.Setenv("TENDER_CONFIG", "")
	t.Setenv("WECHAT_WEBHOOK_URL", "")

	conf, err := ReadConfig("")
	require.NoError(t, err)

	require.Len(t, conf.Sites, 2)
	assert.Equal(t, "Nanjing", conf.Sites[0].Name)
	assert.Equal(t, types.SiteNanjing, conf.Sites[0].Kind)
	assert.Equal(t, "https://njggzy.nanjing.gov.cn/njweb/search/fullsearch.html?wd=%E5%8D%9A%E7%89%A9%E9%A6%86", conf.Sites[0].URL)
	assert.Equal(t, "http://jsggzy.jszwfw.gov.cn/search/fullsearch.html?wd=%E5%8D%9A%E7%89%A9%E9%A6%86", conf.Sites[1].URL)
	assert.Equal(t, []string{"博物馆", "展览馆", "文物", "文化遗产"}, conf.Keywords)

	assert.Equal(t, ".search-row", conf.Browser.WaitSelector)
	assert.Equal(t, 30*time.Second, conf.Browser.Timeout)
	assert.True(t, conf.Browser.Headless)
	assert.Equal(t, []string{"li.search-row", ".search-row"}, conf.Selectors.Items)
	assert.Empty(t, conf.Webhook.URL)
	assert.False(t, conf.Server.Enabled)
	assert.False(t, conf.MySQL.Enabled())
}

func TestReadConfigFile(t *testing.T) {
	t.Setenv("WECHAT_WEBHOOK_URL", "https://qyapi.weixin.qq.com/cgi-bin/webhook/send?key=test")

	path := writeConfig(t, `
sites:
  - name: Suzhou
    url: http://ggzy.suzhou.gov.cn/search?wd=x
    linkTemplate: http://ggzy.suzhou.gov.cn/detail?id={id}
    argIndex: 1
keywords: [博物馆, 美术馆]
browser:
  timeout: 45s
  waitSelector: .result-item
webhook:
  maxBytes: 2048
debug:
  dumpDir: /tmp/tender-debug
mysql:
  address: 127.0.0.1:3306
  dbName: tender
`)
	conf, err := ReadConfig(path)
	require.NoError(t, err)

	require.Len(t, conf.Sites, 1)
	site := conf.Sites[0]
	assert.Equal(t, "Suzhou", site.Name)
	assert.Equal(t, types.SiteGeneric, site.Kind)
	assert.Equal(t, "http://ggzy.suzhou.gov.cn/detail?id={id}", site.LinkTemplate)
	require.NotNil(t, site.ArgIndex)
	assert.Equal(t, 1, *site.ArgIndex)

	assert.Equal(t, []string{"博物馆", "美术馆"}, conf.Keywords)
	assert.Equal(t, 45*time.Second, conf.Browser.Timeout)
	assert.Equal(t, ".result-item", conf.Browser.WaitSelector)
	assert.Equal(t, "Mozilla/5.0", conf.Browser.UserAgent)
	assert.Equal(t, 2048, conf.Webhook.MaxBytes)
	assert.Equal(t, 10*time.Second, conf.Webhook.Timeout)
	assert.Equal(t, "https://qyapi.weixin.qq.com/cgi-bin/webhook/send?key=test", conf.Webhook.URL)
	assert.Equal(t, "/tmp/tender-debug", conf.Debug.DumpDir)
	assert.True(t, conf.MySQL.Enabled())
	assert.Contains(t, conf.MySQL.DSN(), "tcp(127.0.0.1:3306)/tender")
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReadConfigInvalid(t *testing.T) {
	path := writeConfig(t, `
sites:
  - name: Demo
    url: http://x
    kind: shanghai
`)
	_, err := ReadConfig(path)
	assert.ErrorIs(t, err, ErrUnknownSiteKind)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Sites:     DefaultSites(),
			Keywords:  DefaultKeywords(),
			Browser:   Browser{WaitSelector: ".search-row", Timeout: time.Second},
			Selectors: Selectors{Items: []string{"li"}, Title: []string{"a"}},
		}
	}
	require.NoError(t, valid().Validate())

	cases := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"无站点", func(c *Config) { c.Sites = nil }, ErrNoSites},
		{"站点无名称", func(c *Config) { c.Sites[0].Name = " " }, ErrSiteMissingName},
		{"站点无链接", func(c *Config) { c.Sites[1].URL = "" }, ErrSiteMissingURL},
		{"模板无占位符", func(c *Config) { c.Sites[0].LinkTemplate = "http://x/detail" }, ErrBadLinkTemplate},
		{"无关键词", func(c *Config) { c.Keywords = nil }, ErrNoKeywords},
		{"超时为0", func(c *Config) { c.Browser.Timeout = 0 }, ErrInvalidTimeout},
		{"无等待元素", func(c *Config) { c.Browser.WaitSelector = "" }, ErrNoWaitSelector},
		{"无列表选择器", func(c *Config) { c.Selectors.Items = nil }, ErrNoItemSelector},
		{"无标题选择器", func(c *Config) { c.Selectors.Title = nil }, ErrNoTitleSelector},
		{"切分长度为负", func(c *Config) { c.Webhook.MaxBytes = -1 }, ErrInvalidMaxBytes},
		{"服务无端口", func(c *Config) { c.Server.Enabled = true }, ErrInvalidServePort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}
