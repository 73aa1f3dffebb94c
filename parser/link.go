package parser

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/crjhappy123/museum-tender-notifier/types"
)

// linkRule 站点链接还原规则：取 onclick 中第 argIndex 个引号参数填入模板
type linkRule struct {
	argIndex int
	template string
}

var (
	quotedArgRegex  = regexp.MustCompile(`'([^']*)'|"([^"]*)"`)
	placeholderRule = regexp.MustCompile(`\{(id|\d+)\}`)
)

// ruleFor 按站点类型选择还原规则，站点配置可覆盖
func ruleFor(site types.Site) linkRule {
	var rule linkRule
	switch site.Kind {
	case types.SiteNanjing:
		// onclick="showDetail('...','...','infoid',...)"，取第三个参数
		rule = linkRule{argIndex: 2, template: "https://njggzy.nanjing.gov.cn/njweb/infodetail/?infoid={id}"}
	case types.SiteJiangsu:
		rule = linkRule{argIndex: 0, template: "http://jsggzy.jszwfw.gov.cn/jyxx/infodetail.html?infoid={id}"}
	default:
		rule = linkRule{argIndex: 0}
	}
	if site.LinkTemplate != "" {
		rule.template = site.LinkTemplate
	}
	if site.ArgIndex != nil {
		rule.argIndex = *site.ArgIndex
	}
	return rule
}

// QuotedArgs 按顺序提取 js 调用中的引号参数
func QuotedArgs(onclick string) []string {
	matches := quotedArgRegex.FindAllStringSubmatch(onclick, -1)
	args := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.HasPrefix(m[0], "'") {
			args = append(args, m[1])
		} else {
			args = append(args, m[2])
		}
	}
	return args
}

// ResolveLink 还原公告链接：优先 onclick 参数，其次 href，都不可用时返回占位值
func ResolveLink(site types.Site, onclick, href string) string {
	rule := ruleFor(site)
	args := QuotedArgs(onclick)
	if rule.argIndex >= 0 && rule.argIndex < len(args) {
		if link, ok := fromFragment(site.URL, strings.TrimSpace(args[rule.argIndex]), args, rule.template); ok {
			return link
		}
	}
	if link, ok := fromHref(site.URL, href); ok {
		return link
	}
	return types.UnresolvedLink
}

func fromFragment(base, id string, args []string, template string) (string, bool) {
	if id == "" {
		return "", false
	}
	if isAbsolute(id) {
		return id, true
	}
	if strings.HasPrefix(id, "/") {
		return resolve(base, id)
	}
	if template == "" {
		return "", false
	}
	return expand(template, id, args)
}

// expand 填充模板，{id} 为选中的参数，{n} 为第 n 个参数
func expand(template, id string, args []string) (string, bool) {
	ok := true
	link := placeholderRule.ReplaceAllStringFunc(template, func(p string) string {
		key := p[1 : len(p)-1]
		if key == "id" {
			return id
		}
		n, err := strconv.Atoi(key)
		if err != nil || n >= len(args) {
			ok = false
			return p
		}
		return args[n]
	})
	return link, ok
}

func fromHref(base, href string) (string, bool) {
	href = strings.TrimSpace(href)
	lower := strings.ToLower(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(lower, "javascript:") {
		return "", false
	}
	if isAbsolute(href) {
		return href, true
	}
	return resolve(base, href)
}

func isAbsolute(link string) bool {
	lower := strings.ToLower(link)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func resolve(base, ref string) (string, bool) {
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Host == "" {
		return "", false
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	return baseURL.ResolveReference(refURL).String(), true
}
