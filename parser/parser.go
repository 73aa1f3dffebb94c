package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/crjhappy123/museum-tender-notifier/config"
	"github.com/crjhappy123/museum-tender-notifier/types"
	"golang.org/x/net/html"
)

// Parse 解析搜索结果页中的招标列表，不做关键词过滤
func Parse(content string, site types.Site, sel config.Selectors) ([]types.Tender, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("页面解析失败：%w", err)
	}

	items := findFirst(doc.Selection, sel.Items)
	tenders := make([]types.Tender, 0, items.Length())
	items.Each(func(i int, item *goquery.Selection) {
		a := findFirst(item, sel.Title).First()
		if a.Length() == 0 {
			return
		}
		title := Text(a)
		if title == "" {
			return
		}

		onclick, _ := a.Attr("onclick")
		href, _ := a.Attr("href")

		date := types.UnknownDate
		if d := findFirst(item, sel.Date).First(); d.Length() > 0 {
			if text := Text(d); text != "" {
				date = text
			}
		}

		tenders = append(tenders, types.Tender{
			Title:  title,
			Link:   ResolveLink(site, onclick, href),
			Date:   date,
			Source: site.Name,
		})
	})
	return tenders, nil
}

// findFirst 依次尝试选择器，返回第一个有结果的
func findFirst(s *goquery.Selection, selectors []string) *goquery.Selection {
	for _, q := range selectors {
		if found := s.Find(q); found.Length() > 0 {
			return found
		}
	}
	return s.Slice(0, 0)
}

// Text 拼接节点下所有文本，每段去除首尾空白
func Text(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return b.String()
}

// Filter 保留标题包含任一关键词的公告
func Filter(tenders []types.Tender, keywords []string) []types.Tender {
	matched := make([]types.Tender, 0, len(tenders))
	for _, t := range tenders {
		for _, k := range keywords {
			if k != "" && strings.Contains(t.Title, k) {
				matched = append(matched, t)
				break
			}
		}
	}
	return matched
}
