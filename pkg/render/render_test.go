package render

import (
	"strings"
	"testing"

	"github.com/foomo/profilesite/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemPublication() *content.Item {
	return &content.Item{
		Date:     "2025-07-03",
		Authors:  []string{"A", "B"},
		Venue:    "Conf",
		Location: "Tokyo",
		Title:    "Paper",
	}
}

func itemTimeline(date, detail string) *content.Item {
	return &content.Item{
		Date:   date,
		Title:  "Item",
		Detail: detail,
	}
}

func testTree() *content.Tree {
	return &content.Tree{
		Config: &content.SiteConfig{
			Title: "My Site",
		},
		Profile: &content.Profile{
			Name:        content.Name{Ja: "兼", En: "Ken"},
			Affiliation: content.Affiliation{Lines: []string{"Uni"}},
			Contact:     content.Contact{Email: "a@example.com"},
			Lead:        "Lead with [link](https://example.com/lead)",
		},
		Sections: []*content.Section{
			{
				Name:  "Research",
				Key:   "research",
				Items: []*content.Item{itemPublication()},
				Subsections: []*content.Subsection{
					{
						Name:  "Sub",
						Items: []*content.Item{itemTimeline("2020-01", "Detail")},
					},
				},
			},
		},
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2025年", FormatDate("2025"))
	assert.Equal(t, "2025年7月", FormatDate("2025-07"))
	assert.Equal(t, "2025年7月3日", FormatDate("2025-07-03"))
	assert.Equal(t, "2025年12月31日", FormatDate("2025-12-31"))
	assert.Equal(t, "2020年", FormatDate("2020-00"))
	assert.Equal(t, "2020年5月", FormatDate("2020-05-00"))
	assert.Equal(t, "2020年", FormatDate("2020-00-10"))
	assert.Equal(t, "2020年10月", FormatDate("2020-10"))
}

func TestFormatTime(t *testing.T) {
	got, ok := FormatTime(itemTimeline("2023-02", ""))
	require.True(t, ok)
	assert.Equal(t, "2023年2月", got)

	got, ok = FormatTime(&content.Item{StartDate: "2020-04"})
	require.True(t, ok)
	assert.Equal(t, "2020年4月–現在", got)

	got, ok = FormatTime(&content.Item{StartDate: "2020-04", EndDate: "2022-03"})
	require.True(t, ok)
	assert.Equal(t, "2020年4月–2022年3月", got)

	_, ok = FormatTime(&content.Item{EndDate: "2022-03"})
	assert.False(t, ok)
}

func TestItemLinePublication(t *testing.T) {
	html := string(ItemLine(itemPublication()))
	assert.Contains(t, html, "A, B, ")
	assert.Contains(t, html, "&quot;Paper,&quot;")
	assert.Contains(t, html, "Conf, Tokyo, 2025年7月3日")
}

func TestItemLineTimeline(t *testing.T) {
	html := string(ItemLine(itemTimeline("2020-01", "Detail")))
	assert.Equal(t, "2020年1月 Item — Detail", html)

	html = string(ItemLine(&content.Item{Title: "Only title", Detail: "  "}))
	assert.Equal(t, "Only title", html)
}

func TestItemLineRendersLinksAndEscapes(t *testing.T) {
	html := string(ItemLine(&content.Item{
		Title:  "See [Docs](https://example.com) <b>",
		Detail: "[bad](javascript:x)",
	}))
	assert.Equal(t, `See <a href="https://example.com">Docs</a> &lt;b&gt; — [bad](javascript:x)`, html)
}

func TestPage(t *testing.T) {
	out, err := Page(testTree())
	require.NoError(t, err)
	html := string(out)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `lang="ja"`)
	assert.Contains(t, html, "<title>My Site</title>")
	assert.Contains(t, html, "<h1>Ken</h1>")
	assert.Contains(t, html, "<p>兼</p>")
	assert.Contains(t, html, "<p>Uni</p>")
	assert.Contains(t, html, "Email: a@example.com")
	assert.Contains(t, html, `href="/assets/style.css"`)
	assert.Contains(t, html, `href="#research"`)
	assert.Contains(t, html, `<h2 id="research">Research</h2>`)
	assert.Contains(t, html, "<h3>Sub</h3>")
	assert.Contains(t, html, "<li>2020年1月 Item — Detail</li>")
	assert.Contains(t, html, `<a href="https://example.com/lead">link</a>`)
	assert.Contains(t, html, "© Ken")
	assert.NotContains(t, html, "google-site-verification")
}

func TestPageConfig(t *testing.T) {
	tree := testTree()
	tree.Config.Language = "en-us"
	tree.Config.GoogleSiteVerification = "token"
	tree.Config.Assets = &content.Assets{MountPath: "/static/"}

	out, err := Page(tree)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, `lang="en-US"`)
	assert.Contains(t, html, `<meta name="google-site-verification" content="token">`)
	assert.Contains(t, html, `href="/static/style.css"`)
}

func TestPageEscapesContent(t *testing.T) {
	tree := testTree()
	tree.Config.Title = "<script>alert(1)</script>"
	tree.Sections[0].Name = "R&D"

	out, err := Page(tree)
	require.NoError(t, err)
	html := string(out)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "R&amp;D")
}

func TestPageIncompleteTree(t *testing.T) {
	_, err := Page(&content.Tree{})
	require.Error(t, err)
}

func TestLang(t *testing.T) {
	assert.Equal(t, "ja", Lang("ja"))
	assert.Equal(t, "en-US", Lang("en-us"))
	assert.Equal(t, "ja", Lang("not a tag!"))
}
