package render

import (
	"html/template"
	"strings"

	"github.com/foomo/profilesite/content"
	"github.com/foomo/profilesite/pkg/links"
)

const (
	// present end of an open period
	present = "現在"
	// periodSeparator between start and end of a period
	periodSeparator = "–"
	// detailSeparator between title and detail
	detailSeparator = " — "
)

// FormatDate YYYY-MM-DD → YYYY年M月D日, YYYY-MM → YYYY年M月, YYYY → YYYY年.
// A zero month or day ends the date, 2020-00 renders as 2020年.
func FormatDate(s string) string {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 3)
	out := parts[0] + "年"
	for i, unit := range []string{"月", "日"} {
		if i+1 >= len(parts) {
			break
		}
		n := strings.TrimLeft(strings.TrimSpace(parts[i+1]), "0")
		if n == "" {
			break
		}
		out += n + unit
	}
	return out
}

// FormatTime date of an item, or its period when it has no date. An open
// period ends with 現在.
func FormatTime(it *content.Item) (string, bool) {
	if d := strings.TrimSpace(it.Date); d != "" {
		return FormatDate(d), true
	}
	start := strings.TrimSpace(it.StartDate)
	if start == "" {
		return "", false
	}
	end := present
	if e := strings.TrimSpace(it.EndDate); e != "" {
		end = FormatDate(e)
	}
	return FormatDate(start) + periodSeparator + end, true
}

// ItemLine renders a list entry either as a publication reference or as a
// timeline entry
func ItemLine(it *content.Item) template.HTML {
	if it.IsPublication() {
		return publicationLine(it)
	}
	return timelineLine(it)
}

// publicationLine `A, B, "Title," Venue, Location, 2025年7月3日`
func publicationLine(it *content.Item) template.HTML {
	var b strings.Builder
	b.WriteString(links.EscapeText(strings.Join(it.Authors, ", ")))
	b.WriteString(", &quot;")
	b.WriteString(string(links.Render(it.Title)))
	b.WriteString(",&quot; ")
	b.WriteString(links.EscapeText(it.Venue))
	b.WriteString(", ")
	b.WriteString(links.EscapeText(it.Location))
	b.WriteString(", ")
	b.WriteString(links.EscapeText(FormatDate(it.Date)))
	return template.HTML(b.String()) //nolint:gosec
}

func timelineLine(it *content.Item) template.HTML {
	var b strings.Builder
	if t, ok := FormatTime(it); ok {
		b.WriteString(links.EscapeText(t))
		b.WriteString(" ")
	}
	b.WriteString(string(links.Render(it.Title)))
	if detail := strings.TrimSpace(it.Detail); detail != "" {
		b.WriteString(detailSeparator)
		b.WriteString(string(links.Render(detail)))
	}
	return template.HTML(b.String()) //nolint:gosec
}
