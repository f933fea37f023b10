package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-scene-outbox/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("q: quit"))

	return b.String()
}

// renderBadge shows the pending count of one stream.
func renderBadge(count int) string {
	if count == 0 {
		return emptyBadgeStyle.Render("0")
	}
	return badgeStyle.Render(fmt.Sprintf("%d", count))
}

func renderIndicator(status models.QueueStatus, online bool) string {
	text := status.Indicator(online)
	if !online {
		return offlineStyle.Render("● " + text)
	}
	return onlineStyle.Render("● " + text)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
