package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"jobfinder/internal/model"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width. WithAutoStyle is avoided
	// because its terminal background query can block.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders md without block margins so the output is as dense
// as the detail card needs.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	styleName := markdownStyle()
	key := styleName + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		cfg := markdownStyleConfig(styleName)
		zero := uint(0)
		cfg.Document.Margin = &zero
		cfg.Paragraph.Margin = &zero
		cfg.List.Margin = &zero
		cfg.Document.BlockPrefix = ""
		cfg.Document.BlockSuffix = ""

		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(cfg),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	switch styleName {
	case "notty":
		return styles.NoTTYStyleConfig
	case "light":
		return styles.LightStyleConfig
	default:
		return styles.DarkStyleConfig
	}
}

func markdownStyle() string {
	if colorsDisabled() {
		return "notty"
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("JOBFINDER_TUI_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	// COLORFGBG is often "fg;bg"; xterm palette 7-15 are light backgrounds.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil && bg >= 7 && bg <= 15 && bg != 8 {
			return "light"
		}
	}
	return "dark"
}

// detailMarkdown is the selected-record card body.
func detailMarkdown(r model.Record, contacted bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", escapeMarkdown(r.CompanyName))
	if name := r.ContactName(); name != "" {
		fmt.Fprintf(&b, "- Contact: %s\n", escapeMarkdown(name))
	}
	if r.Address != "" {
		fmt.Fprintf(&b, "- Address: %s\n", escapeMarkdown(r.Address))
	}
	if r.Phone != "" {
		fmt.Fprintf(&b, "- Phone: %s\n", escapeMarkdown(r.Phone))
	}
	if r.Email != "" {
		fmt.Fprintf(&b, "- Email: %s\n", escapeMarkdown(r.Email))
	}
	status := "not yet"
	if contacted {
		status = "yes"
	}
	fmt.Fprintf(&b, "- Contacted: %s\n", status)
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`#`, `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// renderDetail renders the card for r into exactly detailLines lines.
func renderDetail(r model.Record, contacted bool, width int) string {
	body := renderMarkdown(detailMarkdown(r, contacted), width)
	return normalizePane(body, width, detailLines)
}
