package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/helpie/internal/provider"
	"github.com/jask/helpie/internal/service"
)

const (
	defaultWidth = 120
	cardWidth    = 34
	toastWidth   = 44

	colRating = 6
	colStatus = 10
	colFlag   = 11
)

func (a *App) View() string {
	body := a.renderBody()
	footer := footerStyle.Render(fit(a.helpLine(), a.width))
	modal := a.renderModal()
	toasts := a.renderToasts()

	if a.width == 0 || a.height == 0 {
		out := body
		if modal != "" {
			out += "\n\n" + modal
		}
		if toasts != "" {
			out += "\n\n" + toasts
		}
		return out + "\n" + footer
	}

	contentHeight := max(a.height-1, 1)
	screen := a.backdrop.Render(a.width, contentHeight)
	screen = stamp(screen, newLayer(body), 0, 0, a.width, contentHeight)
	if modal != "" {
		screen = stampCenter(screen, modal, a.width, contentHeight)
	}
	if toasts != "" {
		tray := newLayer(toasts)
		screen = stamp(screen, tray, max(a.width-tray.w-1, 0), 0, a.width, contentHeight)
	}
	return screen + "\n" + footer
}

func (a *App) viewWidth() int {
	if a.width == 0 {
		return defaultWidth
	}
	return a.width
}

func (a *App) renderBody() string {
	records := a.admin.Providers.List()
	header := a.renderHeader()
	card := a.renderSummary(provider.Summarize(records))
	listWidth := max(a.viewWidth()-cardWidth-2, 40)
	list := a.renderList(records, listWidth)
	main := lipgloss.JoinHorizontal(lipgloss.Top, card, "  ", list)
	return header + "\n\n" + main
}

func (a *App) renderHeader() string {
	title := brandStyle.Render(a.cfg.Admin.Name+":") + " " + accentStyle.Render("Service Provider Control")
	left := title + "\n" + mutedStyle.Render(a.cfg.Admin.Description)

	right := ""
	if a.signedIn {
		right = mutedStyle.Render("Signed in as") + "\n" + accentStyle.Render(a.cfg.Admin.Name)
	}
	if right == "" {
		return left
	}
	gap := a.viewWidth() - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 2 {
		return left + "\n" + right
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), lipgloss.NewStyle().Align(lipgloss.Right).Render(right))
}

func (a *App) renderSummary(s provider.Summary) string {
	inner := cardWidth - sectionStyle.GetHorizontalFrameSize()
	line := func(label string, value int, style lipgloss.Style) string {
		v := fmt.Sprintf("%d", value)
		return fit(mutedStyle.Render(label), inner-len(v)) + style.Render(v)
	}
	lines := []string{
		titleStyle.Render("Platform Metrics"),
		"",
		line("Total Providers:", s.Total, titleStyle),
		line("Suspicious Flags:", s.Suspicious, suspectRowStyle.Bold(true)),
		line("Active Service Providers:", s.Active, activeStyle.Bold(true)),
	}
	return sectionStyle.Width(cardWidth - sectionStyle.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// visibleRows is how many provider rows fit under the header and card.
func (a *App) visibleRows() int {
	if a.height == 0 {
		return 20
	}
	return max(a.height-10, 3)
}

func (a *App) renderList(records []provider.Record, width int) string {
	inner := width - sectionStyle.GetHorizontalFrameSize()
	flex := max(inner-2-colRating-colStatus-colFlag-5, 30)
	colName := flex * 3 / 10
	colEmail := flex * 3 / 10
	colService := flex - colName - colEmail

	title := titleStyle.Render(fmt.Sprintf("Registered Service Providers (%d)", len(records)))
	head := mutedStyle.Render("  " + strings.Join([]string{
		cell("Provider Name", colName),
		cell("Email", colEmail),
		cell("Service Offered", colService),
		cell("Rating", colRating),
		cell("Status", colStatus),
		cell("Flagged", colFlag),
	}, " "))
	lines := []string{title, "", head}

	if len(records) == 0 {
		lines = append(lines, mutedStyle.Render("  (no providers registered)"))
	}

	visible := a.visibleRows()
	top := max(a.cursor-visible+1, 0)
	end := min(top+visible, len(records))
	for i := top; i < end; i++ {
		r := records[i]
		flag := "✓ safe"
		if r.Suspicious {
			flag = "⛨ flagged"
		}
		cells := []string{
			cell(r.Name, colName),
			cell(r.Email, colEmail),
			cell(r.Service, colService),
			cell(fmt.Sprintf("%.1f/5", r.Rating), colRating),
			cell(string(r.Status), colStatus),
			cell(flag, colFlag),
		}
		if i == a.cursor {
			style := cursorRowStyle
			if r.Suspicious {
				style = style.Foreground(colorRed)
			}
			lines = append(lines, style.Render("▶ "+strings.Join(cells, " ")))
			continue
		}
		statusStyle := activeStyle
		if r.Status != provider.StatusActive {
			statusStyle = inactiveStyle
		}
		nameStyle := titleStyle
		flagStyle := mutedStyle
		if r.Suspicious {
			nameStyle = suspectRowStyle
			flagStyle = suspectRowStyle
		}
		lines = append(lines, "  "+strings.Join([]string{
			nameStyle.Render(cells[0]),
			mutedStyle.Render(cells[1]),
			serviceStyle.Render(cells[2]),
			ratingStyle.Render(cells[3]),
			statusStyle.Render(cells[4]),
			flagStyle.Render(cells[5]),
		}, " "))
	}
	if end < len(records) {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("  … %d more", len(records)-end)))
	}
	return sectionStyle.Width(width - sectionStyle.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalConfirmDelete:
		prompt := lipgloss.NewStyle().Width(56).Render(service.DeletePrompt(a.target.Name))
		return modalStyle.Render(titleStyle.Render("Delete provider?") + "\n" + prompt + "\n\n" + renderHelp(a.keys.ConfirmHelp()))
	case modalFind:
		return findStyle.Render(titleStyle.Render("Find provider") + "\n" + a.find.View() + "\n" + renderHelp(a.keys.FindHelp()))
	default:
		return ""
	}
}

func (a *App) renderToasts() string {
	active := a.tray.Active()
	if len(active) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(active))
	for _, t := range active {
		text := lipgloss.NewStyle().Width(toastWidth - 6).Render(t.Message)
		boxes = append(boxes, toastStyle(t.Kind).Render(toastGlyph(t)+" "+text))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

func (a *App) helpLine() string {
	switch a.modal {
	case modalConfirmDelete:
		return renderHelp(a.keys.ConfirmHelp())
	case modalFind:
		return renderHelp(a.keys.FindHelp())
	default:
		return renderHelp(a.keys.ShortHelp())
	}
}
