package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/cristianoliveira/pageview/internal/errors"
	"github.com/cristianoliveira/pageview/internal/pages"
	"github.com/cristianoliveira/pageview/internal/pageview"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	pageStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	statusStyles = map[errors.MessageType]lipgloss.Style{
		errors.MessageTypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		errors.MessageTypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		errors.MessageTypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		errors.MessageTypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// View renders the TUI.
func (m *Model) View() string {
	pw, ph := m.pageSize()

	var b strings.Builder
	b.WriteString(m.header(pw + chromeWidth))
	b.WriteString("\n")
	b.WriteString(pageStyle.Render(m.body(pw, ph)))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	if m.debug {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.debugLine()))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) header(width int) string {
	total := m.ctrl.PageCount()
	indicator := ""
	// Page titles carry the page number; dots are drawn only while they fit.
	if total > 0 && total*2 <= width/3 {
		m.paginator.SetTotalPages(total)
		m.paginator.Page = m.ctrl.Index()
		indicator = m.paginator.View()
	}

	title := m.title
	if page := currentPage(m.ctrl.Snapshot(), m.ctrl.Index()); page != nil && page.Title != "" {
		title = page.Title
	}

	room := width - lipgloss.Width(indicator) - 1
	title = runewidth.Truncate(title, max(room, 0), "…")
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(indicator), 1)
	return titleStyle.Render(title) + strings.Repeat(" ", gap) + dimStyle.Render(indicator)
}

// currentPage returns the visible content fetched for page index.
func currentPage(snap pageview.Snapshot[pages.Page], index int) *pages.Page {
	for _, st := range snap {
		if st.Visible && st.Page == index {
			return st.Content
		}
	}
	return nil
}

// body renders the visible window of the content strip: the laid out slots
// side by side, sliced at the scroll offset.
func (m *Model) body(pw, ph int) string {
	if m.ctrl.PageCount() == 0 {
		return lipgloss.Place(pw, ph, lipgloss.Center, lipgloss.Center, emptyStyle.Render("no pages"))
	}

	frame, err := m.engine.Resolve(m.surface.Width())
	if err != nil {
		m.logger.Warn("tui: resolve layout", "error", err)
	}

	bySlot := make(map[pageview.SlotID]pageview.SlotState[pages.Page], 3)
	for _, st := range m.ctrl.Snapshot() {
		bySlot[st.Slot] = st
	}

	offset := int(math.Round(m.surface.Offset()))
	rows := make([]string, ph)
	var strip strings.Builder
	for row := range rows {
		strip.Reset()
		for _, id := range frame.Order {
			strip.WriteString(fitWidth(slotLine(bySlot[id], row), pw))
		}
		rows[row] = sliceColumns(strip.String(), offset, pw)
	}
	return strings.Join(rows, "\n")
}

func slotLine(st pageview.SlotState[pages.Page], row int) string {
	if !st.Visible || st.Content == nil || row >= len(st.Content.Lines) {
		return ""
	}
	return st.Content.Lines[row]
}

// fitWidth truncates or pads s to exactly w cells.
func fitWidth(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, ""), w)
}

// sliceColumns returns the w cells of s starting at cell start. A wide rune
// cut by either edge becomes a space.
func sliceColumns(s string, start, w int) string {
	var (
		b   strings.Builder
		col int
	)
	end := start + w
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		next := col + rw
		switch {
		case next <= start:
		case col >= end:
		case col < start || next > end:
			for c := max(col, start); c < min(next, end); c++ {
				b.WriteByte(' ')
			}
		default:
			b.WriteRune(r)
		}
		col = next
		if col >= end {
			break
		}
	}
	return runewidth.FillRight(b.String(), w)
}

func (m *Model) statusLine() string {
	msg, ok := m.status.Current()
	if !ok {
		total := m.ctrl.PageCount()
		if total == 0 {
			return dimStyle.Render("empty document")
		}
		return dimStyle.Render(fmt.Sprintf("page %d of %d", m.ctrl.Index()+1, total))
	}
	return statusStyles[msg.Type].Render(msg.Text)
}

func (m *Model) debugLine() string {
	return fmt.Sprintf("index=%d role=%s shape=%s window=%v offset=%.1f content=%.0f evict=%s",
		m.ctrl.Index(),
		m.ctrl.Role(),
		m.ctrl.Shape(),
		m.ctrl.Window(),
		m.surface.Offset(),
		m.surface.ContentWidth(),
		onOff(m.ctrl.EvictWhenDistant()),
	)
}
