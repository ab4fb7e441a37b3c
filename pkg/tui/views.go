package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const helpText = "↑/↓ select · →/← expand/collapse · enter rename · drag to move · y copy name · u undo · ctrl+r redo · ? help · q quit"

// View implements tea.Model.
func (a *App) View() string {
	a.refresh()

	if a.helpOpen {
		return a.helpView()
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Elements"))
	b.WriteString("\n")

	lines := make([]string, 0, len(a.rows))
	for _, r := range a.rows {
		lines = append(lines, a.renderRow(r))
	}
	a.tree.SetContent(strings.Join(lines, "\n"))
	b.WriteString(a.tree.View())
	b.WriteString("\n")

	if a.status != "" {
		b.WriteString(StatusStyle.Render(a.status))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(wordwrap.String(helpText, max(a.width, 20))))
	return b.String()
}

func (a *App) renderRow(r *row) string {
	indent := strings.Repeat(" ", r.depth*a.settings.UI.Indent)

	if r.kind == rowSlot {
		return indent + SlotStyle.Render("◇ "+r.node.Title)
	}

	affordance := " "
	if len(r.node.Children) > 0 {
		if r.node.Open {
			affordance = "▾"
		} else {
			affordance = "▸"
		}
	}

	// The row in inline edit renders the live input instead of its
	// title.
	if r.node.Editable && a.ctx.Editing() {
		if selected := a.ctx.Selected(); selected != nil && selected.ID() == r.node.ID {
			return indent + affordance + " " + a.input.View()
		}
	}

	title := r.node.Title
	switch {
	case r.node.Highlighted:
		return indent + affordance + " " + HighlightStyle.Render(title)
	case r.node.PlaceholderHighlighted:
		return indent + PlaceholderStyle.Render("┄ ") + NormalStyle.Render(title)
	case r.node.Active:
		return indent + affordance + " " + SelectedStyle.Render(title)
	}

	style := NormalStyle
	if r.node.Dragging {
		// Every node dims while a drag is in flight; accepted targets
		// re-light through the cases above.
		style = DimStyle
		if dragged := a.ctx.Dragged(); dragged != nil && dragged.ID() == r.node.ID {
			return indent + affordance + " " + DimStyle.Strikethrough(true).Render(title)
		}
	}
	return indent + affordance + " " + style.Render(title)
}

func (a *App) helpView() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Help"))
	b.WriteString("\n\n")
	items := []string{
		"Click an element to select it; click its label again to rename inline.",
		"Enter commits a rename, Escape reverts it. Moving the selection commits too.",
		"Hold the mouse button and move to drag an element; drop onto a container to append, beside an element to insert.",
		"Named slots render as ◇ groups; they cannot be dragged or renamed.",
		"Press ?, Escape or q to close this help.",
	}
	for _, item := range items {
		b.WriteString(NormalStyle.Render(wordwrap.String("• "+item, max(a.width-2, 20))))
		b.WriteString("\n")
	}
	return b.String()
}
