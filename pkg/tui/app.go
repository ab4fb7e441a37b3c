// Package tui renders the element tree and feeds pointer and keyboard
// gestures into the tree controllers.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/01DesignX/alva/pkg/commands"
	"github.com/01DesignX/alva/pkg/elementtree"
	"github.com/01DesignX/alva/pkg/models"
)

const headerHeight = 1
const footerHeight = 2

// App is the bubbletea model for the element tree editor.
type App struct {
	project   *models.Project
	settings  *models.Settings
	journal   *commands.Journal
	ctx       *elementtree.EditorContext
	projector *elementtree.Projector
	hit       *elementtree.HitResolver
	drag      *elementtree.DragController
	sel       *elementtree.SelectionRenameController
	router    *elementtree.KeyRouter

	widget     elementtree.VisualNode
	keyOrigin  elementtree.VisualNode
	helpOrigin elementtree.VisualNode

	rows  []*row
	stale bool

	tree  viewport.Model
	input textinput.Model

	// press state between mouse press and release, to tell a click
	// from a drag.
	pressed      bool
	pressRow     *row
	pressOnLabel bool

	width    int
	height   int
	helpOpen bool
	status   string

	logger *zap.Logger
}

// NewApp creates the editor over a project, using settings for
// rendering preferences and logger for debug tracing.
func NewApp(project *models.Project, settings *models.Settings, logger *zap.Logger) *App {
	journal := commands.NewJournal(project)
	ctx := elementtree.NewEditorContext(project, journal)

	widget := widgetRoot{}
	a := &App{
		project:    project,
		settings:   settings,
		journal:    journal,
		ctx:        ctx,
		projector:  elementtree.NewProjector(ctx),
		hit:        elementtree.NewHitResolver(ctx),
		drag:       elementtree.NewDragController(ctx),
		sel:        elementtree.NewSelectionRenameController(ctx),
		widget:     widget,
		helpOrigin: &paneOrigin{name: "help"},
		tree:       viewport.New(80, 20),
		input:      textinput.New(),
		stale:      true,
		logger:     logger,
	}
	// Keys arrive at the tree unless an overlay owns them; the widget
	// root doubles as the global fallback origin for this app.
	a.router = elementtree.NewKeyRouter(widget, widget)
	a.keyOrigin = widget
	a.input.CharLimit = 120
	project.OnChange(func() { a.stale = true })
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.tree.Width = msg.Width
		a.tree.Height = msg.Height - headerHeight - footerHeight

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case tea.MouseMsg:
		if a.settings.Editor.MouseEnabled {
			a.handleMouse(msg)
		}
	}
	return a, nil
}

// refresh reprojects the model and reflattens the visible rows when
// anything changed since the last render.
func (a *App) refresh() {
	if !a.stale {
		return
	}
	a.stale = false
	projection := a.projector.Project(a.project.Root())
	a.rows = flattenRows(projection, a.widget, a.settings.UI.ShowSlotNames)
}

// rowAt maps a terminal coordinate to the visible row under it.
func (a *App) rowAt(y int) *row {
	a.refresh()
	idx := y - headerHeight + a.tree.YOffset
	if idx < 0 || idx >= len(a.rows) {
		return nil
	}
	return a.rows[idx]
}

// rowIndexOfElement finds the visible row rendering the element.
func (a *App) rowIndexOfElement(id string) int {
	a.refresh()
	for i, r := range a.rows {
		if r.kind == rowElement && r.node.ID == id {
			return i
		}
	}
	return -1
}

func (a *App) setStatus(s string) {
	a.status = s
}
