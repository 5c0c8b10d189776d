package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

// queryCompleted carries the results of a finished query.
type queryCompleted struct {
	results []domain.Fragment
}

// queryFailed carries a query error.
type queryFailed struct {
	err error
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	input    textinput.Model
	viewport viewport.Model

	results   []domain.Fragment
	err       error
	searching bool

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Ask about AO, Arweave, AR.IO, HyperBEAM..."
	input.Focus()

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   DefaultStyles(),
		input:    input,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}, nil
}

// WithContext sets the context used for queries.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 6
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 6
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case queryCompleted:
		a.searching = false
		a.err = nil
		a.results = msg.results
		a.viewport.SetContent(a.renderResults())
		a.viewport.GotoTop()
		return a, nil

	case queryFailed:
		a.searching = false
		a.err = msg.err
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit

	case tea.KeyEsc:
		a.input.SetValue("")
		a.results = nil
		a.err = nil
		a.viewport.SetContent("")
		return a, nil

	case tea.KeyEnter:
		query := strings.TrimSpace(a.input.Value())
		if query == "" || a.searching {
			return a, nil
		}
		a.searching = true
		a.err = nil
		return a, a.performQuery(query)

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// performQuery runs the query off the update loop.
func (a *App) performQuery(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.ports.Query.Query(a.ctx, query, domain.QueryOptions{})
		if err != nil {
			return queryFailed{err: err}
		}
		return queryCompleted{results: results}
	}
}

// renderResults formats the current results for the viewport.
func (a *App) renderResults() string {
	if len(a.results) == 0 {
		return a.styles.Status.Render("No results found.")
	}

	var b strings.Builder
	for i := range a.results {
		header := fmt.Sprintf("%s  %s",
			a.styles.Domain.Render(a.results[i].Domain),
			a.styles.Score.Render(fmt.Sprintf("(%.1f)", a.results[i].Score)),
		)
		b.WriteString(a.styles.Result.Render(header))
		b.WriteString("\n")
		b.WriteString(a.styles.Result.Render(a.results[i].Content))
		b.WriteString("\n\n")
	}
	return b.String()
}

// View renders the application.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Permadocs"))
	b.WriteString("\n")
	b.WriteString(a.styles.Input.Render(a.input.View()))
	b.WriteString("\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.ErrText.Render("Error: " + a.err.Error()))
	case a.searching:
		b.WriteString(a.styles.Status.Render("Searching..."))
	default:
		b.WriteString(a.viewport.View())
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Status.Render("Enter: search | Esc: clear | Ctrl+C: quit"))
	return b.String()
}

// Results returns the current results. Used by tests.
func (a *App) Results() []domain.Fragment {
	return a.results
}

// Err returns the last error. Used by tests.
func (a *App) Err() error {
	return a.err
}
