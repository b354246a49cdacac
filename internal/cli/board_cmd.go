package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nexusart/artplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "board <plan>",
		Short: "Show the team-by-sprint allocation board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if watch {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("watch mode needs a terminal")
				}
				return runBoardWatch(app, planID)
			}

			board, err := app.Board.Board(ctx, planID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderBoard(board))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep the board on screen and refresh it")

	cmd.AddCommand(newBoardStatsCmd(app), newBoardCellCmd(app))
	return cmd
}

func newBoardStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <plan>",
		Short: "Show capacity and utilization per team over the whole increment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stats, err := app.Board.TeamStats(ctx, planID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderTeamStats(stats))
			return nil
		},
	}
}

func newBoardCellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cell <plan> <activity> <team>",
		Short: "Compare one activity's estimate against its allocations for a team",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			planID, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			activityID, err := resolveActivityID(ctx, app, planID, args[1])
			if err != nil {
				return err
			}
			teamID, err := resolveTeamID(ctx, app, planID, args[2])
			if err != nil {
				return err
			}
			stats, err := app.Board.ActivityStats(ctx, planID, activityID, teamID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderActivityStats(stats))
			return nil
		},
	}
}

// ── watch mode ───────────────────────────────────────────────────────────────

const boardRefreshInterval = 2 * time.Second

type boardTickMsg time.Time

type boardKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

var boardKeys = boardKeyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// boardModel polls the board on a timer and shows it in a scrollable viewport.
type boardModel struct {
	app    *App
	planID string

	vp      viewport.Model
	ready   bool
	err     error
	fetched time.Time
}

func runBoardWatch(app *App, planID string) error {
	m := boardModel{app: app, planID: planID, vp: viewport.New(0, 0)}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.refresh, boardTick())
}

func boardTick() tea.Cmd {
	return tea.Tick(boardRefreshInterval, func(t time.Time) tea.Msg {
		return boardTickMsg(t)
	})
}

type boardLoadedMsg struct {
	content string
	err     error
}

func (m boardModel) refresh() tea.Msg {
	board, err := m.app.Board.Board(context.Background(), m.planID)
	if err != nil {
		return boardLoadedMsg{err: err}
	}
	return boardLoadedMsg{content: formatter.RenderBoard(board)}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 2
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Refresh):
			return m, m.refresh
		}

	case boardTickMsg:
		return m, tea.Batch(m.refresh, boardTick())

	case boardLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.vp.SetContent(msg.content)
			m.fetched = time.Now()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m boardModel) View() string {
	if !m.ready {
		return "loading board..."
	}
	status := formatter.Dim(fmt.Sprintf("refreshed %s  r refresh  q quit", m.fetched.Format("15:04:05")))
	if m.err != nil {
		status = formatter.StyleRed.Render(m.err.Error())
	}
	return m.vp.View() + "\n" + status
}
