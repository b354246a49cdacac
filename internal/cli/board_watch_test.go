package cli

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/nexusart/artplan/internal/contract"
	"github.com/nexusart/artplan/internal/domain"
	"github.com/nexusart/artplan/internal/teatest"
	"github.com/stretchr/testify/assert"
)

type fakeBoardService struct {
	snapshot *contract.BoardSnapshot
	err      error
	calls    int
}

func (f *fakeBoardService) Board(ctx context.Context, planID string) (*contract.BoardSnapshot, error) {
	f.calls++
	return f.snapshot, f.err
}

func (f *fakeBoardService) ActivityStats(ctx context.Context, planID, activityID, teamID string) (*contract.ActivityTeamStats, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeBoardService) TeamStats(ctx context.Context, planID string) ([]contract.TeamPIStat, error) {
	return nil, fmt.Errorf("not implemented")
}

func watchSnapshot() *contract.BoardSnapshot {
	return &contract.BoardSnapshot{
		Sprints: []domain.Sprint{{ID: "sprint-1", Name: "Sprint 1"}},
		Rows: []contract.BoardRow{
			{
				TeamID:   "t1",
				TeamName: "Apollo",
				Members:  2,
				Cells:    []contract.BoardCell{{SprintID: "sprint-1", Capacity: 20, Used: 8}},
			},
		},
	}
}

func newWatchDriver(t *testing.T, board *fakeBoardService) *teatest.Driver {
	t.Helper()
	m := boardModel{
		app:    &App{Board: board},
		planID: "plan-1",
		vp:     viewport.New(0, 0),
	}
	d := teatest.New(t, m, teatest.WithSize(80, 24))
	d.DrainInit()
	return d
}

func TestBoardWatch_ShowsBoard(t *testing.T) {
	board := &fakeBoardService{snapshot: watchSnapshot()}
	d := newWatchDriver(t, board)

	view := d.View()
	assert.Contains(t, view, "Apollo")
	assert.Contains(t, view, "8/20")
	assert.GreaterOrEqual(t, board.calls, 1)
}

func TestBoardWatch_ManualRefresh(t *testing.T) {
	board := &fakeBoardService{snapshot: watchSnapshot()}
	d := newWatchDriver(t, board)

	before := board.calls
	d.PressKey('r')
	assert.Greater(t, board.calls, before)
}

func TestBoardWatch_QuitKeys(t *testing.T) {
	board := &fakeBoardService{snapshot: watchSnapshot()}

	d := newWatchDriver(t, board)
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d = newWatchDriver(t, board)
	d.PressEsc()
	assert.True(t, d.Quitting)
}

func TestBoardWatch_ShowsError(t *testing.T) {
	board := &fakeBoardService{err: fmt.Errorf("database is locked")}
	d := newWatchDriver(t, board)

	assert.Contains(t, d.View(), "database is locked")
}

func TestBoardWatch_TickTriggersRefresh(t *testing.T) {
	board := &fakeBoardService{snapshot: watchSnapshot()}
	d := newWatchDriver(t, board)

	before := board.calls
	d.Send(boardTickMsg{})
	assert.Greater(t, board.calls, before)
}

func TestBoardWatch_NotReadyBeforeSize(t *testing.T) {
	m := boardModel{app: &App{Board: &fakeBoardService{snapshot: watchSnapshot()}}, planID: "plan-1", vp: viewport.New(0, 0)}
	d := teatest.New(t, tea.Model(m))
	assert.Contains(t, d.View(), "loading")
}
