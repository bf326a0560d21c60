package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/stroids/internal/games/stroids"
	"github.com/vovakirdan/stroids/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runsUpdate(t *testing.T, m RunsModel, msg tea.Msg) RunsModel {
	t.Helper()
	next, _ := m.Update(msg)
	rm, ok := next.(RunsModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return rm
}

func TestRunsModelEmpty(t *testing.T) {
	m := NewRunsModel(openTestStore(t), 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("empty view missing placeholder:\n%s", m.View())
	}

	m = runsUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Chosen() != uuid.Nil {
		t.Errorf("enter on empty table chose %v", m.Chosen())
	}
}

func TestRunsModelFilterAndChoose(t *testing.T) {
	store := openTestStore(t)
	polar, err := store.SaveRun(storage.Run{GameID: stroids.IDPolar, Seed: 1, TickRate: 60})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.SaveRun(storage.Run{GameID: stroids.IDClassic, Seed: 2, TickRate: 60}); err != nil {
		t.Fatalf("save: %v", err)
	}

	m := NewRunsModel(store, 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("unfiltered rows = %d, want 2", len(m.runs))
	}

	// cycle filters until only the polar variant is listed
	for i := 0; i < len(m.filters) && m.filters[m.filter] != stroids.IDPolar; i++ {
		m = runsUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.filters[m.filter] != stroids.IDPolar {
		t.Fatalf("filter %q never reached", stroids.IDPolar)
	}
	if len(m.runs) != 1 {
		t.Fatalf("filtered rows = %d, want 1", len(m.runs))
	}
	if !strings.Contains(m.View(), "RECORDED RUNS - "+stroids.IDPolar) {
		t.Errorf("title does not name the filter:\n%s", m.View())
	}

	m = runsUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Chosen() != polar {
		t.Errorf("chosen = %v, want %v", m.Chosen(), polar)
	}
}
