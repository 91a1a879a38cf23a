package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitwizard/internal/metrics"
	"github.com/mmynk/splitwizard/internal/service"
	"github.com/mmynk/splitwizard/internal/storage/memory"
	"github.com/mmynk/splitwizard/internal/workflow"
)

func setupTestModel(t *testing.T) model {
	t.Helper()
	ctx := context.Background()
	svc := service.NewWizardService(ctx, memory.New(), metrics.New())
	return newModel(ctx, svc, Options{CurrencySymbol: "$", AlertTimeout: time.Second})
}

func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	right = tea.KeyMsg{Type: tea.KeyRight}
	del   = tea.KeyMsg{Type: tea.KeyDelete}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	next  = tea.KeyMsg{Type: tea.KeyCtrlN}
	reset = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func addNames(t *testing.T, m model, names ...string) model {
	t.Helper()
	for _, name := range names {
		m = press(t, m, runes(name), enter)
	}
	return m
}

// addBill fills the form and picks the payer by pressing right payerIndex+1 times.
func addBill(t *testing.T, m model, desc, amount string, payerIndex int) model {
	t.Helper()
	m = press(t, m, runes(desc), tab, runes(amount), tab, tab)
	for i := 0; i <= payerIndex; i++ {
		m = press(t, m, right)
	}
	return press(t, m, enter)
}

func TestFullWizardFlow(t *testing.T) {
	m := setupTestModel(t)

	m = addNames(t, m, "Alice", "Bob")
	assert.Equal(t, []string{"Alice", "Bob"}, m.svc.Names())

	m = press(t, m, next)
	require.Equal(t, workflow.CollectBills, m.svc.State().Step)

	m = addBill(t, m, "Dinner", "30", 0)
	require.Len(t, m.svc.Bills(), 1)
	assert.Equal(t, "Alice", m.svc.Bills()[0].PaidBy)
	assert.Empty(t, m.alert)

	m = press(t, m, next)
	require.Equal(t, workflow.AllocateBills, m.svc.State().Step)
	view := m.View()
	assert.Contains(t, view, "Bill 1 of 1")
	assert.Contains(t, view, "Calculate")

	m = press(t, m, runes("x"), down, runes("x"), enter)
	require.Equal(t, workflow.Summary, m.svc.State().Step)

	view = m.View()
	assert.Contains(t, view, "$15.00")
	assert.Contains(t, view, "Bob pays Alice $15.00")
	assert.Contains(t, view, "Everyone to have $0 balance after settling up")
}

func TestNextBillLabel(t *testing.T) {
	m := setupTestModel(t)
	m = addNames(t, m, "Alice")
	m = press(t, m, next)
	m = addBill(t, m, "Lunch", "10", 0)
	m = addBill(t, m, "Taxi", "5", 0)
	m = press(t, m, next)

	view := m.View()
	assert.Contains(t, view, "Bill 1 of 2")
	assert.Contains(t, view, "Next bill")

	m = press(t, m, runes("x"), enter)
	assert.Equal(t, 1, m.svc.State().BillIndex)
	assert.Empty(t, m.selected)
	assert.Contains(t, m.View(), "Calculate")
}

func TestValidationAlerts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, m model) model
		alert string
	}{
		{
			name:  "empty name",
			setup: func(t *testing.T, m model) model { return press(t, m, enter) },
			alert: "Please enter a name!",
		},
		{
			name:  "duplicate name",
			setup: func(t *testing.T, m model) model { return addNames(t, m, "Alice", "Alice") },
			alert: "This name already exists!",
		},
		{
			name:  "advance without names",
			setup: func(t *testing.T, m model) model { return press(t, m, next) },
			alert: "Please input at least 1 name!",
		},
		{
			name: "advance without bills",
			setup: func(t *testing.T, m model) model {
				return press(t, addNames(t, m, "Alice"), next, next)
			},
			alert: "Please input at least 1 bill!",
		},
		{
			name: "unparseable amount",
			setup: func(t *testing.T, m model) model {
				m = press(t, addNames(t, m, "Alice"), next)
				return addBill(t, m, "Dinner", "abc", 0)
			},
			alert: "Please enter a valid amount!",
		},
		{
			name: "missing payer",
			setup: func(t *testing.T, m model) model {
				m = press(t, addNames(t, m, "Alice"), next)
				return press(t, m, runes("Dinner"), tab, runes("10"), enter)
			},
			alert: "Please fill in all fields!",
		},
		{
			name: "empty selection",
			setup: func(t *testing.T, m model) model {
				m = press(t, addNames(t, m, "Alice"), next)
				m = addBill(t, m, "Dinner", "10", 0)
				return press(t, m, next, enter)
			},
			alert: "Please select at least 1 person!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.setup(t, setupTestModel(t))
			assert.Equal(t, tt.alert, m.alert)
			assert.Contains(t, m.View(), tt.alert)
		})
	}
}

func TestAlertClearsOnlyForLatestSequence(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, m, enter)
	m = press(t, m, enter)
	require.Equal(t, 2, m.alertSeq)

	m = press(t, m, clearAlertMsg{seq: 1})
	assert.NotEmpty(t, m.alert)

	m = press(t, m, clearAlertMsg{seq: 2})
	assert.Empty(t, m.alert)
}

func TestRemoveParticipantFromList(t *testing.T) {
	m := setupTestModel(t)
	m = addNames(t, m, "Alice", "Bob")

	m = press(t, m, tab, down, del)
	assert.Equal(t, []string{"Alice"}, m.svc.Names())
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, del)
	assert.Empty(t, m.svc.Names())
	assert.Equal(t, focusNameInput, m.focus)
}

func TestRemoveBillFromList(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, addNames(t, m, "Alice"), next)
	m = addBill(t, m, "Dinner", "10", 0)

	// description, amount, surcharge, payer, list
	m = press(t, m, tab, tab, tab, tab)
	require.Equal(t, focusBillList, m.focus)

	m = press(t, m, del)
	assert.Empty(t, m.svc.Bills())
	assert.Equal(t, focusDescription, m.focus)
}

func TestSurchargePreview(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, addNames(t, m, "Alice"), next)
	m = press(t, m, runes("Dinner"), tab, runes("10"), tab, right)

	assert.Contains(t, m.View(), "Total with surcharge: $10.70")

	m = press(t, m, tab, right, enter)
	require.Len(t, m.svc.Bills(), 1)
	assert.Equal(t, "10.7", m.svc.Bills()[0].Amount.String())
}

func TestBackAndRestart(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, addNames(t, m, "Alice"), next)
	m = addBill(t, m, "Dinner", "10", 0)
	m = press(t, m, next, runes("x"), enter)
	require.Equal(t, workflow.Summary, m.svc.State().Step)

	m = press(t, m, esc)
	assert.Equal(t, workflow.AllocateBills, m.svc.State().Step)
	assert.Equal(t, 0, m.svc.State().BillIndex)

	m = press(t, m, reset)
	assert.Equal(t, workflow.CollectNames, m.svc.State().Step)
	assert.Empty(t, m.svc.Names())
	assert.Empty(t, m.svc.Bills())
	assert.True(t, m.nameInput.Focused())
}

func TestSummaryQuit(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, addNames(t, m, "Alice"), next)
	m = addBill(t, m, "Dinner", "10", 0)
	m = press(t, m, next, runes("x"), enter)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTypingQDoesNotQuitOnNames(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, m, runes("q"))
	assert.Equal(t, "q", m.nameInput.Value())
	assert.False(t, m.quitting)
}
