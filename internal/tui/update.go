package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitwizard/internal/ledger"
	"github.com/mmynk/splitwizard/internal/models"
	"github.com/mmynk/splitwizard/internal/workflow"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearAlertMsg:
		if msg.seq == m.alertSeq {
			m.alert = ""
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateInputs(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	case key.Matches(msg, m.keys.Back):
		return m.step(m.svc.RetreatWorkflow(m.ctx))
	}

	switch m.svc.State().Step {
	case workflow.CollectNames:
		return m.updateNames(msg)
	case workflow.CollectBills:
		return m.updateBills(msg)
	case workflow.AllocateBills:
		return m.updateAllocate(msg)
	case workflow.Summary:
		return m.updateSummary(msg)
	}
	return m, nil
}

// step reacts to a navigation result. Any step change resets the screen.
func (m model) step(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		return m.showError(err)
	}
	m.resetScreen()
	return m, nil
}

func (m model) restart() (tea.Model, tea.Cmd) {
	if err := m.svc.Restart(m.ctx); err != nil {
		return m.showError(err)
	}
	m.nameInput.Reset()
	m.descInput.Reset()
	m.amountInput.Reset()
	m.surcharge = models.SurchargeNone
	m.payer = -1
	m.alert = ""
	m.resetScreen()
	return m, nil
}

func (m model) updateNames(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Next) {
		return m.step(m.svc.AdvanceWorkflow(m.ctx))
	}

	names := m.svc.Names()
	if m.focus == focusNameList {
		switch {
		case key.Matches(msg, m.keys.Focus, m.keys.Unfocus):
			m.focusNameInput()
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, len(names)-1)
		case key.Matches(msg, m.keys.Delete):
			if err := m.svc.RemoveParticipant(m.ctx, m.cursor); err != nil {
				return m.showError(err)
			}
			if n := len(m.svc.Names()); n == 0 {
				m.focusNameInput()
			} else {
				m.cursor = min(m.cursor, n-1)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		if err := m.svc.AddParticipant(m.ctx, m.nameInput.Value()); err != nil {
			return m.showError(err)
		}
		m.nameInput.Reset()
		return m, nil
	case key.Matches(msg, m.keys.Focus, m.keys.Unfocus):
		if len(names) > 0 {
			m.nameInput.Blur()
			m.focus = focusNameList
			m.cursor = 0
		}
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m *model) focusNameInput() {
	m.focus = focusNameInput
	m.nameInput.Focus()
}

func (m model) updateBills(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Next) {
		return m.step(m.svc.AdvanceWorkflow(m.ctx))
	}

	switch {
	case key.Matches(msg, m.keys.Focus):
		m.setBillFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Unfocus):
		m.setBillFocus(m.focus - 1)
		return m, nil
	}

	switch m.focus {
	case focusSurcharge:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.surcharge = m.surcharge.Prev()
		case key.Matches(msg, m.keys.Right):
			m.surcharge = m.surcharge.Next()
		case key.Matches(msg, m.keys.Submit):
			return m.submitBill()
		}
		return m, nil
	case focusPayer:
		n := len(m.svc.Names())
		switch {
		case key.Matches(msg, m.keys.Left):
			if n > 0 {
				m.payer = (max(m.payer, 0) + n - 1) % n
			}
		case key.Matches(msg, m.keys.Right):
			if n > 0 {
				m.payer = (m.payer + 1) % n
			}
		case key.Matches(msg, m.keys.Submit):
			return m.submitBill()
		}
		return m, nil
	case focusBillList:
		bills := m.svc.Bills()
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, len(bills)-1)
		case key.Matches(msg, m.keys.Delete):
			if err := m.svc.RemoveBill(m.ctx, m.cursor); err != nil {
				return m.showError(err)
			}
			if n := len(m.svc.Bills()); n == 0 {
				m.setBillFocus(focusDescription)
			} else {
				m.cursor = min(m.cursor, n-1)
			}
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Submit) {
		return m.submitBill()
	}
	return m.updateInputs(msg)
}

// setBillFocus moves focus on the bills screen, wrapping around. The bill
// list is skipped while it is empty.
func (m *model) setBillFocus(focus int) {
	last := focusBillList
	if len(m.svc.Bills()) == 0 {
		last = focusPayer
	}
	switch {
	case focus < focusDescription:
		focus = last
	case focus > last:
		focus = focusDescription
	}

	m.focus = focus
	m.cursor = 0
	m.descInput.Blur()
	m.amountInput.Blur()
	switch focus {
	case focusDescription:
		m.descInput.Focus()
	case focusAmount:
		m.amountInput.Focus()
	}
}

func (m model) submitBill() (tea.Model, tea.Cmd) {
	in, err := m.billInput()
	if err != nil {
		return m.showError(err)
	}
	if err := m.svc.AddBill(m.ctx, in); err != nil {
		return m.showError(err)
	}

	m.descInput.Reset()
	m.amountInput.Reset()
	m.surcharge = models.SurchargeNone
	m.payer = -1
	m.setBillFocus(focusDescription)
	return m, nil
}

// billInput reads the form. Blank amounts pass through as zero so the
// ledger reports them as a missing field.
func (m model) billInput() (ledger.BillInput, error) {
	in := ledger.BillInput{
		Description: m.descInput.Value(),
		Amount:      decimal.Zero,
		Surcharge:   m.surcharge,
	}
	if names := m.svc.Names(); m.payer >= 0 && m.payer < len(names) {
		in.PaidBy = names[m.payer]
	}

	if raw := strings.TrimSpace(m.amountInput.Value()); raw != "" {
		amount, err := models.ParseAmount(raw)
		if errors.Is(err, models.ErrInvalidAmount) {
			return in, ledger.Invalid(ledger.KindInvalidAmount, "Please enter a valid amount!")
		}
		in.Amount = amount
	}
	return in, nil
}

func (m model) updateAllocate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := m.svc.Names()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(names)-1)
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(names) {
			name := names[m.cursor]
			m.selected[name] = !m.selected[name]
		}
	case key.Matches(msg, m.keys.Submit, m.keys.Next):
		var selected []string
		for _, name := range names {
			if m.selected[name] {
				selected = append(selected, name)
			}
		}
		if err := m.svc.AllocateCurrentBill(m.ctx, selected); err != nil {
			return m.showError(err)
		}
		m.resetScreen()
	}
	return m, nil
}

func (m model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// updateInputs forwards msg to whichever text input has focus.
func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.svc.State().Step {
	case workflow.CollectNames:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case workflow.CollectBills:
		switch m.focus {
		case focusDescription:
			m.descInput, cmd = m.descInput.Update(msg)
		case focusAmount:
			m.amountInput, cmd = m.amountInput.Update(msg)
		}
	}
	return m, cmd
}
