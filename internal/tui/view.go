package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mmynk/splitwizard/internal/calculator"
	"github.com/mmynk/splitwizard/internal/models"
	"github.com/mmynk/splitwizard/internal/workflow"
)

const footnote = "* Everyone to have %s0 balance after settling up"

var stepTitles = map[workflow.Step]string{
	workflow.CollectNames:  "Who is splitting?",
	workflow.CollectBills:  "What was bought?",
	workflow.AllocateBills: "Who shares each bill?",
	workflow.Summary:       "Summary",
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	state := m.svc.State()
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Splitwizard"))
	b.WriteString("  ")
	b.WriteString(m.styles.step.Render(fmt.Sprintf("Step %d/4 · %s", int(state.Step)+1, stepTitles[state.Step])))
	b.WriteString("\n\n")

	switch state.Step {
	case workflow.CollectNames:
		b.WriteString(m.viewNames())
	case workflow.CollectBills:
		b.WriteString(m.viewBills())
	case workflow.AllocateBills:
		b.WriteString(m.viewAllocate())
	case workflow.Summary:
		b.WriteString(m.viewSummary())
	}

	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.alert.Render(m.alert))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.helpKeys()))
	return b.String()
}

func (m model) viewNames() string {
	var b strings.Builder
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")

	names := m.svc.Names()
	if len(names) == 0 {
		b.WriteString(m.styles.empty.Render("No one added yet."))
		b.WriteString("\n")
		return b.String()
	}
	for i, name := range names {
		b.WriteString(m.listLine(m.focus == focusNameList && i == m.cursor, name))
	}
	return b.String()
}

func (m model) viewBills() string {
	var b strings.Builder
	b.WriteString(m.field(focusDescription, "Description", m.descInput.View()))
	b.WriteString(m.field(focusAmount, "Amount", m.amountInput.View()))
	b.WriteString(m.field(focusSurcharge, "Surcharge", "‹ "+m.surcharge.String()+" ›"))

	payer := "nobody yet"
	if names := m.svc.Names(); m.payer >= 0 && m.payer < len(names) {
		payer = names[m.payer]
	}
	b.WriteString(m.field(focusPayer, "Paid by", "‹ "+payer+" ›"))

	if amount, err := models.ParseAmount(m.amountInput.Value()); err == nil && m.surcharge != models.SurchargeNone {
		total := calculator.ApplySurcharge(amount, m.surcharge.Multiplier())
		b.WriteString(m.styles.preview.Render("Total with surcharge: " + m.money(total)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	bills := m.svc.Bills()
	if len(bills) == 0 {
		b.WriteString(m.styles.empty.Render("No bills added yet."))
		b.WriteString("\n")
		return b.String()
	}
	for i, bill := range bills {
		line := fmt.Sprintf("%s  %s  (paid by %s)", bill.Description, m.money(bill.Amount), bill.PaidBy)
		b.WriteString(m.listLine(m.focus == focusBillList && i == m.cursor, line))
	}
	return b.String()
}

func (m model) viewAllocate() string {
	bill, ok := m.svc.CurrentBill()
	if !ok {
		return m.styles.empty.Render("No bills to allocate.") + "\n"
	}

	var b strings.Builder
	state := m.svc.State()
	b.WriteString(m.styles.step.Render(fmt.Sprintf("Bill %d of %d", state.BillIndex+1, len(m.svc.Bills()))))
	b.WriteString("\n")
	b.WriteString(m.styles.label.Render("Bill: ") + bill.Description + "\n")
	b.WriteString(m.styles.label.Render("Amt: ") + m.money(bill.Amount) + "\n")
	b.WriteString(m.styles.label.Render("Paid by: ") + bill.PaidBy + "\n\n")

	for i, name := range m.svc.Names() {
		box := "[ ]"
		if m.selected[name] {
			box = m.styles.selected.Render("[x]")
		}
		b.WriteString(m.listLine(i == m.cursor, box+" "+name))
	}

	action := "Next bill"
	if m.svc.IsLastBill() {
		action = "Calculate"
	}
	b.WriteString("\n")
	b.WriteString(m.styles.action.Render("enter: " + action))
	b.WriteString("\n")
	return b.String()
}

func (m model) viewSummary() string {
	summary := m.svc.Summary()

	rows := make([][]string, 0, len(summary.Rows))
	for _, r := range summary.Rows {
		rows = append(rows, []string{r.Name, m.money(r.Paid), m.money(r.NeedsToPay), m.money(r.Balance)})
	}
	balances := summary.Rows
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Name", "Paid", "Owed", "Balance*").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			if col == 3 && row >= 0 && row < len(balances) {
				switch balances[row].Balance.Sign() {
				case 1:
					return style.Inherit(m.styles.positive)
				case -1:
					return style.Inherit(m.styles.negative)
				}
			}
			return style
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(m.styles.footnote.Render(fmt.Sprintf(footnote, m.opts.CurrencySymbol)))
	b.WriteString("\n")

	if len(summary.Transfers) > 0 {
		b.WriteString(m.styles.section.Render("Settle up:"))
		b.WriteString("\n")
		for _, tr := range summary.Transfers {
			fmt.Fprintf(&b, "  %s pays %s %s\n", tr.From, tr.To, m.money(tr.Amount))
		}
	}
	return b.String()
}

func (m model) field(focus int, label, value string) string {
	style := m.styles.label
	if m.focus == focus {
		style = m.styles.focused
	}
	return style.Render(fmt.Sprintf("%-12s", label)) + value + "\n"
}

func (m model) listLine(active bool, text string) string {
	if active {
		return m.styles.cursor.Render("> ") + m.styles.entry.Render(text) + "\n"
	}
	return "  " + m.styles.entry.Render(text) + "\n"
}

func (m model) helpKeys() shortHelp {
	k := m.keys
	switch m.svc.State().Step {
	case workflow.CollectNames:
		if m.focus == focusNameList {
			return shortHelp{k.Up, k.Down, k.Delete, k.Focus, k.Next, k.Quit}
		}
		return shortHelp{k.Submit, k.Focus, k.Next, k.Restart, k.Quit}
	case workflow.CollectBills:
		switch m.focus {
		case focusSurcharge, focusPayer:
			return shortHelp{k.Left, k.Right, k.Submit, k.Focus, k.Next, k.Back, k.Quit}
		case focusBillList:
			return shortHelp{k.Up, k.Down, k.Delete, k.Focus, k.Next, k.Back, k.Quit}
		}
		return shortHelp{k.Submit, k.Focus, k.Next, k.Back, k.Quit}
	case workflow.AllocateBills:
		submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "allocate"))
		return shortHelp{k.Up, k.Down, k.Toggle, submit, k.Back, k.Quit}
	}
	return shortHelp{k.Back, k.Restart, k.Close}
}
