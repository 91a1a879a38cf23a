// Package tui is the terminal presentation of the wizard. It renders the
// current step and turns key presses into WizardService calls; all state lives
// in the service except form contents and cursors.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitwizard/internal/ledger"
	"github.com/mmynk/splitwizard/internal/models"
	"github.com/mmynk/splitwizard/internal/service"
	"github.com/mmynk/splitwizard/internal/workflow"
)

// ErrUnexpectedModel is returned when the program exits with a foreign model.
var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

// Options tunes presentation details.
type Options struct {
	CurrencySymbol string
	AlertTimeout   time.Duration
}

// Focus targets on the bills screen, in tab order.
const (
	focusDescription = iota
	focusAmount
	focusSurcharge
	focusPayer
	focusBillList
)

// Focus targets on the names screen.
const (
	focusNameInput = iota
	focusNameList
)

type clearAlertMsg struct {
	seq int
}

type model struct {
	ctx    context.Context
	svc    *service.WizardService
	opts   Options
	styles styles
	keys   keyMap
	help   help.Model

	nameInput   textinput.Model
	descInput   textinput.Model
	amountInput textinput.Model
	surcharge   models.Surcharge
	payer       int // index into names, -1 = not chosen

	focus    int
	cursor   int
	selected map[string]bool

	alert    string
	alertSeq int
	quitting bool
}

func newModel(ctx context.Context, svc *service.WizardService, opts Options) model {
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = "$"
	}
	if opts.AlertTimeout <= 0 {
		opts.AlertTimeout = 3 * time.Second
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "Name..."
	nameInput.CharLimit = 40

	descInput := textinput.New()
	descInput.Placeholder = "Description..."
	descInput.CharLimit = 60

	amountInput := textinput.New()
	amountInput.Placeholder = "0.00"
	amountInput.CharLimit = 16

	m := model{
		ctx:         ctx,
		svc:         svc,
		opts:        opts,
		styles:      newStyles(),
		keys:        newKeyMap(),
		help:        help.New(),
		nameInput:   nameInput,
		descInput:   descInput,
		amountInput: amountInput,
		payer:       -1,
		selected:    make(map[string]bool),
	}
	m.resetScreen()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the wizard and blocks until the user quits.
func Run(ctx context.Context, svc *service.WizardService, opts Options, teaOpts ...tea.ProgramOption) error {
	programOpts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, teaOpts...)
	p := tea.NewProgram(newModel(ctx, svc, opts), programOpts...)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run wizard: %w", err)
	}
	if _, ok := finalModel.(model); !ok {
		return ErrUnexpectedModel
	}
	return nil
}

// resetScreen puts cursors and focus back to the start of the current step.
func (m *model) resetScreen() {
	m.focus = 0
	m.cursor = 0
	m.selected = make(map[string]bool)
	m.nameInput.Blur()
	m.descInput.Blur()
	m.amountInput.Blur()

	switch m.svc.State().Step {
	case workflow.CollectNames:
		m.nameInput.Focus()
	case workflow.CollectBills:
		m.descInput.Focus()
		if m.payer >= len(m.svc.Names()) {
			m.payer = -1
		}
	}
}

// showError turns err into a transient alert.
func (m model) showError(err error) (model, tea.Cmd) {
	msg := err.Error()
	if verr, ok := ledger.AsValidation(err); ok {
		msg = verr.Message
	}
	m.alert = msg
	m.alertSeq++
	seq := m.alertSeq
	return m, tea.Tick(m.opts.AlertTimeout, func(time.Time) tea.Msg {
		return clearAlertMsg{seq: seq}
	})
}

func (m model) money(amount decimal.Decimal) string {
	return m.opts.CurrencySymbol + models.FormatAmount(amount)
}
