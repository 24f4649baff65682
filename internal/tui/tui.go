// Package tui renders the to-do list and forwards user actions to the view-model.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Makepad-fr/tada-remote/internal/listvm"
	"github.com/Makepad-fr/tada-remote/internal/model"
	"github.com/Makepad-fr/tada-remote/internal/ui"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Session is the single capability the identity gate hands to the view.
type Session interface {
	SignOut() (signedOut bool, err error)
	Subject() string
}

// Outcome tells the caller how the program ended.
type Outcome struct {
	SignedOut bool
}

type resultMsg struct{ res listvm.Result }

type signOutMsg struct {
	signedOut bool
	err       error
}

type operation interface {
	Run(ctx context.Context) listvm.Result
}

type modelTUI struct {
	ctx     context.Context
	vm      *listvm.ViewModel
	session Session
	keys    keyMap

	list    list.Model
	ti      textinput.Model
	spinner spinner.Model
	help    help.Model

	width, height int

	notice    string // transient hint, e.g. an empty title
	signedOut bool
}

func newModel(ctx context.Context, vm *listvm.ViewModel, session Session) modelTUI {
	l := list.New(nil, itemDelegate{}, 80, 12)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	// Quitting is handled by keyMap; esc must not leave the program.
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = ui.Current().Help

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item title..."
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.Current().Accent

	h := help.New()
	h.Styles.ShortKey = ui.Current().Help
	h.Styles.ShortDesc = ui.Current().Help

	return modelTUI{
		ctx:     ctx,
		vm:      vm,
		session: session,
		keys:    defaultKeyMap(),
		list:    l,
		ti:      ti,
		spinner: sp,
		help:    h,
		width:   80,
		height:  24,
	}
}

// Run starts the interactive list and blocks until the user quits or signs out.
// Requests still in flight when it returns are not cancelled.
func Run(ctx context.Context, vm *listvm.ViewModel, session Session) (Outcome, error) {
	p := tea.NewProgram(newModel(ctx, vm, session), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, errors.WithStack(err)
	}
	fm, ok := finalModel.(modelTUI)
	if !ok {
		return Outcome{}, nil
	}
	return Outcome{SignedOut: fm.signedOut}, nil
}

func (m modelTUI) run(op operation) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return resultMsg{op.Run(ctx)}
	}
}

func (m modelTUI) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if op := m.vm.BeginLoad(); op != nil {
		cmds = append(cmds, m.run(op))
	}
	return tea.Batch(cmds...)
}

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resizeList()
		return m, nil

	case spinner.TickMsg:
		if !m.vm.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resultMsg:
		formWasVisible := m.vm.FormVisible()
		if err := m.vm.Apply(msg.res); err != nil {
			log.Debug("operation result recorded as error", "op_id", msg.res.OpID(), "err", err)
		}
		m.list.SetItems(toListItems(m.vm.Items()))
		if formWasVisible && !m.vm.FormVisible() {
			m.ti.Reset()
			m.ti.Blur()
		}
		m.resizeList()
		return m, nil

	case signOutMsg:
		if msg.err != nil {
			m.notice = "sign out failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.signedOut {
			m.notice = "token comes from the environment, unset it to sign out"
			return m, nil
		}
		m.signedOut = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.vm.FormVisible() {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m modelTUI) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		m.vm.SetDraft(m.ti.Value())
		op := m.vm.BeginAdd()
		if op == nil {
			if strings.TrimSpace(m.ti.Value()) == "" {
				m.notice = "Title cannot be empty"
			}
			return m, nil
		}
		m.notice = ""
		return m, m.run(op)
	case key.Matches(msg, m.keys.Cancel):
		m.vm.HideForm()
		m.ti.Blur()
		m.notice = ""
		m.resizeList()
		return m, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.vm.SetDraft(m.ti.Value())
	return m, cmd
}

func (m modelTUI) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.SignOut):
		session := m.session
		return m, func() tea.Msg {
			signedOut, err := session.SignOut()
			return signOutMsg{signedOut: signedOut, err: err}
		}
	}

	if !listvm.ShowList(m.vm.State()) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.New):
		m.vm.ToggleForm()
		m.notice = ""
		m.ti.SetValue(m.vm.Draft())
		m.ti.CursorEnd()
		m.resizeList()
		return m, m.ti.Focus()
	case key.Matches(msg, m.keys.Delete):
		it, ok := m.list.SelectedItem().(listItem)
		if !ok {
			return m, nil
		}
		if op := m.vm.BeginRemove(it.item.ID); op != nil {
			return m, m.run(op)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *modelTUI) resizeList() {
	// header, blank line, help line, border
	reserved := 6
	if m.vm.FormVisible() {
		reserved += 4
	}
	if m.vm.Err() != nil {
		reserved += 2
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m modelTUI) View() string {
	t := ui.Current()
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	state := m.vm.State()
	switch st := state.(type) {
	case listvm.Loading:
		b.WriteString(m.spinner.View() + " " + t.Muted.Render("Loading..."))
	case listvm.Failed:
		b.WriteString(t.Error.Render(t.SymFail + " " + st.Err.Message))
		if listvm.ShowList(st) {
			b.WriteString("\n\n")
			b.WriteString(m.listView())
		}
	case listvm.Ready:
		b.WriteString(m.listView())
	}

	if m.vm.FormVisible() && listvm.ShowList(state) {
		b.WriteString("\n")
		b.WriteString(m.formView())
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(t.Pending.Render(m.notice))
	}

	b.WriteString("\n")
	if m.vm.FormVisible() {
		b.WriteString(m.help.View(formHelp{m.keys}))
	} else {
		b.WriteString(m.help.View(listHelp{m.keys}))
	}

	return ui.PanelString(b.String())
}

func (m modelTUI) header() string {
	t := ui.Current()
	items := m.vm.Items()
	done, pending := model.Stats(items)
	h := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render("✔"), done,
		t.Pending.Render("•"), pending,
		t.Accent.Render("Shown"), len(items),
	)
	if m.session != nil {
		if who := m.session.Subject(); who != "" {
			h += "   " + t.Muted.Render(who)
		}
	}
	return h
}

func (m modelTUI) listView() string {
	if len(m.list.Items()) == 0 {
		return ui.Current().Muted.Render("no items")
	}
	return m.list.View()
}

func (m modelTUI) formView() string {
	t := ui.Current()
	bar := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return bar.Render(t.Accent.Render("New item") + "\n" + m.ti.View())
}
