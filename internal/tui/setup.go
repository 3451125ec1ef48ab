// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-zk-vault/internal/recovery"
	"github.com/MKhiriev/go-zk-vault/internal/service"
)

// SetupModel drives a [recovery.SetupFlow]: intro, the 24 numbered words,
// re-typing three of them and the final confirmation. Leaving the page
// destroys the phrase and empties every input.
type SetupModel struct {
	ctx      context.Context
	recovery service.ClientRecoveryService

	flow      *recovery.SetupFlow
	words     []string
	positions []int
	form      form

	copied     bool
	submitting bool
	cancel     context.CancelFunc
	status     string
	err        error
}

func NewSetupModel(ctx context.Context, recovery service.ClientRecoveryService) *SetupModel {
	return &SetupModel{ctx: ctx, recovery: recovery}
}

func (m *SetupModel) Init() tea.Cmd {
	return nil
}

func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startSetupMsg:
		m.close()
		m.flow = m.recovery.NewSetup()
		return m, nil
	case setupVerifiedMsg:
		if msg.flow != m.flow {
			return m, nil
		}
		m.submitting = false
		m.cancel = nil
		if msg.err != nil {
			m.err = msg.err
			if errors.Is(msg.err, recovery.ErrVerificationMismatch) {
				m.form.reset()
			}
			return m, nil
		}
		m.err = nil
		m.words = nil
		m.form = form{}
		if m.copied {
			_ = clipboard.WriteAll("")
			m.copied = false
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Could not copy to the clipboard"
		} else {
			m.copied = true
			m.status = "Copied. Clear your clipboard once the phrase is written down."
		}
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.flow == nil {
			return m, navigate(pageMenu, nil)
		}
		if key.Matches(msg, keys.esc) {
			canceled := m.step() != recovery.StepSuccess
			m.close()
			if canceled {
				return m, navigate(pageMenu, notice{text: "Recovery setup canceled"})
			}
			return m, navigate(pageMenu, notice{text: "Recovery phrase saved"})
		}
		switch m.step() {
		case recovery.StepIntro:
			return m.updateIntro(msg)
		case recovery.StepDisplay:
			return m.updateDisplay(msg)
		case recovery.StepVerify:
			return m.updateVerify(msg)
		case recovery.StepSuccess:
			if key.Matches(msg, keys.enter) {
				m.close()
				return m, navigate(pageMenu, notice{text: "Recovery phrase saved"})
			}
		}
		return m, nil
	}

	if m.flow != nil && m.step() == recovery.StepVerify {
		return m, m.form.update(msg)
	}
	return m, nil
}

// step reports the flow step without waiting on a running upload, which
// holds the flow until the server answers.
func (m *SetupModel) step() recovery.SetupStep {
	if m.submitting {
		return recovery.StepVerify
	}
	return m.flow.Step()
}

func (m *SetupModel) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, keys.enter) {
		return m, nil
	}
	words, err := m.flow.Start()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.words = words
	return m, nil
}

func (m *SetupModel) updateDisplay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.copy):
		phrase := strings.Join(m.words, " ")
		return m, func() tea.Msg {
			return copiedMsg{err: clipboard.WriteAll(phrase)}
		}
	case key.Matches(msg, keys.enter):
		positions, err := m.flow.BeginVerification()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.positions = positions
		inputs := make([]textinput.Model, 0, len(positions))
		for _, p := range positions {
			inputs = append(inputs, newInput("word #"+strconv.Itoa(p), false, 16))
		}
		m.form = newForm(inputs...)
		return m, textinput.Blink
	}
	return m, nil
}

func (m *SetupModel) updateVerify(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.back):
		if err := m.flow.ShowWordsAgain(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.positions = nil
		m.form = form{}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.next()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.prev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if !m.form.last() {
			m.form.next()
			return m, nil
		}
		answers := make(map[int]string, len(m.positions))
		for i, p := range m.positions {
			answers[p] = m.form.value(i)
		}
		m.submitting = true
		return m, m.cmdVerify(answers)
	}
	return m, m.form.update(msg)
}

func (m *SetupModel) View() string {
	if m.flow == nil {
		return renderPage("RECOVERY PHRASE", "", "esc: back")
	}

	var (
		b       strings.Builder
		hotKeys string
	)

	switch m.step() {
	case recovery.StepIntro:
		b.WriteString("A recovery phrase is 24 words that can restore your encryption key\n")
		b.WriteString("on a new device or after a forgotten password.\n\n")
		b.WriteString("Write the words down on paper and keep them somewhere safe.\n")
		b.WriteString("Anyone with the phrase can read your data. It is never sent to the server.")
		hotKeys = "enter: show phrase │ esc: cancel"
	case recovery.StepDisplay:
		b.WriteString("Write down these words in order:\n\n")
		b.WriteString(renderWordGrid(m.words, 4))
		hotKeys = "enter: I wrote them down │ c: copy │ esc: cancel"
	case recovery.StepVerify:
		b.WriteString("Type the requested words to confirm:\n\n")
		labels := make([]string, 0, len(m.positions))
		for _, p := range m.positions {
			labels = append(labels, fmt.Sprintf("Word #%d", p))
		}
		b.WriteString(m.form.render(labels...))
		if m.submitting {
			b.WriteString("\n\n[Saving...]")
		}
		hotKeys = "enter: confirm │ tab: next field │ ctrl+b: show words │ esc: cancel"
	case recovery.StepSuccess:
		b.WriteString(noticeStyle.Render("Your recovery phrase is set up."))
		b.WriteString("\nKeep the written copy safe. It is the only way back in without your password.")
		hotKeys = "enter: done"
	default:
		b.WriteString("Recovery setup canceled.")
		hotKeys = "esc: back"
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(m.status))
	}
	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorText(m.err))
	}

	return renderPage("RECOVERY PHRASE", b.String(), hotKeys)
}

// close cancels the flow and forgets everything the page held. A running
// upload is canceled first and the flow is closed once it lets go.
func (m *SetupModel) close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if flow := m.flow; flow != nil {
		if m.submitting {
			go flow.Close()
		} else {
			flow.Close()
		}
	}
	if m.copied {
		_ = clipboard.WriteAll("")
	}
	m.flow = nil
	m.words = nil
	m.positions = nil
	m.form = form{}
	m.copied = false
	m.submitting = false
	m.status = ""
	m.err = nil
}

func (m *SetupModel) cmdVerify(answers map[int]string) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	flow := m.flow

	return func() tea.Msg {
		defer cancel()
		return setupVerifiedMsg{flow: flow, err: flow.Verify(ctx, answers)}
	}
}
