// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/recovery"
	"github.com/MKhiriev/go-zk-vault/internal/service"
)

type restoreStage int

const (
	stageWords restoreStage = iota
	stageRewrap
)

// RestoreModel collects the 24 words, restores the master key with a
// [recovery.RestoreFlow] and then offers to re-wrap it under the password.
type RestoreModel struct {
	ctx      context.Context
	auth     service.ClientAuthService
	recovery service.ClientRecoveryService

	flow     *recovery.RestoreFlow
	stage    restoreStage
	words    form
	password form

	submitting bool
	notice     string
	err        error
}

func NewRestoreModel(ctx context.Context, auth service.ClientAuthService, recovery service.ClientRecoveryService) *RestoreModel {
	return &RestoreModel{ctx: ctx, auth: auth, recovery: recovery}
}

func (m *RestoreModel) Init() tea.Cmd {
	return nil
}

func (m *RestoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startRestoreMsg:
		m.close()
		m.flow = m.recovery.NewRestore()
		m.words = newWordForm()
		m.notice = msg.notice
		return m, textinput.Blink
	case pastedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("read clipboard: %w", msg.err)
			return m, nil
		}
		m.paste(msg.text)
		return m, nil
	case restoreResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.notice = ""
		m.words = form{}
		m.stage = stageRewrap
		m.password = newForm(newInput("password", true, 256))
		return m, textinput.Blink
	case rewrapResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			m.password.reset()
			return m, nil
		}
		m.close()
		return m, navigate(pageMenu, notice{text: "Encryption key restored and password updated"})
	case tea.KeyMsg:
		if m.flow == nil {
			return m, navigate(pageMenu, nil)
		}
		if key.Matches(msg, keys.esc) {
			done := m.flow.Done()
			m.close()
			if done {
				return m, navigate(pageMenu, notice{text: "Encryption key restored"})
			}
			return m, navigate(pageMenu, notice{text: "Restore canceled"})
		}
		if m.stage == stageRewrap {
			return m.updateRewrap(msg)
		}
		return m.updateWords(msg)
	}

	switch {
	case m.flow == nil:
		return m, nil
	case m.stage == stageRewrap:
		return m, m.password.update(msg)
	default:
		return m, m.words.update(msg)
	}
}

func (m *RestoreModel) updateWords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste && len(strings.Fields(string(msg.Runes))) > 1 {
		m.paste(string(msg.Runes))
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.paste):
		return m, func() tea.Msg {
			text, err := clipboard.ReadAll()
			return pastedMsg{text: text, err: err}
		}
	case key.Matches(msg, keys.tab):
		m.words.next()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.words.prev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return m, nil
		}
		for i := range m.words.inputs {
			if err := m.flow.SetWord(i+1, m.words.value(i)); err != nil {
				m.err = err
				return m, nil
			}
		}
		if !m.flow.Complete() {
			if !m.words.last() {
				m.words.next()
				return m, nil
			}
			m.err = recovery.ErrInvalidWordCount
			return m, nil
		}
		m.err = nil
		m.submitting = true
		return m, m.cmdRestore()
	}

	return m, m.words.update(msg)
}

func (m *RestoreModel) updateRewrap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, keys.enter) {
		return m, m.password.update(msg)
	}
	if m.submitting {
		return m, nil
	}
	pass := m.password.value(0)
	if pass == "" {
		return m, nil
	}
	m.err = nil
	m.submitting = true
	return m, m.cmdRewrap(pass)
}

// paste fills all inputs from a whole phrase. The inputs are left as they
// were unless it has exactly 24 words.
func (m *RestoreModel) paste(text string) {
	if err := m.flow.Paste(text); err != nil {
		m.err = err
		return
	}
	m.err = nil
	for i, w := range m.flow.Words() {
		m.words.inputs[i].SetValue(w)
	}
}

func (m *RestoreModel) View() string {
	if m.flow == nil {
		return renderPage("RESTORE FROM RECOVERY PHRASE", "", "esc: back")
	}

	var (
		b       strings.Builder
		hotKeys string
	)

	if m.notice != "" {
		b.WriteString(bannerStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	switch m.stage {
	case stageRewrap:
		b.WriteString(noticeStyle.Render("Your encryption key has been restored."))
		b.WriteString("\n\nEnter your account password to protect the key with it again,\n")
		b.WriteString("so the next login works without the phrase.\n\n")
		b.WriteString(m.password.render("Password"))
		if m.submitting {
			b.WriteString("\n\n[Saving...]")
		}
		hotKeys = "enter: save │ esc: skip"
	default:
		b.WriteString("Enter your 24-word recovery phrase:\n\n")
		b.WriteString(m.renderWordInputs())
		if m.submitting {
			b.WriteString("\n\n[Restoring...]")
		}
		hotKeys = "enter: restore │ tab: next word │ ctrl+v: paste phrase │ ?: unknown word │ esc: cancel"
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorText(m.err))
	}

	return renderPage("RESTORE FROM RECOVERY PHRASE", b.String(), hotKeys)
}

func (m *RestoreModel) renderWordInputs() string {
	const columns = 2
	rows := (len(m.words.inputs) + columns - 1) / columns

	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			i := c*rows + r
			if i >= len(m.words.inputs) {
				continue
			}
			mark := " "
			if w := m.words.value(i); strings.TrimSpace(w) != "" && !crypto.IsMnemonicWord(w) {
				mark = errorStyle.Render("?")
			}
			b.WriteString(fmt.Sprintf("%2d%s[%s]", i+1, mark, m.words.inputs[i].View()))
			if c < columns-1 {
				b.WriteString("   ")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// close cancels the flow and empties every input.
func (m *RestoreModel) close() {
	if m.flow != nil {
		m.flow.Close()
	}
	m.flow = nil
	m.stage = stageWords
	m.words = form{}
	m.password = form{}
	m.submitting = false
	m.notice = ""
	m.err = nil
}

func (m *RestoreModel) cmdRestore() tea.Cmd {
	ctx := m.ctx
	flow := m.flow

	return func() tea.Msg {
		return restoreResultMsg{err: flow.Restore(ctx)}
	}
}

func (m *RestoreModel) cmdRewrap(pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return rewrapResultMsg{err: auth.RewrapAfterRecovery(ctx, pass)}
	}
}

func newWordForm() form {
	inputs := make([]textinput.Model, crypto.MnemonicWords)
	for i := range inputs {
		inputs[i] = newInput("", false, 16)
		inputs[i].Width = 14
		inputs[i].Prompt = ""
	}
	return newForm(inputs...)
}
