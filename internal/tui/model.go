// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-seed-keeper/internal/service"
	"github.com/MKhiriev/go-seed-keeper/models"
)

type screen int

const (
	screenStatus screen = iota
	screenRestore
	screenBuildInfo
)

type statusModel struct {
	ctx       context.Context
	sync      service.SeedSyncManager
	states    <-chan models.SyncState
	buildInfo models.AppBuildInfo
	now       func() time.Time
	copy      func(string) error

	screen   screen
	state    models.SyncState
	enabled  bool
	toggling bool
	spinner  spinner.Model
	restore  restoreModel
	status   string
	lastErr  error

	quitByUser bool
}

func newStatusModel(ctx context.Context, sync service.SeedSyncManager, states <-chan models.SyncState, enabled bool, buildInfo models.AppBuildInfo) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return statusModel{
		ctx:       ctx,
		sync:      sync,
		states:    states,
		buildInfo: buildInfo,
		now:       time.Now,
		copy:      clipboard.WriteAll,
		state:     sync.State(),
		enabled:   enabled,
		spinner:   s,
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(waitForState(m.states), m.spinner.Tick, tickClock())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case stateMsg:
		m.state = msg.state
		return m, waitForState(m.states)
	case stateClosedMsg:
		return m, nil
	case clockMsg:
		return m, tickClock()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case toggledMsg:
		m.toggling = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.enabled = msg.enabled
		return m, nil
	case backupsLoadedMsg:
		m.restore.loading = false
		m.restore.items = msg.items
		m.restore.err = msg.err
		m.restore.idx = 0
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.status = "Фраза скопирована в буфер обмена"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}
	return m, nil
}

func (m statusModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenBuildInfo:
		if key.Matches(msg, keys.esc) {
			m.screen = screenStatus
		}
		return m, nil

	case screenRestore:
		switch {
		case key.Matches(msg, keys.esc):
			m.screen = screenStatus
		case key.Matches(msg, keys.up):
			m.restore.move(-1)
		case key.Matches(msg, keys.down):
			m.restore.move(1)
		case key.Matches(msg, keys.copy):
			if item, ok := m.restore.current(); ok && item.Phrase != "" {
				return m, cmdCopy(m.copy, item.Phrase)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.toggle):
		if m.toggling {
			return m, nil
		}
		m.toggling = true
		return m, m.cmdToggle(!m.enabled)
	case key.Matches(msg, keys.skip):
		if m.state.Kind == models.SyncStateWaitingBackoff {
			m.sync.Skip(m.state)
		}
		return m, nil
	case key.Matches(msg, keys.restore):
		m.screen = screenRestore
		m.restore = restoreModel{loading: true}
		return m, m.cmdFetchBackups()
	case key.Matches(msg, keys.version):
		m.screen = screenBuildInfo
		return m, nil
	}
	return m, nil
}

func (m statusModel) View() string {
	switch m.screen {
	case screenBuildInfo:
		return renderBuildInfoWindow(m.buildInfo)
	case screenRestore:
		return m.restore.View(m.spinner.View())
	}

	var b strings.Builder

	toggle := "выключено"
	if m.enabled {
		toggle = "включено"
	}
	if m.toggling {
		toggle += " ..."
	}
	fmt.Fprintf(&b, "Резервное копирование: %s\n", toggle)

	line := describeState(m.state, m.now())
	switch {
	case isBusy(m.state):
		line = m.spinner.View() + " " + line
	case m.state.Kind == models.SyncStateSynced:
		line = okStyle.Render(line)
	case m.state.IsWaiting():
		line = waitingStyle.Render(line)
	}
	fmt.Fprintf(&b, "Состояние: %s\n", line)

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + humanizeServerUnavailableError(m.lastErr)))
		b.WriteString("\n")
	}

	hotKeys := "t: вкл/выкл  r: восстановление  v: версия"
	if m.state.Kind == models.SyncStateWaitingBackoff {
		hotKeys = "s: повторить сейчас  " + hotKeys
	}
	return renderPage("GoSeedKeeper", b.String(), hotKeys)
}

func waitForState(states <-chan models.SyncState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return stateClosedMsg{}
		}
		return stateMsg{state: s}
	}
}

func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func (m statusModel) cmdToggle(enabled bool) tea.Cmd {
	ctx := m.ctx
	svc := m.sync
	return func() tea.Msg {
		err := svc.SetBackupEnabled(ctx, enabled)
		return toggledMsg{enabled: enabled, err: err}
	}
}

func (m statusModel) cmdFetchBackups() tea.Cmd {
	ctx := m.ctx
	svc := m.sync
	return func() tea.Msg {
		var items []models.SeedBackup
		for item, err := range svc.FetchBackups(ctx) {
			if err != nil {
				return backupsLoadedMsg{items: items, err: err}
			}
			items = append(items, item)
			if len(items) >= maxRestoreItems {
				break
			}
		}
		return backupsLoadedMsg{items: items}
	}
}

func cmdCopy(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
