// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-scene-outbox/internal/service"
	"github.com/MKhiriev/go-scene-outbox/models"
)

type statusModel struct {
	ctx       context.Context
	manager   service.SyncManager
	buildInfo models.AppBuildInfo
	refresh   time.Duration

	status models.QueueStatus
	online bool

	spinner spinner.Model
	syncing bool
	confirm *confirmModel
	info    bool

	message string
	errMsg  string
}

func newStatusModel(ctx context.Context, manager service.SyncManager, buildInfo models.AppBuildInfo, refresh time.Duration) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return statusModel{
		ctx:       ctx,
		manager:   manager,
		buildInfo: buildInfo,
		refresh:   refresh,
		status:    models.NewQueueStatus(),
		spinner:   s,
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadStatus(), m.cmdTick())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		m.status = msg.status
		m.online = msg.online
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.cmdLoadStatus(), m.cmdTick())

	case syncDoneMsg:
		m.syncing = false
		if msg.report.Success {
			m.message = "Sync finished: " + msg.report.Message
			m.errMsg = ""
		} else {
			m.errMsg = msg.report.Message
		}
		return m, m.cmdLoadStatus()

	case clearDoneMsg:
		switch {
		case msg.err != nil:
			m.errMsg = msg.err.Error()
		case !msg.result.Success:
			m.errMsg = msg.result.Message
		default:
			m.message = msg.result.Message
			m.errMsg = ""
		}
		return m, m.cmdLoadStatus()

	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m statusModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			streams := m.confirm.streams
			m.confirm = nil
			return m, m.cmdClear(streams)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.info {
		if key.Matches(msg, keys.info) || key.Matches(msg, keys.no) {
			m.info = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.message = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdSync())

	case key.Matches(msg, keys.clearAll):
		m.confirm = &confirmModel{}

	case key.Matches(msg, keys.clearStream):
		idx := int(msg.String()[0] - '1')
		m.confirm = &confirmModel{streams: []models.Stream{models.Streams[idx]}}

	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoadStatus()

	case key.Matches(msg, keys.info):
		m.info = true
	}

	return m, nil
}

func (m statusModel) View() string {
	if m.info {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(renderIndicator(m.status, m.online))
	b.WriteString("\n\n")

	for i, stream := range models.Streams {
		fmt.Fprintf(&b, "%d  %-12s %s\n", i+1, stream.String(), renderBadge(m.status[stream].Count))
	}

	if items := m.status[models.StreamAlerts].Items; len(items) > 0 {
		b.WriteString("\nNext alert: ")
		b.WriteString(fitText(fmt.Sprintf("[%s] %s", items[0].Priority, string(items[0].Payload)), 48))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.syncing:
		b.WriteString(m.spinner.View() + " Syncing...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.message != "":
		b.WriteString(m.message)
	}

	page := renderPage("OUTBOX", b.String(), "s: sync now   c: clear all   1-4: clear stream   r: refresh   i: about")
	if m.confirm != nil {
		page += "\n\n" + m.confirm.View()
	}
	return appStyle.Render(page)
}

func (m statusModel) cmdLoadStatus() tea.Cmd {
	return func() tea.Msg {
		return statusLoadedMsg{
			status: m.manager.GetQueueStatus(m.ctx),
			online: m.manager.IsOnline(),
		}
	}
}

func (m statusModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{report: m.manager.TriggerSync(m.ctx)}
	}
}

func (m statusModel) cmdClear(streams []models.Stream) tea.Cmd {
	return func() tea.Msg {
		res, err := m.manager.ClearQueue(m.ctx, streams...)
		return clearDoneMsg{result: res, err: err}
	}
}

func (m statusModel) cmdTick() tea.Cmd {
	if m.refresh <= 0 {
		return nil
	}
	return tea.Tick(m.refresh, func(time.Time) tea.Msg { return tickMsg{} })
}
