package badgeconsole

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eyedia/internal/bootstrap/logging"
	domainbadge "eyedia/internal/domain/badge"
	badgeusecase "eyedia/internal/usecase/badge"
)

// Options configure the live badge summary console.
type Options struct {
	UserID          uint64
	StatusFilter    string
	RefreshInterval time.Duration
}

type consoleModel struct {
	ctx             context.Context
	service         *badgeusecase.Service
	userID          uint64
	statusFilter    *domainbadge.ProgressStatus
	refreshInterval time.Duration

	summary     badgeusecase.Summary
	hasSummary  bool
	lastRefresh time.Time
	status      string
}

type summaryLoadedMsg struct {
	summary badgeusecase.Summary
	err     error
}

type tickMsg struct{}

// NewModel builds the console model. An invalid status filter is surfaced on
// screen rather than failing the program.
func NewModel(ctx context.Context, service *badgeusecase.Service, options Options) tea.Model {
	m := &consoleModel{
		ctx:             ctx,
		service:         service,
		userID:          options.UserID,
		refreshInterval: options.RefreshInterval,
		status:          "loading...",
	}
	if m.refreshInterval <= 0 {
		m.refreshInterval = 5 * time.Second
	}

	if raw := strings.TrimSpace(options.StatusFilter); raw != "" {
		status, err := domainbadge.ParseProgressStatus(raw)
		if err != nil {
			m.status = fmt.Sprintf("ignoring status filter: %v", err)
		} else {
			m.statusFilter = &status
		}
	}

	return m
}

func (m *consoleModel) Init() tea.Cmd {
	return tea.Batch(m.loadSummary(), m.scheduleTick())
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.status = "refreshing..."
			return m, m.loadSummary()
		}
	case summaryLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("refresh failed: %v", msg.err)
			logging.Warn(m.ctx, "console summary refresh failed", slog.String("error", msg.err.Error()))
			return m, nil
		}
		m.summary = msg.summary
		m.hasSummary = true
		m.lastRefresh = time.Now()
		m.status = ""
		return m, nil
	case tickMsg:
		return m, tea.Batch(m.loadSummary(), m.scheduleTick())
	}
	return m, nil
}

func (m *consoleModel) loadSummary() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.service.GetSummary(m.ctx, m.userID, m.statusFilter)
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

func (m *consoleModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *consoleModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	achievedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	newStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62"))

	filter := "all"
	if m.statusFilter != nil {
		filter = string(*m.statusFilter)
	}

	var builder strings.Builder
	builder.WriteString(titleStyle.Render("Badge Console"))
	builder.WriteString("\n")
	builder.WriteString(dimStyle.Render(fmt.Sprintf(
		"user=%d filter=%s refresh=%s", m.userID, filter, m.refreshInterval,
	)))
	builder.WriteString("\n\n")

	if !m.hasSummary {
		builder.WriteString(m.status)
		builder.WriteString("\n")
		return builder.String()
	}

	builder.WriteString(fmt.Sprintf("total=%d acquired=%d\n", m.summary.Total, m.summary.Acquired))
	if m.summary.NextTarget != nil {
		builder.WriteString(fmt.Sprintf("next target: %s (%d/%d)\n",
			m.summary.NextTarget.Code, m.summary.NextTarget.CurrentValue, m.summary.NextTarget.GoalValue))
	}
	builder.WriteString("\n")

	if len(m.summary.Badges) == 0 {
		builder.WriteString(dimStyle.Render("no badges for this filter"))
		builder.WriteString("\n")
	}
	for _, card := range m.summary.Badges {
		line := fmt.Sprintf("%-24s %-12s %d/%d  %s", card.Code, card.Status, card.CurrentValue, card.GoalValue, card.Title)
		switch {
		case card.NewBadge:
			line = newStyle.Render(line + "  NEW")
		case card.Status == domainbadge.StatusAchieved:
			line = achievedStyle.Render(line)
		case card.Status == domainbadge.StatusLocked:
			line = dimStyle.Render(line)
		}
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	if m.summary.LastEventUID != "" {
		builder.WriteString(dimStyle.Render("last event: " + m.summary.LastEventUID))
		builder.WriteString("\n")
	}
	if !m.lastRefresh.IsZero() {
		builder.WriteString(dimStyle.Render("refreshed " + m.lastRefresh.Format(time.TimeOnly)))
		builder.WriteString("\n")
	}
	if m.status != "" {
		builder.WriteString(m.status)
		builder.WriteString("\n")
	}
	builder.WriteString(dimStyle.Render("r: refresh  q: quit"))
	builder.WriteString("\n")
	return builder.String()
}
