package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"studioline/internal/engine"
	"studioline/internal/game"
	"studioline/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	state *game.GameState
	staff table.Model

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state *game.GameState
	err   error
}

type workedMsg struct {
	res engine.WorkResult
	err error
}

type sleptMsg struct {
	res engine.SleepResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.svc.Snapshot(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{state: &state}
	}
}

func (m boardModel) workCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Work(m.ctx, nil)
		return workedMsg{res: res, err: err}
	}
}

func (m boardModel) sleepCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Sleep(m.ctx)
		return sleptMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.state = msg.state
		m.staff = buildStaffTable(msg.state)
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case workedMsg:
		if msg.err != nil {
			m.lastLog = "Work failed: " + msg.err.Error()
			return m, nil
		}
		out := msg.res.Outcome
		switch {
		case out.Status.Blocked():
			m.lastLog = "Work blocked: " + out.Status.String()
		case out.ProjectCompleted && out.Review != nil:
			m.lastLog = fmt.Sprintf("Project complete! %s  $%d", strings.Repeat("★", out.Review.StarRating), out.Review.Payout)
			if msg.res.CriticalRolled {
				m.lastLog += "  " + ui.BadgeCritical
			}
		case out.StageCompleted:
			m.lastLog = fmt.Sprintf("Stage %q complete (+%dc/+%dt)", out.CompletedStage, out.CreativityGain, out.TechnicalGain)
		default:
			m.lastLog = fmt.Sprintf("Worked: +%d units, +%dc/+%dt", out.WorkUnitsAdded, out.CreativityGain, out.TechnicalGain)
		}
		return m, m.loadCmd()
	case sleptMsg:
		if msg.err != nil {
			m.lastLog = "Sleep failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Day %d begins.", msg.res.Outcome.NewDay)
		if msg.res.Outcome.SalariesPaid > 0 {
			m.lastLog += fmt.Sprintf(" Salaries paid: $%d.", msg.res.Outcome.SalariesPaid)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "w":
			m.lastLog = "Working…"
			return m, m.workCmd()
		case "e":
			m.lastLog = "Ending the day…"
			return m, m.sleepCmd()
		case "up", "k", "down", "j":
			var cmd tea.Cmd
			m.staff, cmd = m.staff.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func buildStaffTable(state *game.GameState) table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 18},
		{Title: "Role", Width: 11},
		{Title: "Lvl", Width: 3},
		{Title: "Energy", Width: 6},
		{Title: "Status", Width: 8},
	}
	rows := make([]table.Row, 0, len(state.HiredStaff))
	for _, s := range state.HiredStaff {
		rows = append(rows, table.Row{
			s.Name,
			string(s.Role),
			fmt.Sprintf("%d", s.LevelInRole),
			fmt.Sprintf("%d%%", s.Energy),
			string(s.Status),
		})
	}
	height := len(rows) + 1
	if height < 2 {
		height = 2
	}
	if height > 8 {
		height = 8
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.state == nil {
		return "Loading…\n"
	}

	header := m.renderHeader()
	project := m.renderProject()
	roster := m.renderRoster()
	offers := m.renderOffers()
	footer := "\n" + m.lastLog + "\n" + ui.Muted.Render("w: work  e: end day  r: refresh  q: quit")

	return header + "\n\n" + project + "\n" + roster + "\n" + offers + footer
}

func (m boardModel) renderHeader() string {
	s := m.state
	bar := progressBar(s.Player.XP, s.Player.XPToNextLevel, 24)
	return fmt.Sprintf("%s  Day %d  |  %s  |  Rep %d  |  Level %d %s",
		ui.Heading(ui.IconStudio, "Studioline"),
		s.CurrentDay, ui.Money(s.Money), s.Reputation, s.Player.Level, bar)
}

func (m boardModel) renderProject() string {
	p := m.state.ActiveProject
	if p == nil {
		return ui.H2.Render("No active project") + "\n" + ui.Muted.Render("Accept one from the offer list below.") + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s, %s match)\n",
		ui.H2.Render(ui.IconDisc+" "+p.Title),
		ui.Muted.Render(p.ClientType),
		p.Genre, ui.MatchText(string(p.MatchRating)))
	for i, st := range p.Stages {
		marker := "  "
		switch {
		case st.Completed:
			marker = ui.Good.Render("✔ ")
		case i == p.CurrentStageIndex:
			marker = ui.Gold.Render("▶ ")
		}
		fmt.Fprintf(&b, "%s%-22s %s %d/%d\n", marker, st.Name,
			progressBar(st.WorkUnitsCompleted, st.WorkUnitsRequired, 18),
			st.WorkUnitsCompleted, st.WorkUnitsRequired)
	}
	fmt.Fprintf(&b, "  %s %dc / %dt\n", ui.Muted.Render("points:"), p.AccumulatedCreativity, p.AccumulatedTechnical)
	return b.String()
}

func (m boardModel) renderRoster() string {
	if len(m.state.HiredStaff) == 0 {
		return ui.Muted.Render("No staff hired.") + "\n"
	}
	return ui.H2.Render(ui.IconStaff+" Staff") + "\n" + m.staff.View() + "\n"
}

func (m boardModel) renderOffers() string {
	if len(m.state.AvailableProjects) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(ui.H2.Render(ui.IconScroll+" Offers") + "\n")
	for _, p := range m.state.AvailableProjects {
		fmt.Fprintf(&b, "- %s (%s, diff %d, base %s)\n",
			p.Title, p.Genre, p.Difficulty, ui.Money(p.PayoutBase))
	}
	return b.String()
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
