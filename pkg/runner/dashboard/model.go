package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/projection"
	"github.com/studeolab/studeo/pkg/store"
)

type tickMsg time.Time

type refreshMsg struct{}

type model struct {
	st    *store.Store
	clock func() time.Time

	doc   *document.Document
	now   time.Time
	width int
}

func newModel(st *store.Store, clock func() time.Time) model {
	return model{
		st:    st,
		clock: clock,
		doc:   st.Document(),
		now:   clock(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case refreshMsg:
		m.doc = m.st.Document()
	case tickMsg:
		m.now = time.Time(msg)
		m.doc = m.st.Document()
		cmds := []tea.Cmd{tick()}
		for _, a := range projection.DueAlarms(m.doc.Alarms, document.ClockOf(m.now)) {
			// Latch before announcing so the same minute cannot re-fire.
			if err := m.st.DeactivateAlarm(a.ID); err != nil {
				cmds = append(cmds, tea.Printf("alarm %s: %v", a.Label, err))
				continue
			}
			cmds = append(cmds, tea.Printf("\a⏰ %s", a.Label))
		}
		m.doc = m.st.Document()
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m model) View() string {
	doc := m.doc
	styles := newStyles(doc)

	var b strings.Builder

	header := fmt.Sprintf("%s  %s", m.now.Format("Monday, January 2, 2006"), m.now.Format("15:04:05"))
	b.WriteString(styles.header.Render(header))
	b.WriteString("\n\n")

	now := document.ClockOf(m.now)
	day := document.WeekdayOf(m.now)

	// Current or next timetable block.
	block, status := projection.ActiveBlock(doc.Blocks, now)
	switch status {
	case projection.BlockCurrent:
		b.WriteString(styles.label.Render("now"))
		b.WriteString("  " + styles.strong.Render(slotLine(doc, day, block)))
	case projection.BlockNext:
		b.WriteString(styles.label.Render("next block"))
		b.WriteString("  " + slotLine(doc, day, block))
	default:
		b.WriteString(styles.label.Render("now"))
		b.WriteString("  " + styles.faint.Render("no blocks remaining today"))
	}
	b.WriteString("\n")

	// Next class from the daily schedule.
	b.WriteString(styles.label.Render("next class"))
	if class, ok := projection.NextClass(doc.Schedule, now); ok {
		b.WriteString(fmt.Sprintf("  %s %s", class.Time, class.Title))
	} else {
		b.WriteString("  " + styles.faint.Render("none"))
	}
	b.WriteString("\n")

	// Next alarm.
	b.WriteString(styles.label.Render("next alarm"))
	if alarm, ok := projection.NextAlarm(doc.Alarms); ok {
		b.WriteString(fmt.Sprintf("  %s %s", alarm.Time, alarm.Label))
	} else {
		b.WriteString("  " + styles.faint.Render("none"))
	}
	b.WriteString("\n\n")

	// Pending agenda, nearest dates first (the collection is date-sorted).
	b.WriteString(styles.title.Render("Agenda"))
	b.WriteString("\n")
	shown := 0
	for item := range projection.FilterAgenda(doc.Agenda, projection.Pending()) {
		date := item.Date
		if date == "" {
			date = "sometime"
		}
		b.WriteString(fmt.Sprintf("● %s  %s · %s\n", date, item.Title, doc.AreaName(item.AreaID)))
		shown++
		if shown == 6 {
			break
		}
	}
	if shown == 0 {
		b.WriteString(styles.faint.Render("all clear") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.faint.Render(fmt.Sprintf("board: %d to do, %d done · q to quit",
		len(doc.Board.Todo), len(doc.Board.Done))))
	b.WriteString("\n")

	return b.String()
}

func slotLine(doc *document.Document, day document.Weekday, block document.TimeBlock) string {
	label := "free"
	for _, entry := range projection.DaySchedule(doc, day) {
		if entry.Block.ID == block.ID {
			label = entry.Subject.Name
			if label == "" {
				label = "General"
			}
			break
		}
	}
	return fmt.Sprintf("%s–%s %s · %s", block.Start, block.End, block.Name, label)
}

type styles struct {
	header lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	strong lipgloss.Style
	faint  lipgloss.Style
}

func newStyles(doc *document.Document) styles {
	primary := tokenColor(doc.PrimaryColor)
	faint := lipgloss.Color("8")
	if doc.Theme == document.ThemeLight {
		faint = lipgloss.Color("7")
	}
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(primary),
		title:  lipgloss.NewStyle().Bold(true).Underline(true),
		label:  lipgloss.NewStyle().Foreground(primary).Width(12),
		strong: lipgloss.NewStyle().Bold(true),
		faint:  lipgloss.NewStyle().Foreground(faint).Italic(true),
	}
}

func tokenColor(token string) lipgloss.Color {
	switch token {
	case "red":
		return lipgloss.Color("1")
	case "green":
		return lipgloss.Color("2")
	case "yellow":
		return lipgloss.Color("3")
	case "blue":
		return lipgloss.Color("4")
	case "magenta":
		return lipgloss.Color("5")
	case "white":
		return lipgloss.Color("7")
	default:
		return lipgloss.Color("6")
	}
}
