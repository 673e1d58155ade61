package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/projection"
)

type PrettyPrint struct {
	ShowID bool
}

const idWidth = 8

func shortID(id string) string {
	if len(id) > idWidth {
		return id[:idWidth]
	}
	return id
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	return tbl
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Schedule renders the daily class list in its stored (time-sorted) order.
func (pp *PrettyPrint) Schedule(entries ...document.ScheduleEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, e := range entries {
		link := e.Link
		if link == "" {
			link = "-"
		}
		if pp.ShowID {
			tbl.AddRow(shortID(e.ID), e.Time.String(), e.Title, link)
		} else {
			tbl.AddRow(e.Time.String(), e.Title, link)
		}
	}
	pp.flush(tbl)
}

// Alarms renders the alarm list; fired alarms show faint.
func (pp *PrettyPrint) Alarms(alarms ...document.Alarm) {
	if len(alarms) == 0 {
		pp.none()
		return
	}
	active := color.New(color.FgHiYellow)
	fired := color.New(color.Faint)
	for _, a := range alarms {
		p := active
		state := "active"
		if !a.Active {
			p = fired
			state = "fired"
		}
		if pp.ShowID {
			_, _ = p.Printf("%s  %s  %s (%s)\n", shortID(a.ID), a.Time, a.Label, state)
		} else {
			_, _ = p.Printf("%s  %s (%s)\n", a.Time, a.Label, state)
		}
	}
	fmt.Println("")
}

// Board renders the two task lanes side by side.
func (pp *PrettyPrint) Board(b document.Board) {
	pp.Title("To Do")
	pp.lane(b.Todo, false)
	pp.Title("Done")
	pp.lane(b.Done, true)
}

func (pp *PrettyPrint) lane(items []document.BoardItem, done bool) {
	if len(items) == 0 {
		pp.none()
		return
	}
	p := color.New()
	if done {
		p = color.New(color.Faint)
	}
	for _, item := range items {
		mark := "●"
		if done {
			mark = "✘"
		}
		if pp.ShowID {
			_, _ = p.Printf("%s  %s %s\n", shortID(item.ID), mark, item.Text)
		} else {
			_, _ = p.Printf("%s %s\n", mark, item.Text)
		}
	}
	fmt.Println("")
}

// Areas renders the category list with its color token.
func (pp *PrettyPrint) Areas(areas ...document.Area) {
	if len(areas) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, a := range areas {
		kind := string(a.Kind)
		if kind == "" {
			kind = "-"
		}
		if pp.ShowID {
			tbl.AddRow(shortID(a.ID), a.Name, kind, tokenSwatch(a.Color))
		} else {
			tbl.AddRow(a.Name, kind, tokenSwatch(a.Color))
		}
	}
	pp.flush(tbl)
}

// Blocks renders the time blocks in start order.
func (pp *PrettyPrint) Blocks(blocks ...document.TimeBlock) {
	if len(blocks) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, b := range blocks {
		if pp.ShowID {
			tbl.AddRow(shortID(b.ID), fmt.Sprintf("%s–%s", b.Start, b.End), b.Name)
		} else {
			tbl.AddRow(fmt.Sprintf("%s–%s", b.Start, b.End), b.Name)
		}
	}
	pp.flush(tbl)
}

// Subjects renders each course with its running average and absences.
func (pp *PrettyPrint) Subjects(subjects ...document.Subject) {
	if len(subjects) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for _, s := range subjects {
		avg := "-"
		if len(s.Grades) > 0 {
			avg = fmt.Sprintf("%d%%", projection.Average(s.Grades))
		}
		teacher := s.Teacher
		if teacher == "" {
			teacher = "-"
		}
		if pp.ShowID {
			tbl.AddRow(shortID(s.ID), s.Name, teacher, avg, fmt.Sprintf("%d abs", s.Absences))
		} else {
			tbl.AddRow(s.Name, teacher, avg, fmt.Sprintf("%d abs", s.Absences))
		}
	}
	pp.flush(tbl)
}

// Agenda renders agenda items with their area label, falling back to
// "General" for dangling references.
func (pp *PrettyPrint) Agenda(doc *document.Document, items ...document.AgendaItem) {
	if len(items) == 0 {
		pp.none()
		return
	}
	open := color.New()
	done := color.New(color.Faint)
	for _, item := range items {
		p := open
		mark := "●"
		if item.Done {
			p = done
			mark = "✘"
		}
		date := item.Date
		if date == "" {
			date = "          " // as wide as an ISO date
		}
		parts := []string{mark, date, item.Title, "·", doc.AreaName(item.AreaID)}
		if subject, ok := doc.SubjectByID(item.SubjectID); ok {
			parts = append(parts, "·", subject.Name)
		}
		if pp.ShowID {
			parts = append([]string{shortID(item.ID)}, parts...)
		}
		_, _ = p.Println(strings.Join(parts, " "))
	}
	fmt.Println("")
}

// tokenSwatch paints a color token with itself so the palette is visible
// in the terminal.
func tokenSwatch(token string) string {
	if token == "" {
		return "-"
	}
	if attr, ok := tokenColors[token]; ok {
		return color.New(attr).Sprint(token)
	}
	return token
}

var tokenColors = map[string]color.Attribute{
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}
