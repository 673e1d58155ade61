package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/projection"
)

const calendarWidth = len("11 12 13 14 15 16 17") // an example week

// AgendaCalendar prints a month grid with days carrying agenda items in
// bold, then lists undated items under "Open".
func (pp *PrettyPrint) AgendaCalendar(month time.Time, items []document.AgendaItem) {
	index := projection.DayIndex(items)

	then := time.Date(month.Year(), month.Month(), 1, 1, 0, 0, 0, time.Local)
	days := DaysIn(then)

	count := make([]int, days)
	for day := 1; day <= days; day++ {
		iso := time.Date(then.Year(), then.Month(), day, 0, 0, 0, 0, time.Local).Format(document.LayoutISO)
		count[day-1] = len(index[iso])
	}

	pp.printMonthCount(then, count)

	if open := index[""]; len(open) > 0 {
		i := color.New(color.Italic)
		_, _ = i.Printf("Open\n")
		p := color.New()
		for _, item := range open {
			mark := "●"
			if item.Done {
				mark = "✘"
			}
			_, _ = p.Printf("%s %s\n", mark, item.Title)
		}
		fmt.Println("")
	}
}

func (pp *PrettyPrint) printMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (calendarWidth - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", calendarWidth-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
