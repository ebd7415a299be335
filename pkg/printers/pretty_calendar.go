package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dreamlog/pkg/calendar"
	"tableflip.dev/dreamlog/pkg/dates"
	"tableflip.dev/dreamlog/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the month grid followed by the day buckets that fall inside
// it. Days with entries are bold, today is underlined.
func (pp *PrettyPrint) Month(m calendar.Month, buckets map[string][]*entry.Entry, now time.Time) {
	tf := color.New(color.FgWhite, color.Italic)

	title := m.Title()
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	pad := width - mid - len(title)
	if pad < 0 {
		pad = 0
	}
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), title, strings.Repeat(" ", pad))

	// Pad out the start of the month.
	for i := 0; i < m.Lead(); i++ {
		fmt.Print("   ")
	}

	empty := color.New(color.Faint, color.FgWhite)
	full := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.FgHiWhite, color.Underline)

	weekday := m.Lead()
	for _, cell := range m.Grid(buckets, now) {
		printer := empty
		if cell.HasEntries() {
			printer = full
		}
		if cell.Today {
			printer = today
		}
		_, _ = printer.Printf("%2d", cell.Day)
		fmt.Print(" ")

		weekday++
		if weekday > int(time.Saturday) {
			weekday = int(time.Sunday)
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")

	pp.monthBuckets(m, buckets, now)
}

func (pp *PrettyPrint) monthBuckets(m calendar.Month, buckets map[string][]*entry.Entry, now time.Time) {
	printed := false
	for _, cell := range m.Grid(buckets, now) {
		if !cell.HasEntries() {
			continue
		}
		pp.TitleWithCount(dates.Format(cell.Key), cell.Count)
		pp.Entries(buckets[cell.Key]...)
		printed = true
	}
	if !printed {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("no dreams recorded this month")
		fmt.Println("")
	}
}
