package ui

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/model"
)

// maxTitleWidth truncates long entries so the panel stays readable.
const maxTitleWidth = 80

// Stats counts done and pending entries.
func Stats(l *model.TodoList) (done, pending int) {
	l.Each(func(t *model.Todo) {
		if t.Done() {
			done++
		} else {
			pending++
		}
	})
	return
}

// Header is the "title ✔ n • n Total n" summary line.
func (t Theme) Header(l *model.TodoList) string {
	d, p := Stats(l)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(l.Title()),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), l.Len(),
	)
}

// Line renders one entry as "box title", styled by its flag.
func (t Theme) Line(td *model.Todo) string {
	title := td.Title()
	if r := []rune(title); len(r) > maxTitleWidth {
		title = string(r[:maxTitleWidth-3]) + "..."
	}
	if td.Done() {
		return fmt.Sprintf("%s %s", t.Success.Render(t.Box(true)), t.DoneText.Render(title))
	}
	return fmt.Sprintf("%s %s", t.Muted.Render(t.Box(false)), title)
}

// ListPanel draws a whole list with header and progress bar, either flat
// or grouped into pending and done sections.
func (t Theme) ListPanel(l *model.TodoList, group bool) string {
	d, p := Stats(l)
	lines := []string{
		t.Header(l),
		t.Muted.Render(ProgressBar(d, d+p, 28)),
		"",
	}
	if group {
		lines = append(lines, t.groupLines(l)...)
	} else {
		lines = append(lines, t.flatLines(l)...)
	}
	return t.Panel(lines)
}

func (t Theme) flatLines(l *model.TodoList) []string {
	if l.Len() == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, l.Len())
	for i, td := range l.All() {
		out = append(out, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), t.Line(td)))
	}
	return out
}

func (t Theme) groupLines(l *model.TodoList) []string {
	var lines []string
	section := func(name string, part *model.TodoList) {
		lines = append(lines, t.Accent.Render(name))
		if part.Len() == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
			return
		}
		lines = append(lines, t.flatLines(part)...)
	}
	section("Pending", l.UndoneTodos())
	lines = append(lines, "")
	section("Done", l.DoneTodos())
	return lines
}
