package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/fold"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// DefaultTitle names the sample list.
const DefaultTitle = "Today's Todos"

const stepBanner = "--------------------------------- Step 8"

// Options tune output behavior from root flags.
type Options struct {
	Group  bool   // panel output grouped by pending/done
	Format string // plain, panel or json
	Title  string // sample list title
	Theme  ui.Theme

	Out, Err io.Writer
	Logger   *log.Logger

	// RunTUI starts the interactive viewer; tui.Run when nil.
	RunTUI func(*model.TodoList, tui.Options) error
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = config.FormatPlain
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Theme.Name == "" {
		o.Theme = ui.Default()
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.RunTUI == nil {
		o.RunTUI = func(l *model.TodoList, to tui.Options) error { return tui.Run(l, to) }
	}
	return o
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no subcommand it runs the demo.
func Run(args []string, opt Options) int {
	opt = opt.withDefaults()
	if !slices.Contains(config.Formats, opt.Format) {
		opt.Theme.Fail(opt.Err, fmt.Sprintf("unknown format %q (want one of %v)", opt.Format, config.Formats))
		return 2
	}
	if len(args) == 0 {
		args = []string{"demo"}
	}
	cmd, a := args[0], args[1:]
	opt.Logger.Debug("command", "name", cmd, "args", a, "format", opt.Format)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "demo":
		if len(a) != 0 {
			opt.Theme.Fail(opt.Err, "usage: todo demo")
			return 2
		}
		return doDemo(opt)

	case "fold":
		return doFold(a, opt)

	case "tui":
		if len(a) != 0 {
			opt.Theme.Fail(opt.Err, "usage: todo tui")
			return 2
		}
		return doTUI(opt)
	}

	opt.Theme.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todo - todo lists and folds

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  demo                     Print a sample list before and after marking all done/undone (default)
  fold [kind] [values...]  Fold values; kind is sum, product, squares or initials
  tui                      Browse and edit the sample list interactively

Examples:
  todo demo
  todo -format panel -group demo
  todo fold
  todo fold product 10 3 5
  todo fold initials red orange yellow
  todo tui
`)
}

// SampleList builds the three-entry list the demo and tui start from.
func SampleList(title string) (*model.TodoList, error) {
	room := model.NewTodo("Clean room")
	room.SetDone(true)
	l, err := model.NewTodoList(title, model.NewTodo("Buy milk"), room, model.NewTodo("Go to gym"))
	if err != nil {
		return nil, fmt.Errorf("sample list: %w", err)
	}
	return l, nil
}

// -------------- subcommand impls ----------------

func doDemo(opt Options) int {
	l, err := SampleList(opt.Title)
	if err != nil {
		opt.Theme.Fail(opt.Err, err.Error())
		return 1
	}

	if opt.Format != config.FormatJSON {
		fmt.Fprintln(opt.Out, stepBanner)
	}
	steps := []struct {
		name string
		run  func()
	}{
		{name: "initial", run: func() {}},
		{name: "mark all done", run: l.MarkAllDone},
		{name: "mark all undone", run: l.MarkAllUndone},
	}
	for _, s := range steps {
		s.run()
		opt.Logger.Debug("demo step", "step", s.name, "all_done", l.AllDone())
		if err := render(opt, l); err != nil {
			opt.Theme.Fail(opt.Err, "render: "+err.Error())
			return 1
		}
	}
	return 0
}

func doTUI(opt Options) int {
	l, err := SampleList(opt.Title)
	if err != nil {
		opt.Theme.Fail(opt.Err, err.Error())
		return 1
	}
	if err := opt.RunTUI(l, tui.Options{Theme: opt.Theme}); err != nil {
		opt.Theme.Fail(opt.Err, err.Error())
		return 1
	}
	opt.Logger.Debug("tui closed", "todos", l.Len(), "all_done", l.AllDone())
	if err := render(opt, l); err != nil {
		opt.Theme.Fail(opt.Err, "render: "+err.Error())
		return 1
	}
	return 0
}

// render writes l in the selected format.
func render(opt Options, l *model.TodoList) error {
	switch opt.Format {
	case config.FormatJSON:
		if err := json.NewEncoder(opt.Out).Encode(l); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
	case config.FormatPanel:
		fmt.Fprintln(opt.Out, opt.Theme.ListPanel(l, opt.Group))
	default:
		fmt.Fprintln(opt.Out, l)
	}
	return nil
}

// -------------- folds ----------------

type folder struct {
	seed int
	step func(n, acc int) int
}

var numericFolds = map[string]folder{
	"sum":     {seed: 0, step: func(n, acc int) int { return acc + n }},
	"product": {seed: 1, step: func(n, acc int) int { return acc * n }},
	"squares": {seed: 0, step: func(n, acc int) int { return acc + n*n }},
}

// initial appends the upper-cased first rune of word.
func initial(word, acc string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return acc
	}
	return acc + string(unicode.ToUpper(r))
}

func doFold(a []string, opt Options) int {
	if len(a) == 0 {
		foldExamples(opt.Out)
		return 0
	}
	kind, values := a[0], a[1:]
	opt.Logger.Debug("fold", "kind", kind, "values", len(values))

	if kind == "initials" {
		fmt.Fprintln(opt.Out, fold.Reduce(initial, values, ""))
		return 0
	}
	f, ok := numericFolds[kind]
	if !ok {
		opt.Theme.Fail(opt.Err, "fold: unknown kind: "+kind)
		fmt.Fprintln(opt.Err, opt.Theme.Muted.Render("Hint: use sum, product, squares or initials"))
		return 2
	}
	parsed := func(s string, acc int) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return acc, fmt.Errorf("not a number: %s", s)
		}
		return f.step(n, acc), nil
	}
	total, err := fold.TryReduce(parsed, values, f.seed)
	if err != nil {
		opt.Theme.Fail(opt.Err, "fold: "+err.Error())
		return 2
	}
	fmt.Fprintln(opt.Out, total)
	return 0
}

// foldExamples prints the canned reductions: 300, 31, 300, ROYGBIV, 55.
func foldExamples(w io.Writer) {
	sum, product, squares := numericFolds["sum"], numericFolds["product"], numericFolds["squares"]

	fmt.Fprintln(w, fold.Reduce(product.step, []int{10, 3, 5}, 2))
	fmt.Fprintln(w, fold.Reduce(sum.step, []int{1, 2, 4, 8, 16}, 0))
	fmt.Fprintln(w, fold.Reduce(product.step, []int{10, 3, 5}, 2))
	colors := []string{"red", "orange", "yellow", "green", "blue", "indigo", "violet"}
	fmt.Fprintln(w, fold.Reduce(initial, colors, ""))
	fmt.Fprintln(w, fold.Reduce(squares.step, []int{1, 2, 3, 4, 5}, 0))
}
