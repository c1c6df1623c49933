package cli_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

type result struct {
	code     int
	out, err string
}

func run(t *testing.T, opt cli.Options, args ...string) result {
	t.Helper()

	var out, errOut bytes.Buffer
	opt.Out, opt.Err = &out, &errOut
	if opt.Theme.Name == "" {
		th, err := ui.Lookup("mono")
		require.NoError(t, err)
		opt.Theme = th
	}
	code := cli.Run(args, opt)
	return result{code: code, out: out.String(), err: errOut.String()}
}

const demoPlain = `--------------------------------- Step 8
----- Today's Todos -----
[ ] Buy milk
[X] Clean room
[ ] Go to gym
----- Today's Todos -----
[X] Buy milk
[X] Clean room
[X] Go to gym
----- Today's Todos -----
[ ] Buy milk
[ ] Clean room
[ ] Go to gym
`

func TestDemo_Plain(t *testing.T) {
	t.Parallel()

	r := run(t, cli.Options{}, "demo")
	require.Equal(t, 0, r.code, r.err)
	assert.Equal(t, demoPlain, r.out)
	assert.Empty(t, r.err)
}

func TestDemo_IsDefault(t *testing.T) {
	t.Parallel()

	r := run(t, cli.Options{})
	require.Equal(t, 0, r.code)
	assert.Equal(t, demoPlain, r.out)
}

func TestDemo_CustomTitle(t *testing.T) {
	t.Parallel()

	r := run(t, cli.Options{Title: "Weekend"}, "demo")
	require.Equal(t, 0, r.code)
	assert.Equal(t, 3, strings.Count(r.out, "----- Weekend -----"))
}

func TestDemo_JSON(t *testing.T) {
	t.Parallel()

	r := run(t, cli.Options{Format: "json"}, "demo")
	require.Equal(t, 0, r.code, r.err)

	var snapshots []bool
	sc := bufio.NewScanner(strings.NewReader(r.out))
	for sc.Scan() {
		var l model.TodoList
		require.NoError(t, json.Unmarshal(sc.Bytes(), &l))
		assert.Equal(t, "Today's Todos", l.Title())
		assert.Equal(t, 3, l.Len())
		snapshots = append(snapshots, l.AllDone())
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []bool{false, true, false}, snapshots)
}

func TestDemo_Panel(t *testing.T) {
	t.Parallel()

	r := run(t, cli.Options{Format: "panel", Group: true}, "demo")
	require.Equal(t, 0, r.code, r.err)
	assert.True(t, strings.HasPrefix(r.out, "--------------------------------- Step 8\n"))
	assert.Equal(t, 3, strings.Count(r.out, "Pending"))
	assert.Contains(t, r.out, "x 1  - 2  Total 3")
	assert.Contains(t, r.out, "x 3  - 0  Total 3")
	assert.Contains(t, r.out, "x 0  - 3  Total 3")
}

func TestDemo_LogsSteps(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	r := run(t, cli.Options{Logger: logging.New(&logs, "debug")}, "demo")
	require.Equal(t, 0, r.code)
	assert.Equal(t, demoPlain, r.out)
	assert.Contains(t, logs.String(), "mark all done")
	assert.Contains(t, logs.String(), "all_done=true")
}

func TestFold_Examples(t *testing.T) {
	t.Parallel()

	r := run(t, cli.Options{}, "fold")
	require.Equal(t, 0, r.code)
	assert.Equal(t, "300\n31\n300\nROYGBIV\n55\n", r.out)
}

func TestFold_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "sum", args: []string{"sum", "1", "2", "4", "8", "16"}, want: "31\n"},
		{name: "product", args: []string{"product", "10", "3", "5"}, want: "150\n"},
		{name: "squares", args: []string{"squares", "1", "2", "3"}, want: "14\n"},
		{name: "empty sum", args: []string{"sum"}, want: "0\n"},
		{name: "empty product", args: []string{"product"}, want: "1\n"},
		{name: "initials", args: []string{"initials", "red", "orange", "yellow"}, want: "ROY\n"},
		{name: "negative", args: []string{"sum", "-3", "1"}, want: "-2\n"},
		{name: "initials non-ascii", args: []string{"initials", "élan", "über"}, want: "ÉÜ\n"},
		{name: "initials skips empty", args: []string{"initials", "", "zebra"}, want: "Z\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := run(t, cli.Options{}, append([]string{"fold"}, tt.args...)...)
			require.Equal(t, 0, r.code, r.err)
			assert.Equal(t, tt.want, r.out)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opt     cli.Options
		args    []string
		wantErr string
	}{
		{name: "unknown subcommand", args: []string{"ls"}, wantErr: "unknown subcommand: ls"},
		{name: "fold kind", args: []string{"fold", "max", "1"}, wantErr: "fold: unknown kind: max"},
		{name: "fold number", args: []string{"fold", "sum", "1", "two"}, wantErr: "fold: not a number: two"},
		{name: "demo args", args: []string{"demo", "extra"}, wantErr: "usage: todo demo"},
		{name: "tui args", args: []string{"tui", "extra"}, wantErr: "usage: todo tui"},
		{name: "format", opt: cli.Options{Format: "yaml"}, args: []string{"demo"}, wantErr: `unknown format "yaml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := run(t, tt.opt, tt.args...)
			assert.Equal(t, 2, r.code)
			assert.Empty(t, r.out)
			assert.Contains(t, r.err, tt.wantErr)
		})
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"help", "-h", "--help"} {
		r := run(t, cli.Options{}, arg)
		assert.Equal(t, 0, r.code)
		assert.Contains(t, r.out, "Subcommands:")
	}
}

func TestTUI_PrintsFinalList(t *testing.T) {
	t.Parallel()

	fake := func(l *model.TodoList, opts tui.Options) error {
		assert.Equal(t, "mono", opts.Theme.Name)
		l.MarkAllDone()
		return l.RemoveAt(1)
	}
	r := run(t, cli.Options{RunTUI: fake}, "tui")
	require.Equal(t, 0, r.code, r.err)
	assert.Equal(t, "----- Today's Todos -----\n[X] Buy milk\n[X] Go to gym\n", r.out)
}

func TestTUI_Error(t *testing.T) {
	t.Parallel()

	fake := func(*model.TodoList, tui.Options) error { return errors.New("no tty") }
	r := run(t, cli.Options{RunTUI: fake}, "tui")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.err, "no tty")
	assert.Empty(t, r.out)
}

func TestSampleList(t *testing.T) {
	t.Parallel()

	l, err := cli.SampleList(cli.DefaultTitle)
	require.NoError(t, err)
	assert.Equal(t, "----- Today's Todos -----\n[ ] Buy milk\n[X] Clean room\n[ ] Go to gym", l.String())
}
