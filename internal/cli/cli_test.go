package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	want := []string{"resolve", "discover", "lineage", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatal("debug output at info level")
	}

	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("no debug output after SetLogLevel(debug)")
	}
}

func TestResolveRequiresArg(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"resolve"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	if err := root.Execute(); err == nil {
		t.Error("resolve without arguments should fail")
	}
}

func TestProgressModelAdvances(t *testing.T) {
	ch := make(chan int, 3)
	m := newProgressModel("testing", ch)

	next, _ := m.Update(progressMsg(40))
	pm := next.(progressModel)
	if pm.percent != 40 {
		t.Errorf("percent = %d, want 40", pm.percent)
	}

	next, cmd := pm.Update(progressDoneMsg{})
	pm = next.(progressModel)
	if pm.percent != 100 {
		t.Errorf("percent = %d, want 100 after done", pm.percent)
	}
	if cmd == nil {
		t.Error("done must quit the program")
	}

	view := pm.View()
	if !strings.Contains(view, "100%") {
		t.Errorf("View() = %q, want the percentage shown", view)
	}
}
