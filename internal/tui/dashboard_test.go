package tui

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/graphfin/internal/registry"
	"github.com/tinytelemetry/graphfin/internal/viewstate"
)

var zoneMarker = regexp.MustCompile(`\x1b\[\d+z`)

func newTestModel(t *testing.T) *DashboardModel {
	t.Helper()
	m := NewDashboardModel(Options{Skin: &Skin{}})
	t.Cleanup(m.Close)
	m.SetSize(140, 48)
	return m
}

func press(m *DashboardModel, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestNewDashboardModel_InitialState(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	if got := m.State(); got != viewstate.New() {
		t.Fatalf("initial state = %+v, want %+v", got, viewstate.New())
	}
	if got := m.Cursor(); got != -1 {
		t.Fatalf("initial cursor = %d, want -1", got)
	}

	out := ansi.Strip(m.View())
	for _, want := range []string{
		registry.HeaderTitle,
		"Fraud Loss Reduction per 1,000 Transactions (USD)",
		"$1,720",
		"$980",
		registry.ShowCodeLabel,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("initial view missing %q", want)
		}
	}
}

func TestNumberKeysSelectTabs(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	for i, id := range registry.IDs() {
		press(m, string(rune('1'+i)))
		if got := m.State().ActiveTab; got != id {
			t.Fatalf("after key %d active = %s, want %s", i+1, got, id)
		}
		title := registry.Default().MustLookup(id).Title
		if out := ansi.Strip(m.View()); !strings.Contains(out, title) {
			t.Fatalf("view for %s missing title %q", id, title)
		}
	}
}

func TestTabKeysCycle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "tab", "tab")
	if got := m.State().ActiveTab; got != registry.AdoptionBarriers {
		t.Fatalf("after two tabs active = %s", got)
	}
	press(m, "[", "[", "[")
	if got := m.State().ActiveTab; got != registry.MarketAdoption {
		t.Fatalf("after wrapping back active = %s", got)
	}
	press(m, "]")
	if got := m.State().ActiveTab; got != registry.FraudReduction {
		t.Fatalf("after ] active = %s", got)
	}
	press(m, "shift+tab")
	if got := m.State().ActiveTab; got != registry.MarketAdoption {
		t.Fatalf("after shift+tab active = %s", got)
	}
}

func TestToggleCodeShowsSampleAndSurvivesTabSwitch(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "3", "c")
	if !m.State().ShowCode {
		t.Fatal("code panel should be shown after c")
	}
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "// Adoption Barriers - vertical bars") {
		t.Fatal("code panel does not show the adoption barriers sample")
	}
	if !strings.Contains(out, registry.HideCodeLabel) {
		t.Fatal("button should read Hide Code")
	}

	press(m, "5")
	if !m.State().ShowCode {
		t.Fatal("switching tabs must keep the code panel open")
	}

	press(m, "c")
	if m.State().ShowCode {
		t.Fatal("second c should hide the code panel")
	}
	if out := ansi.Strip(m.View()); strings.Contains(out, "// Market Adoption") {
		t.Fatal("code still visible after hiding")
	}
}

func TestCursorMovesAndResetsOnTabChange(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "5", "right")
	if got := m.Cursor(); got != 0 {
		t.Fatalf("cursor after right = %d, want 0", got)
	}
	press(m, "right", "right", "right", "right", "right", "right", "right")
	if got := m.Cursor(); got != 6 {
		t.Fatalf("cursor should clamp at last point, got %d", got)
	}
	press(m, "left")
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Adoption Rate: 63% (Projected)") {
		t.Fatal("tooltip for 2025 not shown")
	}

	press(m, "esc")
	if got := m.Cursor(); got != -1 {
		t.Fatalf("esc should hide cursor, got %d", got)
	}
	press(m, "left")
	if got := m.Cursor(); got != 6 {
		t.Fatalf("left from hidden should start at last point, got %d", got)
	}

	press(m, "1")
	if got := m.Cursor(); got != -1 {
		t.Fatalf("tab change should reset cursor, got %d", got)
	}
}

func TestCodeScrolling(t *testing.T) {
	t.Parallel()

	m := NewDashboardModel(Options{})
	t.Cleanup(m.Close)
	m.SetSize(100, 24)

	press(m, "down")
	if got := m.CodeOffset(); got != 0 {
		t.Fatalf("scrolling with code hidden moved offset to %d", got)
	}

	press(m, "c", "down", "down")
	if got := m.CodeOffset(); got != 2 {
		t.Fatalf("offset after two downs = %d, want 2", got)
	}
	press(m, "up")
	if got := m.CodeOffset(); got != 1 {
		t.Fatalf("offset after up = %d, want 1", got)
	}

	press(m, "G")
	bottom := m.CodeOffset()
	lines := len(strings.Split(registry.Default().MustLookup(registry.FraudReduction).CodeSample, "\n"))
	if bottom <= 1 || bottom >= lines {
		t.Fatalf("bottom offset = %d for %d lines", bottom, lines)
	}

	press(m, "2")
	if got := m.CodeOffset(); got != 0 {
		t.Fatalf("tab change should reset code scroll, got %d", got)
	}
}

func TestClickZones(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.clickZone(tabZoneID(registry.FalsePositiveReduction))
	if got := m.State().ActiveTab; got != registry.FalsePositiveReduction {
		t.Fatalf("tab click active = %s", got)
	}
	m.clickZone(zoneToggleCode)
	if !m.State().ShowCode {
		t.Fatal("toggle click should show code")
	}
	m.clickZone("unknown")
	if got := m.State(); got.ActiveTab != registry.FalsePositiveReduction || !got.ShowCode {
		t.Fatalf("unknown zone changed state: %+v", got)
	}
}

func TestViewStripsZoneMarkers(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	if out := m.View(); zoneMarker.MatchString(out) {
		t.Fatal("zone markers leaked into output")
	}
}

func TestHelpModal(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "?")
	if !m.HasModal() {
		t.Fatal("? should open help")
	}
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "show/hide code") {
		t.Fatal("help does not list the code toggle")
	}

	press(m, "3")
	if got := m.State().ActiveTab; got != registry.FraudReduction {
		t.Fatal("keys must go to the modal while it is open")
	}

	press(m, "esc")
	if m.HasModal() {
		t.Fatal("esc should close help")
	}
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestTooSmallTerminal(t *testing.T) {
	t.Parallel()

	m := NewDashboardModel(Options{})
	t.Cleanup(m.Close)
	m.SetSize(50, 10)
	if got := m.View(); !strings.Contains(got, "Terminal too small") {
		t.Fatalf("small view = %q", got)
	}

	m.SetSize(0, 0)
	if got := m.View(); got != "Initializing dashboard..." {
		t.Fatalf("unsized view = %q", got)
	}
}

func TestViewFitsTerminal(t *testing.T) {
	t.Parallel()

	for _, size := range [][2]int{{60, 20}, {100, 30}, {140, 48}} {
		m := NewDashboardModel(Options{Initial: viewstate.State{ActiveTab: registry.MarketAdoption, ShowCode: true}})
		m.SetSize(size[0], size[1])
		lines := strings.Split(m.View(), "\n")
		m.Close()
		if len(lines) > size[1] {
			t.Fatalf("%dx%d: view has %d lines", size[0], size[1], len(lines))
		}
	}
}

func TestCodePanelKeepsChartAtMinimumSize(t *testing.T) {
	t.Parallel()

	lastLabel := map[registry.ChartID]string{
		registry.FraudReduction:         "Graph DB",
		registry.TimeEfficiency:         "SAR Analysis",
		registry.AdoptionBarriers:       "Security",
		registry.FalsePositiveReduction: "Graph DB",
		registry.MarketAdoption:         "2026",
	}
	for _, id := range registry.IDs() {
		for _, show := range []bool{false, true} {
			out := ansi.Strip(Snapshot(Options{Initial: viewstate.State{ActiveTab: id, ShowCode: show}}, 60, 20))
			if !strings.Contains(out, "Source:") {
				t.Fatalf("%s code=%v: citation cut off", id, show)
			}
			if !strings.Contains(out, lastLabel[id]) {
				t.Fatalf("%s code=%v: missing last category %q", id, show, lastLabel[id])
			}
			if show && !strings.Contains(out, "code  1-") {
				t.Fatalf("%s: code panel not shown", id)
			}
			if n := len(strings.Split(out, "\n")); n > 20 {
				t.Fatalf("%s code=%v: view has %d lines", id, show, n)
			}
		}
	}
}

func TestAppRoutesToDashboard(t *testing.T) {
	t.Parallel()

	m := NewDashboardModel(Options{})
	t.Cleanup(m.Close)
	app := NewApp(NewDashboardPage(m))
	if got := app.ActivePage(); got != "dashboard" {
		t.Fatalf("active page = %q", got)
	}

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	if got := m.State().ActiveTab; got != registry.FalsePositiveReduction {
		t.Fatalf("app did not forward keys, active = %s", got)
	}
	if out := ansi.Strip(app.View()); !strings.Contains(out, "Rule Engine: 92%") {
		t.Fatal("app view missing pie labels")
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(Snapshot(Options{Initial: viewstate.State{ActiveTab: registry.TimeEfficiency}}, 120, 40))
	if !strings.Contains(out, "Time Efficiency Comparison (% of Original Time)") {
		t.Fatal("snapshot missing time efficiency title")
	}
}

func TestDetailModal(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	press(m, "4", "d")
	if !m.HasModal() {
		t.Fatal("d should open the data table")
	}
	out := ansi.Strip(m.View())
	for _, want := range []string{"Rule Engine", "92%", "58.6%", "41.4%", "Source: "} {
		if !strings.Contains(out, want) {
			t.Fatalf("data table missing %q", want)
		}
	}

	press(m, "d")
	if m.HasModal() {
		t.Fatal("second d should close the data table")
	}
}

func TestDetailContentMarksProjections(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.MarketAdoption)
	got := detailContent(e, registry.English)
	if !strings.Contains(got, "72% (Projected)") {
		t.Fatalf("projected value missing:\n%s", got)
	}
	if strings.Contains(got, "Share") {
		t.Fatal("only pie charts have a share column")
	}
}
