package sink

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/ganttring/pkg/chart"
	"github.com/matzehuels/ganttring/pkg/render/ring/layout"
	"github.com/matzehuels/ganttring/pkg/render/ring/styles"
)

func testChart(t *testing.T) chart.Chart {
	t.Helper()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }
	return chart.Build([]chart.Interval{
		{Name: "design", Start: day(0), End: day(10)},
		{Name: "build", Start: day(5), End: day(20)},
		{Name: "ship", Start: day(20), End: day(30)},
	}, chart.Options{Compress: true, Now: day(15)})
}

func testLayout(t *testing.T) (chart.Chart, layout.Layout) {
	t.Helper()
	c := testChart(t)
	return c, layout.Compute(c, 600, 600, layout.Options{})
}

func TestRenderSVGBasic(t *testing.T) {
	_, l := testLayout(t)
	svg := string(RenderSVG(l))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg root: %s", svg[:80])
	}
	if !strings.Contains(svg, `viewBox="0 0 600.0 600.0"`) {
		t.Errorf("missing viewBox: %s", svg[:120])
	}
	for _, id := range []string{`id="arc-t0"`, `id="arc-t1"`, `id="arc-t2"`} {
		if !strings.Contains(svg, id) {
			t.Errorf("missing %s", id)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("unterminated svg document")
	}
}

func TestRenderSVGInteraction(t *testing.T) {
	_, l := testLayout(t)
	svg := string(RenderSVG(l))

	if !strings.Contains(svg, "has-selection") {
		t.Error("selection CSS missing")
	}
	if !strings.Contains(svg, "classList.toggle('highlight'") {
		t.Error("hover highlight script missing")
	}
	if !strings.Contains(svg, "addEventListener('click'") {
		t.Error("selection script missing")
	}
}

func TestRenderSVGLabels(t *testing.T) {
	_, l := testLayout(t)

	plain := string(RenderSVG(l))
	if strings.Contains(plain, `<text class="arc-text"`) {
		t.Error("labels rendered without WithLabels")
	}

	labeled := string(RenderSVG(l, WithLabels()))
	if !strings.Contains(labeled, `class="arc-text"`) {
		t.Error("labels missing with WithLabels")
	}
	if !strings.Contains(labeled, "design") {
		t.Error("task name missing from labels")
	}
}

func TestRenderSVGPopups(t *testing.T) {
	c, l := testLayout(t)

	plain := string(RenderSVG(l))
	if strings.Contains(plain, `class="popup"`) {
		t.Error("popups rendered without WithPopups")
	}

	svg := string(RenderSVG(l, WithPopups(), WithChart(c)))
	if !strings.Contains(svg, `class="popup"`) {
		t.Error("popup groups missing")
	}
	if !strings.Contains(svg, `data-for="t0"`) {
		t.Error("popup binding missing")
	}
	for _, label := range []string{"Task", "Start", "End", "Progress", "Share"} {
		if !strings.Contains(svg, label) {
			t.Errorf("popup row %q missing", label)
		}
	}
	if !strings.Contains(svg, "2026-03-01") {
		t.Error("popup start date missing")
	}
}

func TestRenderSVGPopupsWithoutChart(t *testing.T) {
	_, l := testLayout(t)
	svg := string(RenderSVG(l, WithPopups()))
	if strings.Contains(svg, "Share") {
		t.Error("share row requires an attached chart")
	}
	if !strings.Contains(svg, "Progress") {
		t.Error("popup rows missing")
	}
}

func TestRenderSVGNeedle(t *testing.T) {
	_, l := testLayout(t)

	plain := string(RenderSVG(l))
	if strings.Contains(plain, `class="hub"`) {
		t.Error("needle rendered without WithNeedle")
	}

	svg := string(RenderSVG(l, WithNeedle()))
	if !strings.Contains(svg, `class="hub"`) {
		t.Error("hub disc missing")
	}
	if !strings.Contains(svg, `class="needle"`) {
		t.Error("needle line missing")
	}
	if !strings.Contains(svg, "50%") {
		t.Error("progress label missing")
	}
}

func TestRenderSVGEmptyChart(t *testing.T) {
	c := chart.Build(nil, chart.Options{})
	l := layout.Compute(c, 600, 600, layout.Options{})
	svg := string(RenderSVG(l, WithNeedle(), WithLabels(), WithPopups()))

	if strings.Contains(svg, `class="arc"`) {
		t.Error("empty chart must not render arcs")
	}
	if !strings.Contains(svg, chart.NoTasksLabel) {
		t.Error("no-tasks notice missing")
	}
}

func TestRenderSVGMidnightBackground(t *testing.T) {
	_, l := testLayout(t)
	svg := string(RenderSVG(l, WithStyle(styles.Midnight{})))
	if !strings.Contains(svg, `fill="#101418"`) {
		t.Error("background rect missing")
	}
	if !strings.Contains(svg, `id="glow"`) {
		t.Error("glow defs missing")
	}
}

func TestRenderSVGPointTask(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	c := chart.Build([]chart.Interval{
		{Name: "long", Start: base, End: base.AddDate(0, 0, 10)},
		{Name: "milestone", Start: base.AddDate(0, 0, 4), End: base.AddDate(0, 0, 4)},
	}, chart.Options{Compress: true, Now: base})
	l := layout.Compute(c, 600, 600, layout.Options{})

	svg := string(RenderSVG(l))
	if !strings.Contains(svg, `stroke-width="1.5"`) {
		t.Errorf("point task tick missing: %s", svg)
	}
}

func TestBuildNeedleGeometry(t *testing.T) {
	_, l := testLayout(t)
	n := buildNeedle(l)
	if n.CX != l.CX || n.CY != l.CY {
		t.Errorf("needle not centered: %+v", n)
	}
	if n.X == n.CX && n.Y == n.CY {
		t.Error("needle tip must leave the center on a non-empty chart")
	}
	if n.Label != "50%" {
		t.Errorf("needle label = %q, want 50%%", n.Label)
	}
}

func TestLabelRotationUpright(t *testing.T) {
	for _, tc := range []struct {
		angleDeg float64
		want     float64
	}{
		{0, 0},
		{45, 45},
		{180, 0},
		{225, 45},
		{315, 315},
	} {
		got := labelRotation(tc.angleDeg * 3.14159265358979 / 180)
		if diff := got - tc.want; diff > 0.01 || diff < -0.01 {
			t.Errorf("labelRotation(%v deg) = %v, want %v", tc.angleDeg, got, tc.want)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	c, l := testLayout(t)
	data, err := RenderJSON(l, WithJSONChart(c), WithJSONStyle("simple"), WithJSONSeed(42))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["width"].(float64) != 600 {
		t.Errorf("width = %v", out["width"])
	}
	if out["style"].(string) != "simple" {
		t.Errorf("style = %v", out["style"])
	}
	if out["progress"].(float64) != 50 {
		t.Errorf("progress = %v", out["progress"])
	}
	arcs, ok := out["arcs"].([]any)
	if !ok || len(arcs) != 3 {
		t.Fatalf("arcs = %v", out["arcs"])
	}
	first := arcs[0].(map[string]any)
	if first["name"].(string) != "design" {
		t.Errorf("first arc = %v", first["name"])
	}
	if _, ok := out["span_start"]; !ok {
		t.Error("span_start missing with attached chart")
	}
}

func TestRenderJSONGeometryOnly(t *testing.T) {
	_, l := testLayout(t)
	data, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := out["span_start"]; ok {
		t.Error("span_start present without an attached chart")
	}
	if _, ok := out["progress"]; ok {
		t.Error("progress present without an attached chart")
	}
}
