package parallax

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const showInfoYAML = `
name: showInfo
from: 0
to: 1
children:
  - name: photoBookAlpha
    from: 1
    to: 0.75
  - name: photoBookScale
    from: 1
    to: 0.9
  - name: photoInfoHeight
    focus: [0.25, 1]
    from: 0
    to: 128
`

func TestLoadEffect(t *testing.T) {
	var r recorder
	root, err := LoadEffect([]byte(showInfoYAML), map[string]func(float64){
		"photoBookAlpha":  r.sink("photoBookAlpha"),
		"photoInfoHeight": r.sink("photoInfoHeight"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if root.Name != "showInfo" || root.NumChildren() != 3 {
		t.Fatalf("root = %q with %d children", root.Name, root.NumChildren())
	}
	if sub, ok := root.FocusAt(2); !ok || sub != MustInterval(0.25, 1.0) {
		t.Errorf("FocusAt(2) = %v, %v", sub, ok)
	}

	root.Seed(0.625)
	want := []output{
		{"photoBookAlpha", 0.84375},
		{"photoInfoHeight", 64},
	}
	if diff := cmp.Diff(want, r.outputs, approx); diff != "" {
		t.Errorf("outputs mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEffectMatchesBuiltTree(t *testing.T) {
	loaded, err := LoadEffect[float64]([]byte(showInfoYAML), nil)
	if err != nil {
		t.Fatal(err)
	}
	built := photoInfoTree()

	var a, b recorder
	a.watch(loaded)
	b.watch(built)
	for _, v := range []float64{-0.5, 0, 0.2, 0.25, 0.8, 1, 1.3} {
		loaded.Seed(v)
		built.Seed(v)
	}
	if diff := cmp.Diff(b.outputs, a.outputs); diff != "" {
		t.Errorf("loaded tree differs (-built +loaded):\n%s", diff)
	}
}

func TestLoadEffectCurves(t *testing.T) {
	src := `
name: pageKey
from: 0
to: 1
children:
  - name: slide
    from: 20
    to: 180
    clamped: true
  - name: shrink
    from: 1
    to: 0.6
    curve: oscillate
    times: 4
    clamped: true
  - name: bounce
    from: 0
    to: 1
    curve: outBounce
`
	root, err := LoadEffect[float32]([]byte(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	shrink := root.Find("shrink")
	if shrink.Curve.String() != "oscillate(4)" || !shrink.Clamped {
		t.Errorf("shrink curve = %v, clamped = %v", shrink.Curve, shrink.Clamped)
	}
	if got := root.Find("bounce").Curve.String(); got != "outBounce" {
		t.Errorf("bounce curve = %q", got)
	}

	var scale float32
	shrink.OnChange = func(v float32) { scale = v }
	root.Seed(0.125)
	if scale != 0.6 {
		t.Errorf("scale = %v, want 0.6", scale)
	}
}

func TestLoadEffectDebug(t *testing.T) {
	buf := captureDebug(t)
	root, err := LoadEffect[float64]([]byte(`
name: slide
from: 0
to: 200
debug: true
`), nil)
	if err != nil {
		t.Fatal(err)
	}
	root.Seed(50)
	if !strings.Contains(buf.String(), "debug effect (slide): 25%") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLoadEffectErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		sinks map[string]func(float64)
		want  error
	}{
		{
			name: "zero width",
			src:  "name: a\nfrom: 1\nto: 1\n",
			want: ErrInvalidInterval,
		},
		{
			name: "missing to",
			src:  "name: a\nfrom: 1\n",
			want: ErrInvalidInterval,
		},
		{
			name: "focus out of range",
			src:  "name: a\nfrom: 0\nto: 1\nchildren:\n  - name: b\n    from: 0\n    to: 1\n    focus: [-1, 1]\n",
			want: ErrSubintervalOutOfRange,
		},
		{
			name: "focus on root",
			src:  "name: r\nfrom: 0\nto: 1\nfocus: [5, 9]\n",
			want: ErrSubintervalOutOfRange,
		},
		{
			name: "focus zero width",
			src:  "name: a\nfrom: 0\nto: 1\nchildren:\n  - name: b\n    from: 0\n    to: 1\n    focus: [0.5, 0.5]\n",
			want: ErrInvalidInterval,
		},
		{
			name: "focus wrong length",
			src:  "name: a\nfrom: 0\nto: 1\nchildren:\n  - name: b\n    from: 0\n    to: 1\n    focus: [0.5]\n",
			want: ErrInvalidInterval,
		},
		{
			name: "unknown curve",
			src:  "name: a\nfrom: 0\nto: 1\ncurve: wobble\n",
			want: ErrUnknownCurve,
		},
		{
			name: "duplicate name",
			src:  "name: a\nfrom: 0\nto: 1\nchildren:\n  - name: a\n    from: 0\n    to: 1\n",
			want: ErrDuplicateName,
		},
		{
			name:  "unbound sink",
			src:   "name: a\nfrom: 0\nto: 1\n",
			sinks: map[string]func(float64){"b": func(float64) {}},
			want:  ErrUnboundSink,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEffect([]byte(tt.src), tt.sinks)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadEffectRejectsUnknownFields(t *testing.T) {
	_, err := LoadEffect[float64]([]byte("name: a\nfrom: 0\nto: 1\nclamp: true\n"), nil)
	if err == nil || !strings.Contains(err.Error(), "parse effect") {
		t.Errorf("err = %v, want parse error", err)
	}
}

func TestLoadEffectMalformed(t *testing.T) {
	_, err := LoadEffect[float64]([]byte("name: [\n"), nil)
	if err == nil {
		t.Error("expected parse error")
	}
}
