package audio

import (
	"math"
	"strings"
	"testing"
)

func TestScriptedSource(t *testing.T) {
	src := NewScriptedSource(0.1, 0.5, 2, -1)
	src.Tail = 0.25

	expected := []float64{0.1, 0.5, 1, 0, 0.25, 0.25}
	for i, want := range expected {
		if got := src.Sample(); got != want {
			t.Errorf("Sample() #%d = %v, expected %v", i, got, want)
		}
	}
	if src.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", src.Remaining())
	}
}

func TestKeySource(t *testing.T) {
	var k KeySource

	if k.Sample() != 0 {
		t.Error("KeySource without a press should be silent")
	}

	k.Press()
	k.Press() // presses within one frame collapse
	if got := k.Sample(); got != 1 {
		t.Errorf("Sample() after press = %v, expected 1", got)
	}
	if got := k.Sample(); got != 0 {
		t.Errorf("Sample() on the following frame = %v, expected 0", got)
	}

	k.Level = 0.6
	k.Press()
	if got := k.Sample(); got != 0.6 {
		t.Errorf("Sample() with Level = %v, expected 0.6", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, expected float64 }{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{7, 1},
		{math.NaN(), 0},
	}
	for _, tc := range tests {
		if got := Clamp01(tc.in); got != tc.expected {
			t.Errorf("Clamp01(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestRepeat(t *testing.T) {
	r := Repeat(0.9, 5)
	if len(r) != 5 {
		t.Fatalf("len(Repeat()) = %d, expected 5", len(r))
	}
	for _, v := range r {
		if v != 0.9 {
			t.Errorf("Repeat() value = %v, expected 0.9", v)
		}
	}
}

func TestReadScript(t *testing.T) {
	in := `# silence
0
0.0   # trailing comment

0.9
0.9
1e-1
`
	got, err := ReadScript(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadScript() error = %v", err)
	}
	want := []float64{0, 0, 0.9, 0.9, 0.1}
	if len(got) != len(want) {
		t.Fatalf("ReadScript() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReadScript()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestReadScriptBadLine(t *testing.T) {
	_, err := ReadScript(strings.NewReader("0\nloud\n"))
	if err == nil {
		t.Fatal("ReadScript() expected an error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %q, expected it to name line 2", err)
	}
}
