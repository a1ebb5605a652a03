package readability

import (
	"math"
	"testing"
)

func TestARI_Empty(t *testing.T) {
	if got := ARI(""); got != 0 {
		t.Errorf("ARI(empty) = %v, want 0", got)
	}
}

func TestARI_KnownValue(t *testing.T) {
	// "The cat sat." has 3 words, 1 sentence, 9 characters.
	want := 4.71*9.0/3.0 + 0.5*3.0/1.0 - 21.43
	got := ARI("The cat sat.")
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ARI = %v, want %v", got, want)
	}
}

func TestARI_HarderTextScoresHigher(t *testing.T) {
	simple := ARI("The cat sat on the mat. The dog ran off.")
	hard := ARI("Phenomenological analysis necessitates comprehensive reconsideration of ontological premises underlying contemporary epistemological discourse.")
	if hard <= simple {
		t.Errorf("hard (%v) should exceed simple (%v)", hard, simple)
	}
}
