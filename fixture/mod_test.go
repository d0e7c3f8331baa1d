package fixture_test

import (
	"testing"

	"github.com/loov/fizzbar/fixture"
)

// subtract is the literal loop from the fixture.
func subtract(x, y int) int {
	for x > y {
		x = x - y
	}
	return x
}

func TestMod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y int
		want int
	}{
		{x: 2, y: 5, want: 2},
		{x: 5, y: 5, want: 5},
		{x: 0, y: 5, want: 0},
		{x: -3, y: 5, want: -3},
		{x: 6, y: 5, want: 1},
		{x: 10, y: 5, want: 5},
		{x: 15, y: 3, want: 3},
		{x: 7, y: 3, want: 1},
		{x: 1, y: 1, want: 1},
		{x: 9, y: 1, want: 1},
	}

	for _, tt := range tests {
		if got := fixture.Mod(tt.x, tt.y); got != tt.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestModMatchesSubtraction(t *testing.T) {
	t.Parallel()

	for x := -20; x <= 100; x++ {
		for y := 1; y <= 17; y++ {
			if got, want := fixture.Mod(x, y), subtract(x, y); got != want {
				t.Fatalf("Mod(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestModNeverZero(t *testing.T) {
	t.Parallel()

	for x := 1; x <= 100; x++ {
		for _, y := range []int{3, 5} {
			if fixture.Mod(x, y) == 0 {
				t.Fatalf("Mod(%d, %d) == 0", x, y)
			}
		}
	}
}

func TestModNonPositiveDivisor(t *testing.T) {
	t.Parallel()

	if got := fixture.Mod(-5, -2); got != -5 {
		t.Errorf("Mod(-5, -2) = %d, want -5", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Mod(3, 0) did not panic")
		}
	}()
	fixture.Mod(3, 0)
}
