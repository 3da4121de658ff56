package routines

import (
	"bytes"
	"testing"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}

	for _, tt := range tests {
		if got := Factorial(tt.n); got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFactorialWraps(t *testing.T) {
	// Past 20! the product no longer fits; it should wrap, not panic
	want := 1
	for i := 2; i <= 25; i++ {
		want *= i
	}
	if got := Factorial(25); got != want {
		t.Errorf("Factorial(25) = %d, want wrapped product %d", got, want)
	}
}

func TestSumArray(t *testing.T) {
	tests := []struct {
		name string
		arr  []int
		want int
	}{
		{"nil", nil, 0},
		{"empty", []int{}, 0},
		{"single", []int{7}, 7},
		{"one to five", []int{1, 2, 3, 4, 5}, 15},
		{"mixed signs", []int{-5, 10, -2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumArray(tt.arr); got != tt.want {
				t.Errorf("SumArray(%v) = %d, want %d", tt.arr, got, tt.want)
			}
		})
	}
}

func TestPrintPerson(t *testing.T) {
	var buf bytes.Buffer
	p := Person{Name: "Alice", Age: 30}
	PrintPerson(&buf, p)

	if buf.String() != "Name: Alice, Age: 30\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
	if p.Name != "Alice" || p.Age != 30 {
		t.Errorf("person was modified: %+v", p)
	}
}
