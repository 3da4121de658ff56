package demo

import (
	"fmt"
	"io"
)

// globalVar is set once and never read.
const globalVar = 10

// Point is a two-field record used by the struct demo
type Point struct {
	X int
	Y int
}

// Run executes every demonstration routine in order, writing to w.
// Write errors are ignored so the transcript never aborts halfway.
func Run(w io.Writer) {
	PrintMessage(w, "Hello, World!")

	// Arithmetic
	sum := Add(5, 3)
	fmt.Fprintf(w, "Sum: %d\n", sum)

	// Conditionals
	if sum > 5 {
		fmt.Fprintln(w, "Sum is greater than 5")
	} else {
		fmt.Fprintln(w, "Sum is not greater than 5")
	}

	Loops(w)
	Switch(w)
	Array(w)
	Pointer(w)
	Struct(w)
	ComplexIfElse(w, 15)
}

// PrintMessage writes message followed by a newline
func PrintMessage(w io.Writer, message string) {
	fmt.Fprintln(w, message)
}

// Add returns a + b
func Add(a, b int) int {
	return a + b
}

// Loops counts 0..4 with a three-clause for loop and then with a
// condition-only loop.
func Loops(w io.Writer) {
	for i := 0; i < 5; i++ {
		fmt.Fprintf(w, "For loop iteration: %d\n", i)
	}

	i := 0
	for i < 5 {
		fmt.Fprintf(w, "While loop iteration: %d\n", i)
		i++
	}
}

// Switch prints the label for the fixed number 2
func Switch(w io.Writer) {
	number := 2
	fmt.Fprintln(w, NumberLabel(number))
}

// NumberLabel maps a number to the message printed by Switch
func NumberLabel(number int) string {
	switch number {
	case 1:
		return "Number is 1"
	case 2:
		return "Number is 2"
	default:
		return "Number is not 1 or 2"
	}
}

// Array prints each element of a fixed five-element array with its index
func Array(w io.Writer) {
	arr := [5]int{1, 2, 3, 4, 5}
	for i := 0; i < len(arr); i++ {
		fmt.Fprintf(w, "Array element %d: %d\n", i, arr[i])
	}
}

// Pointer prints a value, the value read through a pointer to it, and
// the address of both. The two addresses are always the same.
func Pointer(w io.Writer) {
	v := 10
	ptr := &v
	fmt.Fprintf(w, "Value of var: %d\n", v)
	fmt.Fprintf(w, "Value of *ptr: %d\n", *ptr)
	fmt.Fprintf(w, "Address of var: %p\n", &v)
	fmt.Fprintf(w, "Address stored in ptr: %p\n", ptr)
}

// Struct builds a Point and prints its fields
func Struct(w io.Writer) {
	var p1 Point
	p1.X = 10
	p1.Y = 20

	fmt.Fprintf(w, "Point p1: (%d, %d)\n", p1.X, p1.Y)
}

// ComplexIfElse prints the classification of value
func ComplexIfElse(w io.Writer, value int) {
	fmt.Fprintf(w, "Value is %s\n", Classify(value))
}
