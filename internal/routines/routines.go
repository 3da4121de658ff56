package routines

import (
	"fmt"
	"io"
)

// Person holds a name and an age
type Person struct {
	Name string
	Age  int
}

// PrintPerson writes p as "Name: <name>, Age: <age>".
// p is taken by value and is not modified.
func PrintPerson(w io.Writer, p Person) {
	fmt.Fprintf(w, "Name: %s, Age: %d\n", p.Name, p.Age)
}

// Factorial returns n! computed recursively. Any n <= 1 yields 1.
// There is no overflow check; large n wraps like any other int product.
func Factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}

// SumArray returns the sum of all elements in arr, 0 when arr is empty
func SumArray(arr []int) int {
	sum := 0
	for i := 0; i < len(arr); i++ {
		sum += arr[i]
	}
	return sum
}
