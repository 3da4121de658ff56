//go:build ignore

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch task := os.Args[1]; task {
	case "build":
		run("go", "build", "-o", "bin/langdemo", "./cmd/langdemo")
	case "test":
		run("go", "test", "-v", "./...")
	case "test-coverage":
		run("go", "test", "-coverprofile=coverage.out", "./...")
		run("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
	case "install":
		run("go", "install", "./cmd/langdemo")
	case "fmt":
		run("go", "fmt", "./...")
	case "lint":
		run("golangci-lint", "run")
	case "clean":
		clean()
	case "run":
		run("go", "run", "./cmd/langdemo")
	default:
		fmt.Printf("Unknown task: %s\n\n", task)
		printUsage()
		os.Exit(1)
	}
}

func run(command string, args ...string) {
	cmd := exec.Command(command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("Error: Command failed: %s %v\n", command, args)
		os.Exit(1)
	}
}

func clean() {
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := os.RemoveAll(path); err != nil {
			fmt.Printf("Warning: Failed to remove %s: %v\n", path, err)
		}
	}
	fmt.Println("Cleaned build artifacts")
}

func printUsage() {
	exe := filepath.Base(os.Args[0])
	fmt.Printf("Usage: go run %s <task>\n\n", exe)
	fmt.Println("Available tasks:")
	fmt.Println("  build           - Build the langdemo binary")
	fmt.Println("  test            - Run all tests")
	fmt.Println("  test-coverage   - Run tests with coverage report")
	fmt.Println("  install         - Install the binary to $GOPATH/bin")
	fmt.Println("  fmt             - Format code")
	fmt.Println("  lint            - Run linter (requires golangci-lint)")
	fmt.Println("  clean           - Remove build artifacts")
	fmt.Println("  run             - Run the demonstration")
}
