package main

import (
	"fmt"
	"os"
	exit "os"
)

func run() int {
	os.Exit(1)
	return 0
}

func main() {
	fmt.Println("starting")
	if code := run(); code != 0 {
		os.Exit(code) // want "os.Exit called in main function of main package"
	}
	exit.Exit(0) // want "os.Exit called in main function of main package"
}
