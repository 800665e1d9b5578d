package main

import (
	"os"
	"os/exec"
	"path/filepath"
)

func main() {
	// Run the API server from the repository root so the migration
	// file:// source resolves.
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		panic(err)
	}

	goCmd := exec.Command("go", "run", "./cmd/server")
	goCmd.Stdout = os.Stdout
	goCmd.Stderr = os.Stderr
	goCmd.Dir = dir

	if err := goCmd.Run(); err != nil {
		panic(err)
	}
}
