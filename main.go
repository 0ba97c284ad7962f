package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/abdidvp/pricecalc/internal/adapters/inbound/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env in the working directory; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Error: loading .env:", err)
		os.Exit(1)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
