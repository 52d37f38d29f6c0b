package main

import "github.com/fatih/color"

func success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func warning(msg string) string {
	return color.New(color.FgYellow).Sprint("! ") + msg
}

func failure(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
