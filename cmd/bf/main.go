package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	// This ensures Polish and other Unicode characters display correctly
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := NewCLI().ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, errAborted) {
			os.Exit(exitAborted)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
