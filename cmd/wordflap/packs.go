package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordflap/internal/registry"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List built-in word packs",
	Long:  `Shows the word packs compiled into wordflap.`,
	Args:  cobra.NoArgs,
	Run:   runPacks,
}

func runPacks(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No word packs available.")
		return
	}

	fmt.Println("Available word packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Words", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, p := range packs {
		fmt.Printf("  %-*s  %-5d  %s\n", maxIDLen, p.ID, p.Words, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'wordflap play --pack <id>' to play a pack.")
}
