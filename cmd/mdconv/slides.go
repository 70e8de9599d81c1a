package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/mdconv"
)

var slidesCmd = &cobra.Command{
	Use:   "slides <file.html>",
	Short: "Convert a slide-deck page into per-slide Markdown files",
	Long: `Slides splits a hypertext page into slide segments and writes one
slide_NN.md per segment plus a concatenated full_presentation.md. A page
with no slide containers is written as a single Markdown file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSlides,
}

func init() {
	slidesCmd.Flags().StringP("output", "o", ".", "output directory for .md files")

	rootCmd.AddCommand(slidesCmd)
}

func runSlides(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("output")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	docs, err := mdconv.ConvertMarkup(string(data), filepath.Base(args[0]))
	if err != nil {
		return err
	}

	for _, doc := range docs {
		outPath := filepath.Join(outDir, doc.Name)
		if err := os.WriteFile(outPath, []byte(doc.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Fprintln(os.Stderr, "wrote", outPath)
	}

	return nil
}
