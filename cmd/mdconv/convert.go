package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/mdconv"
	"github.com/tsawler/mdconv/format"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert files to Markdown",
	Long: `Convert reads each input file, converts it to Markdown, and writes the
result into the output directory. Formats are detected from the file
extension, then from the content; --format forces one format for every
input. Failed conversions are written as ERROR_<name>.md files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", ".", "output directory for .md files")
	convertCmd.Flags().String("format", "", "force input format: html, text, json, csv, xml, docx, image")
	convertCmd.Flags().String("delimiter", "", "field delimiter for tabular input (single character)")

	viper.BindPFlag("output", convertCmd.Flags().Lookup("output"))
	viper.BindPFlag("format", convertCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	outDir := viper.GetString("output")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	forced, err := parseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	delimStr, _ := cmd.Flags().GetString("delimiter")
	delimiter, err := parseDelimiter(delimStr)
	if err != nil {
		return err
	}

	inputs := make([]mdconv.Input, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		inputs = append(inputs, mdconv.Input{
			Name:      filepath.Base(path),
			Data:      data,
			Format:    forced,
			Delimiter: delimiter,
		})
	}

	docs := mdconv.ConvertBatch(inputs, func(done, total int) {
		if done < total {
			fmt.Fprintf(os.Stderr, "[%d/%d] converting %s\n", done+1, total, inputs[done].Name)
		} else {
			fmt.Fprintf(os.Stderr, "done: %d file(s)\n", total)
		}
	})

	for _, doc := range docs {
		outPath := filepath.Join(outDir, doc.Name)
		if err := os.WriteFile(outPath, []byte(doc.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Fprintln(os.Stderr, "wrote", outPath)
	}

	return nil
}

// parseDelimiter maps a --delimiter value to a rune. Empty means choose
// by extension.
func parseDelimiter(s string) (rune, error) {
	switch {
	case s == "":
		return 0, nil
	case s == `\t` || s == "tab":
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}

// parseFormat maps a --format value to a Format. Empty means detect.
func parseFormat(s string) (format.Format, error) {
	switch strings.ToLower(s) {
	case "":
		return format.Unknown, nil
	case "html":
		return format.HTML, nil
	case "text", "txt", "plaintext":
		return format.PlainText, nil
	case "json":
		return format.JSON, nil
	case "csv":
		return format.CSV, nil
	case "xml":
		return format.XML, nil
	case "docx":
		return format.DOCX, nil
	case "image":
		return format.Image, nil
	default:
		return format.Unknown, fmt.Errorf("unknown format %q", s)
	}
}
