package main

import (
	"fmt"
	"strings"

	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	"github.com/spf13/cobra"
)

var maxLevel int

func init() {
	headingsCmd.Flags().IntVarP(&maxLevel, "max-level", "m", markdown.DefaultHeadingMaxLevel, "deepest heading level to list")
	rootCmd.AddCommand(headingsCmd)
}

var headingsCmd = &cobra.Command{
	Use:   "headings <file>",
	Short: "List the headings of a Markdown file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, err := markdown.ParseFile(args[0])
		exitOnError(err)
		fmt.Print(formatHeadings(file.Body.Headings(maxLevel)))
	},
}

// formatHeadings prints one heading per line, indented by level, with its anchor.
func formatHeadings(headings []markdown.Heading) string {
	var sb strings.Builder
	for _, heading := range headings {
		sb.WriteString(strings.Repeat("  ", heading.Level-1))
		fmt.Fprintf(&sb, "%s (#%s)\n", heading.Text, heading.ID)
	}
	return sb.String()
}
