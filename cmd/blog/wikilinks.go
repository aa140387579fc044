package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
	"github.com/spf13/cobra"
)

var wikilinksLang string
var showDiff bool
var check bool

func init() {
	wikilinksCmd.Flags().StringVarP(&wikilinksLang, "lang", "l", "", "language of the wikilink targets")
	wikilinksCmd.Flags().BoolVarP(&showDiff, "diff", "", false, "show the conversion as a patch")
	wikilinksCmd.Flags().BoolVarP(&check, "check", "", false, "fail when a wikilink cannot be resolved")
	rootCmd.AddCommand(wikilinksCmd)
}

var wikilinksCmd = &cobra.Command{
	Use:   "wikilinks <file>",
	Short: "Resolve the wikilinks of a Markdown file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, err := markdown.ParseFile(args[0])
		exitOnError(err)

		ctx := context.Background()
		lang := resolveLanguage(wikilinksLang)
		resolver := core.NewWikilinkResolver(currentStore())
		content := file.Body.String()

		if showDiff {
			converted, err := resolver.ConvertWikilinks(ctx, content, lang)
			exitOnError(err)
			if converted != content {
				printDiff(godiffpatch.GeneratePatch(args[0], content, converted))
			}
			return
		}

		missing, err := resolver.Missing(ctx, content, lang)
		exitOnError(err)
		fmt.Print(formatWikilinks(file.Body.WikilinkReferences(), missing, file.BodyLine))
		if check && len(missing) > 0 {
			closeStore()
			os.Exit(1)
		}
	},
}

// formatWikilinks lists the wikilinks with their line in the file and their status.
func formatWikilinks(wikilinks, missing []markdown.Wikilink, bodyLine int) string {
	unresolved := make(map[string]bool)
	for _, wikilink := range missing {
		unresolved[wikilink.String()] = true
	}
	offset := 0
	if bodyLine > 0 {
		offset = bodyLine - 1
	}

	var sb strings.Builder
	for _, wikilink := range wikilinks {
		status := "ok"
		if unresolved[wikilink.String()] {
			status = "missing"
		}
		fmt.Fprintf(&sb, "%d: %s %s\n", wikilink.Line+offset, wikilink, status)
	}
	return sb.String()
}

func printDiff(diff string) {
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			color.Red(line)
		} else if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			color.Green(line)
		} else {
			fmt.Println(line)
		}
	}
}
