package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gomarkdown/markdown/ast"
	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
	"github.com/saneatsu/saneatsu.me-sub001/internal/markdown"
	"github.com/saneatsu/saneatsu.me-sub001/internal/plugins"
	"github.com/spf13/cobra"
)

var renderLang string
var dump bool

func init() {
	renderCmd.Flags().StringVarP(&renderLang, "lang", "l", "", "language of the wikilink targets")
	renderCmd.Flags().BoolVarP(&dump, "dump", "", false, "print the transformed tree instead of HTML")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a Markdown file",
	Long:  `Convert the wikilinks of a Markdown file and print the HTML after the plugin pipeline.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, err := markdown.ParseFile(args[0])
		exitOnError(err)

		lang := resolveLanguage(renderLang)
		resolver := core.NewWikilinkResolver(currentStore())
		content, err := resolver.ConvertWikilinks(context.Background(), file.Body.String(), lang)
		exitOnError(err)

		doc := plugins.Process([]byte(content))
		if dump {
			ast.Print(os.Stdout, doc)
			return
		}
		fmt.Print(string(plugins.RenderHTML(doc)))
	},
}
