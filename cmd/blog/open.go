package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
	"github.com/spf13/cobra"
)

var openLang string

func init() {
	openCmd.Flags().StringVarP(&openLang, "lang", "l", "", "language of the article")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <slug>",
	Short: "Open an article in the browser",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		lang := resolveLanguage(openLang)

		article, err := currentStore().SelectArticleBySlug(context.Background(), args[0], lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "No article %q found in %q\n", args[0], lang)
			closeStore()
			os.Exit(1)
		}

		url := config.ConfigFile.ArticleURL(article.Path())
		if err := browser.OpenURL(url); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to browse to %s: %v\n", url, err)
			closeStore()
			os.Exit(1)
		}
	},
}
