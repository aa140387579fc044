package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
	"github.com/spf13/cobra"
)

var suggestLang string
var limit int

func init() {
	suggestCmd.Flags().StringVarP(&suggestLang, "lang", "l", "", "language of the articles")
	suggestCmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of suggestions")
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Suggest wikilink targets",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		service := core.NewSuggestionService(currentStore()).Configure(config.ConfigFile)
		result, err := service.Search(context.Background(), core.SuggestionQuery{
			Query:    strings.Join(args, " "),
			Language: resolveLanguage(suggestLang),
			Limit:    limit,
		})
		exitOnError(err)

		for _, suggestion := range result.Suggestions {
			fmt.Printf("%-40s %s\n", suggestion.Wikilink(), color.New(color.Faint).Sprint(describeSuggestion(suggestion)))
		}
	},
}

func describeSuggestion(s core.Suggestion) string {
	if s.Type == core.SuggestionHeading {
		return fmt.Sprintf("%s %s (%s)", strings.Repeat("#", s.HeadingLevel), s.Title, s.ArticleTitle)
	}
	return s.Title
}
