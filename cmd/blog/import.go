package main

import (
	"context"
	"fmt"
	"os"

	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/console"
	"github.com/spf13/cobra"
)

var hideProgress bool

func init() {
	importCmd.Flags().BoolVar(&hideProgress, "no-progress", false, "do not report progress")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import [path...]",
	Short: "Import Markdown files",
	Long:  `Import Markdown files (default to the whole blog directory) in the database.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		importer := core.NewImporter(currentStore(), config)
		ctx := context.Background()

		if len(args) == 0 {
			args = []string{config.RootDirectory}
		}

		count := 0
		for _, path := range args {
			stat, err := os.Stat(path)
			exitOnError(err)
			if stat.IsDir() {
				if !hideProgress && core.CurrentLogger().VerboseLevel() == core.VerboseOff {
					var progress *console.ProgressLog
					importer.OnProgress(func(done, total int, file string) {
						if progress == nil {
							progress = console.NewProgressLog(total, console.ShowPercent(), console.ToWriter(os.Stderr))
						}
						progress.Log(done, file)
						if done == total {
							progress.Clear("")
						}
					})
				}
				articles, err := importer.ImportDir(ctx, path)
				count += len(articles)
				exitOnError(err)
				continue
			}
			_, err = importer.ImportFile(ctx, path)
			exitOnError(err)
			count++
		}
		fmt.Printf("%d article(s) imported\n", count)
	},
}
