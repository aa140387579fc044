package main

import (
	"fmt"
	"os"

	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Init a blog directory",
	Long:  `Create the .blog directory with the default configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		exitOnError(err)
		config, err := core.InitConfigFromDirectory(cwd)
		exitOnError(err)
		fmt.Printf("Initialized blog in %s\n", config.RootDirectory)
	},
}
