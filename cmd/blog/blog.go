package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var rootCmd = &cobra.Command{
	Use:   "blog",
	Short: "Manage the articles of the blog",
	Long:  `Import Markdown articles, resolve their wikilinks and serve them over HTTP.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose output. The most verbose level wins when multiple flags are passsed.
		if verboseInfo {
			core.CurrentLogger().SetVerboseLevel(core.VerboseInfo)
		}
		if verboseDebug {
			core.CurrentLogger().SetVerboseLevel(core.VerboseDebug)
		}
		if verboseTrace {
			core.CurrentLogger().SetVerboseLevel(core.VerboseTrace)
		}
	},
}

func init() {
	// Use PersistentFlags to make flags accessible to sub-commands
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
}

func Execute() {
	defer closeStore()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		closeStore()
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// store is opened by the commands requiring it.
var store *core.SQLiteStore

func currentStore() *core.SQLiteStore {
	if store == nil {
		store = core.CurrentStore()
	}
	return store
}

func closeStore() {
	if store != nil {
		store.Close()
		store = nil
	}
}

// resolveLanguage exits when the language is not supported.
func resolveLanguage(lang string) string {
	result, err := core.CurrentConfig().ResolveLanguage(lang)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return result
}

// exitOnError prints the error and exits.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeStore()
		os.Exit(1)
	}
}
