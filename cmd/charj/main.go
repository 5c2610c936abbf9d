// Command charj parses Charj token streams and prints the resulting syntax
// trees.
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "charj",
		Short:         "Charj language front end",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Version = version + " (commit=" + commit + ", built=" + date + ")"
	root.SetVersionTemplate("charj version {{.Version}}\n")
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().String("config", "charj.toml", "Configuration file (optional)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")

	root.AddCommand(newParseCmd(), newLiteralCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the charj version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("charj version %s\n", cmd.Root().Version)
		},
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("charj: ")

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
