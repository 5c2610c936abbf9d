package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/charj-lang/charj/internal/literal"
)

func newLiteralCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "literal NUMBER",
		Short: "Evaluate an integer literal such as 1_000 or 3e100",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mantissa, exponent, found := strings.Cut(strings.ToLower(args[0]), "e")
			if found && exponent == "" {
				return fmt.Errorf("invalid integer literal %q: empty exponent", args[0])
			}

			v, err := literal.Int(mantissa, exponent)
			if err != nil {
				return err
			}
			cmd.Println(v.String())
			return nil
		},
	}
}
