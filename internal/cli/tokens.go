package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slatelang/slate/pkg/lexer"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "List the lexer tokens of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			toks, err := lexer.New(string(src)).All()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(args[0]))
			for _, t := range toks {
				pos := styleDim.Render(fmt.Sprintf("%4d:%-3d", t.Line, t.Col))
				fmt.Fprintf(out, "%s %s\n", pos, t)
			}
			return nil
		},
	}
}
