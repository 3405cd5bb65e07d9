// venus-lex dumps the token stream of a Venus source, either from a file or
// interactively line by line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"

	"github.com/qexat/venusc/lexer"
	"github.com/qexat/venusc/tokens"
)

func init() {
	log.SetPrefix("[venus-lex] ")
	log.SetFlags(0)
}

// tokenRow is the JSON shape of one token.
type tokenRow struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
	Offset int    `json:"offset"`
	End    int    `json:"end"`
}

func rows(list []tokens.Token) []tokenRow {
	out := make([]tokenRow, 0, len(list))
	for _, tok := range list {
		out = append(out, tokenRow{
			Kind:   tok.Kind.Name(),
			Lexeme: tok.Lexeme,
			Offset: tok.Offset,
			End:    tok.Span().End,
		})
	}
	return out
}

func printTokens(w io.Writer, list []tokens.Token, asJSON bool) error {
	if asJSON {
		return json.MarshalWrite(w, rows(list), jsontext.Expand(true), jsontext.WithIndent("  "))
	}
	for _, tok := range list {
		fmt.Fprintln(w, tok)
	}
	return nil
}

func tokensCmd() *cobra.Command {
	var asJSON *bool

	cmd := cobra.Command{
		Use:   "tokens [FILE]",
		Short: "lex a Venus source file (or stdin) and print its tokens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			if len(args) == 1 {
				source, err = os.ReadFile(args[0])
			} else {
				source, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("reading source: %w", err)
			}

			list, err := lexer.Lex(string(source))
			if err != nil {
				return err
			}
			return printTokens(os.Stdout, list, *asJSON)
		},
	}

	asJSON = cmd.Flags().Bool("json", false, "print the token stream as JSON")

	return &cmd
}

func replCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "repl",
		Short: "lex standard input line by line",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			in := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !in.Scan() {
					return
				}

				list, err := lexer.Lex(in.Text())
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					continue
				}
				for _, tok := range list {
					fmt.Println(tok)
				}
			}
		},
	}

	return &cmd
}

func main() {
	root := cobra.Command{
		Use:   "venus-lex",
		Short: "lexical front end of the Venus compiler",
	}
	root.AddCommand(tokensCmd(), replCmd())

	if err := root.Execute(); err != nil {
		log.Fatalln(err)
	}
}
