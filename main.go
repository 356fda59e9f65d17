package main

import (
	"fmt"
	"os"

	"github.com/emdom/emdom/parser"
	"github.com/emdom/emdom/parser/spec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagScripts bool
	flagFormat  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "emdom [file]",
	Short: "Parse markup into a node tree and print it",
	Long: `emdom reads HTML or XML markup from a file (or stdin when no file is
given), runs it through the lenient parser, and prints the resulting
tree. A debugging harness for the library, not a parsing service.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		in := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrapf(err, "opening %s", args[0])
			}
			defer f.Close()
			in = f
		}

		doc := spec.NewDocumentNode()
		root, err := parser.ParseReader(doc, in, parser.Options{EvaluateScripts: flagScripts})
		if err != nil {
			return err
		}

		switch flagFormat {
		case "tree":
			fmt.Println(root.String())
		case "html":
			fmt.Println(parser.SerializeFragment(root))
		default:
			return errors.Errorf("unknown format %q (want tree or html)", flagFormat)
		}
		return nil
	},
}

func main() {
	rootCmd.Flags().BoolVar(&flagScripts, "scripts", false, "tag script-like elements as evaluable")
	rootCmd.Flags().StringVar(&flagFormat, "format", "tree", "output format: tree or html")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
