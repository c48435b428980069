package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/synopsis/internal/docs"
	"github.com/mvp-joe/synopsis/internal/languages"
)

var (
	synopsisLang  string
	synopsisFile  string
	synopsisCode  string
	synopsisStdin bool
)

// synopsisCmd represents the synopsis command
var synopsisCmd = &cobra.Command{
	Use:   "synopsis",
	Short: "Print the documentation shape of a code selection as JSON",
	Long: `Synopsis parses a selection of code and prints what its doc comment should
describe. Methods are resolved against the enclosing file when --file is given.

Examples:
  # A standalone function
  synopsis synopsis --lang go --code 'func max(a, b int) int { return a }'

  # A method, resolved inside its class
  sed -n 12p src/shapes.ts | synopsis synopsis --stdin --file src/shapes.ts
`,
	Args: cobra.NoArgs,
	RunE: runSynopsis,
}

func init() {
	rootCmd.AddCommand(synopsisCmd)
	synopsisCmd.Flags().StringVarP(&synopsisLang, "lang", "l", "", "language id (inferred from --file when omitted)")
	synopsisCmd.Flags().StringVarP(&synopsisFile, "file", "f", "", "file enclosing the selection")
	synopsisCmd.Flags().StringVarP(&synopsisCode, "code", "c", "", "selected code")
	synopsisCmd.Flags().BoolVar(&synopsisStdin, "stdin", false, "read the selected code from stdin")
	synopsisCmd.MarkFlagsMutuallyExclusive("code", "stdin")
	synopsisCmd.MarkFlagsOneRequired("code", "stdin")
}

func runSynopsis(cmd *cobra.Command, args []string) error {
	rt, err := loadSession()
	if err != nil {
		return err
	}

	selection := synopsisCode
	if synopsisStdin {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		selection = string(data)
	}

	var file string
	if synopsisFile != "" {
		data, err := os.ReadFile(synopsisFile)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		file = string(data)
	}

	language, err := resolveLanguage(synopsisLang, synopsisFile)
	if err != nil {
		return err
	}
	return executeSynopsis(cmd.Context(), rt.service, language, selection, file, cmd.OutOrStdout())
}

// executeSynopsis writes the synopsis of selection as indented JSON.
func executeSynopsis(ctx context.Context, svc *docs.Service, language, selection, file string, out io.Writer) error {
	synopsis := svc.GetSynopsis(ctx, selection, language, file)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(synopsis)
}

// resolveLanguage prefers an explicit id and otherwise infers one from the
// file extension.
func resolveLanguage(lang, fileName string) (string, error) {
	if lang != "" {
		return lang, nil
	}
	if id := languages.FromFileName(fileName, ""); id != "" {
		return id, nil
	}
	if fileName == "" {
		return "", fmt.Errorf("--lang is required when --file is not given")
	}
	return "", fmt.Errorf("cannot infer language of %s, pass --lang", fileName)
}
