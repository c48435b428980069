package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/synopsis/internal/docs"
)

var (
	codeLang   string
	codeFile   string
	codeOffset int
	codeLine   string
)

// codeCmd represents the code command
var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Print the code to document at a cursor position",
	Long: `Code resolves a cursor with no selection. On the first line of a function,
method or type it prints the whole construct; elsewhere it prints the cursor's
line if that line parses by itself, and fails otherwise.

Examples:
  synopsis code --file main.go --offset 120
  synopsis code --lang python --file app.py --offset 0 --line 'def run():'
`,
	Args: cobra.NoArgs,
	RunE: runCode,
}

func init() {
	rootCmd.AddCommand(codeCmd)
	codeCmd.Flags().StringVarP(&codeLang, "lang", "l", "", "language id (inferred from --file when omitted)")
	codeCmd.Flags().StringVarP(&codeFile, "file", "f", "", "file holding the cursor")
	codeCmd.Flags().IntVarP(&codeOffset, "offset", "o", 0, "byte offset of the cursor")
	codeCmd.Flags().StringVar(&codeLine, "line", "", "text of the cursor's line (read from --file when omitted)")
	_ = codeCmd.MarkFlagRequired("file")
}

func runCode(cmd *cobra.Command, args []string) error {
	rt, err := loadSession()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(codeFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	language, err := resolveLanguage(codeLang, codeFile)
	if err != nil {
		return err
	}

	line := codeLine
	if !cmd.Flags().Changed("line") {
		line = lineAt(string(data), codeOffset)
	}
	return executeCode(cmd.Context(), rt.service, language, string(data), codeOffset, line, cmd.OutOrStdout())
}

func executeCode(ctx context.Context, svc *docs.Service, language, file string, offset int, line string, out io.Writer) error {
	if offset < 0 || offset > len(file) {
		return fmt.Errorf("offset %d is outside the file (0-%d)", offset, len(file))
	}
	code, err := svc.GetCode(ctx, file, language, offset, line)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, code)
	return err
}

// lineAt returns the line of text containing offset, without its newline.
func lineAt(text string, offset int) string {
	if offset < 0 || offset > len(text) {
		return ""
	}
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		return text[start:]
	}
	return text[start : offset+end]
}
