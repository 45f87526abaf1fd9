package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bakeledger-dev/bakeledger/internal/classify"
	"github.com/bakeledger-dev/bakeledger/internal/config"
	"github.com/bakeledger-dev/bakeledger/internal/importer"
	"github.com/bakeledger-dev/bakeledger/internal/model"
	"github.com/bakeledger-dev/bakeledger/internal/report"
	"github.com/bakeledger-dev/bakeledger/internal/runlog"
)

func newBankCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "bank <file> [output]",
		Short: "Classify a bank statement CSV into company/personal rows",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			output := ""
			if len(args) > 1 {
				output = args[1]
			}
			return runBank(input, output, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "cba", "bank CSV format")

	return cmd
}

func runBank(input, output, format string) error {
	dir := filepath.Dir(input)
	if output == "" {
		output = filepath.Join(dir, "classified_"+filepath.Base(input))
	} else if !filepath.IsAbs(output) {
		output = filepath.Join(dir, output)
	}

	cfg, err := config.Load(filepath.Join(dir, configFileName))
	if err != nil {
		return err
	}
	ruleset, err := loadRules(dir, cfg)
	if err != nil {
		return err
	}

	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown bank format %q", format)
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening statement file: %w", err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return err
	}

	classifier := classify.NewBankClassifier(ruleset, cfg.LargeAmount())
	classified := make([]model.ClassifiedBankTransaction, 0, len(txns))
	for _, txn := range txns {
		classified = append(classified, model.ClassifiedBankTransaction{
			BankTransaction:    txn,
			BankClassification: classifier.Classify(txn),
		})
	}

	if err := writeFile(output, func(f *os.File) error {
		return report.WriteClassifiedBank(f, classified)
	}); err != nil {
		return err
	}

	summary := report.SummarizeBank(classified)
	fmt.Printf("\nClassified %d transactions from %s\n\n", len(classified), filepath.Base(input))
	fmt.Println(summary.Render())
	fmt.Println("Note: unknown and low-confidence rows should be reviewed manually before final tax figures.")

	entry := runlog.Entry{
		Timestamp: time.Now(),
		Command:   "bank",
		InputFile: filepath.Base(input),
		Records:   len(classified),
		Details:   "format=" + format,
	}
	return runlog.Append(dir, []runlog.Entry{entry})
}
