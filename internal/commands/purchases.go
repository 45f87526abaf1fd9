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
	"github.com/bakeledger-dev/bakeledger/internal/rules"
	"github.com/bakeledger-dev/bakeledger/internal/runlog"
)

// Fixed output filenames, written next to the input statement.
const (
	defaultPurchaseInput = "alipay_record.txt"
	configFileName       = "bakeledger.yaml"

	materialsOrdersFile = "raw_material_consumable_orders.csv"
	overseasOrdersFile  = "overseas_orders.csv"
	equipmentOrdersFile = "equipment_orders.csv"
	excludedOrdersFile  = "excluded_orders.csv"
	statisticsFile      = "statistics.txt"
)

func newPurchasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchases [file]",
		Short: "Classify an Alipay purchase export and write category reports",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultPurchaseInput
			if len(args) > 0 {
				input = args[0]
			}
			absInput, err := filepath.Abs(input)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runPurchases(absInput)
		},
	}
	return cmd
}

func runPurchases(input string) error {
	dir := filepath.Dir(input)

	cfg, err := config.Load(filepath.Join(dir, configFileName))
	if err != nil {
		return err
	}
	ruleset, err := loadRules(dir, cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening statement file: %w", err)
	}
	defer f.Close()

	parser := &importer.AlipayParser{}
	records, err := parser.Parse(f)
	if err != nil {
		return err
	}
	fmt.Printf("Parsed %d expense records from %s\n", len(records), filepath.Base(input))

	classifier := classify.NewClassifier(ruleset, cfg.EquipmentThreshold())
	classified := make([]model.ClassifiedPurchase, 0, len(records))
	for _, rec := range records {
		classified = append(classified, model.ClassifiedPurchase{
			PurchaseRecord: rec,
			Classification: classifier.Classify(rec),
		})
	}

	totals := report.Accumulate(classified)
	fmt.Println("\nCategory summary:")
	for _, cat := range report.CategoryOrder {
		fmt.Printf("  %-16s %4d records  %12s\n", cat, totals.Count(cat), totals.Sum(cat).StringFixed(2))
	}

	excludedStats, err := writePurchaseReports(dir, classified, totals)
	if err != nil {
		return err
	}
	fmt.Printf("\nExcluded: %d hard-excluded (%s), %d for manual review (%s)\n",
		excludedStats.AbsoluteCount, excludedStats.AbsoluteTotal.StringFixed(2),
		excludedStats.PossiblyCount, excludedStats.PossiblyTotal.StringFixed(2))

	entry := runlog.Entry{
		Timestamp: time.Now(),
		Command:   "purchases",
		InputFile: filepath.Base(input),
		Records:   len(records),
		Details:   fmt.Sprintf("reviewable=%d", excludedStats.PossiblyCount),
	}
	if err := runlog.Append(dir, []runlog.Entry{entry}); err != nil {
		return err
	}

	fmt.Println("Done.")
	return nil
}

func writePurchaseReports(dir string, classified []model.ClassifiedPurchase, totals *report.Totals) (report.ExcludedStats, error) {
	var stats report.ExcludedStats

	err := writeFile(filepath.Join(dir, materialsOrdersFile), func(f *os.File) error {
		return report.WriteOrderList(f, classified, model.CategoryRawMaterial, model.CategoryConsumable)
	})
	if err != nil {
		return stats, err
	}

	err = writeFile(filepath.Join(dir, overseasOrdersFile), func(f *os.File) error {
		return report.WriteOrderList(f, classified, model.CategoryOverseasPayment)
	})
	if err != nil {
		return stats, err
	}

	err = writeFile(filepath.Join(dir, equipmentOrdersFile), func(f *os.File) error {
		return report.WriteOrderList(f, classified, model.CategoryEquipment)
	})
	if err != nil {
		return stats, err
	}

	err = writeFile(filepath.Join(dir, excludedOrdersFile), func(f *os.File) error {
		var werr error
		stats, werr = report.WriteExcludedList(f, classified)
		return werr
	})
	if err != nil {
		return stats, err
	}

	err = writeFile(filepath.Join(dir, statisticsFile), func(f *os.File) error {
		return report.WriteStatistics(f, totals)
	})
	return stats, err
}

func loadRules(dir string, cfg *config.Config) (*rules.Ruleset, error) {
	if cfg.RulesFile == "" {
		return rules.Default(), nil
	}
	path := cfg.RulesFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return rules.Load(path)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	fmt.Printf("Wrote %s\n", filepath.Base(path))
	return nil
}
