package transform

import (
	"fmt"

	"github.com/ukaji3/sheetops-go/pkg/sheetops/config"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
	"go.uber.org/zap"
)

// Column names the pipeline reads and derives.
const (
	ColDate      = "Date"
	ColCategory  = "Category"
	ColAmount    = "Amount"
	ColYearMonth = "YearMonth"
)

// Result holds the four tables produced by a pipeline run.
type Result struct {
	// Cleaned is the input with empty rows dropped and derived columns added.
	Cleaned *models.Table
	// Positive holds the cleaned rows with a positive amount.
	Positive *models.Table
	// Totals sums the positive amounts per category (and month).
	Totals *models.Table
	// Pivot is category by month, or nil when the input has no date column.
	Pivot *models.Table
}

// Pipeline runs the clean, derive, filter, group and pivot steps.
type Pipeline struct {
	Config config.PipelineConfig
	Logger *zap.Logger
}

// NewPipeline creates a pipeline. A nil logger discards output.
func NewPipeline(cfg config.PipelineConfig, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{Config: cfg, Logger: logger}
}

// Run applies the pipeline to t. The input table is not modified.
func (p *Pipeline) Run(t *models.Table) (*Result, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	df := DropEmptyRows(t)
	log.Debug("dropped empty rows", zap.Int("before", t.Len()), zap.Int("after", df.Len()))

	df = EnsureColumn(df, ColAmount, models.Number(p.Config.DefaultAmount))
	df, err := CoerceNumeric(df, ColAmount)
	if err != nil {
		return nil, fmt.Errorf("coerce amount: %w", err)
	}

	hasDate := df.HasColumn(ColDate)
	if hasDate {
		if df, err = ParseDates(df, ColDate); err != nil {
			return nil, fmt.Errorf("parse dates: %w", err)
		}
		if df, err = DeriveYearMonth(df, ColDate, ColYearMonth); err != nil {
			return nil, fmt.Errorf("derive year-month: %w", err)
		}
	} else {
		log.Debug("no date column, skipping year-month and pivot")
	}

	vatCol := VATColumn(p.Config.VATRate)
	if df, err = DeriveVAT(df, ColAmount, vatCol, p.Config.VATRate); err != nil {
		return nil, fmt.Errorf("derive vat: %w", err)
	}
	df = EnsureColumn(df, ColCategory, models.Text(p.Config.DefaultCategory))

	pos, err := FilterPositive(df, ColAmount)
	if err != nil {
		return nil, fmt.Errorf("filter positive: %w", err)
	}
	log.Debug("filtered positive amounts", zap.Int("rows", pos.Len()))

	keys := []string{ColCategory}
	if hasDate {
		keys = append(keys, ColYearMonth)
	}
	totals, err := GroupSum(pos, keys, ColAmount)
	if err != nil {
		return nil, fmt.Errorf("group totals: %w", err)
	}

	res := &Result{Cleaned: df, Positive: pos, Totals: totals}
	if hasDate {
		if res.Pivot, err = Pivot(pos, ColCategory, ColYearMonth, ColAmount); err != nil {
			return nil, fmt.Errorf("pivot: %w", err)
		}
	}

	log.Info("pipeline finished",
		zap.Int("cleaned", df.Len()),
		zap.Int("positive", pos.Len()),
		zap.Int("totals", totals.Len()),
		zap.Bool("pivot", res.Pivot != nil),
	)
	return res, nil
}
