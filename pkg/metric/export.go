package metric

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eth-easl/altplanner/pkg/analysis"
	"github.com/eth-easl/altplanner/pkg/common"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const summaryFileName = "summary.csv"

// Exporter writes analysis results as CSV files into one directory per run.
type Exporter struct {
	RunID     string
	OutputDir string
}

// NewExporter creates <prefix>/<run id>.
func NewExporter(prefix string) (*Exporter, error) {
	runID := uuid.New().String()
	dir := filepath.Join(prefix, runID)

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	return &Exporter{RunID: runID, OutputDir: dir}, nil
}

func TableFileName(model common.AccelerationModel, kind common.StatisticalModel) string {
	return fmt.Sprintf("%s_%s.csv", model.Slug(), kind)
}

// FinishAndSave writes the summary and all sample-size tables and returns the written paths.
func (ep *Exporter) FinishAndSave(result *analysis.Result) ([]string, error) {
	summaryPath := filepath.Join(ep.OutputDir, summaryFileName)
	if err := writeCSV(summaryPath, &result.Summary); err != nil {
		return nil, err
	}
	written := []string{summaryPath}

	for _, model := range common.AccelerationModels {
		for _, kind := range common.StatisticalModels {
			rows, ok := result.Table(model, kind)
			if !ok {
				return nil, errors.Errorf("missing %s table for %s", kind, model)
			}

			path := filepath.Join(ep.OutputDir, TableFileName(model, kind))
			if err := writeCSV(path, &rows); err != nil {
				return nil, err
			}
			written = append(written, path)
		}
	}

	log.Infof("Exported %d files to %s", len(written), ep.OutputDir)

	return written, nil
}

func writeCSV(path string, records interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	return finishCSV(f, path, records)
}

func finishCSV(f *os.File, path string, records interface{}) (err error) {
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "failed to close %s", path)
		}
	}()

	if err := gocsv.MarshalFile(records, f); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}
