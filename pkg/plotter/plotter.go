package plotter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eth-easl/altplanner/pkg/analysis"
	"github.com/eth-easl/altplanner/pkg/common"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const figureSize = 5 * vg.Inch

func getXY(rows []common.SampleSizeRow) plotter.XYs {
	pts := make(plotter.XYs, len(rows))
	for i, row := range rows {
		pts[i].X = float64(row.SampleSize)
		pts[i].Y = row.TestTimeHours
	}

	return pts
}

func FigureFileName(model common.AccelerationModel) string {
	return model.Slug() + ".png"
}

// PlotFig draws test time against sample size for both plans of one model.
func PlotFig(outputDir string, tables analysis.ModelTables) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "failed to create figure directory")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (AF = %.2f)", tables.Model, tables.AF)
	p.X.Label.Text = "Sample size"
	p.Y.Label.Text = "Test time (hours)"
	p.Y.Min = 0

	err := plotutil.AddLinePoints(p,
		"Exponential", getXY(tables.Exponential),
		"Weibull", getXY(tables.Weibull),
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to add plot lines")
	}

	path := filepath.Join(outputDir, FigureFileName(tables.Model))
	if err := p.Save(figureSize, figureSize, path); err != nil {
		return "", errors.Wrapf(err, "failed to save %s", path)
	}

	log.Debug("Plotted ", path)

	return path, nil
}

func PlotAll(outputDir string, result *analysis.Result) ([]string, error) {
	var paths []string
	for _, tables := range result.Tables {
		path, err := PlotFig(outputDir, tables)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}
