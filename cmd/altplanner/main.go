package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/eth-easl/altplanner/pkg/analysis"
	"github.com/eth-easl/altplanner/pkg/config"
	"github.com/eth-easl/altplanner/pkg/metric"
	"github.com/eth-easl/altplanner/pkg/plotter"

	log "github.com/sirupsen/logrus"
)

var (
	configPath   = flag.String("config", "cmd/config.json", "Path to planner configuration file")
	verbosity    = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	outputDir    = flag.String("output", "", "Overrides OutputPathPrefix of the configuration")
	enablePlots  = flag.Bool("plot", false, "Render test time plots next to the CSV tables")
	validateOnly = flag.Bool("validate", false, "Only validate the configuration")
)

func setupLogging(verbosity string) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	flag.Parse()
	setupLogging(*verbosity)

	cfg := config.ReadConfigurationFile(*configPath)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	if *validateOnly {
		log.Info("Configuration is valid.")
		return
	}
	if *outputDir != "" {
		cfg.OutputPathPrefix = *outputDir
	}

	result, err := analysis.RunAnalysisWithRange(cfg.ToParameterSet(), cfg.SampleRange())
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range result.Summary {
		log.Infof("%-18s AF = %10.4f  test time = %12.4f h = %10.4f d (%d days)",
			s.ModelName, s.AF, s.TestTimeHours, s.TestTimeDays, s.RoundedDays)
	}

	exporter, err := metric.NewExporter(cfg.OutputPathPrefix)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := exporter.FinishAndSave(result); err != nil {
		log.Fatal(err)
	}

	if cfg.EnablePlots || *enablePlots {
		paths, err := plotter.PlotAll(filepath.Join(exporter.OutputDir, "figs"), result)
		if err != nil {
			log.Fatal(err)
		}
		log.Infof("Rendered %d figures", len(paths))
	}
}
