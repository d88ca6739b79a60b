// The simul binary runs one training experiment described by a TOML file,
// or by built-in defaults when no file is given. It trains on a loaded or
// synthetic batch, logs per-interval losses, prints the run summary, and
// can write the loss curve to an image.
package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/BurntSushi/toml"
	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/gonum/mat"

	"github.com/denselab/scratchmlp"
	"github.com/denselab/scratchmlp/training"
	"github.com/denselab/scratchmlp/utils"
)

// RunConfig stores the state of one training run.
type RunConfig struct {
	Dimensions  []int
	BatchSize   int
	Epochs      int
	LearnRate   float64
	Momentum    float64
	ReportEvery int
	Seed        int64

	// optional data files, one sample per line; when absent a synthetic
	// batch is generated from the seed
	FeaturesFile string
	LabelsFile   string

	// optional loss-curve image, format from the extension
	PlotFile string
}

func defaultRunConfig() RunConfig {
	return RunConfig{
		Dimensions:  []int{784, 15, 10},
		BatchSize:   13,
		Epochs:      scratchmlp.DefaultEpochs,
		LearnRate:   scratchmlp.DefaultLearningRate,
		Momentum:    scratchmlp.DefaultMomentum,
		ReportEvery: scratchmlp.DefaultReportEvery,
		Seed:        scratchmlp.DefaultSeed,
	}
}

func main() {
	configFile := flag.String("config", "", "TOML run configuration, defaults used when empty")
	debug := flag.Int("debug", 2, "debug level")
	flag.Parse()
	log.SetDebugVisible(*debug)

	cfg := defaultRunConfig()
	if *configFile != "" {
		if _, err := toml.DecodeFile(*configFile, &cfg); err != nil {
			log.Fatal("reading run config:", err)
		}
	}
	log.Lvlf2("Run config: %+v", cfg)

	rng := rand.New(rand.NewSource(cfg.Seed))

	x, labels := batch(cfg, rng)
	classes := cfg.Dimensions[len(cfg.Dimensions)-1]
	y, err := utils.OneHot(labels, classes)
	if err != nil {
		log.Fatal(err)
	}

	model, err := scratchmlp.NewModel(cfg.Dimensions, rng)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	history, err := training.Train(model, x, y, training.Config{
		Epochs:      cfg.Epochs,
		LearnRate:   cfg.LearnRate,
		Momentum:    cfg.Momentum,
		ReportEvery: cfg.ReportEvery,
	})
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	summary, err := history.Summary()
	if err != nil {
		log.Fatal(err)
	}
	log.Lvlf1("Trained %d epochs in %s", cfg.Epochs, elapsed)
	log.Lvlf1("Loss: first %.6f, last %.6f, min %.6f, mean %.6f, stddev %.6f",
		summary.First, summary.Last, summary.Min, summary.Mean, summary.StdDev)

	scores, err := model.Forward(x)
	if err != nil {
		log.Fatal(err)
	}
	utils.PrintTrainStats(scores, labels)

	if cfg.PlotFile != "" {
		if err := utils.LossCurve(history.Losses(), cfg.PlotFile); err != nil {
			log.Fatal(err)
		}
		log.Lvl1("Loss curve written to", cfg.PlotFile)
	}
}

// batch loads the configured data files or generates a synthetic batch.
func batch(cfg RunConfig, rng *rand.Rand) (*mat.Dense, []int) {
	classes := cfg.Dimensions[len(cfg.Dimensions)-1]
	if cfg.FeaturesFile == "" {
		return utils.RandomBatch(rng, cfg.Dimensions[0], cfg.BatchSize),
			utils.RandomLabels(rng, classes, cfg.BatchSize)
	}

	samples, err := utils.LoadDense(cfg.FeaturesFile)
	if err != nil {
		log.Fatal(err)
	}
	// files hold one sample per line, the network wants one per column
	x := mat.DenseCopyOf(samples.T())

	labels, err := utils.LoadLabels(cfg.LabelsFile)
	if err != nil {
		log.Fatal(err)
	}
	return x, labels
}
