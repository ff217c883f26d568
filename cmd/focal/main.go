// Package main provides the focal loss CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/focal/internal/backend/cpu"
	"github.com/born-ml/focal/internal/nn"
	"github.com/born-ml/focal/internal/tensor"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("focal %s\n", version)
	case "config":
		runConfig(os.Args[2:])
	case "eval":
		runEval(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("focal - focal crossentropy losses for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  config     Print the default config of a loss")
	fmt.Println("  eval       Compute a loss over a JSON batch file")
}

func runConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	variant := fs.String("variant", "binary", "Loss variant: binary or categorical")
	format := fs.String("format", "yaml", "Output format: yaml or json")
	_ = fs.Parse(args)

	cfg := nn.DefaultFocalConfig()
	name, err := variantName(*variant)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Name = name

	f, err := nn.ParseConfigFormat(*format)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	data, err := nn.MarshalConfig(cfg, f)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	fmt.Print(string(data))
}

func runEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	variant := fs.String("variant", "binary", "Loss variant: binary or categorical")
	configPath := fs.String("config", "", "YAML or JSON loss config (default: built-in defaults)")
	batchPath := fs.String("batch", "", "JSON batch file with y_true, y_pred and optional sample_weight")
	useWeights := fs.Bool("weights", true, "Apply sample_weight when present in the batch")
	reduction := fs.String("reduction", "", "Override the config reduction: mean, sum or none")
	_ = fs.Parse(args)

	if *batchPath == "" {
		log.Fatalf("eval: -batch is required")
	}

	cfg := nn.DefaultFocalConfig()
	if *configPath != "" {
		var err error
		if cfg, err = nn.LoadConfig(*configPath); err != nil {
			log.Fatalf("eval: %v", err)
		}
	}
	if cfg.Name == "" {
		name, err := variantName(*variant)
		if err != nil {
			log.Fatalf("eval: %v", err)
		}
		cfg.Name = name
	}
	if *reduction != "" {
		r, err := nn.ParseReduction(*reduction)
		if err != nil {
			log.Fatalf("eval: %v", err)
		}
		cfg.Reduction = r
	}

	yTrue, yPred, weight, err := loadBatch(*batchPath)
	if err != nil {
		log.Fatalf("eval: %v", err)
	}
	if !*useWeights {
		weight = nil
	}

	result, err := evaluate(*variant, cfg, yTrue, yPred, weight)
	if err != nil {
		log.Fatalf("eval: %v", err)
	}

	if result.Rank() == 0 {
		fmt.Printf("%s (%s): %.6f\n", cfg.Name, cfg.Reduction, result.Item())
		return
	}
	fmt.Printf("%s (%s): %v\n", cfg.Name, cfg.Reduction, result.Data())
}

func variantName(variant string) (string, error) {
	switch variant {
	case "binary":
		return nn.FocalBinaryCrossentropyName, nil
	case "categorical":
		return nn.FocalCategoricalCrossentropyName, nil
	default:
		return "", fmt.Errorf("unknown variant %q", variant)
	}
}

// evaluate computes the loss on the CPU backend. Shape errors raised by the
// backend are returned as errors.
func evaluate(variant string, cfg nn.FocalConfig, yTrue, yPred array, weight *array) (result *tensor.Tensor[float64, *cpu.CPUBackend], err error) {
	backend := cpu.New()

	var loss *nn.FocalLoss[float64, *cpu.CPUBackend]
	switch variant {
	case "binary":
		loss = nn.NewFocalBinaryCrossentropy[float64](backend, cfg)
	case "categorical":
		loss = nn.NewFocalCategoricalCrossentropy[float64](backend, cfg)
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%v", r)
		}
	}()

	t := tensor.MustFromSlice(yTrue.data, yTrue.shape, backend)
	p := tensor.MustFromSlice(yPred.data, yPred.shape, backend)
	var w *tensor.Tensor[float64, *cpu.CPUBackend]
	if weight != nil {
		w = tensor.MustFromSlice(weight.data, weight.shape, backend)
	}

	return loss.ForwardWeighted(t, p, w), nil
}
