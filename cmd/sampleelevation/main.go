package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/twpayne/go-sampleelevation"
)

const (
	DefaultWidth      = 50
	DefaultHeight     = 50
	DefaultOutputPath = "data/sampleElevation.json"
)

func run(args []string, stdout io.Writer) error {
	flagSet := flag.NewFlagSet("sampleelevation", flag.ContinueOnError)
	output := flagSet.String("output", DefaultOutputPath, "output path")
	seed := flagSet.Uint64("seed", 0, "random seed, 0 for unseeded")
	tiffPath := flagSet.String("tiff", "", "optional TIFF preview output path")
	metricsFile := flagSet.String("metrics-file", "", "optional Prometheus textfile output path")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 0 {
		return errors.New("syntax: sampleelevation [flags]")
	}

	var options []sampleelevation.GeneratorOption
	if *seed != 0 {
		options = append(options, sampleelevation.WithSeed(*seed, *seed))
	}
	grid, err := sampleelevation.NewGenerator(options...).GenerateGrid(DefaultWidth, DefaultHeight)
	if err != nil {
		return err
	}

	writeErr := sampleelevation.WriteSampleData(*output, grid)
	if writeErr == nil && *tiffPath != "" {
		writeErr = writeTIFFFile(*tiffPath, grid)
	}
	if *metricsFile != "" {
		if err := prometheus.WriteToTextfile(*metricsFile, prometheus.DefaultGatherer); err != nil {
			return errors.Join(writeErr, err)
		}
	}
	if writeErr != nil {
		return fmt.Errorf("writing sample data: %w", writeErr)
	}

	fmt.Fprintf(stdout, "Sample elevation data generated and saved to %s\n", *output)
	return nil
}

func writeTIFFFile(path string, grid *sampleelevation.Grid) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	return sampleelevation.WriteTIFF(file, grid)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
