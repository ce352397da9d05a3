package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/fps/pkg/fps"
	"github.com/cyclopcam/logs"
)

func main() {
	parser := argparse.NewParser("fpsdemo", "Feed an FPS estimator with randomly spaced samples and print its estimates")
	window := parser.Float("w", "window", &argparse.Options{Help: "Estimation window in seconds", Default: 3.0})
	iterations := parser.Int("n", "iterations", &argparse.Options{Help: "Number of samples to feed", Default: 1000})
	decay := parser.Float("d", "decay", &argparse.Options{Help: "Decay factor for the rolling estimate, in [0,1)", Default: 0.0})
	soft := parser.Flag("s", "soft", &argparse.Options{Help: "Print the rolling (soft) estimate instead of the instantaneous one", Default: false})
	methodName := parser.Selector("m", "method", []string{"count", "interval"}, &argparse.Options{Help: "Estimation method", Default: "count"})
	minSleep := parser.Int("", "minsleep", &argparse.Options{Help: "Minimum sleep between samples, in milliseconds", Default: 33})
	maxSleep := parser.Int("", "maxsleep", &argparse.Options{Help: "Maximum sleep between samples, in milliseconds", Default: 43})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, err := logs.NewLog()
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	method := fps.CountSamples
	if *methodName == "interval" {
		method = fps.AverageIntervals
	}

	estimator := fps.NewEstimator()
	estimator.SetDecayFactor(*decay)

	for i := 0; i < *iterations; i++ {
		estimate := estimator.FPS(*window, *soft, method)
		if estimate < 0 {
			logger.Infof("Sample %v: insufficient data", i)
		} else {
			logger.Infof("Sample %v: %.2f FPS", i, estimate)
		}
		sleepMS := *minSleep + rand.Intn(*maxSleep-*minSleep+1)
		time.Sleep(time.Duration(sleepMS) * time.Millisecond)
		estimator.AddSample()
	}
}
