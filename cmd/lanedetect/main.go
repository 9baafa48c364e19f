package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"lanedetect/internal/models"
	"lanedetect/pkg/config"
	"lanedetect/pkg/lanes"
	"lanedetect/pkg/visualization"
)

func main() {
	// Parse command line arguments
	inputPath := flag.String("input", "", "Bird's-eye view frame (binary mask or grayscale image)")
	outputPath := flag.String("output", "overlay.png", "Output overlay image filename")
	configPath := flag.String("config", "lanedetect.yaml", "Configuration file (optional)")
	writeConfig := flag.Bool("write-config", false, "Write the default configuration to -config and exit")
	threshold := flag.Int("threshold", -1, "Binarization threshold 0-255 (overrides config)")
	saveWindows := flag.Bool("save-windows", false, "Save the sliding-window debug image")
	saveHistogram := flag.Bool("save-histogram", false, "Save the column-histogram chart")
	flag.Parse()

	if *writeConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configPath)
		return
	}

	// Validate inputs
	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *threshold >= 0 {
		if *threshold > 255 {
			log.Fatalf("Threshold must be in 0-255, got %d", *threshold)
		}
		cfg.Threshold.Level = uint8(*threshold)
	}
	if *saveWindows {
		cfg.Output.SaveWindows = true
	}
	if *saveHistogram {
		cfg.Output.SaveHistogram = true
	}

	// Load and binarize the input frame
	frame, err := imaging.Open(*inputPath)
	if err != nil {
		log.Fatalf("Failed to open input image: %v", err)
	}
	mask := models.FromGray(segment.Threshold(frame, cfg.Threshold.Level))

	detector, err := lanes.NewDetector(lanes.Params{
		Windows:    cfg.Detector.Windows,
		Margin:     cfg.Detector.Margin,
		MinPixels:  cfg.Detector.MinPixels,
		MinSamples: cfg.Detector.MinSamples,
	})
	if err != nil {
		log.Fatalf("Failed to create detector: %v", err)
	}

	var recorder *visualization.WindowRecorder
	if cfg.Output.SaveWindows {
		recorder = visualization.NewWindowRecorder(mask)
		detector.SetObserver(recorder)
	}

	if cfg.Output.Verbose {
		fmt.Printf("Searching %dx%d mask: %d windows, margin %d, minPixels %d, minSamples %d\n",
			mask.Width, mask.Height, cfg.Detector.Windows, cfg.Detector.Margin,
			cfg.Detector.MinPixels, cfg.Detector.MinSamples)
	}

	result, err := detector.Detect(mask)
	if err != nil && !errors.Is(err, lanes.ErrNoFit) {
		log.Fatalf("Detection failed: %v", err)
	}
	noFit := errors.Is(err, lanes.ErrNoFit)

	if err := visualization.SaveImage(result.Overlay, *outputPath); err != nil {
		log.Fatalf("Failed to save overlay: %v", err)
	}

	if cfg.Output.Verbose {
		fmt.Printf("Left lane: %d pixels, fit %s\n", len(result.Left.Xs), fitString(result.LeftFit))
		fmt.Printf("Right lane: %d pixels, fit %s\n", len(result.Right.Xs), fitString(result.RightFit))
		fmt.Printf("Overlay saved to: %s\n", *outputPath)
	}
	if noFit {
		fmt.Println("Warning: no lane fit available yet; overlay is empty")
	}

	// Save debug artifacts if requested
	if recorder != nil {
		windowsPath := filepath.Join(cfg.Output.DebugDir, "windows.png")
		if err := visualization.SaveImage(recorder.Image(), windowsPath); err != nil {
			log.Printf("Warning: failed to save window debug image: %v", err)
		} else if cfg.Output.Verbose {
			fmt.Printf("Sliding-window debug image saved to: %s\n", windowsPath)
		}
	}
	if cfg.Output.SaveHistogram {
		histPath := filepath.Join(cfg.Output.DebugDir, "histogram.png")
		if err := visualization.ProfilePlot(lanes.Histogram(mask), histPath); err != nil {
			log.Printf("Warning: failed to save histogram chart: %v", err)
		} else if cfg.Output.Verbose {
			fmt.Printf("Histogram chart saved to: %s\n", histPath)
		}
	}
}

// fitString formats a lane polynomial for the summary output.
func fitString(p *lanes.Polynomial) string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("x = %.6f*y^2 + %.4f*y + %.2f", p.A, p.B, p.C)
}
