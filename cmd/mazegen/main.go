// Command mazegen renders a maze to an image file without the HTTP service.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/beka-birhanu/mazeraster/config"
	"github.com/beka-birhanu/mazeraster/encoder"
	"github.com/beka-birhanu/mazeraster/mazegen"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		opts     mazegen.Options
		outPath  string
		format   string
		ascii    bool
		logLevel string
	)

	flag.IntVar(&opts.CellsX, "cells-x", 40, "Number of cell columns")
	flag.IntVar(&opts.CellsY, "cells-y", 30, "Number of cell rows")
	flag.IntVar(&opts.PassageWidth, "passage", mazegen.DefaultPassageWidth, "Passage width in pixels")
	flag.IntVar(&opts.WallWidth, "wall", mazegen.DefaultWallWidth, "Wall width in pixels")
	flag.Int64Var(&opts.Seed, "seed", 0, "Random seed, time based when not positive")
	flag.StringVar(&outPath, "out", "maze.png", "Output image path")
	flag.StringVar(&format, "format", "", "Image format: 'png' or 'bmp', taken from -out when empty")
	flag.BoolVar(&ascii, "ascii", false, "Also print the maze as text")
	flag.StringVar(&logLevel, "log-level", "info", "Log level")
	flag.Parse()

	logger := config.NewLogger("MAZEGEN", logLevel, os.Stderr)

	if format == "" {
		format = filepath.Ext(outPath)
	}
	enc, err := encoder.ByFormat(format)
	if err != nil {
		logger.Errorf("Choosing encoder: %v", err)
		os.Exit(1)
	}

	res, err := mazegen.Generate(opts)
	if err != nil {
		logger.Errorf("Generating maze: %v", err)
		os.Exit(1)
	}

	if err := writeImage(outPath, enc, res.Canvas); err != nil {
		logger.Errorf("Writing image: %v", err)
		os.Exit(1)
	}

	logger.WithFields(logrus.Fields{
		"seed":  res.Options.Seed,
		"cells": fmt.Sprintf("%dx%d", res.Options.CellsX, res.Options.CellsY),
		"size":  res.Size.String(),
		"entry": res.Notches.Entry.String(),
		"exit":  res.Notches.Exit.String(),
	}).Infof("Wrote %s", outPath)

	if ascii {
		fmt.Print(res.Grid.String())
	}
}

// writeImage encodes img into the file at path. The file is closed before it
// returns and a failed close is reported.
func writeImage(path string, enc encoder.Encoder, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
