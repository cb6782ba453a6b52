package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"octoline/core"
	"octoline/export"
	"octoline/fillet"
	"octoline/line"
	"octoline/render"
	"octoline/terminal"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive terminal preview")
		format      = flag.String("format", "ascii", "Export format: ascii, svg, png, json")
		outputFile  = flag.String("o", "", "Output file (default: stdout, required for png)")

		radius    = flag.Float64("radius", 0.5, "Base corner radius in grid units")
		tightness = flag.Float64("tightness", 0.55, "Cubic control point placement, 0-1")
		corners   = flag.String("corners", "cubic", "Corner curve representation: cubic or arc")
		scale     = flag.Float64("scale", 32, "Pixels per grid unit (png only)")

		demo = flag.Bool("demo", false, "Use the built-in sample map")
		help = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	m, err := loadInput(flag.Arg(0), *demo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cornerOpts, err := cornerOptions(*radius, *tightness, *corners)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := terminal.Run(m); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runExport(m, *format, *outputFile, *scale, cornerOpts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadInput(filename string, demo bool) (*line.Map, error) {
	if filename == "" || demo {
		return demoMap(), nil
	}
	return line.LoadMap(filename)
}

func cornerOptions(radius, tightness float64, mode string) (fillet.Options, error) {
	opts := fillet.Options{Radius: radius, Tightness: tightness}
	switch mode {
	case "cubic":
		opts.Mode = fillet.ModeCubic
	case "arc":
		opts.Mode = fillet.ModeArc
	default:
		return opts, fmt.Errorf("unknown corner mode: %q (want cubic or arc)", mode)
	}
	if tightness < 0 || tightness > 1 {
		return opts, fmt.Errorf("tightness must be in [0, 1], got %g", tightness)
	}
	return opts, nil
}

func runExport(m *line.Map, format, outputFile string, scale float64, corners fillet.Options) error {
	if format == "png" {
		if outputFile == "" {
			return fmt.Errorf("png output requires -o")
		}
		routed, err := line.RouteAll(m)
		if err != nil {
			return err
		}
		r := render.NewPNGRenderer()
		r.Scale = scale
		r.Corners = corners
		return r.RenderMap(m, routed, outputFile)
	}

	exporter, err := export.New(format, corners)
	if err != nil {
		return err
	}
	output, err := exporter.Export(m)
	if err != nil {
		return err
	}

	if outputFile == "" {
		_, err = os.Stdout.Write(output)
		return err
	}
	if !strings.Contains(outputFile, ".") {
		outputFile += exporter.GetFileExtension()
	}
	return os.WriteFile(outputFile, output, 0644)
}

// demoMap is a small three-line network exercising straight, single
// knee and chained-entry routing.
func demoMap() *line.Map {
	m := &line.Map{
		Stations: []core.Station{
			{ID: 1, Name: "Harbor", X: 0, Y: 10},
			{ID: 2, Name: "Museum", X: 14, Y: 14},
			{ID: 3, Name: "Airport", X: 22, Y: 6},
			{ID: 4, Name: "Park", X: 6, Y: 2},
			{ID: 5, Name: "Mill", X: 14, Y: 2},
		},
		Lines: []line.Line{
			{Name: "Red", Color: "red", Stations: []int{1, 2, 3}},
			{Name: "Blue", Color: "blue", Stations: []int{4, 5, 3}},
			{Name: "Green", Color: "green", Stations: []int{1, 4}},
		},
	}
	line.EnsureLineIDs(m)
	return m
}

func printHelp() {
	fmt.Println(`octoline - octilinear metro line routing

Usage: octoline [flags] [map.json]

Routes each line of the map along the eight compass directions,
smooths the corners, and writes the result in the chosen format.
With no map file (or with -demo) a built-in sample map is used.

Flags:`)
	flag.PrintDefaults()
	fmt.Println(`
Map file format:
  {"stations": [{"id": 1, "name": "Harbor", "x": 0, "y": 10}, ...],
   "lines": [{"name": "Red", "color": "red", "stations": [1, 2, 3]}, ...]}`)
}
