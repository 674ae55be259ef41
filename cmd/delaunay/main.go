package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/internal/config"
	"github.com/osuushi/delaunay/internal/pointio"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of incremental triangulation. Points are read from a file (or stdin),
// inserted in order into a square seed mesh, and the result is written as a
// PNG.
//
// Input is either an SVG document (circle centers and polygon vertices are
// used) or newline separated points in the form "x y".

var (
	app = kingpin.New("delaunay", "Incrementally triangulate a set of points and render the mesh.")

	configPath    = app.Flag("config", "YAML config file.").ExistingFile()
	size          = app.Flag("size", "Side length of the square seed mesh.").Float64()
	maxFlips      = app.Flag("max-flips", "Flip budget per insertion.").Int()
	scale         = app.Flag("scale", "Pixels per unit.").Float64()
	padding       = app.Flag("padding", "Pixels of padding around the mesh.").Int()
	circumcircles = app.Flag("circumcircles", "Draw circumcircles.").Bool()
	output        = app.Flag("out", "PNG file to write.").Short('o').String()
	showImage     = app.Flag("imgcat", "Print the result to the terminal (iTerm only).").Bool()
	debug         = app.Flag("debug", "Dump the triangles after triangulating.").Bool()

	input = app.Arg("input", "Point file. Reads stdin if omitted.").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	points, err := readInput(*input)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Read %d points\n", len(points))

	triangulation := delaunay.New(cfg.Size, delaunay.WithMaxFlips(cfg.MaxFlips))
	for i, p := range points {
		inserted, err := triangulation.AddPoint(p.X, p.Y)
		if err != nil {
			log.Printf("point %d (%v): %v", i, p, err)
		} else if !inserted {
			log.Printf("point %d (%v) is outside the mesh, dropped", i, p)
		}
	}
	fmt.Printf("%d triangles, %d flips, %d dropped\n",
		triangulation.NumberOfTriangles(), triangulation.Stats.Flips, triangulation.Stats.Dropped)

	if *debug {
		fmt.Print(triangulation.DebugString())
	}

	if err := triangulation.SavePNG(cfg.Output, cfg.DrawOptions()); err != nil {
		log.Fatal(err)
	}
	if *showImage {
		imgcat.CatFile(cfg.Output, os.Stdout)
	}
}

// Flags override the config file, which overrides the defaults. Zero valued
// flags count as unset.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return cfg, err
		}
	}

	if *size != 0 {
		cfg.Size = *size
	}
	if *maxFlips != 0 {
		cfg.MaxFlips = *maxFlips
	}
	if *scale != 0 {
		cfg.Scale = *scale
	}
	if *padding != 0 {
		cfg.Padding = *padding
	}
	if *circumcircles {
		cfg.Circumcircles = true
	}
	if *output != "" {
		cfg.Output = *output
	}
	return cfg, cfg.Validate()
}

func readInput(path string) ([]pointio.Point, error) {
	var in io.Reader = os.Stdin
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		in = file
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return pointio.ReadSVG(in)
	}
	return pointio.ReadPoints(in)
}
