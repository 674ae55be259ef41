package pointio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point

// Read newline separated points in the form "x y". Blank lines and lines
// starting with # are skipped.
func ReadPoints(in io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}

// Collect points from an SVG document. This is not a full (or even correct) SVG
// reader: it takes the center of every <circle> and every vertex of every
// <polygon> and <polyline>, in that order, and ignores transforms.
func ReadSVG(in io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Point
	for _, circle := range root.FindAll("circle") {
		x, err := parseAttribute(circle, "cx")
		if err != nil {
			return nil, err
		}
		y, err := parseAttribute(circle, "cy")
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: x, Y: y})
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, element := range root.FindAll(name) {
			polyPoints, err := parsePointList(element.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "<%s>", name)
			}
			points = append(points, polyPoints...)
		}
	}
	return points, nil
}

func parseAttribute(element *svgparser.Element, name string) (float64, error) {
	raw, ok := element.Attributes[name]
	if !ok {
		// Missing coordinates default to zero in SVG
		return 0, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "<%s> attribute %s", element.Name, name)
	}
	return value, nil
}

// Points attributes are "x,y x,y ...", but commas and whitespace are
// interchangeable separators, so we just read numbers in pairs.
func parsePointList(raw string) ([]Point, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", raw)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i] + " " + fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}
