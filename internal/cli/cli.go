// Package cli exposes the geometry2d operations as shell commands.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/tomz197/geometry2d/pkg/geometry2d"
)

// Distance metrics accepted by the distance command.
const (
	MetricEuclidean = "euclidean"
	MetricSquare    = "square"
	MetricManhattan = "manhattan"
	MetricDiagonal  = "diagonal"
)

// NewApp builds the geom application. Results go to w, one per line.
func NewApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:      "geom",
		Usage:     "evaluate 2D geometry predicates and metrics",
		UsageText: "geom <command> <numbers...>\n\nUse -- before the numbers when the first one is negative.",
		Writer:    w,
		ErrWriter: w,
		Commands: []*cli.Command{
			predicate("ccw", "is the turn A→B→C counter-clockwise",
				[]string{"xA", "yA", "xB", "yB", "xC", "yC"},
				func(v []float32) bool { return geometry2d.CCW(v[0], v[1], v[2], v[3], v[4], v[5]) }),
			predicate("ccw-vectors", "is AC counter-clockwise from AB",
				[]string{"xAB", "yAB", "xAC", "yAC"},
				func(v []float32) bool { return geometry2d.CCWVectors(v[0], v[1], v[2], v[3]) }),
			scalar("magnitude", "length of a vector",
				[]string{"x", "y"},
				func(v []float32) float32 { return geometry2d.Magnitude(v[0], v[1]) }),
			scalar("square-magnitude", "squared length of a vector",
				[]string{"x", "y"},
				func(v []float32) float32 { return geometry2d.SquareMagnitude(v[0], v[1]) }),
			scalar("dot", "dot product of A and B",
				[]string{"xA", "yA", "xB", "yB"},
				func(v []float32) float32 { return geometry2d.DotProduct(v[0], v[1], v[2], v[3]) }),
			scalar("cross", "2D cross product of A and B",
				[]string{"xA", "yA", "xB", "yB"},
				func(v []float32) float32 { return geometry2d.VectorProduct(v[0], v[1], v[2], v[3]) }),
			distanceCommand(),
			predicate("circles", "do the boundaries of two circles cross",
				[]string{"xC1", "yC1", "r1", "xC2", "yC2", "r2"},
				func(v []float32) bool { return geometry2d.CirclesIntersect(v[0], v[1], v[2], v[3], v[4], v[5]) }),
			predicate("circle-segment", "does a circle cross segment AB",
				[]string{"xC", "yC", "r", "xA", "yA", "xB", "yB"},
				func(v []float32) bool {
					return geometry2d.CircleLineIntersect(v[0], v[1], v[2], v[3], v[4], v[5], v[6])
				}),
			predicate("segments", "do segments AB and CD properly cross",
				[]string{"xA", "yA", "xB", "yB", "xC", "yC", "xD", "yD"},
				func(v []float32) bool {
					return geometry2d.LinesIntersect(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
				}),
			predicate("in-circle", "is P inside or on a circle",
				[]string{"xP", "yP", "xC", "yC", "r"},
				func(v []float32) bool { return geometry2d.PointInCircle(v[0], v[1], v[2], v[3], v[4]) }),
			scalar("segment-distance", "distance from P to segment AB",
				[]string{"xP", "yP", "xA", "yA", "xB", "yB"},
				func(v []float32) float32 { return geometry2d.SegmentDistance(v[0], v[1], v[2], v[3], v[4], v[5]) }),
			closestCommand(),
			intersectionCommand(),
		},
	}
}

func predicate(name, usage string, params []string, fn func([]float32) bool) *cli.Command {
	return numeric(name, usage, params, func(c *cli.Context, v []float32) error {
		_, err := fmt.Fprintln(c.App.Writer, fn(v))
		return err
	})
}

func scalar(name, usage string, params []string, fn func([]float32) float32) *cli.Command {
	return numeric(name, usage, params, func(c *cli.Context, v []float32) error {
		return printFloats(c.App.Writer, fn(v))
	})
}

// numeric builds a flagless command taking exactly len(params) numbers.
// Flag parsing is skipped so negative numbers need no separator.
func numeric(name, usage string, params []string, action func(*cli.Context, []float32) error) *cli.Command {
	return &cli.Command{
		Name:            name,
		Usage:           usage,
		ArgsUsage:       strings.Join(params, " "),
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			v, err := parseFloats(c, params)
			if err != nil {
				return err
			}
			return action(c, v)
		},
	}
}

func distanceCommand() *cli.Command {
	params := []string{"xA", "yA", "xB", "yB"}
	return &cli.Command{
		Name:      "distance",
		Usage:     "distance between points A and B",
		ArgsUsage: strings.Join(params, " "),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "metric",
				Aliases: []string{"m"},
				Value:   MetricEuclidean,
				Usage:   "one of euclidean, square, manhattan, diagonal",
			},
		},
		Action: func(c *cli.Context) error {
			v, err := parseFloats(c, params)
			if err != nil {
				return err
			}
			d, err := Distance(c.String("metric"), v[0], v[1], v[2], v[3])
			if err != nil {
				return err
			}
			return printFloats(c.App.Writer, d)
		},
	}
}

// Distance evaluates the named metric between A and B.
func Distance(metric string, xA, yA, xB, yB float32) (float32, error) {
	switch metric {
	case MetricEuclidean:
		return geometry2d.EuclideanDistance(xA, yA, xB, yB), nil
	case MetricSquare:
		return geometry2d.SquareEuclideanDistance(xA, yA, xB, yB), nil
	case MetricManhattan:
		return geometry2d.ManhattanDistance(xA, yA, xB, yB), nil
	case MetricDiagonal:
		return geometry2d.DiagonalDistance(xA, yA, xB, yB), nil
	}
	return 0, errors.Errorf("unknown metric %q", metric)
}

func closestCommand() *cli.Command {
	params := []string{"xP", "yP", "xA", "yA", "xB", "yB"}
	return numeric("closest", "point of segment AB closest to P", params, func(c *cli.Context, v []float32) error {
		x, y := geometry2d.ClosestPointOnSegment(v[0], v[1], v[2], v[3], v[4], v[5])
		return printFloats(c.App.Writer, x, y)
	})
}

func intersectionCommand() *cli.Command {
	params := []string{"xA", "yA", "xB", "yB", "xC", "yC", "xD", "yD"}
	return numeric("intersection", "where the lines through AB and CD meet", params, func(c *cli.Context, v []float32) error {
		in, ok := geometry2d.LineIntersection(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
		if !ok {
			_, err := fmt.Fprintln(c.App.Writer, "parallel")
			return err
		}
		_, err := fmt.Fprintf(c.App.Writer, "%g %g %t %t\n", in.X, in.Y, in.OnAB, in.OnCD)
		return err
	})
}

func parseFloats(c *cli.Context, params []string) ([]float32, error) {
	args := c.Args().Slice()
	if len(args) != len(params) {
		return nil, errors.Errorf("%s: expected %d arguments (%s), got %d",
			c.Command.Name, len(params), strings.Join(params, " "), len(args))
	}
	out := make([]float32, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: argument %s", c.Command.Name, params[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}

func printFloats(w io.Writer, v ...float32) error {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
