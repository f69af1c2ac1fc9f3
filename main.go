package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-ray-intersect/internal/config"
	"github.com/df07/go-ray-intersect/internal/logger"
	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/geometry"
	"github.com/df07/go-ray-intersect/pkg/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("intersect failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// run builds the configured scene, fires its probe rays and writes one result per ray
func run(cfg *config.Config, out io.Writer) error {
	desc, err := loadDescription(cfg.Scene.Path)
	if err != nil {
		return err
	}

	s, err := scene.Build(desc)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	s.SetLogger(logger.Log)

	rays, err := desc.ProbeRays()
	if err != nil {
		return fmt.Errorf("reading probe rays: %w", err)
	}

	logger.Info("probing scene",
		zap.String("scene", sceneName(cfg.Scene.Path)),
		zap.Int("shapes", s.GetPrimitiveCount()),
		zap.Int("rays", len(rays)),
	)

	startTime := time.Now()
	results := probe(s, rays)
	logger.Info("probe completed",
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Int("hits", countHits(results)),
	)

	return writeResults(out, cfg.Output, results)
}

// loadDescription reads the scene file, or returns the built-in scene for an empty path
func loadDescription(path string) (*scene.Description, error) {
	if path == "" {
		return scene.NewDefaultDescription(), nil
	}
	return scene.LoadDescription(path)
}

func sceneName(path string) string {
	if path == "" {
		return "default"
	}
	return path
}

// probeResult is the closest hit for one ray; Hit is nil on a miss
type probeResult struct {
	Ray   core.Ray
	Hit   *geometry.HitRecord
	Index int
	Shape geometry.Shape
}

func probe(s *scene.Scene, rays []core.Ray) []probeResult {
	results := make([]probeResult, len(rays))
	for i, ray := range rays {
		results[i] = probeResult{Ray: ray, Index: -1}
		if hit, index, isHit := s.Closest(ray); isHit {
			results[i].Hit = hit
			results[i].Index = index
			results[i].Shape = s.Shapes[index]
		}
	}
	return results
}

func countHits(results []probeResult) int {
	hits := 0
	for _, r := range results {
		if r.Hit != nil {
			hits++
		}
	}
	return hits
}

// resultRecord is the YAML form of a probeResult
type resultRecord struct {
	Ray      int       `yaml:"ray"`
	Hit      bool      `yaml:"hit"`
	Shape    *int      `yaml:"shape,omitempty"`
	Kind     string    `yaml:"kind,omitempty"`
	T        *float64  `yaml:"t,omitempty"`
	Point    []float64 `yaml:"point,omitempty,flow"`
	Normal   []float64 `yaml:"normal,omitempty,flow"`
	Material string    `yaml:"material,omitempty"`
}

func writeResults(out io.Writer, cfg config.OutputConfig, results []probeResult) error {
	if cfg.Format == config.FormatYAML {
		records := make([]resultRecord, len(results))
		for i, r := range results {
			records[i] = resultRecord{Ray: i}
			if r.Hit == nil {
				continue
			}
			index, t := r.Index, r.Hit.T
			records[i].Hit = true
			records[i].Shape = &index
			records[i].Kind = shapeKind(r.Shape)
			records[i].T = &t
			records[i].Point = []float64{r.Hit.Point.X, r.Hit.Point.Y, r.Hit.Point.Z}
			records[i].Normal = []float64{r.Hit.Normal.X, r.Hit.Normal.Y, r.Hit.Normal.Z}
			records[i].Material = r.Hit.Material.Name
		}

		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		return encoder.Close()
	}

	for i, r := range results {
		var err error
		if r.Hit == nil {
			_, err = fmt.Fprintf(out, "ray %d: miss\n", i)
		} else {
			_, err = fmt.Fprintf(out, "ray %d: hit shape %d %v t=%.*f normal=%v material=%s\n",
				i, r.Index, r.Shape, cfg.Precision, r.Hit.T, r.Hit.Normal, r.Hit.Material.Name)
		}
		if err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}
	return nil
}

func shapeKind(shape geometry.Shape) string {
	switch shape.(type) {
	case *geometry.Sphere:
		return scene.ShapeSphere
	case *geometry.Cuboid:
		return scene.ShapeCuboid
	default:
		return fmt.Sprintf("%T", shape)
	}
}
