// Package synthetic generates demo spatial datasets for exercising the
// miner without a CSV input, the way the teacher's DSL-driven wordlist
// payloads stand in for a real subdomain corpus.
package synthetic

import (
	"fmt"
	"math/rand"

	rangecomine "github.com/colomine/rangecomine"
)

// Config controls the shape of a generated dataset.
type Config struct {
	Features            int     // number of distinct feature labels, A, B, C, ...
	InstancesPerFeature int     // objects generated per feature
	Width               float64 // x coordinates drawn from [0, Width)
	Height              float64 // y coordinates drawn from [0, Height)
	Seed                int64   // rand.Source seed, for reproducible datasets
}

// Generate returns Config.Features * Config.InstancesPerFeature objects,
// feature labels assigned in order (A, B, C, ...) and coordinates drawn
// uniformly from the Width x Height box using a source seeded explicitly
// from Config.Seed.
func Generate(cfg Config) []rangecomine.Object {
	rng := rand.New(rand.NewSource(cfg.Seed))
	objects := make([]rangecomine.Object, 0, cfg.Features*cfg.InstancesPerFeature)
	id := 1
	for i := 0; i < cfg.Features; i++ {
		feature := featureLabel(i)
		for j := 0; j < cfg.InstancesPerFeature; j++ {
			objects = append(objects, rangecomine.Object{
				ID:      fmt.Sprintf("%s.%d", feature, id),
				Feature: feature,
				X:       rng.Float64() * cfg.Width,
				Y:       rng.Float64() * cfg.Height,
			})
			id++
		}
	}
	return objects
}

// featureLabel maps an index to A, B, C, ... Z for the first 26 features
// and to F26, F27, ... beyond that.
func featureLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("F%d", i)
}
