// Package geodata loads the admin1 boundary collection and exposes its
// features to the classifier. Geometry payloads (arcs, coordinates,
// transforms) are carried as opaque raw JSON — the pipeline only reads and
// writes the property bags.
package geodata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/home-economics/language-atlas/models"
)

// Feature is one admin1 geometry with its property bag. Exactly one of the
// payload fields is set depending on the source format.
type Feature struct {
	Type        string                 `json:"type"`
	Properties  map[string]interface{} `json:"properties"`
	ID          json.RawMessage        `json:"id,omitempty"`
	Arcs        json.RawMessage        `json:"arcs,omitempty"`
	Coordinates json.RawMessage        `json:"coordinates,omitempty"`
	Geometries  json.RawMessage        `json:"geometries,omitempty"`
	Geometry    json.RawMessage        `json:"geometry,omitempty"`
}

// topoObject is one named object inside a TopoJSON topology.
type topoObject struct {
	Type       string     `json:"type"`
	Geometries []*Feature `json:"geometries"`
}

type topology struct {
	Type      string                 `json:"type"`
	Transform json.RawMessage        `json:"transform,omitempty"`
	Objects   map[string]*topoObject `json:"objects"`
	Arcs      json.RawMessage        `json:"arcs,omitempty"`
	BBox      json.RawMessage        `json:"bbox,omitempty"`
}

type featureCollection struct {
	Type     string          `json:"type"`
	Features []*Feature      `json:"features"`
	BBox     json.RawMessage `json:"bbox,omitempty"`
}

// Collection wraps either a TopoJSON topology or a GeoJSON feature
// collection behind one feature iterator.
type Collection struct {
	topo *topology
	fc   *featureCollection
}

// Load reads and parses a boundary file.
func Load(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read geometry %s: %w", path, err)
	}
	col, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geometry %s: %w", path, err)
	}
	return col, nil
}

// Parse accepts a TopoJSON Topology or a GeoJSON FeatureCollection.
func Parse(data []byte) (*Collection, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("not a JSON document: %w", err)
	}

	switch probe.Type {
	case "Topology":
		topo := &topology{}
		if err := json.Unmarshal(data, topo); err != nil {
			return nil, fmt.Errorf("malformed topology: %w", err)
		}
		if len(topo.Objects) == 0 {
			return nil, fmt.Errorf("topology has no objects")
		}
		return &Collection{topo: topo}, nil
	case "FeatureCollection":
		fc := &featureCollection{}
		if err := json.Unmarshal(data, fc); err != nil {
			return nil, fmt.Errorf("malformed feature collection: %w", err)
		}
		return &Collection{fc: fc}, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q (want Topology or FeatureCollection)", probe.Type)
	}
}

// Features returns every feature across all objects, in source order.
func (c *Collection) Features() []*Feature {
	if c.fc != nil {
		return c.fc.Features
	}
	var features []*Feature
	for _, name := range sortedObjectNames(c.topo.Objects) {
		features = append(features, c.topo.Objects[name].Geometries...)
	}
	return features
}

func sortedObjectNames(objects map[string]*topoObject) []string {
	names := make([]string, 0, len(objects))
	for name := range objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegionOf derives the classifier-facing identity of a feature from its
// property bag. When the admin1 code is absent, the key falls back to
// "<country code>-<name>".
func RegionOf(f *Feature) models.Region {
	name := stringProp(f, "name")
	if name == "" {
		name = "Unknown"
	}
	iso2 := stringProp(f, "iso_a2")

	key := stringProp(f, "iso_3166_2")
	if key == "" {
		key = iso2 + "-" + name
	}

	country := stringProp(f, "admin")
	if country == "" {
		country = iso2
	}

	return models.Region{
		Key:         key,
		Name:        name,
		CountryCode: iso2,
		Country:     country,
	}
}

// Regions derives the identity of every feature in the collection.
func (c *Collection) Regions() []models.Region {
	features := c.Features()
	regions := make([]models.Region, 0, len(features))
	for _, f := range features {
		regions = append(regions, RegionOf(f))
	}
	return regions
}

func stringProp(f *Feature, key string) string {
	if f.Properties == nil {
		return ""
	}
	s, _ := f.Properties[key].(string)
	return s
}

// Inject writes the classification fields into every feature's property
// bag. Features with no classification still receive the fields, with null
// score/tier and language "Unknown", so downstream renderers never have to
// special-case missing keys.
func (c *Collection) Inject(result map[string]models.Classification) {
	for _, f := range c.Features() {
		if f.Properties == nil {
			f.Properties = map[string]interface{}{}
		}
		region := RegionOf(f)

		cl, ok := result[region.Key]
		if !ok || !cl.HasLanguage() {
			f.Properties["language"] = "Unknown"
			f.Properties["country"] = region.Country
			f.Properties["score"] = nil
			f.Properties["tier"] = nil
			continue
		}

		f.Properties["language"] = cl.Language
		f.Properties["country"] = cl.Country
		if cl.Score != nil {
			f.Properties["score"] = *cl.Score
		} else {
			f.Properties["score"] = nil
		}
		if cl.Tier != nil {
			f.Properties["tier"] = *cl.Tier
		} else {
			f.Properties["tier"] = nil
		}
	}
}

// Marshal serializes the collection compactly. Map keys marshal in sorted
// order, so byte-identical inputs produce byte-identical output.
func (c *Collection) Marshal() ([]byte, error) {
	if c.fc != nil {
		return json.Marshal(c.fc)
	}
	return json.Marshal(c.topo)
}
