package trip

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/matzehuels/tripgraph/pkg/cache"
	errs "github.com/matzehuels/tripgraph/pkg/errors"
	"github.com/matzehuels/tripgraph/pkg/graph"
	"github.com/matzehuels/tripgraph/pkg/observability"
)

// RoadMap is a network of locations joined by roads.
//
// Locations are vertices of a directed graph and every road contributes two
// edges, one per direction of travel.
type RoadMap struct {
	g      *graph.Labeled[Location, Road]
	sites  map[string]int
	roads  int
	digest string
}

// NewRoadMap returns an empty map.
func NewRoadMap() *RoadMap {
	return &RoadMap{
		g:     graph.NewLabeled[Location, Road](graph.NewDirected()),
		sites: make(map[string]int),
	}
}

// AddLocation adds a location named name at (x, y) and returns its vertex.
func (m *RoadMap) AddLocation(name string, x, y float64) (int, error) {
	if err := errs.ValidateLocationName(name); err != nil {
		return 0, err
	}
	if !finite(x) || !finite(y) {
		return 0, errs.New(errs.ErrCodeInvalidMap, "location %s has invalid coordinates (%g, %g)", name, x, y)
	}
	if _, ok := m.sites[name]; ok {
		return 0, errs.New(errs.ErrCodeDuplicateLocation, "multiple entries for %s", name)
	}
	v := m.g.AddLabeled(Location{Name: name, X: x, Y: y})
	m.sites[name] = v
	return v, nil
}

// AddRoad adds a road segment named name from one location to another,
// running in direction dir, plus the reverse segment back.
func (m *RoadMap) AddRoad(from, name string, length float64, dir Direction, to string) error {
	u, ok := m.sites[from]
	if !ok {
		return errs.New(errs.ErrCodeLocationNotFound, "location %s not defined", from)
	}
	v, ok := m.sites[to]
	if !ok {
		return errs.New(errs.ErrCodeLocationNotFound, "location %s not defined", to)
	}
	if length < 0 || !finite(length) {
		return errs.New(errs.ErrCodeInvalidMap, "road %s has invalid length %g", name, length)
	}

	road := Road{Name: name, Dir: dir, Length: length}
	if _, err := m.g.AddLabeledEdge(u, v, road); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "add road %s", name)
	}
	if _, err := m.g.AddLabeledEdge(v, u, road.Reverse()); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "add road %s", name)
	}
	m.roads++
	return nil
}

// Lookup returns the vertex of the location called name.
func (m *RoadMap) Lookup(name string) (int, bool) {
	v, ok := m.sites[name]
	return v, ok
}

// Location returns the location at vertex v.
func (m *RoadMap) Location(v int) Location {
	loc, _ := m.g.Label(v)
	return loc
}

// Road returns the segment from vertex u to vertex v.
func (m *RoadMap) Road(u, v int) (Road, error) {
	return m.g.EdgeLabel(u, v)
}

// Graph exposes the underlying graph for searches and traversals.
func (m *RoadMap) Graph() graph.Graph { return m.g }

// Locations returns the number of locations.
func (m *RoadMap) Locations() int { return m.g.VertexSize() }

// Roads returns the number of roads declared, not counting reverse segments.
func (m *RoadMap) Roads() int { return m.roads }

// Digest returns a hash of the map source, or "" for maps built in code.
// Two maps with the same digest produce the same routes.
func (m *RoadMap) Digest() string { return m.digest }

// ReadMap parses a map in the L/R entry format.
func ReadMap(r io.Reader) (*RoadMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidMap, err, "read map")
	}

	m := NewRoadMap()
	p := &mapParser{sc: bufio.NewScanner(bytes.NewReader(data))}
	p.sc.Split(bufio.ScanWords)
	for {
		kind, ok := p.next()
		if !ok {
			break
		}
		p.entry++
		if err := p.parseEntry(m, kind); err != nil {
			return nil, err
		}
	}
	if err := p.sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidMap, err, "read map")
	}

	m.digest = cache.Hash(data)
	return m, nil
}

// ReadMapFile parses the map file at path.
func ReadMapFile(ctx context.Context, path string) (*RoadMap, error) {
	start := time.Now()
	m, err := readMapFile(path)
	locations, roads := 0, 0
	if m != nil {
		locations, roads = m.Locations(), m.Roads()
	}
	observability.Planner().OnMapLoaded(ctx, path, locations, roads, time.Since(start), err)
	return m, err
}

func readMapFile(path string) (*RoadMap, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "no such map file: %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidMap, err, "open map %s", path)
	}
	defer f.Close()
	return ReadMap(f)
}

var errIncomplete = errors.New("incomplete entry")

// mapParser pulls entries from a word scanner. entry is the 1-based number
// of the entry being parsed.
type mapParser struct {
	sc    *bufio.Scanner
	entry int
}

func (p *mapParser) next() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}
	return p.sc.Text(), true
}

func (p *mapParser) word() (string, error) {
	w, ok := p.next()
	if !ok {
		return "", errIncomplete
	}
	return w, nil
}

func (p *mapParser) number() (float64, error) {
	w, err := p.word()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, errs.New(errs.ErrCodeInvalidMap, "bad entry #%d: %q is not a number", p.entry, w)
	}
	return f, nil
}

func (p *mapParser) parseEntry(m *RoadMap, kind string) error {
	var err error
	switch kind {
	case "L":
		err = p.parseLocation(m)
	case "R":
		err = p.parseRoad(m)
	default:
		return errs.New(errs.ErrCodeInvalidMap, "map entry #%d: unknown type %q", p.entry, kind)
	}
	if errors.Is(err, errIncomplete) {
		return errs.New(errs.ErrCodeInvalidMap, "entry incomplete at end of file")
	}
	return err
}

func (p *mapParser) parseLocation(m *RoadMap) error {
	name, err := p.word()
	if err != nil {
		return err
	}
	x, err := p.number()
	if err != nil {
		return err
	}
	y, err := p.number()
	if err != nil {
		return err
	}
	_, err = m.AddLocation(name, x, y)
	return p.annotate(err)
}

func (p *mapParser) parseRoad(m *RoadMap) error {
	words := make([]string, 5)
	for i := range words {
		w, err := p.word()
		if err != nil {
			return err
		}
		words[i] = w
	}
	from, name, to := words[0], words[1], words[4]

	length, err := strconv.ParseFloat(words[2], 64)
	if err != nil {
		return errs.New(errs.ErrCodeInvalidMap, "bad entry #%d: %q is not a number", p.entry, words[2])
	}
	dir, err := ParseDirection(words[3])
	if err != nil {
		return p.annotate(err)
	}
	return p.annotate(m.AddRoad(from, name, length, dir, to))
}

// annotate prefixes a structured error with the entry number, keeping its
// code and cause but not repeating its message.
func (p *mapParser) annotate(err error) error {
	if err == nil {
		return nil
	}
	var e *errs.Error
	if errors.As(err, &e) {
		return errs.Wrap(e.Code, e.Cause, "map entry #%d: %s", p.entry, e.Message)
	}
	return errs.Wrap(errs.ErrCodeInvalidMap, err, "map entry #%d", p.entry)
}

// finite rejects NaN and infinities, which strconv.ParseFloat accepts.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
