// Package kong implements a four-screen girder-climbing arcade game.
//
// The simulation runs on a continuous 224x256 field with the origin at the
// top-left corner. A level set supplies the static geometry of every screen;
// the Game sequences phases and drives the avatar, hazards, and per-screen
// mechanics once per tick.
package kong

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-kong/internal/core"
)

//go:embed levels/*.yaml
var levelFiles embed.FS

// Variant identifies the rule set of a screen.
type Variant int

const (
	VariantGirders Variant = iota
	VariantRivets
	VariantElevators
	VariantConveyors
)

var variantNames = map[Variant]string{
	VariantGirders:   "girders",
	VariantRivets:    "rivets",
	VariantElevators: "elevators",
	VariantConveyors: "conveyors",
}

// String returns the lowercase variant name used in level files.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant converts a level file name to a Variant.
func ParseVariant(s string) (Variant, bool) {
	for v, name := range variantNames {
		if name == s {
			return v, true
		}
	}
	return 0, false
}

// Point is a position on the field.
type Point struct {
	X, Y float64
}

// Goal is the completion area shared by the girders, elevators, and
// conveyors screens: the avatar's top edge at or above MaxY and its left
// edge within [MinX, MaxX].
type Goal struct {
	MinX, MaxX, MaxY float64
}

// Reached reports whether an avatar body is inside the goal area.
func (g Goal) Reached(body core.RectF) bool {
	return body.Y <= g.MaxY && body.X >= g.MinX && body.X <= g.MaxX
}

// ElevatorSpec describes a lift platform oscillating between MinY and MaxY.
type ElevatorSpec struct {
	X, Y, Width float64
	MinY, MaxY  float64
	Direction   int
	Speed       float64
}

// SpawnerSpec describes a hazard source on a screen.
type SpawnerSpec struct {
	Kind     HazardKind
	X, Y     float64
	Dir      int // Initial roll direction; 0 picks one at random
	Interval int // Ticks between spawn attempts
	Cap      int // Maximum live hazards of this kind
}

// Features holds the variant-specific contents of a screen.
type Features struct {
	Start     Point
	Goal      Goal
	Hammers   []Point
	Rivets    []Point
	Elevators []ElevatorSpec
	Spawners  []SpawnerSpec

	// Conveyors holds a belt direction per platform index: +1 pushes right,
	// -1 pushes left, 0 is a fixed platform.
	Conveyors []int
}

// Stage is the immutable definition of one screen.
type Stage struct {
	Variant   Variant
	Name      string
	Color     core.Color // Girder color
	Platforms []core.RectF
	Ladders   []core.RectF
	Features  Features
}

// LevelSet is an ordered cycle of stages.
type LevelSet struct {
	Name   string
	stages []Stage
}

// Len returns the number of stages in the set.
func (s *LevelSet) Len() int {
	return len(s.stages)
}

// Stage returns the stage at index i. Panics if i is out of range.
func (s *LevelSet) Stage(i int) *Stage {
	if i < 0 || i >= len(s.stages) {
		panic(fmt.Sprintf("kong: level index %d out of range [0,%d)", i, len(s.stages)))
	}
	return &s.stages[i]
}

// Variant returns the rule set of stage i.
func (s *LevelSet) Variant(i int) Variant {
	return s.Stage(i).Variant
}

// PlatformsFor returns the platform rectangles of stage i, bottom to top.
func (s *LevelSet) PlatformsFor(i int) []core.RectF {
	return s.Stage(i).Platforms
}

// LaddersFor returns the ladder zones of stage i.
func (s *LevelSet) LaddersFor(i int) []core.RectF {
	return s.Stage(i).Ladders
}

// FeaturesFor returns the variant-specific features of stage i.
func (s *LevelSet) FeaturesFor(i int) Features {
	return s.Stage(i).Features
}

// Built-in level sets, parsed from the embedded files at init.
var (
	classicLevels = mustParseEmbedded("levels/classic.yaml")
	miniLevels    = mustParseEmbedded("levels/mini.yaml")
)

// ClassicLevels returns the four-screen cycle.
func ClassicLevels() *LevelSet {
	return classicLevels
}

// MiniLevels returns the single-screen set.
func MiniLevels() *LevelSet {
	return miniLevels
}

func mustParseEmbedded(name string) *LevelSet {
	data, err := levelFiles.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("kong: embedded level set %s: %v", name, err))
	}
	set, err := ParseLevelSet(data)
	if err != nil {
		panic(fmt.Sprintf("kong: embedded level set %s: %v", name, err))
	}
	return set
}

// LoadLevelSet reads a level set from a YAML file.
func LoadLevelSet(path string) (*LevelSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level set %s: %w", path, err)
	}
	set, err := ParseLevelSet(data)
	if err != nil {
		return nil, fmt.Errorf("parsing level set %s: %w", path, err)
	}
	return set, nil
}

// YAML file structure.
type yamlLevelSet struct {
	Name   string      `yaml:"name"`
	Stages []yamlStage `yaml:"stages"`
}

type yamlStage struct {
	Variant   string         `yaml:"variant"`
	Name      string         `yaml:"name"`
	Color     string         `yaml:"color"`
	Start     yamlPoint      `yaml:"start"`
	Goal      yamlGoal       `yaml:"goal"`
	Platforms []yamlRect     `yaml:"platforms"`
	Ladders   []yamlRect     `yaml:"ladders"`
	Hammers   []yamlPoint    `yaml:"hammers"`
	Rivets    []yamlPoint    `yaml:"rivets"`
	Elevators []yamlElevator `yaml:"elevators"`
	Spawners  []yamlSpawner  `yaml:"spawners"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type yamlGoal struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

type yamlElevator struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	MinY  float64 `yaml:"min_y"`
	MaxY  float64 `yaml:"max_y"`
	Dir   int     `yaml:"dir"`
	Speed float64 `yaml:"speed"`
}

type yamlSpawner struct {
	Kind     string  `yaml:"kind"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Dir      int     `yaml:"dir"`
	Interval int     `yaml:"interval"`
	Cap      int     `yaml:"cap"`
}

// ParseLevelSet decodes and validates a YAML level set.
func ParseLevelSet(data []byte) (*LevelSet, error) {
	var ys yamlLevelSet
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(ys.Stages) == 0 {
		return nil, fmt.Errorf("level set %q has no stages", ys.Name)
	}

	set := &LevelSet{Name: ys.Name, stages: make([]Stage, 0, len(ys.Stages))}
	for i, st := range ys.Stages {
		stage, err := convertStage(st)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		set.stages = append(set.stages, stage)
	}
	return set, nil
}

func convertStage(st yamlStage) (Stage, error) {
	variant, ok := ParseVariant(st.Variant)
	if !ok {
		return Stage{}, fmt.Errorf("unknown variant %q", st.Variant)
	}
	if len(st.Platforms) == 0 {
		return Stage{}, fmt.Errorf("%s stage has no platforms", variant)
	}

	color := core.ColorRed
	if st.Color != "" {
		if color, ok = core.ParseColor(st.Color); !ok {
			return Stage{}, fmt.Errorf("unknown color %q", st.Color)
		}
	}

	stage := Stage{
		Variant: variant,
		Name:    st.Name,
		Color:   color,
		Features: Features{
			Start: Point{X: st.Start.X, Y: st.Start.Y},
			Goal:  Goal{MinX: st.Goal.MinX, MaxX: st.Goal.MaxX, MaxY: st.Goal.MaxY},
		},
	}

	var err error
	if stage.Platforms, err = convertRects("platform", st.Platforms); err != nil {
		return Stage{}, err
	}
	if stage.Ladders, err = convertRects("ladder", st.Ladders); err != nil {
		return Stage{}, err
	}

	if len(st.Hammers) > 0 && variant != VariantGirders {
		return Stage{}, fmt.Errorf("%s stage cannot have hammers", variant)
	}
	for _, p := range st.Hammers {
		stage.Features.Hammers = append(stage.Features.Hammers, Point{X: p.X, Y: p.Y})
	}
	for _, p := range st.Rivets {
		stage.Features.Rivets = append(stage.Features.Rivets, Point{X: p.X, Y: p.Y})
	}
	if variant == VariantRivets && len(stage.Features.Rivets) == 0 {
		return Stage{}, fmt.Errorf("rivets stage has no rivets")
	}

	for i, e := range st.Elevators {
		if e.W <= 0 || e.Speed <= 0 || e.MinY >= e.MaxY {
			return Stage{}, fmt.Errorf("elevator %d: invalid geometry", i)
		}
		dir := e.Dir
		if dir == 0 {
			dir = -1
		}
		stage.Features.Elevators = append(stage.Features.Elevators, ElevatorSpec{
			X: e.X, Y: core.ClampF(e.Y, e.MinY, e.MaxY), Width: e.W,
			MinY: e.MinY, MaxY: e.MaxY,
			Direction: sign(dir),
			Speed:     e.Speed,
		})
	}

	for i, s := range st.Spawners {
		kind, ok := ParseHazardKind(s.Kind)
		if !ok {
			return Stage{}, fmt.Errorf("spawner %d: unknown hazard kind %q", i, s.Kind)
		}
		if s.Interval <= 0 || s.Cap <= 0 {
			return Stage{}, fmt.Errorf("spawner %d: interval and cap must be positive", i)
		}
		stage.Features.Spawners = append(stage.Features.Spawners, SpawnerSpec{
			Kind: kind, X: s.X, Y: s.Y, Dir: sign(s.Dir),
			Interval: s.Interval, Cap: s.Cap,
		})
	}

	if variant == VariantConveyors {
		stage.Features.Conveyors = beltDirections(len(stage.Platforms))
	}

	return stage, nil
}

func convertRects(what string, in []yamlRect) ([]core.RectF, error) {
	out := make([]core.RectF, 0, len(in))
	for i, r := range in {
		if r.W <= 0 || r.H <= 0 {
			return nil, fmt.Errorf("%s %d: size must be positive", what, i)
		}
		out = append(out, core.NewRectF(r.X, r.Y, r.W, r.H))
	}
	return out, nil
}

// beltDirections assigns alternating belt directions to every platform
// except the bottom and top ones. Even indices push right, odd push left.
func beltDirections(n int) []int {
	dirs := make([]int, n)
	for k := 1; k < n-1; k++ {
		if k%2 == 0 {
			dirs[k] = 1
		} else {
			dirs[k] = -1
		}
	}
	return dirs
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
