package kong

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-kong/internal/core"
)

func TestClassicLevelsCycle(t *testing.T) {
	set := ClassicLevels()

	want := []Variant{VariantGirders, VariantRivets, VariantElevators, VariantConveyors}
	if set.Len() != len(want) {
		t.Fatalf("classic set has %d stages, expected %d", set.Len(), len(want))
	}
	for i, v := range want {
		if got := set.Variant(i); got != v {
			t.Errorf("stage %d variant = %s, expected %s", i, got, v)
		}
		if len(set.PlatformsFor(i)) == 0 {
			t.Errorf("stage %d has no platforms", i)
		}
	}

	if n := len(set.FeaturesFor(1).Rivets); n != 6 {
		t.Errorf("rivets stage has %d rivets, expected 6", n)
	}
	if n := len(set.LaddersFor(2)); n != 0 {
		t.Errorf("elevators stage has %d ladders, expected none", n)
	}
	if n := len(set.FeaturesFor(2).Elevators); n == 0 {
		t.Error("elevators stage has no elevators")
	}
	if n := len(set.FeaturesFor(0).Hammers); n == 0 {
		t.Error("girders stage has no hammer spots")
	}
}

func TestConveyorDirectionsAlternate(t *testing.T) {
	belts := ClassicLevels().FeaturesFor(3).Conveyors
	want := []int{0, -1, 1, -1, 0}

	if len(belts) != len(want) {
		t.Fatalf("got %d belt entries, expected %d", len(belts), len(want))
	}
	for i := range want {
		if belts[i] != want[i] {
			t.Errorf("belt %d = %d, expected %d", i, belts[i], want[i])
		}
	}
}

func TestMiniLevelsHaveBothHazards(t *testing.T) {
	set := MiniLevels()
	if set.Len() != 1 {
		t.Fatalf("mini set has %d stages, expected 1", set.Len())
	}

	kinds := map[HazardKind]bool{}
	for _, s := range set.FeaturesFor(0).Spawners {
		kinds[s.Kind] = true
	}
	if !kinds[HazardBarrel] || !kinds[HazardFireball] {
		t.Errorf("mini stage spawners = %v, expected barrels and fireballs", kinds)
	}
}

func TestLevelIndexOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range level index")
		}
	}()
	ClassicLevels().PlatformsFor(4)
}

func TestParseLevelSetValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no stages", "name: empty\nstages: []\n"},
		{"unknown variant", "stages:\n  - variant: barrels\n    platforms:\n      - {x: 0, y: 240, w: 224, h: 8}\n"},
		{"no platforms", "stages:\n  - variant: girders\n"},
		{"zero size platform", "stages:\n  - variant: girders\n    platforms:\n      - {x: 0, y: 240, w: 0, h: 8}\n"},
		{"rivets without rivets", "stages:\n  - variant: rivets\n    platforms:\n      - {x: 0, y: 240, w: 224, h: 8}\n"},
		{"unknown hazard", "stages:\n  - variant: girders\n    platforms:\n      - {x: 0, y: 240, w: 224, h: 8}\n    spawners:\n      - {kind: pie, interval: 10, cap: 1}\n"},
		{"malformed", "stages: [\n"},
		{"hammers off girders", "stages:\n  - variant: rivets\n    platforms:\n      - {x: 0, y: 240, w: 224, h: 8}\n    rivets:\n      - {x: 50, y: 236}\n    hammers:\n      - {x: 20, y: 236}\n"},
		{"unknown color", "stages:\n  - variant: girders\n    color: mauve\n    platforms:\n      - {x: 0, y: 240, w: 224, h: 8}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseLevelSet([]byte(tc.yaml)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadLevelSetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`name: custom
stages:
  - variant: conveyors
    name: belts
    start: {x: 10, y: 224}
    goal: {min_x: 0, max_x: 224, max_y: 48}
    platforms:
      - {x: 0, y: 240, w: 224, h: 8}
      - {x: 0, y: 200, w: 224, h: 8}
      - {x: 0, y: 64, w: 224, h: 8}
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	set, err := LoadLevelSet(path)
	if err != nil {
		t.Fatalf("LoadLevelSet() failed: %v", err)
	}
	if set.Name != "custom" || set.Len() != 1 {
		t.Errorf("got set %q with %d stages", set.Name, set.Len())
	}
	if got := set.FeaturesFor(0).Conveyors; len(got) != 3 || got[1] != -1 {
		t.Errorf("belt directions = %v, expected [0 -1 0]", got)
	}
	if c := set.Stage(0).Color; c != core.ColorRed {
		t.Errorf("default girder color = %v, expected red", c)
	}
	if c := ClassicLevels().Stage(1).Color; c != core.ColorBlue {
		t.Errorf("rivets girder color = %v, expected blue", c)
	}

	if _, err := LoadLevelSet(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing level file")
	}
}
