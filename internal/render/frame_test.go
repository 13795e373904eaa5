package render

import (
	"reflect"
	"testing"

	"github.com/galaxian/game/internal/world"
)

func TestSnapshotRunning(t *testing.T) {
	sess := world.NewSession(world.DefaultRules(), []world.EnemySpawn{
		{X: 100, Y: 100, Variant: world.VariantA},
		{X: 200, Y: 100, Variant: world.VariantB},
		{X: 300, Y: 100, Variant: world.VariantA},
	})
	sess.Formation.Enemies[2].Visible = false
	sess.Shots = append(sess.Shots, world.NewPlayerShot(410, 500, 4))
	hidden := world.NewPlayerShot(10, 10, 4)
	hidden.Visible = false
	sess.Shots = append(sess.Shots, hidden)
	sess.EnemyShots = append(sess.EnemyShots, world.NewEnemyShot(110, 130, 4))

	f := Snapshot(sess, 7)

	want := []Drawable{
		{X: 400, Y: 550, Width: 20, Height: 20, Color: ColorPlayer},
		{X: 100, Y: 100, Width: 20, Height: 20, Color: ColorEnemyA},
		{X: 200, Y: 100, Width: 20, Height: 20, Color: ColorEnemyB},
		{X: 410, Y: 500, Width: 5, Height: 10, Color: ColorPlayerShot},
		{X: 110, Y: 130, Width: 5, Height: 10, Color: ColorEnemyShot},
	}
	if !reflect.DeepEqual(f.Drawables, want) {
		t.Fatalf("drawables = %+v\nwant %+v", f.Drawables, want)
	}
	if f.GameOver() || f.Messages != nil {
		t.Fatalf("running frame should carry no end-screen messages")
	}
	if f.Lives != 3 || f.Kills != 7 || f.Width != 800 || f.Height != 600 {
		t.Fatalf("frame header = %+v", f)
	}
}

func TestSnapshotGameOver(t *testing.T) {
	sess := world.NewSession(world.DefaultRules(), world.ClassicLayout())
	sess.End(world.CauseRammed)

	f := Snapshot(sess, 0)

	if !f.GameOver() {
		t.Fatalf("frame state = %s, want game_over", f.State)
	}
	if len(f.Drawables) != 0 {
		t.Fatalf("end screen should have no drawables, got %d", len(f.Drawables))
	}
	if want := []string{"Game Over", "Press R to Restart"}; !reflect.DeepEqual(f.Messages, want) {
		t.Fatalf("messages = %q, want %q", f.Messages, want)
	}
}

func TestCellSpan(t *testing.T) {
	cases := []struct {
		d              Drawable
		c0, r0, c1, r1 int
	}{
		{Drawable{X: 400, Y: 550, Width: 20, Height: 20}, 40, 27, 42, 29},
		{Drawable{X: 412, Y: 545, Width: 5, Height: 10}, 41, 27, 42, 28},
		{Drawable{X: 0, Y: 0, Width: 0, Height: 0}, 0, 0, 1, 1},
		{Drawable{X: -5, Y: -3, Width: 5, Height: 10}, -1, -1, 0, 1},
	}
	for _, tc := range cases {
		c0, r0, c1, r1 := CellSpan(tc.d, 10, 20)
		if c0 != tc.c0 || r0 != tc.r0 || c1 != tc.c1 || r1 != tc.r1 {
			t.Errorf("CellSpan(%+v) = [%d,%d)x[%d,%d), want [%d,%d)x[%d,%d)",
				tc.d, c0, c1, r0, r1, tc.c0, tc.c1, tc.r0, tc.r1)
		}
	}
}

func TestPaletteAndHUD(t *testing.T) {
	if ColorEnemyA.RGBA() == ColorEnemyB.RGBA() {
		t.Fatalf("enemy variants share a colour")
	}
	if got := ColorTag(99).RGBA(); got.A != 0xff {
		t.Fatalf("unknown tag colour = %v", got)
	}
	f := Frame{Lives: 2, Kills: 11}
	if got, want := HUD(&f), "Lives: 2  Kills: 11"; got != want {
		t.Fatalf("HUD = %q, want %q", got, want)
	}
	if MessageY(600, 0) != 250 || MessageY(600, 1) != 300 {
		t.Fatalf("message rows = %d, %d", MessageY(600, 0), MessageY(600, 1))
	}
}
