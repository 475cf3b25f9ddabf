package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileworld/internal/application/mode"
	"github.com/younwookim/tileworld/internal/application/replay"
	"github.com/younwookim/tileworld/internal/domain/tile"
	"github.com/younwookim/tileworld/internal/infrastructure/config"
)

func testLoader() *config.Loader {
	return config.NewFSLoader(defaultConfigs(), "embedded")
}

func fastHeadless(opts headlessOptions) headlessOptions {
	opts.Fast = true
	opts.LogOut = io.Discard
	return opts
}

// writeReplay saves frames as a replay file and returns its path.
func writeReplay(t *testing.T, frames []replay.FrameInput) string {
	t.Helper()
	data := replay.ReplayData{Version: replay.Version, World: "map3", TickRate: 60, Frames: frames}
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

// walkRight selects Play on the start screen and then holds right.
func walkRight(ticks int) []replay.FrameInput {
	frames := []replay.FrameInput{{F: 0, R: true}, {F: 1, S: true}}
	for i := 0; i < ticks; i++ {
		frames = append(frames, replay.FrameInput{F: len(frames), R: true})
	}
	return frames
}

func TestBuildApp(t *testing.T) {
	a, err := buildApp(testLoader(), appOptions{Headless: true, LogOut: io.Discard})
	require.NoError(t, err)

	assert.Equal(t, "map3", a.world)
	assert.Equal(t, mode.Start, a.ctx.Modes.Current())
	for _, id := range mode.All() {
		_, ok := a.ctx.Modes.Get(id)
		assert.True(t, ok, "mode %s registered", id)
	}
	w, h := a.ctx.ScreenSize()
	assert.Equal(t, 960, w)
	assert.Equal(t, 640, h)
	assert.Nil(t, a.ctx.Surface())
}

func TestBuildApp_Errors(t *testing.T) {
	_, err := buildApp(testLoader(), appOptions{Headless: true, LogOut: io.Discard, World: "nowhere"})
	assert.Error(t, err)

	_, err = buildApp(testLoader(), appOptions{Headless: true, LogOut: io.Discard, LogLevel: "loud"})
	assert.Error(t, err)
}

func TestControlLines(t *testing.T) {
	lines := controlLines(map[string][]string{
		"select": {"Enter"},
		"up":     {"W", "ArrowUp"},
	})

	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "up"), "ordered by action")
	assert.Contains(t, lines[0], "W, ArrowUp")
	assert.True(t, strings.HasPrefix(lines[1], "select"))
}

func TestRunHeadless_TickLimit(t *testing.T) {
	res, err := runHeadless(context.Background(), testLoader(), fastHeadless(headlessOptions{Ticks: 30}))
	require.NoError(t, err)

	assert.Equal(t, uint64(30), res.Ticks)
	assert.Equal(t, mode.Start, res.Mode, "no input stays on the start screen")
	assert.Equal(t, 128.0, res.X)
	assert.Equal(t, 128.0, res.Y)
}

func TestRunHeadless_ReplayEndsWithFrames(t *testing.T) {
	path := writeReplay(t, walkRight(20))

	res, err := runHeadless(context.Background(), testLoader(), fastHeadless(headlessOptions{Replay: path}))
	require.NoError(t, err)

	assert.Equal(t, uint64(22), res.Ticks)
	assert.Equal(t, "map3", res.World)
	assert.Equal(t, mode.Play, res.Mode)
	assert.Greater(t, res.X, 128.0)
	assert.Equal(t, 128.0, res.Y)
}

func TestRunHeadless_RecordingReplaysIdentically(t *testing.T) {
	in := writeReplay(t, walkRight(40))
	out := filepath.Join(t.TempDir(), "out.json")

	first, err := runHeadless(context.Background(), testLoader(), fastHeadless(headlessOptions{Replay: in, Record: out}))
	require.NoError(t, err)
	assert.Equal(t, 42, first.Recorded)

	second, err := runHeadless(context.Background(), testLoader(), fastHeadless(headlessOptions{Replay: out}))
	require.NoError(t, err)

	assert.Equal(t, first.Ticks, second.Ticks)
	assert.Equal(t, first.Mode, second.Mode)
	assert.Equal(t, first.X, second.X)
	assert.Equal(t, first.Y, second.Y)
}

func TestRunHeadless_BadReplay(t *testing.T) {
	_, err := runHeadless(context.Background(), testLoader(),
		fastHeadless(headlessOptions{Replay: filepath.Join(t.TempDir(), "missing.json")}))
	assert.Error(t, err)
}

func TestRunHeadless_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := runHeadless(ctx, testLoader(), fastHeadless(headlessOptions{}))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), res.Ticks)
}

func TestHeadlessResult_Print(t *testing.T) {
	var buf bytes.Buffer
	headlessResult{World: "map3", Ticks: 5, Mode: mode.Play, X: 1, Y: 2, Recorded: 5}.print(&buf)

	assert.Contains(t, buf.String(), "world=map3 ticks=5")
	assert.Contains(t, buf.String(), "player=(1.0, 2.0)")
	assert.Contains(t, buf.String(), "recorded 5 frames")
}

func TestValidateWorld_Summary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, validateWorld(testLoader(), "map3", false, &buf))

	out := buf.String()
	assert.Contains(t, out, "map3: 30x20 tiles, entity 1, spawn (128, 128)")
	assert.Contains(t, out, "solid")
	assert.Contains(t, out, "hazard")
	assert.Contains(t, out, "encounter")
}

func TestValidateWorld_EmitRoundTrips(t *testing.T) {
	loader := testLoader()
	var buf bytes.Buffer
	require.NoError(t, validateWorld(loader, "map3", true, &buf))

	tiles, err := loader.LoadTiles()
	require.NoError(t, err)
	reg, err := tiles.Registry()
	require.NoError(t, err)
	want, err := loader.LoadWorld("map3", reg)
	require.NoError(t, err)

	got, err := tile.Decode(&buf, reg)
	require.NoError(t, err)
	assert.Equal(t, want.Grid.IDs(), got.Grid.IDs())
	assert.Equal(t, want.SpawnX, got.SpawnX)
	assert.Equal(t, want.SpawnY, got.SpawnY)
}

func TestValidateWorld_File(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(good, []byte("2 1 0 0 0\n12 13\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("2 1 0 0 0\n12 99\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, validateWorld(testLoader(), good, false, &buf))
	assert.Contains(t, buf.String(), "2x1 tiles")

	err := validateWorld(testLoader(), bad, false, io.Discard)
	assert.ErrorIs(t, err, tile.ErrUnknownTile)
}
