package util

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDepthRender(t *testing.T, path string, width, height int, value uint8) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadDirectoryDepthFrames(t *testing.T) {
	dir := t.TempDir()
	// Written out of order on purpose; the loader sorts by frame number.
	writeDepthRender(t, filepath.Join(dir, "frame-10.png"), 8, 6, 200)
	writeDepthRender(t, filepath.Join(dir, "frame-2.png"), 8, 6, 100)
	writeDepthRender(t, filepath.Join(dir, "frame-1.png"), 8, 6, 50)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	frames, err := LoadDirectoryDepthFrames(dir)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	require.Equal(t, []int{1, 2, 10}, []int{frames[0].Frame, frames[1].Frame, frames[2].Frame})
	for _, frame := range frames {
		require.Equal(t, 8, frame.Map.Width())
		require.Equal(t, 6, frame.Map.Height())
	}
	require.Greater(t, frames[2].Map.At(0, 0), frames[0].Map.At(0, 0))
}

func TestLoadDirectoryDepthFramesBadName(t *testing.T) {
	dir := t.TempDir()
	writeDepthRender(t, filepath.Join(dir, "depth.png"), 4, 4, 128)
	_, err := LoadDirectoryDepthFrames(dir)
	require.Error(t, err)
}

func TestLoadDirectoryDepthFramesMissingDir(t *testing.T) {
	_, err := LoadDirectoryDepthFrames(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestLoadDirectoryDepthFramesEmptyDir(t *testing.T) {
	frames, err := LoadDirectoryDepthFrames(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, frames)
}
