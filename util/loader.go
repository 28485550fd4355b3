package util

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-collision/depthio"
	"github.com/nvr-ai/go-collision/depthmap"
)

// DepthFrame is one decoded depth frame from a fixture corpus.
type DepthFrame struct {
	// Path is the path to the source file.
	Path string
	// Frame is the frame number parsed from the file name.
	Frame int
	// Map is the decoded depth map.
	Map *depthmap.Map
}

// LoadDirectoryDepthFrames reads every depth render in a directory into
// decoded depth maps, ordered by frame number. Files are expected to be
// named frame-N with a PNG or JPEG extension, the layout our capture
// tooling writes.
//
// Arguments:
// - dir: Directory path containing depth render files.
//
// Returns:
// - []DepthFrame: Decoded frames sorted by frame number.
// - error: Error if reading, naming, or decoding fails.
func LoadDirectoryDepthFrames(dir string) ([]DepthFrame, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "util: read depth frame dir")
	}

	var frames []DepthFrame
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := filepath.Ext(file.Name())
		switch ext {
		case ".jpg", ".jpeg", ".png":
			path := filepath.Join(dir, file.Name())
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				return nil, errors.Wrapf(readErr, "util: read %s", path)
			}
			frame, err := strconv.Atoi(strings.TrimSuffix(strings.ReplaceAll(file.Name(), "frame-", ""), ext))
			if err != nil {
				return nil, errors.Wrapf(err, "util: parse frame number from %s", file.Name())
			}
			m, err := depthio.FromBytes(data)
			if err != nil {
				return nil, errors.Wrapf(err, "util: decode %s", path)
			}
			frames = append(frames, DepthFrame{
				Path:  path,
				Frame: frame,
				Map:   m,
			})
		}
	}

	sort.Slice(frames, func(i, j int) bool {
		return frames[i].Frame < frames[j].Frame
	})

	return frames, nil
}
