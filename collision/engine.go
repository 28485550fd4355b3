// Package collision implements relative-depth collision analysis: given a
// normalized inverse-depth map and the labeled bounding boxes detected in
// the same frame, it classifies each object's collision danger, estimates
// its direction and angle, and ranks the results most dangerous first.
//
// The engine is pure and stateless. Nothing persists between calls, so
// concurrent invocations with independent inputs need no coordination, and
// a call is safe from any goroutine as long as its inputs are not mutated
// during the call.
//
// One scoring quirk is preserved from the field-tuned original: the
// walking-path position boost is applied without an upper clamp, so a
// boosted object can push its position factor above 1.0 and the total score
// to at most 1.3 on the nominal [0, 1] scale. Clamping it would silently
// move the classification boundaries for exactly the objects the boost
// exists for.
package collision

import (
	"sort"
	"sync"

	"github.com/nvr-ai/go-collision/common"
	"github.com/nvr-ai/go-collision/depthmap"
)

// Options configures an Engine.
type Options struct {
	// Workers caps concurrent per-object evaluation. Values <= 1 evaluate
	// objects serially. Scoring is independent per object, so the fan-out
	// changes nothing about the output, only the latency of frames with
	// many detections.
	Workers int
}

// Engine analyzes labeled objects against a depth map. The zero value is
// ready to use and evaluates serially.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Analyze runs the full per-frame analysis: scene calibration once, then
// sampling and scoring per object, then a stable rank by danger.
//
// An empty or nil depth map is an input-shape error. An empty object list
// is not: it returns an empty, successful result. Safe objects are retained
// in the output for completeness.
func (e *Engine) Analyze(m *depthmap.Map, objects []common.LabeledObject) ([]common.AnalyzedObject, error) {
	scene, err := depthmap.AnalyzeScene(m)
	if err != nil {
		return nil, err
	}

	results := make([]common.AnalyzedObject, len(objects))
	if len(objects) == 0 {
		return results, nil
	}

	if e.opts.Workers > 1 && len(objects) > 1 {
		e.analyzeParallel(m, scene, objects, results)
	} else {
		for i := range objects {
			results[i] = analyzeObject(m, scene, objects[i])
		}
	}

	Rank(results)
	return results, nil
}

// analyzeParallel fans object evaluation out over a bounded worker pool.
// Workers write to disjoint indices, so results keep input order until the
// final rank and the output is identical to the serial path.
func (e *Engine) analyzeParallel(
	m *depthmap.Map,
	scene *depthmap.Scene,
	objects []common.LabeledObject,
	results []common.AnalyzedObject,
) {
	workers := e.opts.Workers
	if workers > len(objects) {
		workers = len(objects)
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = analyzeObject(m, scene, objects[i])
			}
		}()
	}
	for i := range objects {
		indices <- i
	}
	close(indices)
	wg.Wait()
}

// analyzeObject samples one labeled object's depth region and scores it.
func analyzeObject(m *depthmap.Map, scene *depthmap.Scene, labeled common.LabeledObject) common.AnalyzedObject {
	obj := common.AnalyzedObject{LabeledObject: labeled}
	obj.CenterX, obj.CenterY = labeled.BBox.Center()

	sample := sampleObjectDepth(m, labeled.BBox)
	obj.MaxDepth = sample.maxDepth
	obj.MedianDepth = sample.medianDepth
	obj.DepthVariance = sample.variance
	obj.DepthGradient = depthmap.SobelAt(m, int(obj.CenterX), int(obj.CenterY))

	obj.Direction = common.DirectionOf(obj.CenterX, obj.CenterY, m.Width(), m.Height())
	obj.AngleDeg = common.AngleOf(obj.CenterX, obj.CenterY, m.Width(), m.Height())

	scoreDanger(&obj, scene, m.Width(), m.Height())
	return obj
}

// Rank orders analyzed objects in place, most dangerous first. The sort is
// stable: objects with equal danger keep their input relative order.
func Rank(objects []common.AnalyzedObject) {
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].Danger.MoreSevere(objects[j].Danger)
	})
}
