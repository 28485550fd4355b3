package depthio

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-collision/depthmap"
)

// FromTensor converts an H x W float32 tensor, the shape depth estimators
// emit their depth plane in, into a Map. The tensor's backing data is
// copied; the caller keeps ownership of the tensor.
func FromTensor(t tensor.Tensor) (*depthmap.Map, error) {
	if t == nil {
		return nil, errors.New("depthio: nil tensor")
	}
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, errors.Errorf("depthio: want a 2-D depth tensor, got shape %v", shape)
	}
	height, width := shape[0], shape[1]
	if height == 0 || width == 0 {
		return nil, depthmap.ErrEmptyMap
	}

	data, ok := t.Data().([]float32)
	if !ok {
		return nil, errors.Errorf("depthio: want float32 tensor data, got %T", t.Data())
	}
	if len(data) != width*height {
		return nil, errors.Errorf("depthio: tensor data has %d values, shape %v wants %d",
			len(data), shape, width*height)
	}

	values := make([]float32, len(data))
	copy(values, data)
	return depthmap.FromValues(values, width, height)
}

// ToTensor copies a Map into a fresh H x W float32 dense tensor.
func ToTensor(m *depthmap.Map) *tensor.Dense {
	values := make([]float32, m.Len())
	copy(values, m.Values())
	return tensor.New(
		tensor.WithShape(m.Height(), m.Width()),
		tensor.WithBacking(values),
	)
}
