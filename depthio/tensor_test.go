package depthio

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-collision/depthmap"
)

func TestTensorRoundTrip(t *testing.T) {
	values := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	m, err := depthmap.FromValues(values, 3, 2)
	require.NoError(t, err)

	dense := ToTensor(m)
	require.Equal(t, []int{2, 3}, []int(dense.Shape()))

	back, err := FromTensor(dense)
	require.NoError(t, err)
	require.Equal(t, m.Width(), back.Width())
	require.Equal(t, m.Height(), back.Height())
	require.Equal(t, m.Values(), back.Values())
}

func TestToTensorCopiesBacking(t *testing.T) {
	m, err := depthmap.FromValues([]float32{0.1, 0.2, 0.3, 0.4}, 2, 2)
	require.NoError(t, err)
	dense := ToTensor(m)
	m.Set(0, 0, 0.9)
	require.Equal(t, float32(0.1), dense.Data().([]float32)[0])
}

func TestFromTensorRejectsNil(t *testing.T) {
	_, err := FromTensor(nil)
	require.Error(t, err)
}

func TestFromTensorRejectsWrongRank(t *testing.T) {
	flat := tensor.New(tensor.WithShape(6), tensor.WithBacking(make([]float32, 6)))
	_, err := FromTensor(flat)
	require.Error(t, err)

	cube := tensor.New(tensor.WithShape(1, 2, 3), tensor.WithBacking(make([]float32, 6)))
	_, err = FromTensor(cube)
	require.Error(t, err)
}

func TestFromTensorRejectsWrongDtype(t *testing.T) {
	doubles := tensor.New(tensor.WithShape(2, 3), tensor.WithBacking(make([]float64, 6)))
	_, err := FromTensor(doubles)
	require.Error(t, err)
}
