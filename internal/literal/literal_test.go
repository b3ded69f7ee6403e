package literal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/ndarray"
)

func decode(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestDecode_BareLiteral(t *testing.T) {
	doc := decode(t, "[[1, 2, 3], [4, 5, 6]]")
	assert.Empty(t, doc.DType)
	assert.Empty(t, doc.Shape)

	a, err := Build[int](doc)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 3}, a.Shape())
	data, err := a.Data()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, data)
}

func TestDecode_JSON(t *testing.T) {
	doc := decode(t, `[1.5, 2, -3]`)

	a, err := Build[float64](doc)
	require.NoError(t, err)
	data, err := a.Data()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, -3}, data)
}

func TestDecode_Document(t *testing.T) {
	doc := decode(t, `
dtype: int64
shape: [3, 2]
data:
  - [1, 2, 3]
  - [4, 5, 6]
`)
	assert.Equal(t, "int64", doc.DType)
	assert.Equal(t, []int{3, 2}, doc.Shape)

	a, err := Build[int64](doc)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3, 2}, a.Shape())

	v, err := a.Item(2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
}

func TestDecode_Scalar(t *testing.T) {
	a, err := Build[float32](decode(t, "2.5"))
	require.NoError(t, err)
	assert.True(t, a.IsScalar())

	a, err = Build[float32](decode(t, "shape: [1, 1]\ndata: 2.5"))
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{1, 1}, a.Shape())
	v, err := a.Item(0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), v)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty input", ""},
		{"null document", "~"},
		{"mapping without data", "dtype: float64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			assert.ErrorIs(t, err, ErrEmptyDocument)
		})
	}

	_, err := Decode(strings.NewReader("[1, 2"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyDocument)
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build[int](decode(t, "[[1, 2], [3]]"))
	assert.ErrorIs(t, err, ndarray.ErrInvalidArgument, "ragged")

	_, err = Build[int](decode(t, "[a, b]"))
	assert.ErrorIs(t, err, ndarray.ErrInvalidArgument, "non-numeric")

	_, err = Build[int](decode(t, "shape: [4]\ndata: [1, 2, 3]"))
	assert.ErrorIs(t, err, ndarray.ErrInvalidArgument, "shape mismatch")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [[1, 0], [0, 1]]\n"), 0o600))

	doc, err := ReadFile(path)
	require.NoError(t, err)
	a, err := Build[float64](doc)
	require.NoError(t, err)
	assert.True(t, a.Equal(ndarray.Eye[float64](2)))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
