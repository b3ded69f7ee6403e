// Package literal decodes nested array literals from YAML documents.
//
// A document is either a bare literal:
//
//	[[1, 2, 3], [4, 5, 6]]
//
// or a mapping with optional metadata:
//
//	dtype: int64
//	shape: [3, 2]
//	data: [[1, 2, 3], [4, 5, 6]]
//
// JSON is valid YAML, so JSON arrays are accepted as well.
package literal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// ErrEmptyDocument is returned when the input holds no literal.
var ErrEmptyDocument = errors.New("literal: empty document")

// Document is a decoded literal plus its optional metadata.
type Document struct {
	DType string `yaml:"dtype"` // Element type name, e.g. "float64"
	Shape []int  `yaml:"shape"` // Optional reshape applied after construction
	Data  any    `yaml:"data"`  // Nested literal
}

// Decode reads one YAML document from r.
func Decode(r io.Reader) (*Document, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("literal: decode: %w", err)
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	doc := &Document{}
	if root.Kind == yaml.MappingNode {
		if err := root.Decode(doc); err != nil {
			return nil, fmt.Errorf("literal: decode document: %w", err)
		}
	} else if err := root.Decode(&doc.Data); err != nil {
		return nil, fmt.Errorf("literal: decode data: %w", err)
	}

	if doc.Data == nil {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// ReadFile decodes the YAML document stored at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is supplied by the caller on purpose
	if err != nil {
		return nil, fmt.Errorf("literal: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Build constructs a root array from the document, applying Shape if set.
func Build[T ndarray.Element](doc *Document) (*ndarray.Array[T], error) {
	a, err := ndarray.FromNested[T](doc.Data)
	if err != nil {
		return nil, fmt.Errorf("literal: %w", err)
	}
	if len(doc.Shape) > 0 {
		if a.IsScalar() {
			// Promote so the scalar can take a shape such as [1] or [1, 1].
			if a, err = ndarray.FromSlice([]T{mustScalar(a)}, 1); err != nil {
				return nil, fmt.Errorf("literal: %w", err)
			}
		}
		if err := a.Reshape(doc.Shape...); err != nil {
			return nil, fmt.Errorf("literal: %w", err)
		}
	}
	return a, nil
}

func mustScalar[T ndarray.Element](a *ndarray.Array[T]) T {
	v, err := a.Scalar()
	if err != nil {
		panic(err)
	}
	return v
}
