package vector

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/gmath/pkg/encoding"
)

var (
	_ encoding.Serializable[Vector[float64]] = (*Vector[float64])(nil)
	_ cbor.Marshaler                         = Vector[float64]{}
	_ cbor.Unmarshaler                       = (*Vector[float64])(nil)
	_ yaml.Marshaler                         = Vector[float64]{}
	_ yaml.Unmarshaler                       = (*Vector[float64])(nil)
)

// fromComponents accepts the 2 and 3 element forms; a missing Z is zero.
func fromComponents[T Scalar](c []T) (Vector[T], error) {
	switch len(c) {
	case 2:
		return New2(c[0], c[1]), nil
	case 3:
		return New(c[0], c[1], c[2]), nil
	default:
		return Vector[T]{}, fmt.Errorf("%w: got %d", ErrInvalidComponents, len(c))
	}
}

// MarshalCBOR encodes v as a CBOR array of three scalars.
func (v Vector[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([3]T{v.x, v.y, v.z})
}

// UnmarshalCBOR decodes a CBOR array of two or three scalars into v.
func (v *Vector[T]) UnmarshalCBOR(data []byte) error {
	var c []T
	if err := cbor.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("decode vector: %w", err)
	}
	decoded, err := fromComponents(c)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// Serialize returns the CBOR encoding of v.
func (v *Vector[T]) Serialize() ([]byte, error) {
	return v.MarshalCBOR()
}

// Deserialize replaces v with the vector encoded in data.
func (v *Vector[T]) Deserialize(data []byte) error {
	return v.UnmarshalCBOR(data)
}

// MarshalYAML renders v as a flow sequence [x, y, z].
func (v Vector[T]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range [3]T{v.x, v.y, v.z} {
		var item yaml.Node
		if err := item.Encode(c); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &item)
	}
	return node, nil
}

// UnmarshalYAML reads [x, y] or [x, y, z].
func (v *Vector[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: expected a sequence", ErrInvalidComponents, value.Line)
	}
	var c []T
	if err := value.Decode(&c); err != nil {
		return fmt.Errorf("decode vector: %w", err)
	}
	decoded, err := fromComponents(c)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*v = decoded
	return nil
}
