package encoding

// Serializable provides a clean, simple interface for serializing and deserializing values.
type Serializable[T any] interface {
	Serialize() ([]byte, error)
	Deserialize([]byte) error
}

// Decode builds a fresh T from data using its Serializable implementation.
func Decode[T any, P interface {
	*T
	Serializable[T]
}](data []byte) (T, error) {
	var out T
	if err := P(&out).Deserialize(data); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Encode is the function form of Serialize.
func Encode[T any](value Serializable[T]) ([]byte, error) {
	return value.Serialize()
}
