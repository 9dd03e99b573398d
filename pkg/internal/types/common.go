package types

// ComponentMetadata defines the essential identifying information for components within the system.
// It is attached to every structured log entry a component emits.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Type of the component, e.g. "CONDITIONER" or "EXPERIMENT".
	Name string // Human-readable name for the component.
}

// Transformer represents a function that transforms an input of type T into an output of the same type,
// potentially with an error if the transformation fails. Conditioning stages are chained as transformers.
type Transformer[T any] func(T) (T, error)

// Option defines a configuration option function applicable to any component T.
type Option[T any] func(T)
