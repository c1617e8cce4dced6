package attribute

// BaseAttribute is any value that can be rendered for output.
type BaseAttribute interface {
	String() string
}
