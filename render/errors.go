package render

import "errors"

var (
	ErrGlfwInit    = errors.New("render: failed to initialize glfw")
	ErrEmptyBounds = errors.New("render: no visible props to derive bounds from")
)
