// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms vertices to world and clip space.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader applies point-light diffuse shading with an ambient term.
//
//go:embed scene.frag
var SceneFragmentShader string
