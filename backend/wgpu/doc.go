// Package wgpu provides the WebGPU render backend.
//
// Both pipeline stages exist as WGSL compute shaders that are compiled
// to SPIR-V and built into pipelines at init time. Buffer upload and
// dispatch still depend on HAL buffer binding support; until that lands
// frames are produced by the CPU mirror of the shaders, so output is
// identical either way.
//
// Importing the package registers the backend:
//
//	import _ "github.com/termglass/termglass/backend/wgpu"
package wgpu
