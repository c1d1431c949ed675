package shaders

import (
	_ "embed"
)

//go:embed blit.wgsl
var BlitWGSL string
