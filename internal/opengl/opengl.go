package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

var ErrUniformNotFound = errors.New("uniform not found")

// Init loads the GL entry points for the current context and sets the
// fixed pipeline state.
func Init(width, height int, log *zap.Logger) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("load GL functions: %w", err)
	}

	log.Debug("GL context",
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(width), int32(height))

	return CheckError("GL init")
}

// CheckError drains the GL error queue and reports every pending code.
func CheckError(op string) error {
	var codes []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		codes = append(codes, errorName(code))
		if len(codes) > 8 {
			break
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return fmt.Errorf("%s failed: %s", op, strings.Join(codes, ", "))
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%04x", code)
	}
}
