package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderHeader_Scope(t *testing.T) {
	h := RenderHeader("Practice", "ada", "", 100)
	assert.Contains(t, h, "MasteryForge")
	assert.Contains(t, h, "ada")
	assert.Contains(t, h, "all courses")

	assert.Contains(t, RenderHeader("Practice", "ada", "algebra", 100), "algebra")
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	assert.Contains(t, msg, "Terminal too small (40x10).")
	assert.Contains(t, msg, "60x18")
}
