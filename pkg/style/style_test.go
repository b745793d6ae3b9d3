// pkg/style/style_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test color mode configuration

package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/springclean/pkg/style"
)

func TestConfigure_DoesNotPanic(t *testing.T) {
	for _, mode := range []string{"auto", "always", "never", ""} {
		assert.NotPanics(t, func() { style.Configure(mode) })
	}
}

func TestStyles_RenderWithoutColor(t *testing.T) {
	style.Configure("never")

	assert.Equal(t, "hello", style.SuccessStyle.Render("hello"))
	assert.Equal(t, "warn", style.WarningStyle.Render("warn"))
	assert.Equal(t, "/a/b", style.PathStyle.Render("/a/b"))
}
