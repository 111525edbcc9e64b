package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nematode/pkg/css"
)

func TestCollapseOffset(t *testing.T) {
	assert.Equal(t, 5.0, collapseOffset(10, 5))
	assert.Equal(t, 5.0, collapseOffset(5, 5))
	assert.Equal(t, 3.0, collapseOffset(2, 5))
	assert.Equal(t, 0.0, collapseOffset(0, 0))
}

func TestRelativizeMargins(t *testing.T) {
	m := css.NewBoxEdge(10, 4, 3, 8)
	RelativizeMargins(&m, css.NewBoxEdge(4, 4, 5, 2))

	assert.Equal(t, css.NewBoxEdge(6, 0, 0, 6), m)
}

func TestRelativizeMargins_EqualSidesFloorAtZero(t *testing.T) {
	m := css.Uniform(5)
	RelativizeMargins(&m, css.Uniform(5))
	assert.Equal(t, css.BoxEdge{}, m)
}

func TestRelativizeMargins_ZeroOtherIsNoop(t *testing.T) {
	m := css.NewBoxEdge(1, 2, 3, 4)
	RelativizeMargins(&m, css.BoxEdge{})
	assert.Equal(t, css.NewBoxEdge(1, 2, 3, 4), m)
}
