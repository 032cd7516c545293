package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ladder/internal/core/domain"
)

func TestPath(t *testing.T) {
	p := domain.Path{"hit", "hot", "dot"}
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "hit -> hot -> dot", p.String())

	assert.Equal(t, 0, domain.Path{"hit"}.Len())
	assert.Equal(t, 0, domain.Path(nil).Len())
}

func TestPathLimits_Valid(t *testing.T) {
	assert.True(t, domain.DefaultPathLimits().Valid())
	assert.True(t, domain.PathLimits{MaxPaths: 1, MaxDepth: 3}.Valid())
	assert.False(t, domain.PathLimits{MaxPaths: 0}.Valid())
	assert.False(t, domain.PathLimits{MaxPaths: 1, MaxDepth: -1}.Valid())
}
