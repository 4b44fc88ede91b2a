package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllHaveDescriptors(t *testing.T) {
	for _, c := range All() {
		d, ok := DescriptorOf(c)
		assert.True(t, ok, "category %q has no descriptor", c)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Color)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, CategoryWork, Normalize(CategoryWork))
	assert.Equal(t, CategoryPersonal, Normalize(Category("meeting")))
	assert.Equal(t, CategoryPersonal, Normalize(Category("")))
}
