package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/", Home},
		{"", NotFound},
		{"/blogs", Blogs},
		{"/blogs/", Blogs},
		{"/contact", Contact},
		{"/videos", NotFound},
		{"/blogs/42", NotFound},
		{"//", NotFound},
		{"/contact//", NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.path))
		})
	}
}

func TestAllRoundTrips(t *testing.T) {
	for _, r := range All() {
		assert.Equal(t, r, Match(r.Path()), r.String())
	}
	assert.Equal(t, []string{"Home", "Blogs", "Contact"}, []string{Home.Label(), Blogs.Label(), Contact.Label()})
}
