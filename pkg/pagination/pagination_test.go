package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func parseQuery(query string) Params {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/items?"+query, nil)
	return Parse(c)
}

func TestParse(t *testing.T) {
	cases := []struct {
		query string
		want  Params
	}{
		{"", Params{Page: 1, Limit: 20, Offset: 0}},
		{"page=3&limit=10", Params{Page: 3, Limit: 10, Offset: 20}},
		{"page=0&limit=0", Params{Page: 1, Limit: 20, Offset: 0}},
		{"page=-2&limit=500", Params{Page: 1, Limit: 100, Offset: 0}},
		{"page=abc&limit=xyz", Params{Page: 1, Limit: 20, Offset: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			assert.Equal(t, tc.want, parseQuery(tc.query))
		})
	}
}

func TestNewMeta(t *testing.T) {
	p := Params{Page: 2, Limit: 10, Offset: 10}

	assert.Equal(t, Meta{Page: 2, Limit: 10, Total: 0, TotalPages: 0}, p.NewMeta(0))
	assert.Equal(t, int64(1), p.NewMeta(10).TotalPages)
	assert.Equal(t, int64(3), p.NewMeta(21).TotalPages)
}
