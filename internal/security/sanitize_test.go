package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Отличная работа!  ", "Отличная работа!"},
		{`до <script>alert(1)</script> после`, "до  после"},
		{`<iframe src="x"></iframe>текст`, "текст"},
		{`ссылка javascript:alert(1)`, "ссылка alert(1)"},
		{`<img onerror=alert(1)>`, "<img alert(1)>"},
		{"обычный текст", "обычный текст"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeInput(tc.in))
	}
}

func TestSanitizeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;жирный&lt;&#x2F;b&gt;", SanitizeHTML("<b>жирный</b>"))
	assert.Equal(t, "&quot;кавычки&quot; &amp; &#x27;апострофы&#x27;", SanitizeHTML(`"кавычки" & 'апострофы'`))
}

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
	assert.False(t, ValidRating(-1))
}
