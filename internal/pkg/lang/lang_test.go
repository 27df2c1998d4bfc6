package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"plain english", "en", "en"},
		{"regional english", "en-GB,en;q=0.9", "en"},
		{"spanish", "es-MX,es;q=0.8", "es"},
		{"french first", "fr-FR,fr;q=0.9,en;q=0.5", "fr"},
		{"filipino", "fil-PH", "fil"},
		{"indonesian", "id", "id"},
		{"unsupported falls back", "ja-JP", "en"},
		{"garbage falls back", ";;;", "en"},
		{"quality ordering", "de;q=0.4,es;q=0.9", "es"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect(tc.header))
		})
	}
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "You're invited to join", Greeting("en"))
	assert.NotEqual(t, Greeting("en"), Greeting("es"))
	assert.Equal(t, Greeting("en"), Greeting("xx"))
}
