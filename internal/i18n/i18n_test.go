package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	lang, ok := Parse("mk")
	assert.True(t, ok)
	assert.Equal(t, LangMK, lang)

	_, ok = Parse("de")
	assert.False(t, ok)

	_, ok = Parse("")
	assert.False(t, ok)
}

func TestTextResolve(t *testing.T) {
	tests := []struct {
		name string
		text Text
		lang Lang
		want string
	}{
		{
			name: "requested language wins",
			text: Text{EN: "Hotel Apollonia", MK: "Хотел Аполонија"},
			lang: LangMK,
			want: "Хотел Аполонија",
		},
		{
			name: "empty mk falls back to english",
			text: Text{EN: "Hotel Apollonia", MK: ""},
			lang: LangMK,
			want: "Hotel Apollonia",
		},
		{
			name: "english request ignores mk",
			text: Text{EN: "Hotel Apollonia", MK: "Хотел Аполонија"},
			lang: LangEN,
			want: "Hotel Apollonia",
		},
		{
			name: "legacy column is the last resort",
			text: Text{Legacy: "Restaurant Destan"},
			lang: LangMK,
			want: "Restaurant Destan",
		},
		{
			name: "all empty",
			text: Text{},
			lang: LangEN,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.text.Resolve(tt.lang))
		})
	}
}

func TestList(t *testing.T) {
	def := []string{"Grill", "Family"}
	mk := []string{"Скара", "Семејно"}

	assert.Equal(t, mk, List(LangMK, def, mk))
	assert.Equal(t, def, List(LangEN, def, mk))
	// two-tier only: empty mk list falls back whole, not per element
	assert.Equal(t, def, List(LangMK, def, nil))
	assert.Equal(t, def, List(LangMK, def, []string{}))
}
