package detector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect_EmptyInputDefaultsToEnglish(t *testing.T) {
	d := New()

	require.Equal(t, "en", d.Detect(""))
	require.Equal(t, "en", d.Detect("   "))
	require.Equal(t, "en", d.Detect("\n\t"))
}

func TestDetect_ScriptRanges(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"cyrillic", "Привет, мне нужна помощь с заказом", "ru"},
		{"cjk", "我的订单在哪里", "zh"},
		{"hangul", "비밀번호를 잊어버렸어요", "ko"},
		{"hiragana", "パスワードを忘れました", "ja"},
		// A single character of the script is enough
		{"cyrillic single rune", "order Д status", "ru"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, d.Detect(tt.text))
		})
	}
}

func TestDetect_DevanagariMarkers(t *testing.T) {
	d := New()

	// Marathi markers outnumber Hindi markers
	require.Equal(t, "mr", d.Detect("माझी ऑर्डर च्या मध्ये आहे"))

	// Hindi markers present, no Marathi lead
	require.Equal(t, "hi", d.Detect("मेरा ऑर्डर कहाँ है"))
}

func TestDetect_DevanagariNeverFallsThrough(t *testing.T) {
	d := New()

	// No marker word at all: the result must still be Hindi or Marathi
	got := d.Detect("नमस्कार")
	require.Contains(t, []string{"hi", "mr"}, got)
}

func TestDetect_StatisticalFallback(t *testing.T) {
	d := New()

	require.Equal(t, "es", d.Detect("¿Cómo puedo cambiar mi contraseña?"))
	require.Equal(t, "fr", d.Detect("Bonjour, j'ai besoin d'aide avec ma commande défectueuse"))
}

func TestDetect_UnclassifiableDefaultsToEnglish(t *testing.T) {
	d := New()

	require.Equal(t, "en", d.Detect("12345 !!! ???"))
}

func TestCountMarkers_CountsPresenceNotOccurrences(t *testing.T) {
	require.Equal(t, 1, countMarkers("है है है", []string{"है"}))
	require.Equal(t, 0, countMarkers("hello", []string{"है"}))
}
