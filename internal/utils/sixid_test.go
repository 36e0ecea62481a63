package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSixID_StringRoundTrip(t *testing.T) {
	id := NewSixID()
	s := id.String()
	assert.Len(t, s, 10)

	parsed, err := ParseSixID(s)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseSixID_Invalid(t *testing.T) {
	_, err := ParseSixID("short")
	assert.Error(t, err)

	_, err = ParseSixID("!!!!!!!!!!")
	assert.Error(t, err)
}

func TestParseSixID_ConfusedCharacters(t *testing.T) {
	// O decodes as 0; I and L decode as 1, in either case.
	canonical, err := ParseSixID("0112345678")
	require.NoError(t, err)

	for _, s := range []string{"OIL2345678", "oil2345678", "0Li2345678"} {
		got, err := ParseSixID(s)
		require.NoError(t, err, s)
		assert.Equal(t, canonical, got, s)
	}
}

func TestNewSixIDHook(t *testing.T) {
	fixed := SixID{1, 2, 3, 4, 5, 6}
	NewSixIDHook = func() (SixID, bool) { return fixed, true }
	defer func() { NewSixIDHook = nil }()

	assert.Equal(t, fixed, NewSixID())
	assert.Equal(t, fixed.String(), NewID())
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("919876543210", "Hi there & hello")
	assert.Equal(t, "https://wa.me/919876543210?text=Hi+there+%26+hello", link)

	link = WhatsAppLink("919876543210", `Hi, I found your listing "Sunny PG" and I am interested.`)
	assert.Equal(t, "https://wa.me/919876543210?text=Hi%2C+I+found+your+listing+%22Sunny+PG%22+and+I+am+interested.", link)
}
