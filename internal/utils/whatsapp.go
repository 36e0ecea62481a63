package utils

import (
	"fmt"
	"net/url"
)

// WhatsAppLink builds a wa.me deep link for the given recipient number and
// message body. The number is expected in international format without the
// leading plus (e.g. "919876543210"). This is a side channel used by the view
// layer; the state manager is not involved.
func WhatsAppLink(number, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}
