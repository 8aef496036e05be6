package handlers

import (
	"github.com/yoockh/askbedrock/internal/utils"
)

const errorPrefix = "Error: "

// answerText turns a service failure into page content.
// TRANSPORT, PROVIDER and MALFORMED_RESPONSE all render the same single message.
func answerText(err error) string {
	return errorPrefix + utils.Details(err)
}
