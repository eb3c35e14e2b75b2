// Package status normalizes the collection provider's free-form status
// vocabulary into the internal transaction statuses. The provider is not
// consistent about terminal wording ("completed" vs "successful"), so
// classification is case-insensitive and substring-tolerant.
package status

import (
	"strings"

	"github.com/ssekandi/bookpay/internal/models"
)

// Map translates a raw provider status string into an internal status.
// It is a total function: any input, including the empty string, yields a
// valid status. Rules are evaluated in order; the first match wins.
func Map(providerStatus string) models.Status {
	s := strings.ToLower(strings.TrimSpace(providerStatus))

	// Absent status means the provider has not recorded a decision yet.
	if s == "" {
		return models.StatusPending
	}

	if s == "successful" || s == "success" ||
		s == "completed" || s == "complete" ||
		strings.Contains(s, "success") || strings.Contains(s, "complete") {
		return models.StatusSuccessful
	}

	if s == "failed" || s == "fail" || strings.Contains(s, "fail") {
		return models.StatusFailed
	}

	if s == "cancelled" || s == "cancel" || strings.Contains(s, "cancel") {
		return models.StatusCancelled
	}

	if s == "processing" || s == "pending" ||
		strings.Contains(s, "process") || strings.Contains(s, "pending") {
		if s == "processing" {
			return models.StatusProcessing
		}
		return models.StatusPending
	}

	// Unknown vocabulary is treated as still in flight. Mapping it to a
	// terminal status would either deny access after a true success or
	// grant access before one.
	return models.StatusProcessing
}
