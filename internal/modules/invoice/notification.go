package invoice

import "fmt"

// Notification is a user-facing outcome event for the external
// notification sink. Exactly one is produced per terminal outcome.
// Technical error detail is logged, never put in a notification.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// Variant hints for the presentation layer.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// BatchNotification folds a batch result into its single outcome event:
// partial-or-full success when anything downloaded, total failure
// otherwise. The failure count is mentioned only when nonzero.
func BatchNotification(res BatchResult) Notification {
	if res.SuccessCount == 0 {
		return Notification{
			Title:       "Download Failed",
			Description: "Failed to download any invoices. Please try again.",
			Variant:     VariantDestructive,
		}
	}
	desc := fmt.Sprintf("Successfully downloaded %d invoice%s", res.SuccessCount, plural(res.SuccessCount))
	if res.ErrorCount > 0 {
		desc += fmt.Sprintf(", %d failed", res.ErrorCount)
	}
	return Notification{
		Title:       "Bulk Download Complete",
		Description: desc + ".",
		Variant:     VariantDefault,
	}
}

// EmptySelectionNotification reports a bulk download requested with
// nothing selected — a user-correctable condition.
func EmptySelectionNotification() Notification {
	return Notification{
		Title:       "No Orders to Download",
		Description: "Please select orders or adjust your filters.",
		Variant:     VariantDestructive,
	}
}

// BatchFailureNotification reports a failure outside the per-item loop,
// before any invoice was attempted.
func BatchFailureNotification() Notification {
	return Notification{
		Title:       "Download Failed",
		Description: "There was an error with the bulk download. Please try again.",
		Variant:     VariantDestructive,
	}
}

// DownloadedNotification reports a successful single-invoice download.
func DownloadedNotification(orderNumber string) Notification {
	return Notification{
		Title:       "Invoice Downloaded",
		Description: fmt.Sprintf("Invoice for order %s has been downloaded successfully.", orderNumber),
		Variant:     VariantDefault,
	}
}

// DownloadFailureNotification reports a failed single-invoice download.
func DownloadFailureNotification() Notification {
	return Notification{
		Title:       "Download Failed",
		Description: "There was an error downloading your invoice. Please try again.",
		Variant:     VariantDestructive,
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
