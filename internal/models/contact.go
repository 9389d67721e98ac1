package models

// Category enumerates the closed set of contact topics accepted by the form.
type Category string

const (
	CategoryTicket      Category = "ticket"
	CategoryWheelchair  Category = "wheelchair"
	CategorySponsorship Category = "sponsorship"
	CategoryMedia       Category = "media"
	CategoryOther       Category = "other"
)

// Categories lists every accepted category in display order.
func Categories() []Category {
	return []Category{CategoryTicket, CategoryWheelchair, CategorySponsorship, CategoryMedia, CategoryOther}
}

// Valid reports whether the category is one of the accepted literals.
func (c Category) Valid() bool {
	switch c {
	case CategoryTicket, CategoryWheelchair, CategorySponsorship, CategoryMedia, CategoryOther:
		return true
	}
	return false
}

// Label returns the human-readable label rendered into notifications.
func (c Category) Label() string {
	switch c {
	case CategoryTicket:
		return "Tickets"
	case CategoryWheelchair:
		return "Wheelchair seating"
	case CategorySponsorship:
		return "Sponsorship"
	case CategoryMedia:
		return "Press & media"
	case CategoryOther:
		return "Other"
	}
	return string(c)
}

// ContactSubmission is a validated contact-form entry. Values only exist
// after schema validation; downstream senders never re-validate.
type ContactSubmission struct {
	Name     string
	Email    string
	Phone    string
	Category Category
	Message  string
}

// PhoneOrFallback returns the phone number or a placeholder when the
// submitter left the optional field empty.
func (s ContactSubmission) PhoneOrFallback() string {
	if s.Phone == "" {
		return "not provided"
	}
	return s.Phone
}

// NotificationOutcome records how a single channel settled for one dispatch.
type NotificationOutcome struct {
	Channel string
	Success bool
	Reason  string
}

// DispatchResult aggregates the outcomes of every channel in one dispatch.
type DispatchResult struct {
	Outcomes []NotificationOutcome
}

// OverallSuccess reports whether at least one channel settled successfully.
func (r DispatchResult) OverallSuccess() bool {
	for _, outcome := range r.Outcomes {
		if outcome.Success {
			return true
		}
	}
	return false
}

// Failures returns the outcomes that settled as failures.
func (r DispatchResult) Failures() []NotificationOutcome {
	failed := make([]NotificationOutcome, 0, len(r.Outcomes))
	for _, outcome := range r.Outcomes {
		if !outcome.Success {
			failed = append(failed, outcome)
		}
	}
	return failed
}
