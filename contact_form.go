package main

import "context"

// FormStatus is the contact form's status line.
//
// Idle -> Sending -> Success | Failure. Success and Failure only leave
// through another submit; there is no reset back to Idle.
type FormStatus int

const (
	StatusIdle FormStatus = iota
	StatusSending
	StatusSuccess
	StatusFailure
)

func (s FormStatus) Message() string {
	switch s {
	case StatusSending:
		return "Sending..."
	case StatusSuccess:
		return "Message sent successfully!"
	case StatusFailure:
		return "Failed to send message. Please try again."
	default:
		return ""
	}
}

func (s FormStatus) String() string {
	switch s {
	case StatusSending:
		return "sending"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "idle"
	}
}

// ContactForm holds the three form fields and the status line.
type ContactForm struct {
	Fields ContactSubmission
	Status FormStatus

	// OnStatus, if set, sees every status change.
	OnStatus func(FormStatus)
}

func (f *ContactForm) setStatus(s FormStatus) {
	f.Status = s
	if f.OnStatus != nil {
		f.OnStatus(s)
	}
}

// Submit sends the current fields through relay. On success the fields are
// cleared. The relay error is returned for logging only; the status message
// never carries it.
func (f *ContactForm) Submit(ctx context.Context, relay Relayer) error {
	f.setStatus(StatusSending)
	if err := relay.Relay(ctx, f.Fields); err != nil {
		f.setStatus(StatusFailure)
		return err
	}
	f.Fields = ContactSubmission{}
	f.setStatus(StatusSuccess)
	return nil
}
