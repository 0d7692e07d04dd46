package notify

import "booking-calendar-sync/internal/usecase/shared"

const defaultLanguage = "en"

type messageTemplate struct {
	subject string
	body    string
}

// catalog is keyed by kind, then language. Every kind has an English entry.
var catalog = map[shared.NotificationKind]map[string]messageTemplate{
	shared.NotifyBookingCreated: {
		"en": {
			subject: `{{if isAdmin .}}New booking request from {{.ClientName}}{{else}}We received your booking request{{end}}`,
			body: `{{if isAdmin .}}{{.ClientName}} ({{.ClientEmail}}) requested {{when .Start}}.
Accept or reject: {{.AdminToken}}{{else}}Hello {{.ClientName}}, your request for {{when .Start}} is waiting for confirmation.
Manage it with your booking code {{.ClientToken}}.{{end}}`,
		},
		"de": {
			subject: `{{if isAdmin .}}Neue Buchungsanfrage von {{.ClientName}}{{else}}Ihre Buchungsanfrage ist eingegangen{{end}}`,
			body: `{{if isAdmin .}}{{.ClientName}} ({{.ClientEmail}}) möchte {{when .Start}} buchen.{{else}}Hallo {{.ClientName}}, Ihre Anfrage für {{when .Start}} wartet auf Bestätigung.
Buchungscode: {{.ClientToken}}{{end}}`,
		},
	},
	shared.NotifyBookingAccepted: {
		"en": {subject: `Your booking is confirmed`, body: `Hello {{.ClientName}}, see you {{when .Start}}.`},
		"de": {subject: `Ihre Buchung ist bestätigt`, body: `Hallo {{.ClientName}}, wir sehen uns am {{when .Start}}.`},
	},
	shared.NotifyBookingRejected: {
		"en": {subject: `Your booking request was declined`, body: `Hello {{.ClientName}}, unfortunately {{when .Start}} is not possible. Please pick another time.`},
		"de": {subject: `Ihre Buchungsanfrage wurde abgelehnt`, body: `Hallo {{.ClientName}}, der Termin {{when .Start}} ist leider nicht möglich.`},
	},
	shared.NotifyRescheduleRequested: {
		"en": {
			subject: `{{.ClientName}} asked to reschedule`,
			body:    `{{.ClientName}} wants to move {{when .Start}}{{with .ProposedStart}} to {{when .}}{{end}}.`,
		},
	},
	shared.NotifyRescheduleAccepted: {
		"en": {subject: `Your booking was moved`, body: `Hello {{.ClientName}}, your appointment is now {{when .Start}}.`},
		"de": {subject: `Ihr Termin wurde verschoben`, body: `Hallo {{.ClientName}}, Ihr Termin ist jetzt am {{when .Start}}.`},
	},
	shared.NotifyProposalSent: {
		"en": {
			subject: `A new time was proposed for your booking`,
			body:    `Hello {{.ClientName}}, instead of {{when .Start}} we can offer{{with .ProposedStart}} {{when .}}{{end}}. Please accept or decline.`,
		},
		"de": {
			subject: `Neuer Terminvorschlag`,
			body:    `Hallo {{.ClientName}}, statt {{when .Start}} schlagen wir{{with .ProposedStart}} {{when .}}{{end}} vor.`,
		},
	},
	shared.NotifyProposalAccepted: {
		"en": {subject: `{{.ClientName}} accepted the proposed time`, body: `The booking is now {{when .Start}}.`},
	},
	shared.NotifyProposalDeclined: {
		"en": {subject: `{{.ClientName}} declined the proposed time`, body: `The booking for {{when .Start}} is pending again.`},
	},
	shared.NotifyProposalRevoked: {
		"en": {subject: `The proposed time was withdrawn`, body: `Hello {{.ClientName}}, your booking stays at {{when .Start}}.`},
		"de": {subject: `Der Terminvorschlag wurde zurückgezogen`, body: `Hallo {{.ClientName}}, Ihr Termin bleibt am {{when .Start}}.`},
	},
	shared.NotifyCancelledByClient: {
		"en": {subject: `{{.ClientName}} cancelled`, body: `The booking for {{when .Start}} was cancelled by the client.`},
	},
	shared.NotifyCancelledBySync: {
		"en": {subject: `Your booking was cancelled`, body: `Hello {{.ClientName}}, your appointment {{when .Start}} was cancelled.`},
		"de": {subject: `Ihr Termin wurde storniert`, body: `Hallo {{.ClientName}}, Ihr Termin am {{when .Start}} wurde storniert.`},
	},
	shared.NotifyRescheduledBySync: {
		"en": {subject: `Your booking was moved`, body: `Hello {{.ClientName}}, your appointment now takes place {{when .Start}}.`},
		"de": {subject: `Ihr Termin wurde verlegt`, body: `Hallo {{.ClientName}}, Ihr Termin findet jetzt am {{when .Start}} statt.`},
	},
	shared.NotifyReminderDue: {
		"en": {subject: `Reminder: your appointment`, body: `Hello {{.ClientName}}, this is a reminder for {{when .Start}}.`},
		"de": {subject: `Erinnerung an Ihren Termin`, body: `Hallo {{.ClientName}}, wir erinnern an Ihren Termin am {{when .Start}}.`},
	},
}
