package notify

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"booking-calendar-sync/internal/usecase/shared"
)

// Message is what gets delivered: the structured notification plus rendered text.
type Message struct {
	shared.Notification
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type compiled struct {
	subject *template.Template
	body    *template.Template
}

// Renderer renders notifications in the booking's language, falling back to English.
type Renderer struct {
	loc       *time.Location
	templates map[string]compiled
}

func NewRenderer(loc *time.Location) (*Renderer, error) {
	funcs := template.FuncMap{
		"when": func(t time.Time) string {
			return t.In(loc).Format("Mon 02 Jan 2006 15:04")
		},
		"isAdmin": func(n shared.Notification) bool {
			return n.Audience == shared.AudienceAdmin
		},
	}

	r := &Renderer{loc: loc, templates: make(map[string]compiled)}
	for kind, langs := range catalog {
		if _, ok := langs[defaultLanguage]; !ok {
			return nil, fmt.Errorf("template %s has no %s variant", kind, defaultLanguage)
		}
		for lang, mt := range langs {
			id := templateID(kind, lang)
			subject, err := template.New(id + ".subject").Funcs(funcs).Parse(mt.subject)
			if err != nil {
				return nil, fmt.Errorf("parse %s subject: %w", id, err)
			}
			body, err := template.New(id + ".body").Funcs(funcs).Parse(mt.body)
			if err != nil {
				return nil, fmt.Errorf("parse %s body: %w", id, err)
			}
			r.templates[id] = compiled{subject: subject, body: body}
		}
	}
	return r, nil
}

func (r *Renderer) Render(n shared.Notification) (Message, error) {
	tpl, ok := r.templates[templateID(n.Kind, strings.ToLower(n.Language))]
	if !ok {
		tpl, ok = r.templates[templateID(n.Kind, defaultLanguage)]
		if !ok {
			return Message{}, fmt.Errorf("no template for %s", n.Kind)
		}
	}

	var subject, body bytes.Buffer
	if err := tpl.subject.Execute(&subject, n); err != nil {
		return Message{}, fmt.Errorf("render %s subject: %w", n.Kind, err)
	}
	if err := tpl.body.Execute(&body, n); err != nil {
		return Message{}, fmt.Errorf("render %s body: %w", n.Kind, err)
	}
	return Message{Notification: n, Subject: subject.String(), Body: body.String()}, nil
}

func templateID(kind shared.NotificationKind, lang string) string {
	return string(kind) + "." + lang
}
