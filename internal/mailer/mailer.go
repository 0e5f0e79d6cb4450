package mailer

import (
	"bytes"
	"embed"
	"html/template"
	texttemplate "text/template"
)

const (
	FromName                = "Folio"
	maxRetries              = 3
	ReviewSubmittedTemplate = "review_submitted.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, name, email string, data any) error
}

// render executes the "subject" and "body" blocks of templateFile. The
// subject is a plain header value, so it skips HTML escaping.
func render(templateFile string, data any) (subject, body string, err error) {
	subjTmpl, err := texttemplate.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return "", "", err
	}
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return "", "", err
	}

	var subj, html bytes.Buffer
	if err := subjTmpl.ExecuteTemplate(&subj, "subject", data); err != nil {
		return "", "", err
	}
	if err := tmpl.ExecuteTemplate(&html, "body", data); err != nil {
		return "", "", err
	}
	return subj.String(), html.String(), nil
}
