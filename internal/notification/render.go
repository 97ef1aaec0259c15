package notification

import (
	"bytes"
	"fmt"
	"text/template"
)

const inquirySubject = "Nueva consulta personalizada"

var inquiryBody = template.Must(template.New("inquiry").Parse(`Has recibido una nueva consulta personalizada:

Nombre: {{ .Name }}
Email: {{ .Email }}
Fecha del evento: {{ .EventDate.Format "2006-01-02" }}
Invitados: {{ if .Guests }}{{ .Guests }}{{ else }}No especificado{{ end }}
Detalles: {{ if .Details }}{{ .Details }}{{ else }}Sin detalles{{ end }}
`))

type Message struct {
	Subject string
	Body    string
}

// Render builds the plain text message sent to the business for an inquiry.
func Render(inquiry Inquiry) (Message, error) {
	data := struct {
		Inquiry
		Guests  string
		Details string
	}{Inquiry: inquiry}
	if inquiry.Guests != nil {
		data.Guests = *inquiry.Guests
	}
	if inquiry.Details != nil {
		data.Details = *inquiry.Details
	}

	var buf bytes.Buffer
	if err := inquiryBody.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("rendering inquiry notification: %w", err)
	}

	return Message{Subject: inquirySubject, Body: buf.String()}, nil
}
