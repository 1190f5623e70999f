package notifier

import (
	"bytes"
	"context"
	"text/template"
	"time"

	"event-registration/internal/pkg/errs"
	"event-registration/internal/usecase/notify"
)

var ticketTemplate = template.Must(template.New("ticket").Parse(`========================================
  {{.EventTitle}}
  入場チケット
========================================
受付番号 : {{.RegistrationID}}
お名前   : {{.FullName}} 様
{{- if .Organization}}
所属     : {{.Organization}}
{{- end}}
{{- if .SlotLabel}}
時間帯   : {{.SlotLabel}}
{{- end}}
人数     : {{.Seats}} 名
{{- range .Members}}
  - {{.Name}}
{{- end}}
発行日時 : {{.IssuedAt}}
----------------------------------------
受付にてこのチケットをご提示ください。
`))

// TextTicketRenderer produces a plain-text ticket attachment.
type TextTicketRenderer struct {
	location *time.Location
}

func NewTextTicketRenderer(location *time.Location) *TextTicketRenderer {
	if location == nil {
		location = time.UTC
	}
	return &TextTicketRenderer{location: location}
}

func (r *TextTicketRenderer) Render(ctx context.Context, msg notify.Message) (notify.Attachment, error) {
	if err := ctx.Err(); err != nil {
		return notify.Attachment{}, errs.Wrap(err, "render ticket")
	}
	if msg.RegistrationID == "" {
		return notify.Attachment{}, errs.New("render ticket: registration id is empty")
	}

	data := struct {
		notify.Message
		IssuedAt string
	}{
		Message:  msg,
		IssuedAt: msg.OccurredAt.In(r.location).Format("2006-01-02 15:04"),
	}

	var buf bytes.Buffer
	if err := ticketTemplate.Execute(&buf, data); err != nil {
		return notify.Attachment{}, errs.Wrap(err, "render ticket")
	}

	return notify.Attachment{
		Filename:    "ticket-" + msg.RegistrationID + ".txt",
		ContentType: `text/plain; charset="UTF-8"`,
		Data:        buf.Bytes(),
	}, nil
}
