package notifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"event-registration/internal/pkg/config"
	"event-registration/internal/pkg/errs"
	"event-registration/internal/usecase/notify"

	"github.com/google/uuid"
)

// NewMailer returns an SMTP mailer, or a mailer that only logs when no SMTP host is configured.
func NewMailer(cfg config.SMTPConfig) notify.Mailer {
	if cfg.Host == "" {
		slog.Warn("SMTP host is empty, confirmation emails will only be logged")
		return &LogMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

type LogMailer struct{}

func (m *LogMailer) Send(_ context.Context, mail notify.Mail) error {
	names := make([]string, len(mail.Attachments))
	for i, a := range mail.Attachments {
		names[i] = a.Filename
	}
	slog.Info("email not sent (SMTP disabled)",
		"to", mail.To,
		"subject", mail.Subject,
		"attachments", names)
	return nil
}

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func (m *SMTPMailer) Send(ctx context.Context, mail notify.Mail) error {
	raw, err := buildMessage(m.cfg.From, mail, time.Now())
	if err != nil {
		return errs.Wrap(err, "build mail")
	}

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	// net/smtp has no context support; run it aside and stop waiting when ctx ends.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.cfg.From, []string{mail.To}, raw)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errs.Wrapf(err, "smtp send to %s", addr)
		}
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "smtp send")
	}
}

func buildMessage(from string, mail notify.Mail, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	header := textproto.MIMEHeader{}
	header.Set("From", from)
	header.Set("To", mail.To)
	header.Set("Subject", mime.BEncoding.Encode("UTF-8", mail.Subject))
	header.Set("Date", now.Format(time.RFC1123Z))
	header.Set("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), domainOf(from)))
	header.Set("MIME-Version", "1.0")

	if len(mail.Attachments) == 0 {
		header.Set("Content-Type", `text/plain; charset="UTF-8"`)
		header.Set("Content-Transfer-Encoding", "base64")
		writeHeader(&buf, header)
		writeBase64(&buf, []byte(mail.Body))
		return buf.Bytes(), nil
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header.Set("Content-Type", "multipart/mixed; boundary="+mw.Boundary())
	writeHeader(&buf, header)

	textPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {`text/plain; charset="UTF-8"`},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return nil, err
	}
	writeBase64(textPart, []byte(mail.Body))

	for _, a := range mail.Attachments {
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {contentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename})},
		})
		if err != nil {
			return nil, err
		}
		writeBase64(part, a.Data)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	buf.Write(body.Bytes())
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, h textproto.MIMEHeader) {
	for _, k := range []string{"From", "To", "Subject", "Date", "Message-ID", "MIME-Version", "Content-Type", "Content-Transfer-Encoding"} {
		if v := h.Get(k); v != "" {
			fmt.Fprintf(buf, "%s: %s\r\n", k, v)
		}
	}
	buf.WriteString("\r\n")
}

// writeBase64 wraps at 76 columns as RFC 2045 requires.
func writeBase64(w interface{ Write([]byte) (int, error) }, data []byte) {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 76 {
		_, _ = w.Write([]byte(encoded[:76] + "\r\n"))
		encoded = encoded[76:]
	}
	_, _ = w.Write([]byte(encoded + "\r\n"))
}

func domainOf(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return strings.Trim(addr[i+1:], "> ")
	}
	return "localhost"
}
