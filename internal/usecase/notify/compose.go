package notify

import (
	"bytes"
	"text/template"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	// chat alerts go out with Markdown parse mode; user text must not open entities
	"md": func(s string) string { return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s) },
}

var (
	subjects = map[Kind]string{
		KindAdmission:    "【受付完了】{{.EventTitle}} お申し込みありがとうございます",
		KindCancellation: "【キャンセル受付】{{.EventTitle}}",
	}

	bodies = map[Kind]string{
		KindAdmission: `{{.FullName}} 様

{{.EventTitle}} へのお申し込みを受け付けました。

受付番号: {{.RegistrationID}}
{{- if .SlotLabel}}
時間帯: {{.SlotLabel}}
{{- end}}
人数: {{.Seats}} 名
{{- range $i, $m := .Members}}
同伴者{{inc $i}}: {{$m.Name}}{{if $m.Kana}}（{{$m.Kana}}）{{end}}
{{- end}}

当日は添付のチケットをご提示ください。
キャンセルの際は受付番号とメールアドレスをご用意ください。
`,
		KindCancellation: `{{.FullName}} 様

{{.EventTitle}} のキャンセルを受け付けました。

受付番号: {{.RegistrationID}}
{{- if .CancelReason}}
キャンセル理由: {{.CancelReason}}
{{- end}}

またのお申し込みをお待ちしております。
`,
	}

	chatLines = map[Kind]string{
		KindAdmission:    "*新規申込* {{md .EventTitle}}{{if .SlotLabel}} ({{md .SlotLabel}}){{end}}\n受付番号: {{md .RegistrationID}}\n{{md .FullName}}{{if .Organization}} / {{md .Organization}}{{end}} ({{.Seats}}名)",
		KindCancellation: "*キャンセル* {{md .EventTitle}}{{if .SlotLabel}} ({{md .SlotLabel}}){{end}}\n受付番号: {{md .RegistrationID}}\n{{md .FullName}}{{if .CancelReason}}\n理由: {{md .CancelReason}}{{end}}",
	}
)

var (
	subjectTemplates = mustParseAll("subject", subjects)
	bodyTemplates    = mustParseAll("body", bodies)
	chatTemplates    = mustParseAll("chat", chatLines)
)

func mustParseAll(name string, src map[Kind]string) map[Kind]*template.Template {
	out := make(map[Kind]*template.Template, len(src))
	for kind, text := range src {
		out[kind] = template.Must(template.New(name + "_" + string(kind)).Funcs(funcs).Parse(text))
	}
	return out
}

func ComposeMail(msg Message) (Mail, error) {
	subject, err := execute(subjectTemplates[msg.Kind], msg)
	if err != nil {
		return Mail{}, err
	}
	body, err := execute(bodyTemplates[msg.Kind], msg)
	if err != nil {
		return Mail{}, err
	}
	return Mail{To: msg.Email, Subject: subject, Body: body}, nil
}

func ComposeChat(msg Message) (string, error) {
	return execute(chatTemplates[msg.Kind], msg)
}

func execute(t *template.Template, msg Message) (string, error) {
	if t == nil {
		return "", ErrUnknownKind
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}
