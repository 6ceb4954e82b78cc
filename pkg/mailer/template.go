package mailer

import (
	"bytes"
	"html/template"
)

// Subjects for the verification-code emails.
const (
	SubjectVerificationCode    = "Verification code"
	SubjectNewVerificationCode = "New verification code"
	SubjectPasswordResetCode   = "Password reset code"
)

var codeTmpl = template.Must(template.New("code").Parse(
	`<p>Your code:</p><p><b>{{.Code}}</b></p><p>It expires in {{.Minutes}} minutes.</p>`))

// CodeEmailHTML renders the HTML body carrying a verification code.
func CodeEmailHTML(code string, minutes int) (string, error) {
	var buf bytes.Buffer
	err := codeTmpl.Execute(&buf, map[string]any{"Code": code, "Minutes": minutes})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
