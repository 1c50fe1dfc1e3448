// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"math"
	texttemplate "text/template"
)

const passwordResetSubject = "MathKids - password reset"

const defaultRecipientName = "user"

var passwordResetHTML = htmltemplate.Must(htmltemplate.New("reset.html").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>MathKids</h2>
  <p>Hello, {{.Name}}!</p>
  <p>We received a request to reset the password of your MathKids account.</p>
  <p><a href="{{.ResetLink}}" style="background: #4CAF50; color: #fff; padding: 12px 24px; text-decoration: none; border-radius: 4px;">Reset password</a></p>
  <p>This link expires in {{.ExpiresInMinutes}} minutes and can only be used once.</p>
  <p>If you did not request a reset, ignore this email: your password stays the same.</p>
</body>
</html>
`))

var passwordResetText = texttemplate.Must(texttemplate.New("reset.txt").Parse(`Hello, {{.Name}}!

We received a request to reset the password of your MathKids account.
Open the link below to choose a new password:

{{.ResetLink}}

This link expires in {{.ExpiresInMinutes}} minutes and can only be used once.
If you did not request a reset, ignore this email: your password stays the same.
`))

type passwordResetView struct {
	Name             string
	ResetLink        string
	ExpiresInMinutes int
}

type renderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

func renderPasswordReset(email PasswordResetEmail) (renderedEmail, error) {
	view := passwordResetView{
		Name:             email.Name,
		ResetLink:        email.ResetLink,
		ExpiresInMinutes: int(math.Ceil(email.ExpiresIn.Minutes())),
	}
	if view.Name == "" {
		view.Name = defaultRecipientName
	}

	var html, text bytes.Buffer
	if err := passwordResetHTML.Execute(&html, view); err != nil {
		return renderedEmail{}, fmt.Errorf("%w: %w", ErrRenderingTemplate, err)
	}
	if err := passwordResetText.Execute(&text, view); err != nil {
		return renderedEmail{}, fmt.Errorf("%w: %w", ErrRenderingTemplate, err)
	}

	return renderedEmail{
		Subject: passwordResetSubject,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
