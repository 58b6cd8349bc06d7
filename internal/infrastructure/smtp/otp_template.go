package smtp

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
  <title>Verify Your Email</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:'Segoe UI',sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="padding:40px 0;">
    <tr><td align="center">
      <table width="500" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:10px;padding:40px;">
        <tr><td align="center" style="padding-bottom:20px;">
          <h1 style="color:#333333;margin:0;">{{.SiteName}}</h1>
          <p style="color:#6c757d;margin-top:8px;">Secure Email Verification</p>
        </td></tr>
        <tr><td style="color:#444444;font-size:16px;line-height:1.6;padding-bottom:30px;">
          <p>Hello,</p>
          <p>Thank you for signing up with <strong>{{.SiteName}}</strong>!</p>
          <p>Your One-Time Password (OTP) for email verification is:</p>
        </td></tr>
        <tr><td align="center" style="padding:20px 0;">
          <div style="background-color:#007bff;color:#ffffff;font-size:24px;padding:12px 30px;border-radius:8px;font-weight:bold;letter-spacing:2px;">{{.Code}}</div>
        </td></tr>
        <tr><td style="color:#666666;font-size:14px;padding-top:20px;">
          <p>This OTP is valid for <strong>{{.Minutes}} minutes</strong>. Please do not share it with anyone.</p>
          <p>If you did not request this, you can safely ignore this email.</p>
          <p style="margin-top:30px;">Regards,<br /><strong>{{.SiteName}} Team</strong></p>
        </td></tr>
        <tr><td align="center" style="padding-top:40px;font-size:12px;color:#999999;">
          &copy; {{.Year}} {{.SiteName}}. All rights reserved.
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>
`))

// OTPEmail is a rendered verification email.
type OTPEmail struct {
	Subject string
	Text    string
	HTML    string
}

// RenderOTPEmail builds the subject, plain-text and HTML bodies for a
// verification code valid for ttl.
func RenderOTPEmail(siteName, code string, ttl time.Duration) (*OTPEmail, error) {
	minutes := int(ttl.Minutes())
	if minutes < 1 {
		minutes = 1
	}
	var buf bytes.Buffer
	err := otpTemplate.Execute(&buf, struct {
		SiteName string
		Code     string
		Minutes  int
		Year     int
	}{siteName, code, minutes, time.Now().Year()})
	if err != nil {
		return nil, fmt.Errorf("render otp email: %w", err)
	}
	return &OTPEmail{
		Subject: fmt.Sprintf("Your %s OTP Code", siteName),
		Text:    fmt.Sprintf("Your verification code is %s", code),
		HTML:    buf.String(),
	}, nil
}
