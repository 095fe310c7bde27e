// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// ContactEmailData holds data for the contact-form email templates.
type ContactEmailData struct {
	SiteName string
	Name     string
	Email    string
	Subject  string
	Message  string
	Phone    string
}

// BuildContactNotification creates the email sent to the site admin when
// a contact message arrives.
func BuildContactNotification(adminEmail string, data ContactEmailData) Email {
	return Email{
		To:       adminEmail,
		Subject:  fmt.Sprintf("[%s] New contact message: %s", data.SiteName, data.Subject),
		TextBody: buildNotificationText(data),
		HTMLBody: buildNotificationHTML(data),
	}
}

// BuildContactAutoReply creates the acknowledgment sent back to the person
// who submitted the form.
func BuildContactAutoReply(data ContactEmailData) Email {
	return Email{
		To:       data.Email,
		Subject:  fmt.Sprintf("We received your message - %s", data.SiteName),
		TextBody: buildAutoReplyText(data),
		HTMLBody: buildAutoReplyHTML(data),
	}
}

func buildNotificationText(data ContactEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("New contact message on %s\n\n", data.SiteName))
	buf.WriteString(fmt.Sprintf("From: %s <%s>\n", data.Name, data.Email))
	if data.Phone != "" {
		buf.WriteString(fmt.Sprintf("Phone: %s\n", data.Phone))
	}
	buf.WriteString(fmt.Sprintf("Subject: %s\n\n", data.Subject))
	buf.WriteString(data.Message + "\n")
	return buf.String()
}

func buildNotificationHTML(data ContactEmailData) string {
	tmpl := template.Must(template.New("notification").Parse(notificationHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

func buildAutoReplyText(data ContactEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Hi %s,\n\n", data.Name))
	buf.WriteString(fmt.Sprintf("Thank you for contacting %s. We received your message and will get back to you as soon as we can.\n\n", data.SiteName))
	buf.WriteString("Your message:\n")
	buf.WriteString(fmt.Sprintf("Subject: %s\n%s\n\n", data.Subject, data.Message))
	buf.WriteString("This is an automated reply; there is no need to respond.\n")
	return buf.String()
}

func buildAutoReplyHTML(data ContactEmailData) string {
	tmpl := template.Must(template.New("autoreply").Parse(autoReplyHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const notificationHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Contact Message</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 520px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 22px; font-weight: 600; color: #0f766e;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 16px; font-size: 16px; color: #374151;">New contact message received.</p>
              <p style="margin: 0 0 8px; font-size: 14px; color: #374151;"><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
              {{if .Phone}}<p style="margin: 0 0 8px; font-size: 14px; color: #374151;"><strong>Phone:</strong> {{.Phone}}</p>{{end}}
              <p style="margin: 0 0 16px; font-size: 14px; color: #374151;"><strong>Subject:</strong> {{.Subject}}</p>
              <div style="background-color: #f3f4f6; border-radius: 8px; padding: 16px; font-size: 14px; color: #1f2937; white-space: pre-wrap;">{{.Message}}</div>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

const autoReplyHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Message Received</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 520px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 22px; font-weight: 600; color: #0f766e;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 16px; font-size: 16px; color: #374151;">Hi {{.Name}},</p>
              <p style="margin: 0 0 16px; font-size: 15px; color: #374151; line-height: 1.5;">
                Thank you for contacting {{.SiteName}}. We received your message and will get back to you as soon as we can.
              </p>
              <div style="background-color: #f3f4f6; border-radius: 8px; padding: 16px; font-size: 14px; color: #1f2937;">
                <p style="margin: 0 0 8px;"><strong>Subject:</strong> {{.Subject}}</p>
                <p style="margin: 0; white-space: pre-wrap;">{{.Message}}</p>
              </div>
              <p style="margin: 24px 0 0; font-size: 12px; color: #9ca3af; text-align: center;">
                This is an automated reply; there is no need to respond.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
