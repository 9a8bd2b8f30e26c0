// Package templates provides email template layout
package templates

import (
	"bytes"
	"html/template"
	"log"
)

type EmailLayoutProps struct {
	Preheader string
	Content   string
}

type emailTemplateData struct {
	Preheader string
	Content   template.HTML
}

var emailLayoutTemplate = template.Must(template.New("emailLayout").Parse(`
<!doctype html>
<html lang="en">
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
    <title>Email from ComboLab</title>
  </head>
  <body style="font-family: Helvetica, sans-serif; font-size: 16px; line-height: 1.3; background-color: #f4f5f6; margin: 0; padding: 0;">
    <span class="preheader" style="color: transparent; display: none; height: 0; max-height: 0; max-width: 0; opacity: 0; overflow: hidden; visibility: hidden; width: 0;">{{.Preheader}}</span>
    <table role="presentation" border="0" cellpadding="0" cellspacing="0" style="background-color: #f4f5f6; width: 100%;" width="100%" bgcolor="#f4f5f6">
      <tr>
        <td>&nbsp;</td>
        <td style="max-width: 600px; padding: 24px; background-color: #ffffff; border-radius: 8px;">
          {{.Content}}
          <p style="color: #9a9ea6; font-size: 13px; margin-top: 32px;">ComboLab, the community combo lab for fighting games.</p>
        </td>
        <td>&nbsp;</td>
      </tr>
    </table>
  </body>
</html>
`))

// GetEmailLayout wraps content in the standard email shell.
func GetEmailLayout(props EmailLayoutProps) string {
	data := emailTemplateData{
		Preheader: props.Preheader,
		Content:   template.HTML(props.Content),
	}

	var buf bytes.Buffer
	if err := emailLayoutTemplate.Execute(&buf, data); err != nil {
		log.Printf("ERROR: failed to render email layout: %v", err)
		return props.Content
	}
	return buf.String()
}
