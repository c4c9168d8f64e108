package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<html>
  <body style="font-family: sans-serif">
    <h2>Welcome to {{.AppName}}, {{.Name}}!</h2>
    <p>Your account is ready. Sign in and start organizing your tasks.</p>
  </body>
</html>
`))

// Render produces subject, text, and html bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "welcome":
		var buf bytes.Buffer
		if err = welcomeTmpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = fmt.Sprintf("Welcome to %v", data["AppName"])
		text = fmt.Sprintf("Welcome to %v, %v! Your account is ready.", data["AppName"], data["Name"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}
