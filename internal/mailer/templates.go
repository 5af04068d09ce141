package mailer

const emailTemplates = `
{{define "confirmation"}}
<html>
<body>
  <h2>Confirm your email</h2>
  <p>Thanks for registering. Click the link below to confirm your email address:</p>
  <p><a href="{{.ConfirmURL}}">{{.ConfirmURL}}</a></p>
  <p>The link is valid for 7 days. If you did not create an account, ignore this message.</p>
</body>
</html>
{{end}}
`
