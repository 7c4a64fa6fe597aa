package mail

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Daily Job Application Reminders</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f5f5f5; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px; }
        .header { color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px; margin-bottom: 20px; }
        .reminder-item { margin-bottom: 15px; padding: 15px; border-left: 4px solid #22c55e; background-color: #f0fdf4; }
        .overdue { border-left-color: #ef4444; background-color: #fef2f2; }
        .company { font-weight: bold; color: #0f172a; }
        .role { color: #475569; }
        .action { margin-top: 5px; font-style: italic; }
        .due-date { color: #64748b; font-size: 0.9em; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0; color: #64748b; font-size: 0.9em; }
        .btn { display: inline-block; padding: 10px 20px; background-color: #2563eb; color: white; text-decoration: none; border-radius: 4px; margin-top: 10px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Daily Job Application Reminders</h1>
            <p>Hi {{.UserName}},</p>
            <p>You have {{.TotalItems}} action{{.Plural}} due today:</p>
        </div>

        {{range .Items}}
        <div class="reminder-item {{if .IsOverdue}}overdue{{end}}">
            <div class="company">{{.Company}}</div>
            <div class="role">{{.RoleTitle}}</div>
            <div class="action">{{.NextAction}}</div>
            <div class="due-date">
                Due: {{.NextActionDue}}
                {{if .IsOverdue}}<strong>(OVERDUE)</strong>{{end}}
            </div>
            <a href="{{$.BaseURL}}/applications/{{.ID}}" class="btn">View Application</a>
        </div>
        {{end}}

        <div class="footer">
            <p>Manage your job applications at <a href="{{.BaseURL}}">Job Tracker</a></p>
            <p><a href="{{.BaseURL}}/settings">Update your reminder preferences</a></p>
        </div>
    </div>
</body>
</html>
`

const textTemplate = `Daily Job Application Reminders

Hi {{.UserName}},

You have {{.TotalItems}} action{{.Plural}} due today:

{{range .Items}}{{.Company}} - {{.RoleTitle}}
Action: {{.NextAction}}
Due: {{.NextActionDue}}{{if .IsOverdue}} (OVERDUE){{end}}
View: {{$.BaseURL}}/applications/{{.ID}}

{{end}}
Manage your job applications at {{.BaseURL}}
Update your reminder preferences at {{.BaseURL}}/settings
`
