package handler

import (
	"fmt"
	"html"
	"html/template"

	"ProfileCards_WebProject/internal/models"
)

const layoutHTML = `{{define "layout"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
    body{margin:0;font-family:ui-sans-serif,system-ui,sans-serif;color:#1c2540;background:#f7fafc;line-height:1.6;padding:28px 18px}
    .wrap{max-width:900px;margin:0 auto}
    .card{background:#fff;border:1px solid #e6ecf2;border-radius:18px;padding:22px}
    .muted{color:#64748b;font-size:14px}
    .row{display:flex;gap:10px;flex-wrap:wrap;margin-top:14px}
    .btn{border:1px solid #e6ecf2;background:#fff;padding:10px 14px;border-radius:12px;text-decoration:none;font-weight:700;color:#1c2540;cursor:pointer}
    .btn.primary{background:#eff5ff}
    .btn.del{color:#b01616}
    .msg{margin:8px 0;padding:10px 12px;border-radius:12px;font-size:14px}
    .msg.ok{background:#effdf8;color:#0f8c76}
    .msg.err{background:#fff2f2;color:#b01616}
    .grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(240px,1fr));gap:12px}
    .item{border:1px solid #e6ecf2;border-radius:14px;padding:14px}
    footer{margin-top:22px;text-align:center;font-size:13px;color:#64748b}
  </style>
</head>
<body>
  <div class="wrap">
    <section class="card">
      <h1>{{.Title}}</h1>
      {{if .Subtitle}}<div class="muted">{{.Subtitle}}</div>{{end}}
      {{template "content" .}}
    </section>
    <footer>{{.Footer}}</footer>
  </div>
</body>
</html>{{end}}`

const profileSavedHTML = `{{define "content"}}
      <div class="item">
        <div class="name"><strong>{{if .Profile.Name}}{{.Profile.Name}}{{else}}(Unnamed){{end}}</strong></div>
        <div class="muted">{{.Profile.Gender}} • ID: {{.Profile.ID}}</div>
        {{if .Profile.Hobby}}<div class="row"><span class="chip">{{.Profile.Hobby}}</span></div>{{end}}
        <div class="row">
          <a class="btn primary" href="/viewcard.html">View Cards</a>
          <a class="btn" href="/form.html">Add Another</a>
          <a class="btn" href="/">Home</a>
        </div>
      </div>
{{end}}`

const deleteCardsHTML = `{{define "content"}}
      {{if .Toast}}<div class="msg ok">{{.Toast}}</div>{{end}}
      <div class="muted"><a href="/viewcard.html">View Cards</a> • <a href="/form.html">Register Card</a> • <a href="/">Home</a></div>
      <div class="grid">
      {{range .Cards}}
        <div class="item">
          <div class="name"><strong>{{if .Name}}{{.Name}}{{else}}(No name){{end}}</strong></div>
          <div class="muted">ID: {{.ID}} • {{if .Gender}}{{.Gender}}{{else}}—{{end}}</div>
          <div class="hobby">{{if .Hobby}}{{.Hobby}}{{else}}—{{end}}</div>
          <form method="POST" action="/cgi_bin/delete_cards.py">
            <input type="hidden" name="_mode" value="delete" />
            <input type="hidden" name="id" value="{{.ID}}" />
            {{if $.TokenRequired}}<input type="password" name="token" placeholder="Admin token" />{{end}}
            <button class="btn del" type="submit" title="Delete this card">× Delete</button>
          </form>
        </div>
      {{else}}
        <div class="muted">No saved cards found.</div>
      {{end}}
      </div>
{{end}}`

const uploadHTML = `{{define "content"}}
      <div class="muted">Upload path: <code>{{.UploadDir}}</code></div>
      {{if .OK}}<div class="msg ok">{{.OK}}</div>{{end}}
      {{if .Err}}<div class="msg err">{{.Err}}</div>{{end}}
      <form method="POST" enctype="multipart/form-data" action="">
        <label class="muted">Choose file(s) to upload</label>
        <input type="file" name="file" multiple />
        <div class="muted">Allowed: {{.AllowedExts}} • Max per file: {{.MaxSize}}</div>
        <div class="row">
          <button class="btn primary" type="submit">Upload</button>
          <a class="btn" href="/index.html">Back to Home</a>
          <a class="btn" href="/upload/">Open /upload/</a>
        </div>
      </form>
      {{if .ShowDetails}}
      <div class="muted"><strong>Result details</strong></div>
      <ul class="files">
        {{range .Saved}}<li>✅ {{.Name}} — {{.Size}} • Last modified: {{.Modified}}</li>{{end}}
        {{range .Failed}}<li>❌ {{.Name}} — {{.Reason}}</li>{{end}}
      </ul>
      {{end}}
{{end}}`

const deleteUploadsHTML = `{{define "content"}}
      <div class="muted">Upload path: <code>{{.UploadDir}}</code></div>
      {{if .Missing}}
      <div class="msg err">Upload directory not found or not a directory.</div>
      <p class="muted">Set <code>UPLOAD_DIR</code> or create the default path above.</p>
      {{else}}
      {{if .OK}}<div class="msg ok">{{.OK}}</div>{{end}}
      {{if .Err}}<div class="msg err">{{.Err}}</div>{{end}}
      {{if .Files}}
      <form method="POST" action="">
        <div class="grid">
        {{range .Files}}<div class="item"><label><input type="checkbox" name="files" value="{{.}}"> {{.}}</label></div>{{end}}
        </div>
        {{if .TokenRequired}}<input type="password" name="token" placeholder="Admin token" />{{end}}
        <div class="row">
          <button class="btn del" type="submit">Delete selected</button>
          <a class="btn" href="/index2.html">Back to Home</a>
        </div>
      </form>
      {{else}}
      <p class="muted">No files found in the upload directory.</p>
      <div class="row"><a class="btn" href="/index2.html">Back to Home</a></div>
      {{end}}
      {{end}}
{{end}}`

var baseTemplate = template.Must(template.New("layout").Parse(layoutHTML))

func page(content string) *template.Template {
	return template.Must(template.Must(baseTemplate.Clone()).Parse(content))
}

var (
	profileSavedPage  = page(profileSavedHTML)
	deleteCardsPage   = page(deleteCardsHTML)
	uploadPage        = page(uploadHTML)
	deleteUploadsPage = page(deleteUploadsHTML)
)

type layoutData struct {
	Title    string
	Subtitle string
	Footer   string
}

type profileSavedData struct {
	layoutData
	Profile models.Profile
}

type deleteCardsData struct {
	layoutData
	Toast         string
	Cards         []models.ProfileCard
	TokenRequired bool
}

type savedFileView struct {
	Name     string
	Size     string
	Modified string
}

type uploadData struct {
	layoutData
	UploadDir   string
	AllowedExts string
	MaxSize     string
	OK          string
	Err         string
	ShowDetails bool
	Saved       []savedFileView
	Failed      []models.FailedFile
}

type deleteUploadsData struct {
	layoutData
	UploadDir     string
	Missing       bool
	OK            string
	Err           string
	Files         []string
	TokenRequired bool
}

// redirectPage is written by hand: the destination has to appear inside a
// meta refresh attribute, which html/template does not treat as a URL.
func redirectPage(dest string) string {
	escaped := html.EscapeString(dest)
	return fmt.Sprintf(`<!doctype html>
<html><head>
  <meta http-equiv="refresh" content="0; url=%s">
  <title>Redirecting…</title>
</head>
<body>
  <p>Redirecting to <a href="%s">%s</a></p>
</body></html>`, escaped, escaped, escaped)
}
