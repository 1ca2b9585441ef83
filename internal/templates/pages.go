package templates

const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Warbler</title>
  <link rel="stylesheet" href="/static/stylesheets/style.css">
</head>
<body>
  <nav class="navbar navbar-expand">
    <div class="container-fluid">
      <a href="/" class="navbar-brand">Warbler</a>
      <ul class="nav navbar-nav navbar-right">
        {{if .CurrentUser}}
        <li><a href="/users/{{.CurrentUser.ID}}">{{.CurrentUser.Username}}</a></li>
        <li><a href="/messages/new">New Message</a></li>
        <li><a href="/logout">Log out</a></li>
        {{else}}
        <li><a href="/signup">Sign up</a></li>
        <li><a href="/login">Log in</a></li>
        {{end}}
      </ul>
    </div>
  </nav>
  <div class="container">
    {{range .Flashes}}
    <div class="alert alert-info">{{.}}</div>
    {{end}}
    {{block "content" .}}{{end}}
  </div>
</body>
</html>`

var pageHTML = map[string]string{
	"home": `{{define "content"}}
<div class="row home">
  <aside class="col-md-4 col-lg-3" id="home-aside">
    <div class="card user-card">
      <a href="/users/{{.CurrentUser.ID}}">
        <img src="{{.CurrentUser.ImageURL}}" alt="Image for {{.CurrentUser.Username}}" class="card-image">
      </a>
      <a href="/users/{{.CurrentUser.ID}}">@{{.CurrentUser.Username}}</a>
      <ul class="user-stats nav">
        <li class="stat"><a href="/users/{{.CurrentUser.ID}}">{{.MessageCount}} Messages</a></li>
        <li class="stat"><a href="/users/{{.CurrentUser.ID}}/following">{{.FollowingCount}} Following</a></li>
        <li class="stat"><a href="/users/{{.CurrentUser.ID}}/followers">{{.FollowersCount}} Followers</a></li>
      </ul>
    </div>
  </aside>
  <ul class="list-group col-md-8 col-lg-6" id="messages">
    {{range .Timeline}}
    <li class="list-group-item">
      <a href="/messages/{{.ID}}" class="message-link"></a>
      <a href="/users/{{.UserID}}">
        <img src="{{.ImageURL}}" alt="" class="timeline-image">
      </a>
      <div class="message-area">
        <a href="/users/{{.UserID}}">@{{.Username}}</a>
        <span class="text-muted">{{date .CreatedAt}}</span>
        <p>{{.Text}}</p>
      </div>
    </li>
    {{end}}
  </ul>
</div>
{{end}}`,

	"home_anon": `{{define "content"}}
<div class="home-hero">
  <h1>What's Happening?</h1>
  <h4>New to Warbler?</h4>
  <a href="/signup" class="btn btn-primary">Sign up now</a>
</div>
{{end}}`,

	"signup": `{{define "content"}}
<div class="row justify-content-md-center">
  <div class="col-md-7 col-lg-5">
    <h2 class="join-message">Join Warbler today.</h2>
    <form method="POST" action="/signup" id="user_form">
      <input type="text" name="username" placeholder="Username" class="form-control" value="{{.FormUsername}}" required>
      <input type="email" name="email" placeholder="E-mail" class="form-control" value="{{.FormEmail}}">
      <input type="password" name="password" placeholder="Password" class="form-control">
      <input type="url" name="image_url" placeholder="(Optional) Image URL" class="form-control">
      <button class="btn btn-primary btn-lg btn-block">Sign me up!</button>
    </form>
  </div>
</div>
{{end}}`,

	"login": `{{define "content"}}
<div class="row justify-content-md-center">
  <div class="col-md-7 col-lg-5">
    <h2 class="join-message">Welcome back.</h2>
    <form method="POST" action="/login" id="user_form">
      <input type="text" name="username" placeholder="Username" class="form-control" value="{{.FormUsername}}" required>
      <input type="password" name="password" placeholder="Password" class="form-control">
      <button class="btn btn-primary btn-block btn-lg">Log in</button>
    </form>
  </div>
</div>
{{end}}`,

	"users_index": `{{define "content"}}
<div class="row">
  {{range .Users}}
  <div class="col-lg-4 col-md-6 col-12">
    <div class="card user-card">
      <div class="card-inner">
        <a href="/users/{{.ID}}">
          <img src="{{.ImageURL}}" alt="Image for {{.Username}}" class="card-image">
        </a>
        <div class="card-contents">
          <a href="/users/{{.ID}}" class="card-link">
            <p>@{{.Username}}</p>
          </a>
        </div>
      </div>
    </div>
  </div>
  {{else}}
  <h3>Sorry, no users found</h3>
  {{end}}
</div>
{{end}}`,

	"users_show": `{{define "content"}}
<div class="row user-profile">
  <aside class="col-md-4 col-lg-3" id="profile-aside">
    <h4 id="sidebar-username">@{{.User.Username}}</h4>
    {{with .User.Bio}}<p>{{.}}</p>{{end}}
    {{with .User.Location}}<p class="user-location">{{.}}</p>{{end}}
    <ul class="user-stats nav">
      <li class="stat"><a href="/users/{{.User.ID}}">{{.MessageCount}} Messages</a></li>
      <li class="stat"><a href="/users/{{.User.ID}}/following">{{.FollowingCount}} Following</a></li>
      <li class="stat"><a href="/users/{{.User.ID}}/followers">{{.FollowersCount}} Followers</a></li>
    </ul>
    {{if .CurrentUser}}
      {{if eq .CurrentUser.ID .User.ID}}
      <a href="/users/profile" class="btn btn-outline-secondary">Edit Profile</a>
      <form method="POST" action="/users/delete" id="delete-form">
        <button class="btn btn-outline-danger">Delete Profile</button>
      </form>
      {{else if .IsFollowing}}
      <form method="POST" action="/users/stop-following/{{.User.ID}}">
        <button class="btn btn-primary">Unfollow</button>
      </form>
      {{else}}
      <form method="POST" action="/users/follow/{{.User.ID}}">
        <button class="btn btn-outline-primary">Follow</button>
      </form>
      {{end}}
    {{end}}
  </aside>
  <ul class="list-group col-md-8 col-lg-6" id="messages">
    {{range .Messages}}
    <li class="list-group-item">
      <a href="/messages/{{.ID}}" class="message-link"></a>
      <div class="message-area">
        <span class="text-muted">{{date .CreatedAt}}</span>
        <p>{{.Text}}</p>
      </div>
    </li>
    {{end}}
  </ul>
</div>
{{end}}`,

	"users_following": `{{define "content"}}
<div class="row">
  <h4 id="sidebar-username">@{{.User.Username}}</h4>
  {{range .Users}}
  <div class="col-lg-4 col-md-6 col-12">
    <div class="card user-card">
      <div class="card-inner">
        <a href="/users/{{.ID}}">
          <img src="{{.ImageURL}}" alt="Image for {{.Username}}" class="card-image">
        </a>
        <div class="card-contents">
          <a href="/users/{{.ID}}" class="card-link">
            <p>@{{.Username}}</p>
          </a>
        </div>
      </div>
    </div>
  </div>
  {{end}}
</div>
{{end}}`,

	"users_followers": `{{define "content"}}
<div class="row">
  <h4 id="sidebar-username">@{{.User.Username}}</h4>
  {{range .Users}}
  <div class="col-lg-4 col-md-6 col-12">
    <div class="card user-card">
      <div class="card-inner">
        <a href="/users/{{.ID}}">
          <img src="{{.ImageURL}}" alt="Image for {{.Username}}" class="card-image">
        </a>
        <div class="card-contents">
          <a href="/users/{{.ID}}" class="card-link">
            <p>@{{.Username}}</p>
          </a>
        </div>
      </div>
    </div>
  </div>
  {{end}}
</div>
{{end}}`,

	"users_edit": `{{define "content"}}
<div class="row justify-content-md-center">
  <div class="col-md-7 col-lg-5">
    <h2 class="join-message">Edit Your Profile.</h2>
    <form method="POST" action="/users/profile" id="user_form">
      <input type="text" name="username" class="form-control" value="{{.User.Username}}" required>
      <input type="email" name="email" class="form-control" value="{{.User.Email}}">
      <input type="url" name="image_url" placeholder="Image URL" class="form-control" value="{{.User.ImageURL}}">
      <input type="url" name="header_image_url" placeholder="Header Image URL" class="form-control" value="{{.User.HeaderImageURL}}">
      <textarea name="bio" class="form-control" placeholder="Bio">{{with .User.Bio}}{{.}}{{end}}</textarea>
      <input type="text" name="location" placeholder="Location" class="form-control" value="{{with .User.Location}}{{.}}{{end}}">
      <input type="password" name="password" placeholder="Enter your password to confirm" class="form-control">
      <button class="btn btn-success">Edit this user!</button>
    </form>
  </div>
</div>
{{end}}`,

	"messages_new": `{{define "content"}}
<div class="row justify-content-md-center">
  <div class="col-md-7 col-lg-5">
    <form method="POST" action="/messages/new" id="messages_form">
      <textarea name="text" class="form-control" placeholder="What's happening?" required maxlength="140"></textarea>
      <button class="btn btn-outline-success btn-block">Add my message!</button>
    </form>
  </div>
</div>
{{end}}`,

	"messages_show": `{{define "content"}}
<div class="row justify-content-md-center">
  <ul class="col-md-8 col-lg-6 list-group no-hover" id="messages">
    <li class="list-group-item">
      <a href="/users/{{.Author.ID}}">
        <img src="{{.Author.ImageURL}}" alt="" class="timeline-image">
      </a>
      <div class="message-area">
        <a href="/users/{{.Author.ID}}">@{{.Author.Username}}</a>
        <span class="text-muted">{{date .Message.CreatedAt}}</span>
        <p class="single-message">{{.Message.Text}}</p>
      </div>
      {{if .CurrentUser}}{{if eq .CurrentUser.ID .Author.ID}}
      <form method="POST" action="/messages/{{.Message.ID}}/delete">
        <button class="btn btn-outline-danger">Delete</button>
      </form>
      {{end}}{{end}}
    </li>
  </ul>
</div>
{{end}}`,

	"not_found": `{{define "content"}}
<div class="row justify-content-md-center">
  <h2>Page not found.</h2>
  <a href="/">Back to the timeline</a>
</div>
{{end}}`,
}
