package git

// RawCommit is a single log entry exactly as reported by the git CLI,
// before any normalization.
type RawCommit struct {
	Date    string // committer date in RFC 3339 (git --date=iso-strict)
	Author  string
	Subject string // first line of the commit message
	Body    string // remaining message text, may be empty
}

// LogOptions configures a single per-repository log query.
type LogOptions struct {
	RepoPath string
	Author   string // passed to git log --author, empty for all authors
	Since    string // passed verbatim to git log --since
	Before   string // passed verbatim to git log --before
}
