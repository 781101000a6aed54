package cli

// githubToken picks the credential passed to the resolver. An explicit token
// wins. Otherwise GITHUB_TOKEN is used, but only on GitHub Actions: Forgejo
// and Gitea runners also set GITHUB_TOKEN, scoped to their own instance, so
// they must pass a token explicitly.
func githubToken(explicit string, getenv func(string) string) string {
	if explicit != "" {
		return explicit
	}
	if getenv("FORGEJO_ACTIONS") != "" || getenv("GITEA_ACTIONS") != "" {
		return ""
	}
	return getenv("GITHUB_TOKEN")
}
