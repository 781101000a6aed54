package cli

import "testing"

func TestGitHubToken(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		env      map[string]string
		want     string
	}{
		{"explicit wins", "input-token", map[string]string{"GITHUB_TOKEN": "env-token"}, "input-token"},
		{"github actions fallback", "", map[string]string{"GITHUB_TOKEN": "env-token", "GITHUB_ACTIONS": "true"}, "env-token"},
		{"fallback outside CI", "", map[string]string{"GITHUB_TOKEN": "env-token"}, "env-token"},
		{"forgejo ignores env", "", map[string]string{"GITHUB_TOKEN": "env-token", "FORGEJO_ACTIONS": "true"}, ""},
		{"gitea ignores env", "", map[string]string{"GITHUB_TOKEN": "env-token", "GITEA_ACTIONS": "true"}, ""},
		{"gitea explicit", "input-token", map[string]string{"GITEA_ACTIONS": "true"}, "input-token"},
		{"nothing set", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			if got := githubToken(tt.explicit, getenv); got != tt.want {
				t.Errorf("githubToken(%q) = %q, want %q", tt.explicit, got, tt.want)
			}
		})
	}
}
