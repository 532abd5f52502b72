// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

var allIds = []Id{
	ManifestNotFoundId,
	EnvNotSetId,
	AmbiguousScopeId,
	ShowNotSetId,
	AmbiguousVcsId,
	UnknownVcsId,
	InvalidValueId,
	InvalidRecipeNameId,
	ExecutionFailedId,
	CommandNotFoundId,
	ShellNotFoundId,
	ConfigLoadFailedId,
}

func stubRender(t *testing.T) {
	t.Helper()
	originalRender := render
	t.Cleanup(func() { render = originalRender })

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}
}

func TestId_Constants(t *testing.T) {
	seen := make(map[Id]bool)
	for _, id := range allIds {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if ManifestNotFoundId != 1 {
		t.Errorf("ManifestNotFoundId = %d, want 1", ManifestNotFoundId)
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	issue := Get(ManifestNotFoundId)
	if issue == nil {
		t.Fatal("Get(ManifestNotFoundId) returned nil")
	}
	if issue.Id() != ManifestNotFoundId {
		t.Errorf("issue.Id() = %d, want %d", issue.Id(), ManifestNotFoundId)
	}
	if !strings.Contains(string(issue.MarkdownMsg()), "No package manifest found") {
		t.Error("MarkdownMsg() should contain 'No package manifest found'")
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	issue := &Issue{
		id:       Id(9999),
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	links := issue.DocLinks()
	links[0] = "modified"
	if issue.DocLinks()[0] != "https://docs.example.com" {
		t.Error("DocLinks() should return a clone")
	}

	ext := issue.ExtLinks()
	ext[0] = "modified"
	if issue.ExtLinks()[0] != "https://external.example.com" {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{ManifestNotFoundId, false, "No package manifest found"},
		{EnvNotSetId, false, "DD_OS"},
		{AmbiguousScopeId, false, "Ambiguous install scope"},
		{ShowNotSetId, false, "DD_SHOW"},
		{AmbiguousVcsId, false, "Both git and svn"},
		{UnknownVcsId, false, "No version control"},
		{InvalidValueId, false, "Invalid option value"},
		{InvalidRecipeNameId, false, "Invalid recipe name"},
		{ExecutionFailedId, false, "Command plan failed"},
		{CommandNotFoundId, false, "pk not found"},
		{ShellNotFoundId, false, "Shell not found"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{Id(9999), true, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}

			if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain '%s'", tt.id, tt.contains)
			}
		})
	}
}

func TestIssue_HintsMatchResolution(t *testing.T) {
	tests := []struct {
		id      Id
		want    string
		notWant string
	}{
		{ManifestNotFoundId, "Parent directories are not searched", "above the current directory"},
		{ManifestNotFoundId, "--package-root", ""},
		{EnvNotSetId, "required for every command", "Or pass"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			msg := string(Get(tt.id).MarkdownMsg())
			if !strings.Contains(msg, tt.want) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.want)
			}
			if tt.notWant != "" && strings.Contains(msg, tt.notWant) {
				t.Errorf("Get(%d).MarkdownMsg() should not contain %q", tt.id, tt.notWant)
			}
		})
	}
}

func TestValues(t *testing.T) {
	issues := Values()

	if len(issues) != len(allIds) {
		t.Fatalf("Values() returned %d issues, want %d", len(issues), len(allIds))
	}

	for i, issue := range issues {
		if issue.Id() != allIds[i] {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, issue.Id(), allIds[i])
		}
		if issue.MarkdownMsg() == "" {
			t.Errorf("Issue %d has empty MarkdownMsg", issue.Id())
		}
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	stubRender(t)

	testIssue := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue\n\nThis is a test.",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	for _, want := range []string{"See also", "- <https://docs.example.com>", "- <https://external.example.com>"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Render() = %q, want it to contain %q", rendered, want)
		}
	}
}

func TestIssue_Render_NoLinks(t *testing.T) {
	stubRender(t)

	testIssue := &Issue{
		id:    Id(9998),
		mdMsg: "# Test Issue\n\nNo links here.",
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	for _, issue := range Values() {
		rendered, err := issue.Render("notty")
		if err != nil {
			t.Errorf("Issue %d failed to render: %v", issue.Id(), err)
		}
		if rendered == "" {
			t.Errorf("Issue %d rendered to empty string", issue.Id())
		}
	}
}
