package page_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/innkeeper/core/page"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	cfg := page.Config{ServeDirs: page.ServeDirs{
		{Path: "/a", Dir: "./a", Label: "A"},
		{Path: "/b", Dir: "./b", Label: ""},
		{Path: "/c", Dir: "./c", Label: "C"},
	}}
	build := page.BuildInfo{SHA256: "abc", Version: "1.0.0", GitCommit: "deadbeef"}
	b := page.NewBuilder(cfg, build)

	claim := &page.Claim{UID: 7, Username: "alice"}
	site := page.SiteConfig{SiteName: "Tavern", Description: "Hello **world**"}

	data := b.Build("Inn", site, claim, true)

	assert.Equal(t, "Inn", data.Title)
	assert.Equal(t, "Tavern", data.SiteName)
	assert.Equal(t, "<p>Hello <strong>world</strong></p>\n", data.SiteDescription)
	assert.Same(t, claim, data.Claim)
	assert.True(t, data.SignedIn())
	assert.True(t, data.HasUnread)
	assert.Equal(t, "abc", data.SHA256)
	assert.Equal(t, "1.0.0", data.Version)
	assert.Equal(t, "deadbeef", data.GitCommit)
	assert.Equal(t, []page.FooterLink{{Path: "/a", Label: "A"}, {Path: "/c", Label: "C"}}, data.FooterLinks)
}

func TestBuilder_DoesNotShareState(t *testing.T) {
	t.Parallel()

	dirs := page.ServeDirs{{Path: "/a", Dir: "./a", Label: "A"}}
	b := page.NewBuilder(page.Config{ServeDirs: dirs}, page.BuildInfo{})

	dirs[0].Label = "changed"
	first := b.Build("x", page.SiteConfig{}, nil, false)
	first.FooterLinks[0].Label = "mutated"

	second := b.Build("x", page.SiteConfig{}, nil, false)
	assert.Equal(t, "A", second.FooterLinks[0].Label)
	assert.False(t, second.SignedIn())
	assert.Empty(t, second.SiteDescription)
}

func TestBuilder_NoLabelledDirs(t *testing.T) {
	t.Parallel()

	b := page.NewBuilder(page.Config{ServeDirs: page.ServeDirs{{Path: "/x", Dir: "./x"}}}, page.BuildInfo{})
	assert.Empty(t, b.Build("t", page.DefaultSiteConfig(), nil, false).FooterLinks)
	assert.Empty(t, b.FooterLinks())
}

func TestBuilder_RawHTMLIsOmitted(t *testing.T) {
	t.Parallel()

	b := page.NewBuilder(page.Config{}, page.BuildInfo{})
	data := b.Build("t", page.SiteConfig{Description: "<script>alert(1)</script>"}, nil, false)
	assert.NotContains(t, data.SiteDescription, "<script>")
}

func TestServeDirs_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    page.ServeDirs
		wantErr bool
	}{
		{
			name:  "labelled and unlabelled",
			input: "/static:./static:Static, avatars:./data/avatars",
			want: page.ServeDirs{
				{Path: "/static", Dir: "./static", Label: "Static"},
				{Path: "/avatars", Dir: "./data/avatars"},
			},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:    "missing dir",
			input:   "/static",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got page.ServeDirs
			err := got.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
