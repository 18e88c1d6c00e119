package page

// SiteConfig is the admin-editable site identity shown on every page.
type SiteConfig struct {
	SiteName string
	// Description is Markdown; it is rendered to HTML when building a page.
	Description string
}

// DefaultSiteConfig is used where no stored configuration is available,
// such as the error page.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteName:    "innkeeper",
		Description: "A forum built from **inns**.",
	}
}

// Claim identifies the signed-in user viewing a page.
type Claim struct {
	UID       uint32
	Username  string
	Role      uint8
	SessionID string
}

// FooterLink is a labelled link to a served directory.
type FooterLink struct {
	Path  string
	Label string
}

// BuildInfo identifies the running binary.
type BuildInfo struct {
	SHA256    string
	Version   string
	GitCommit string
}

// Data is the shared context every rendered page receives.
type Data struct {
	Title           string
	SiteName        string
	SiteDescription string
	Claim           *Claim
	HasUnread       bool
	SHA256          string
	Version         string
	GitCommit       string
	FooterLinks     []FooterLink
}

// SignedIn reports whether the page is rendered for a signed-in user.
func (d Data) SignedIn() bool {
	return d.Claim != nil
}
