package types

// AppSettings is the tenant branding object served by the portal. It is
// fetched once per process through a shared cached query; concurrent
// consumers share one in-flight fetch and one cached result.
type AppSettings struct {
	Logo          string `json:"logo"`
	PrimaryColor  string `json:"primary_color"`
	TertiaryColor string `json:"tertiary_color"`
	AppName       string `json:"app_name"`
	Telephone     string `json:"telephone"`
	Email         string `json:"email"`
	Title         string `json:"title"`
	Slogan        string `json:"slogan"`
}
