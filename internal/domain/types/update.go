package types

// Release describes one published client build from the update manifest.
type Release struct {
	Version   string `json:"version"`
	URL       string `json:"url"`
	SHA256    string `json:"sha256"`
	Mandatory bool   `json:"mandatory"`
}
