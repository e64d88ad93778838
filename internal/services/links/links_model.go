package links

// FindLinksRequest is the body of POST /api/get-url.
type FindLinksRequest struct {
	ImageURL string `json:"imageUrl"`
}

// Caller-visible error messages.
const (
	MsgNoImageURL   = "No image URL provided"
	MsgProcessImage = "failed to process the image"
	MsgParseResults = "Failed to parse results from script."
)

// Tutorial and Results describe what the bundled script prints. They are not
// used to decode script output, which is passed through as-is.
type Tutorial struct {
	Title          string `json:"title"`
	URL            string `json:"url"`
	ProductName    string `json:"product_name"`
	FormattedViews string `json:"formatted_views"`
}

type Results struct {
	ProductKeyword string     `json:"product_keyword"`
	Tutorials      []Tutorial `json:"tutorials"`
}
