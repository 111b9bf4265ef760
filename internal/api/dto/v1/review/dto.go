package review

// Response is one review card as rendered by the site's reviews carousel
type Response struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}
