package trustpilot

type businessUnitResponse struct {
	ID string `json:"id"`
}

type reviewsResponse struct {
	Reviews []rawReview `json:"reviews"`
}

type rawReview struct {
	Consumer struct {
		DisplayName string `json:"displayName"`
	} `json:"consumer"`
	Stars     int    `json:"stars"`
	Text      string `json:"text"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}
