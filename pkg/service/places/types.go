package places

type findPlaceResponse struct {
	Status     string `json:"status"`
	Candidates []struct {
		PlaceID string `json:"place_id"`
	} `json:"candidates"`
}

type placeDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Rating           float64     `json:"rating"`
		UserRatingsTotal int         `json:"user_ratings_total"`
		Reviews          []rawReview `json:"reviews"`
	} `json:"result"`
}

type rawReview struct {
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Time       int64  `json:"time"`
	Language   string `json:"language"`
}
