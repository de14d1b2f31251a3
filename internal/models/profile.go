package models

// GeneratedProfile is one persisted (prompt, image, profile) triple.
// Records are written once and never updated.
type GeneratedProfile struct {
	ID       int64  `json:"id" example:"1"`
	Prompt   string `json:"prompt" example:"Latino female in casual clothing posing on a sandy beach during sunset, with sunglasses on for a Tinder profile."`
	ImageURL string `json:"image_url" example:"/images/a0.png"`
	Profile  string `json:"profile" example:"Name: Mia\nBio: loves hiking and coffee."`
}

// MatchResult is the response of the profile match check.
type MatchResult struct {
	Matched bool `json:"matched" example:"true"`
}
