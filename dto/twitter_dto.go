package dto

// Wire shapes of the Twitter v1.1 REST API; only the fields the engine reads.
// Tweets are requested with tweet_mode=extended, hence FullText.

type Tweet struct {
	IdStr           string        `json:"id_str"`
	CreatedAt       string        `json:"created_at"` // ruby date format, see TwitterTimeLayout
	FullText        string        `json:"full_text"`
	Favorited       bool          `json:"favorited"`
	FavoriteCount   int           `json:"favorite_count"`
	RetweetCount    int           `json:"retweet_count"`
	RetweetedStatus *Tweet        `json:"retweeted_status"`
	Entities        imageEntities `json:"extended_entities"`
	User            TwitterUser   `json:"user"`
}

const TwitterTimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

type imageEntities struct {
	Media []struct {
		IdStr string `json:"id_str"`
	} `json:"media"`
}

type TwitterUser struct {
	IdStr           string `json:"id_str"`
	ScreenName      string `json:"screen_name"`
	Name            string `json:"name"`
	ProfileImageUrl string `json:"profile_image_url_https"`
	StatusesCount   int    `json:"statuses_count"`
}

// TwitterErrors is the error envelope: {"errors":[{"code":88,"message":"..."}]}
type TwitterErrors struct {
	Errors []TwitterErrorItem `json:"errors"`
}

type TwitterErrorItem struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
