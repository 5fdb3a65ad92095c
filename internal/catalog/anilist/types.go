package anilist

// PageInfo is the upstream pagination block.
type PageInfo struct {
	Total       int  `json:"total"`
	PerPage     int  `json:"perPage"`
	CurrentPage int  `json:"currentPage"`
	LastPage    int  `json:"lastPage"`
	HasNextPage bool `json:"hasNextPage"`
}

// Title holds the alternative titles of a media entry.
type Title struct {
	Romaji  string `json:"romaji"`
	English string `json:"english"`
	Native  string `json:"native"`
}

// Preferred returns the English title when present, otherwise the romaji one.
func (t Title) Preferred() string {
	if t.English != "" {
		return t.English
	}
	return t.Romaji
}

// CoverImage holds the cover art URLs of a media entry.
type CoverImage struct {
	ExtraLarge string `json:"extraLarge"`
	Large      string `json:"large"`
	Medium     string `json:"medium"`
}

// URL returns the best available cover image URL.
func (c CoverImage) URL() string {
	if c.ExtraLarge != "" {
		return c.ExtraLarge
	}
	if c.Large != "" {
		return c.Large
	}
	return c.Medium
}

// AiringEpisode describes the next scheduled episode broadcast.
type AiringEpisode struct {
	Episode         int   `json:"episode"`
	TimeUntilAiring int   `json:"timeUntilAiring"`
	AiringAt        int64 `json:"airingAt"`
}

// StudioNode is a single studio name.
type StudioNode struct {
	Name string `json:"name"`
}

// Media is a single entry in a paginated media query.
type Media struct {
	ID           int        `json:"id"`
	Title        Title      `json:"title"`
	CoverImage   CoverImage `json:"coverImage"`
	Episodes     *int       `json:"episodes"`
	Status       string     `json:"status"`
	Format       string     `json:"format"`
	Genres       []string   `json:"genres"`
	AverageScore *int       `json:"averageScore"`
	Popularity   *int       `json:"popularity"`
	Season       string     `json:"season"`
	SeasonYear   *int       `json:"seasonYear"`
	Studios      struct {
		Nodes []StudioNode `json:"nodes"`
	} `json:"studios"`
	NextAiringEpisode *AiringEpisode `json:"nextAiringEpisode"`
}

// FuzzyDate is the upstream's partial date representation.
type FuzzyDate struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

// NamedNode is a staff member or character with a full name.
type NamedNode struct {
	Name struct {
		Full string `json:"full"`
	} `json:"name"`
	Image struct {
		Medium string `json:"medium"`
	} `json:"image"`
}

// Edge links a media entry to a related person or title with a role.
type Edge struct {
	Role   string    `json:"role,omitempty"`
	IsMain bool      `json:"isMain,omitempty"`
	Node   NamedNode `json:"node"`
}

// RelatedMedia is a compact media reference used by relations and
// recommendations.
type RelatedMedia struct {
	ID         int        `json:"id"`
	Title      Title      `json:"title"`
	CoverImage CoverImage `json:"coverImage"`
	Format     string     `json:"format"`
	Type       string     `json:"type"`
}

// MediaDetail is the deep single-entity shape backing a detail page.
type MediaDetail struct {
	ID           int        `json:"id"`
	Title        Title      `json:"title"`
	Description  string     `json:"description"`
	CoverImage   CoverImage `json:"coverImage"`
	BannerImage  string     `json:"bannerImage"`
	Episodes     *int       `json:"episodes"`
	Duration     *int       `json:"duration"`
	Status       string     `json:"status"`
	Format       string     `json:"format"`
	Genres       []string   `json:"genres"`
	AverageScore *int       `json:"averageScore"`
	Popularity   *int       `json:"popularity"`
	Season       string     `json:"season"`
	SeasonYear   *int       `json:"seasonYear"`
	StartDate    FuzzyDate  `json:"startDate"`
	EndDate      FuzzyDate  `json:"endDate"`
	Studios      struct {
		Edges []struct {
			IsMain bool       `json:"isMain"`
			Node   StudioNode `json:"node"`
		} `json:"edges"`
	} `json:"studios"`
	Staff struct {
		Edges []Edge `json:"edges"`
	} `json:"staff"`
	Characters struct {
		Edges []Edge `json:"edges"`
	} `json:"characters"`
	Relations struct {
		Edges []struct {
			RelationType string       `json:"relationType"`
			Node         RelatedMedia `json:"node"`
		} `json:"edges"`
	} `json:"relations"`
	Recommendations struct {
		Edges []struct {
			Node struct {
				MediaRecommendation RelatedMedia `json:"mediaRecommendation"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"recommendations"`
	NextAiringEpisode *AiringEpisode `json:"nextAiringEpisode"`
}

// PageResult is one page of a media query.
type PageResult struct {
	PageInfo PageInfo `json:"pageInfo"`
	Media    []Media  `json:"media"`
}
