package tmdb

// ShowResult is a single entry in a paginated list response. Movies carry
// title/release_date, TV shows name/first_air_date; callers normalize.
type ShowResult struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name,omitempty"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	Overview         string  `json:"overview"`
	GenreIDs         []int   `json:"genre_ids"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	FirstAirDate     string  `json:"first_air_date,omitempty"`
	OriginalLanguage string  `json:"original_language"`
	Adult            bool    `json:"adult"`
	MediaType        string  `json:"media_type,omitempty"`
	NumberOfEpisodes int     `json:"number_of_episodes,omitempty"`
}

// PageResponse is the upstream pagination envelope.
type PageResponse struct {
	Page         int          `json:"page"`
	TotalPages   int          `json:"total_pages"`
	TotalResults int          `json:"total_results"`
	Results      []ShowResult `json:"results"`
}

// Genre is a named genre as returned by detail endpoints.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is one credited actor on a detail response.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewMember is one credited crew role on a detail response.
type CrewMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	ProfilePath string `json:"profile_path"`
}

// Credits holds the cast and crew blocks appended to a detail response.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Video is a trailer or clip reference hosted off-site.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// VideoList wraps the videos block of a detail response.
type VideoList struct {
	Results []Video `json:"results"`
}

// ShowDetail is a single-entity detail response. TV lookups fill Name and
// FirstAirDate; Details() maps them onto Title and ReleaseDate so downstream
// code is type-agnostic. Credits, Videos and Similar come back in the same
// request via append_to_response.
type ShowDetail struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name,omitempty"`
	Tagline          string  `json:"tagline,omitempty"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	Genres           []Genre `json:"genres"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	FirstAirDate     string  `json:"first_air_date,omitempty"`
	Runtime          int     `json:"runtime,omitempty"`
	NumberOfEpisodes int     `json:"number_of_episodes,omitempty"`
	NumberOfSeasons  int     `json:"number_of_seasons,omitempty"`
	Status           string  `json:"status,omitempty"`
	MediaType        string  `json:"media_type,omitempty"`

	Credits Credits      `json:"credits"`
	Videos  VideoList    `json:"videos"`
	Similar PageResponse `json:"similar"`
}
