package schemas

// SongSchema struct
type SongSchema struct {
	SongID     string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	SongURL    string `json:"songUrl"`
	PublicID   string `json:"publicId"`
	UploadedBy string `json:"uploadedBy"`
	Created    int64  `json:"created"`
}

// SongResponseSchema struct
type SongResponseSchema struct {
	Song SongSchema `json:"song"`
}

// SongsResponseSchema struct
type SongsResponseSchema struct {
	Songs []SongSchema `json:"songs"`
}
