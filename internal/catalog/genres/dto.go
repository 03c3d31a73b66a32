package genres

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateGenreRequest struct {
	Name string `json:"name" binding:"required"`
}

type GenreResponse struct {
	GenreID int64  `json:"genre_id"`
	Name    string `json:"name"`
}
