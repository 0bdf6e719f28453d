package domain

type Movie struct {
	ID        int
	Title     string
	PosterUrl string
}
