package models

/** --------------------ENTITIES-------------------- */

// Film represents a catalog entry with its MPA rating, genres and directors
// resolved on read.
type Film struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"size:200" json:"description"`
	ReleaseDate Date       `gorm:"type:date" json:"releaseDate"`
	Duration    int        `gorm:"not null" json:"duration"`
	MpaID       uint       `json:"-"`
	Mpa         MpaRating  `gorm:"foreignKey:MpaID" json:"mpa"`
	Genres      []Genre    `gorm:"many2many:film_genres" json:"genres"`
	Directors   []Director `gorm:"many2many:film_directors" json:"directors"`
}

// Genre is a fixed reference enumeration seeded at migration time.
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// MpaRating is the fixed content-rating enumeration (G, PG, PG-13, R, NC-17).
type MpaRating struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (MpaRating) TableName() string {
	return "mpa_ratings"
}

// Director of one or more films.
type Director struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// FilmLike is an edge of the user-film like relation, unique per pair.
type FilmLike struct {
	FilmID uint `gorm:"primaryKey" json:"filmId"`
	UserID uint `gorm:"primaryKey" json:"userId"`
}
