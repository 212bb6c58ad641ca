package models

/** --------------------ENTITIES-------------------- */

// Review is a user's verdict on a film. Useful is never stored: it is the
// sum of +1/-1 reactions recomputed from review_reactions on every read.
type Review struct {
	ID         uint   `gorm:"primaryKey" json:"reviewId"`
	Content    string `gorm:"not null" json:"content"`
	IsPositive *bool  `gorm:"not null" json:"isPositive"`
	UserID     uint   `gorm:"index;not null" json:"userId"`
	FilmID     uint   `gorm:"index;not null" json:"filmId"`
	Useful     int    `gorm:"->;-:migration" json:"useful"`
}

// ReviewReaction is a single user's +1/-1 vote on a review. One reaction
// per (review, user); a new vote replaces the previous one.
type ReviewReaction struct {
	ReviewID   uint `gorm:"primaryKey" json:"reviewId"`
	UserID     uint `gorm:"primaryKey" json:"userId"`
	IsPositive bool `gorm:"not null" json:"isPositive"`
}
