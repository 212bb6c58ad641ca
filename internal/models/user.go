package models

/** --------------------ENTITIES-------------------- */

// User represents a catalog member.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Login    string `gorm:"uniqueIndex;not null" json:"login"`
	Name     string `json:"name"`
	Birthday Date   `gorm:"type:date" json:"birthday"`
}

// Friendship statuses. A friendship starts as a one-directional pending
// request and both directions become confirmed on reciprocation.
const (
	FriendshipPending   = "pending"
	FriendshipConfirmed = "confirmed"
)

// Friendship is a directed edge in the friend graph.
type Friendship struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"uniqueIndex:idx_friendships_pair;not null" json:"userId"`
	FriendID uint   `gorm:"uniqueIndex:idx_friendships_pair;not null" json:"friendId"`
	Status   string `gorm:"not null;default:pending" json:"status"`
}
