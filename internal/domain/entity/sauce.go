package entity

import "time"

// Sauce is a rateable item published by a user.
//
// Likes and Dislikes are derived from UsersLiked and UsersDisliked and are only
// ever written together with them. Version changes on every vote commit and is
// used by repositories for conditional updates.
type Sauce struct {
	ID            string    `bson:"_id,omitempty" json:"_id"`
	UserID        string    `bson:"user_id" json:"userId"`
	Name          string    `bson:"name" json:"name"`
	Manufacturer  string    `bson:"manufacturer" json:"manufacturer"`
	Description   string    `bson:"description" json:"description"`
	MainPepper    string    `bson:"main_pepper" json:"mainPepper"`
	ImageURL      string    `bson:"image_url" json:"imageUrl"`
	Heat          int       `bson:"heat" json:"heat"`
	Likes         int       `bson:"likes" json:"likes"`
	Dislikes      int       `bson:"dislikes" json:"dislikes"`
	UsersLiked    VoterSet  `bson:"users_liked" json:"usersLiked"`
	UsersDisliked VoterSet  `bson:"users_disliked" json:"usersDisliked"`
	Version       int64     `bson:"version" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// Clone returns a deep copy, so vote sets can be mutated without touching s.
func (s *Sauce) Clone() *Sauce {
	c := *s
	c.UsersLiked = s.UsersLiked.Clone()
	c.UsersDisliked = s.UsersDisliked.Clone()
	return &c
}

// SyncCounters recomputes Likes and Dislikes from the voter sets.
func (s *Sauce) SyncCounters() {
	s.Likes = s.UsersLiked.Len()
	s.Dislikes = s.UsersDisliked.Len()
}

// SauceDetails holds the owner-editable fields of a sauce.
type SauceDetails struct {
	Name         string `validate:"required,max=120"`
	Manufacturer string `validate:"required,max=120"`
	Description  string `validate:"required,max=2000"`
	MainPepper   string `validate:"required,max=120"`
	ImageURL     string `validate:"omitempty,url"`
	Heat         int    `validate:"min=1,max=10"`
}

// Apply copies the details onto s.
func (d SauceDetails) Apply(s *Sauce) {
	s.Name = d.Name
	s.Manufacturer = d.Manufacturer
	s.Description = d.Description
	s.MainPepper = d.MainPepper
	s.ImageURL = d.ImageURL
	s.Heat = d.Heat
}
