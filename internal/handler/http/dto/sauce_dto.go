package dto

import "github.com/mikiasgoitom/Piiquante/internal/domain/entity"

// SauceRequest carries the editable fields of a sauce. UserID is optional and,
// when present, must match the authenticated user.
type SauceRequest struct {
	UserID       string `json:"userId"`
	Name         string `json:"name" binding:"required"`
	Manufacturer string `json:"manufacturer" binding:"required"`
	Description  string `json:"description" binding:"required"`
	MainPepper   string `json:"mainPepper" binding:"required"`
	ImageURL     string `json:"imageUrl"`
	Heat         int    `json:"heat" binding:"required,min=1,max=10"`
}

// ToDetails converts the request into the domain input.
func (r SauceRequest) ToDetails() entity.SauceDetails {
	return entity.SauceDetails{
		Name:         r.Name,
		Manufacturer: r.Manufacturer,
		Description:  r.Description,
		MainPepper:   r.MainPepper,
		ImageURL:     r.ImageURL,
		Heat:         r.Heat,
	}
}

// SauceCreatedResponse is returned by POST /api/sauces.
type SauceCreatedResponse struct {
	Message string        `json:"message"`
	Sauce   *entity.Sauce `json:"sauce"`
}

// LikeRequest is the body of POST /api/sauces/:id/like. Like is 1, 0 or -1.
type LikeRequest struct {
	UserID string `json:"userId"`
	Like   *int   `json:"like" binding:"required"`
}

// VoteStateResponse is returned by GET /api/sauces/:id/vote.
type VoteStateResponse struct {
	SauceID string           `json:"sauceId"`
	Vote    entity.VoteState `json:"vote"`
}
