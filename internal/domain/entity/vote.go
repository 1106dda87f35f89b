package entity

// VoteDirection is the vote a user wants to hold on a sauce.
// The numeric values match the `like` field of the public API.
type VoteDirection int

const (
	VoteDislike VoteDirection = -1
	VoteNone    VoteDirection = 0
	VoteLike    VoteDirection = 1
)

// Valid reports whether d is one of the three known directions.
func (d VoteDirection) Valid() bool {
	return d == VoteLike || d == VoteNone || d == VoteDislike
}

func (d VoteDirection) String() string {
	switch d {
	case VoteLike:
		return "like"
	case VoteDislike:
		return "dislike"
	case VoteNone:
		return "none"
	default:
		return "invalid"
	}
}

// VoteState is the vote a user currently holds on a sauce.
type VoteState string

const (
	VoteStateLiked    VoteState = "like"
	VoteStateDisliked VoteState = "dislike"
	VoteStateNone     VoteState = "none"
)

// Messages reported for committed votes.
const (
	VoteMessageLiked      = "liked"
	VoteMessageDisliked   = "disliked"
	VoteMessageUnliked    = "unliked"
	VoteMessageUndisliked = "undisliked"
)

// VoteOutcome describes a committed vote.
type VoteOutcome struct {
	Direction VoteDirection
	Message   string
	Sauce     *Sauce
}

// StateOf returns the vote userID holds on s.
func StateOf(s *Sauce, userID string) VoteState {
	switch {
	case s.UsersLiked.Has(userID):
		return VoteStateLiked
	case s.UsersDisliked.Has(userID):
		return VoteStateDisliked
	default:
		return VoteStateNone
	}
}
