package entity

import (
	"encoding/json"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// VoterSet holds the ids of the users that cast one kind of vote on a sauce.
// The zero value is an empty set ready to use.
type VoterSet struct {
	ids map[string]struct{}
}

// NewVoterSet builds a set from ids, dropping duplicates and empty ids.
func NewVoterSet(ids ...string) VoterSet {
	s := VoterSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports whether userID is a member.
func (s VoterSet) Has(userID string) bool {
	_, ok := s.ids[userID]
	return ok
}

// Add inserts userID and reports whether it was absent.
func (s *VoterSet) Add(userID string) bool {
	if userID == "" || s.Has(userID) {
		return false
	}
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	s.ids[userID] = struct{}{}
	return true
}

// Remove deletes userID and reports whether it was present.
func (s *VoterSet) Remove(userID string) bool {
	if !s.Has(userID) {
		return false
	}
	delete(s.ids, userID)
	return true
}

func (s VoterSet) Len() int { return len(s.ids) }

// IDs returns the members in ascending order.
func (s VoterSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s VoterSet) Clone() VoterSet {
	c := VoterSet{ids: make(map[string]struct{}, len(s.ids))}
	for id := range s.ids {
		c.ids[id] = struct{}{}
	}
	return c
}

func (s VoterSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *VoterSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewVoterSet(ids...)
	return nil
}

// MarshalBSONValue stores the set as a plain array so documents stay readable
// by other clients of the collection.
func (s VoterSet) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(s.IDs())
}

func (s *VoterSet) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null || t == bsontype.Undefined {
		*s = VoterSet{}
		return nil
	}
	var ids []string
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&ids); err != nil {
		return err
	}
	*s = NewVoterSet(ids...)
	return nil
}
