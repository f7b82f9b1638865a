// Package models defines client-side data models shared by the session,
// API client and vault packages.
package models

import (
	"encoding/json"
	"maps"
)

// User is the profile of the signed-in account. Fields the client does not
// know about are kept in Extra so that profile merges never lose data.
type User struct {
	ID    string
	Name  string
	Email string
	Extra map[string]any
}

// EmptyUser returns the empty identity held while logged out.
func EmptyUser() User {
	return User{}
}

// IsEmpty reports whether u is the empty identity.
func (u User) IsEmpty() bool {
	return u.ID == "" && u.Name == "" && u.Email == "" && len(u.Extra) == 0
}

// UserPatch is a partial profile. A nil field is absent from the patch; a
// non-nil field is applied even when it points to "".
type UserPatch struct {
	ID    *string
	Name  *string
	Email *string
	Extra map[string]any
}

// Patch returns a patch that carries every field of u.
func (u User) Patch() UserPatch {
	id, name, email := u.ID, u.Name, u.Email
	return UserPatch{ID: &id, Name: &name, Email: &email, Extra: maps.Clone(u.Extra)}
}

// Merge returns a copy of u with the fields present in patch applied on top.
// Extra keys of patch overwrite keys of u.
func (u User) Merge(patch UserPatch) User {
	out := u.Clone()
	if patch.ID != nil {
		out.ID = *patch.ID
	}
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.Email != nil {
		out.Email = *patch.Email
	}
	if len(patch.Extra) > 0 {
		if out.Extra == nil {
			out.Extra = make(map[string]any, len(patch.Extra))
		}
		maps.Copy(out.Extra, patch.Extra)
	}
	return out
}

// Clone returns a copy of u that shares no map with it.
func (u User) Clone() User {
	out := u
	if u.Extra != nil {
		out.Extra = maps.Clone(u.Extra)
	}
	return out
}

func (u User) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Extra)+3)
	maps.Copy(m, u.Extra)
	m["id"] = u.ID
	m["name"] = u.Name
	m["email"] = u.Email
	return json.Marshal(m)
}

func (u *User) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	*u = User{}
	for k, v := range m {
		switch k {
		case "id", "_id":
			u.ID = stringify(v)
		case "name":
			u.Name = stringify(v)
		case "email":
			u.Email = stringify(v)
		default:
			if u.Extra == nil {
				u.Extra = make(map[string]any)
			}
			u.Extra[k] = v
		}
	}
	return nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}

// UnmarshalJSON sets only the fields present in data.
func (p *UserPatch) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	*p = UserPatch{}
	for k, v := range m {
		s := stringify(v)
		switch k {
		case "id", "_id":
			p.ID = &s
		case "name":
			p.Name = &s
		case "email":
			p.Email = &s
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]any)
			}
			p.Extra[k] = v
		}
	}
	return nil
}
