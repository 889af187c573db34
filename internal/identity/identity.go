// Package identity resolves who is making a request: a native account,
// a spreadsheet/session pseudo-account, or nobody.
package identity

// Session keys written by the login/registration flows. The pseudo keys
// mirror the values stored when a sheet-backed user signs in; AuthorName
// is a legacy key kept for sessions created before user_name existed.
const (
	KeyNativeUserID = "native_user_id"
	KeyUserEmail    = "user_email"
	KeyUserName     = "user_name"
	KeyAuthorName   = "author_name"
)

// Kind distinguishes the three identity variants.
type Kind int

const (
	KindAnonymous Kind = iota
	KindNative
	KindPseudo
)

// String returns a readable name for logging.
func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindPseudo:
		return "pseudo"
	default:
		return "anonymous"
	}
}

// Session is the read-only view of session state the resolver needs.
// Handlers adapt the real cookie session; tests use a map-backed fake.
type Session interface {
	GetString(key string) string
	GetInt64(key string) (int64, bool)
}

// Identity describes the caller of a single request. It is derived per
// request and never persisted. Fields beyond Kind are populated only for
// the matching variant: UserID for native, the name/email trio for pseudo.
type Identity struct {
	Kind       Kind
	UserID     int64
	Name       string
	LegacyName string
	Email      string
}

// Resolve inspects session state and returns the caller's identity.
// A native session wins over any pseudo values simultaneously present.
// Pure read; never fails - anonymous is a valid outcome, not an error.
func Resolve(s Session) Identity {
	if id, ok := s.GetInt64(KeyNativeUserID); ok && id > 0 {
		return Identity{Kind: KindNative, UserID: id}
	}

	email := s.GetString(KeyUserEmail)
	name := s.GetString(KeyUserName)
	legacy := s.GetString(KeyAuthorName)
	if email != "" || name != "" || legacy != "" {
		return Identity{Kind: KindPseudo, Name: name, LegacyName: legacy, Email: email}
	}

	return Identity{Kind: KindAnonymous}
}

// IsAnonymous reports whether no identity was resolved.
func (id Identity) IsAnonymous() bool {
	return id.Kind == KindAnonymous
}

// DisplayName returns the name a pseudo identity signs comments with,
// falling back name -> legacy author name -> email.
func (id Identity) DisplayName() string {
	if id.Name != "" {
		return id.Name
	}
	if id.LegacyName != "" {
		return id.LegacyName
	}
	return id.Email
}

// MatchesAuthor reports whether a stored pseudo attribution belongs to
// this identity. A comment matches if its author name or author email
// equals any of the identity's known values; empty strings never match.
func (id Identity) MatchesAuthor(authorName, authorEmail string) bool {
	if id.Kind != KindPseudo {
		return false
	}

	known := map[string]bool{}
	for _, v := range []string{id.Name, id.LegacyName, id.Email, id.DisplayName()} {
		if v != "" {
			known[v] = true
		}
	}

	if authorName != "" && known[authorName] {
		return true
	}
	if authorEmail != "" && known[authorEmail] {
		return true
	}
	return false
}
