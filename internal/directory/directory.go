// Package directory provides the static user directory. Entries are seeded
// at construction and read-only for the life of the process.
package directory

import (
	"sort"

	"ping-router/internal/models"
)

// UnknownContact is returned when a handle or one of its contact channels
// is not present. Handles are validated before delivery, so this is a
// defensive fallback only.
const UnknownContact = "unknown"

// Directory is a read-only mapping from handle to user profile.
type Directory struct {
	users map[string]models.User
}

// New creates a directory seeded with the given users.
func New(users []models.User) *Directory {
	byHandle := make(map[string]models.User, len(users))
	for _, u := range users {
		byHandle[u.Handle] = u
	}
	return &Directory{users: byHandle}
}

// NewSeeded creates a directory with the built-in demo users.
// The directory is never empty at startup.
func NewSeeded() *Directory {
	return New([]models.User{
		{
			Handle: "davit",
			Name:   "Davit A.",
			Bio:    "Building delightful products. Lover of crisp UIs and fast APIs.",
			Email:  strPtr("davit@example.com"),
			Phone:  strPtr("+1234567890"),
		},
		{
			Handle: "alex",
			Name:   "Alex M.",
			Bio:    "Design, code, sound. Trying new mediums every week.",
			Email:  strPtr("alex@example.com"),
			Phone:  strPtr("+1987654321"),
		},
		{
			Handle: "kai",
			Name:   "Kai Z.",
			Bio:    "Research → Prototypes → Systems. ping to collaborate.",
			Email:  strPtr("kai@example.com"),
			Phone:  strPtr("+14155550123"),
		},
	})
}

// Get returns the user for a handle.
func (d *Directory) Get(handle string) (models.User, bool) {
	u, ok := d.users[handle]
	return u, ok
}

// Has reports whether a handle exists in the directory.
func (d *Directory) Has(handle string) bool {
	_, ok := d.users[handle]
	return ok
}

// Handles returns all known handles in sorted order.
func (d *Directory) Handles() []string {
	handles := make([]string, 0, len(d.users))
	for h := range d.users {
		handles = append(handles, h)
	}
	sort.Strings(handles)
	return handles
}

// Count returns the number of directory entries.
func (d *Directory) Count() int {
	return len(d.users)
}

// Email returns the email address for a handle, or UnknownContact when the
// handle or its email is absent.
func (d *Directory) Email(handle string) string {
	if u, ok := d.users[handle]; ok && u.Email != nil {
		return *u.Email
	}
	return UnknownContact
}

// Phone returns the phone number for a handle, or UnknownContact when the
// handle or its phone is absent.
func (d *Directory) Phone(handle string) string {
	if u, ok := d.users[handle]; ok && u.Phone != nil {
		return *u.Phone
	}
	return UnknownContact
}

func strPtr(s string) *string {
	return &s
}
