// Package domain contains core business entities and rules.
package domain

import "time"

// Validation bounds shared by the HTTP layer and the database schema.
const (
	// MaxNameLength is the maximum length of quote and item names.
	MaxNameLength = 255

	// MaxDescriptionLength is the maximum length of quote and item descriptions.
	MaxDescriptionLength = 255

	// MaxItemAmount is the upper bound for an item amount.
	MaxItemAmount = 9_999_999_999
)

// Permission keys understood by the access guard.
// Checks are exact string matches; holding one key never implies another.
const (
	PermQuotesCreate  = "quotes.create"
	PermQuotesUpdate  = "quotes.update"
	PermQuotesDestroy = "quotes.destroy"
	PermItemsCreate   = "items.create"
	PermItemsUpdate   = "items.update"
	PermItemsDestroy  = "items.destroy"
)

// Quote is a proposal from a creator to a client.
// Creator and client IDs are opaque identity-provider user IDs; they are
// never validated against a local user table, only resolved at read time.
type Quote struct {
	// ID is the system-generated identifier, immutable after creation.
	ID int64

	// CreatorID is the identity-provider user ID of the quote's author.
	CreatorID string

	// ClientID is the identity-provider user ID of the quote's recipient.
	ClientID string

	// Name is the quote title (1-255 characters).
	Name string

	// Description is the quote summary (1-255 characters).
	Description string

	// CreatedAt is set on creation and never updated.
	CreatedAt time.Time
}

// VisibleTo reports whether the given user may read this quote.
// A quote is visible to exactly two identities: its creator and its client.
func (q *Quote) VisibleTo(userID string) bool {
	return q.CreatorID == userID || q.ClientID == userID
}

// Item is a priced line entry belonging to exactly one quote.
type Item struct {
	ID          int64
	QuoteID     int64
	Name        string
	Description string

	// Amount is the monetary value, 0 <= Amount <= MaxItemAmount.
	Amount float64
}

// QuotePatch is a partial update to a quote. Nil fields are left unchanged.
type QuotePatch struct {
	Name        *string
	Description *string
}

// Empty reports whether the patch changes nothing.
func (p QuotePatch) Empty() bool {
	return p.Name == nil && p.Description == nil
}

// ItemPatch is a partial update to an item. Nil fields are left unchanged.
type ItemPatch struct {
	Name        *string
	Description *string
	Amount      *float64
}

// Empty reports whether the patch changes nothing.
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Amount == nil
}

// AssignedPermission grants one user one specific action.
type AssignedPermission struct {
	UserID     string
	Permission string
}

// Party is the display identity of a quote participant, resolved from
// the identity provider at read time.
type Party struct {
	Name   string
	Avatar string
}

// EnrichedQuote pairs a quote with the resolved creator and client parties.
type EnrichedQuote struct {
	Quote   Quote
	Creator Party
	Client  Party
}

// QuotePage is one page of the caller's quotes.
type QuotePage struct {
	Quotes []EnrichedQuote

	// HasMore is true when the total number of matching quotes exceeds
	// skip+take for the requested page.
	HasMore bool
}

// QuoteDetail is a single quote with its item amount aggregate.
type QuoteDetail struct {
	EnrichedQuote

	// ItemsSum is the sum of all item amounts under the quote.
	ItemsSum float64
}

// EmailAddress is a verified-or-not email as reported by the identity provider.
type EmailAddress struct {
	ID       string
	Address  string
	Verified bool
}

// UserProfile is the identity-provider view of a user.
type UserProfile struct {
	ID        string
	FirstName string
	LastName  string
	FullName  string
	AvatarURL string

	// Email is the primary email address, nil when the user has none.
	Email *EmailAddress

	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt time.Time
}

// Party returns the display identity used when embedding this profile
// in quote responses.
func (u *UserProfile) Party() Party {
	return Party{
		Name:   u.FullName,
		Avatar: u.AvatarURL,
	}
}
