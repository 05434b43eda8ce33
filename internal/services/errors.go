// Package services defines the application logic behind each view:
// submitting and listing ideas, voting, commenting, direction decisions,
// notifications and profile edits. This file centralizes the service-level
// error values so they can be consistently returned by service methods and
// mapped to HTTP results at the handler layer.
package services

import "errors"

var (
	// ErrIdeaNotFound indicates the requested idea does not exist.
	ErrIdeaNotFound = errors.New("idea not found")

	// ErrEmptyTitle is returned when an idea submission has no title.
	ErrEmptyTitle = errors.New("title is required")

	// ErrEmptyDescription is returned when an idea submission has no
	// description.
	ErrEmptyDescription = errors.New("description is required")

	// ErrInvalidRating is returned when a star rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidAxis is returned when a vote names neither the quality nor
	// the priority axis.
	ErrInvalidAxis = errors.New("vote axis must be quality or priority")

	// ErrVoteInFlight is returned when a vote for the same (idea, user)
	// pair is still being processed; the client should retry after the
	// first request settles.
	ErrVoteInFlight = errors.New("a vote for this idea is already in flight")

	// ErrEmptyComment is returned when a comment has no content.
	ErrEmptyComment = errors.New("comment content is required")

	// ErrNotDirection is returned when a non-direction user attempts a
	// direction decision. The backend's row policies enforce this
	// authoritatively; the check here is the matching UX gate.
	ErrNotDirection = errors.New("direction role required")

	// ErrEmptyMotivation is returned when a decision carries no
	// motivation text. Validated before any request is issued.
	ErrEmptyMotivation = errors.New("motivation is required")

	// ErrInvalidVerdict is returned when a decision verdict is neither
	// approved nor rejected.
	ErrInvalidVerdict = errors.New("verdict must be approved or rejected")

	// ErrEmptyFullName is returned when a profile edit clears the name.
	ErrEmptyFullName = errors.New("full name is required")
)
