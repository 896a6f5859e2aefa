// Package notifytypes is the static catalog of notification types the
// dispatcher can deliver. The catalog is seeded once at process start
// and never mutated.
package notifytypes

const (
	CardCommentCreated       = "card_comment_created"
	SignupRequestCreated     = "signup_request_created"
	UserInvited              = "user_invited"
	BoardCollaboratorRequest = "board_collaborator_requested"
	PasswordResetRequested   = "password_reset_requested"
	CardCreated              = "card_created"
	CardFeatured             = "card_featured"
	CardStackCreated         = "card_stack_created"
	BoardCollaboratorCreated = "board_collaborator_created"
)

type NotificationType struct {
	Label       string
	Display     string
	Description string
	Email       bool
	InApp       bool
}

var notificationTypes = []NotificationType{
	{
		Label:       CardCommentCreated,
		Display:     "Comment created",
		Description: "commented",
		Email:       true,
		InApp:       true,
	},
	{
		Label:       SignupRequestCreated,
		Display:     "Signup Request Created",
		Description: "invited",
		Email:       true,
		InApp:       false,
	},
	{
		Label:       UserInvited,
		Display:     "Invited to join account",
		Description: "invited",
		Email:       true,
		InApp:       false,
	},
	{
		Label:       BoardCollaboratorRequest,
		Display:     "Board Collaborator Request",
		Description: "wants to join your board",
		Email:       true,
		InApp:       false,
	},
	{
		Label:       PasswordResetRequested,
		Display:     "Password Reset",
		Description: "reset your password",
		Email:       true,
		InApp:       false,
	},
	{
		Label:       CardCreated,
		Display:     "Card created",
		Description: "created a card on board",
		Email:       false,
		InApp:       true,
	},
	{
		Label:       CardFeatured,
		Display:     "Card highlighted",
		Description: "highlighted",
		Email:       false,
		InApp:       true,
	},
	{
		Label:       CardStackCreated,
		Display:     "Stack created",
		Description: "created a stack",
		Email:       false,
		InApp:       true,
	},
	{
		Label:       BoardCollaboratorCreated,
		Display:     "New board collaborator",
		Description: "is now a collaborator on board",
		Email:       true,
		InApp:       true,
	},
}

// Get looks up a notification type by label. Unknown labels report
// ok=false rather than an error; callers decide how to handle absence.
func Get(label string) (NotificationType, bool) {
	for _, nt := range notificationTypes {
		if nt.Label == label {
			return nt, true
		}
	}
	return NotificationType{}, false
}

// All returns a copy of the catalog.
func All() []NotificationType {
	out := make([]NotificationType, len(notificationTypes))
	copy(out, notificationTypes)
	return out
}
