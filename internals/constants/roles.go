package constants

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

var AllRoles = []string{
	RoleAdmin,
	RoleInstructor,
	RoleStudent,
}

// Roles allowed to reply to feedback threads.
var FeedbackReplyRoles = []string{
	RoleAdmin,
	RoleStudent,
}
